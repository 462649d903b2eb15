// Package toolkit implements the tool-dispatch layer that adapts plain Go
// functions into the shape an AI-agent host expects: a named tool with a
// description, a JSON schema for its arguments, and a handler.
//
// The structure is hierarchical:
//   - Toolkit: top-level container, registered with the model as one tool
//   - Parent: a use case, grouping related Child tools under one namespace
//   - Child: a single operation with typed arguments and a handler
//
// A single model invocation may request any number of parents and children;
// the toolkit validates each child's arguments against its generated schema
// before the handler runs, so malformed input never reaches a handler (and
// therefore never triggers an outbound API call).
package toolkit

import (
	"context"
	"encoding/json"
)

// Parent groups a set of related Child tools under a shared name. It routes
// execution requests to its children and folds each outcome, success or
// failure, into a single ParentResponse.
type Parent interface {
	// GetName returns the parent's unique name within its toolkit.
	GetName() string

	// GetDescription returns a short human-readable description used in the
	// toolkit description shown to the model.
	GetDescription() string

	// GetChildren returns the child tools managed by this parent, keyed by
	// child name.
	GetChildren() map[string]Child

	// HandleChildren executes the requested children in order. Failures are
	// recorded per child; one failing child never aborts the rest.
	HandleChildren(ctx context.Context, childRequests []ToolKitChild) ParentResponse
}

// Child is a single executable tool. Implementations created through NewChild
// validate and decode their raw JSON arguments before running the handler.
type Child interface {
	// GetName returns the child's unique name within its parent.
	GetName() string

	// GetDescription returns a short human-readable description of the
	// operation.
	GetDescription() string

	// GetInputSchema returns the JSON schema describing the expected
	// arguments.
	GetInputSchema() interface{}

	// Handle validates args against the input schema, decodes them and runs
	// the tool. Errors are returned as ToolKitError values.
	Handle(ctx context.Context, args json.RawMessage) (interface{}, error)
}
