// Request/response DTOs, structured errors and schema generation for the
// toolkit dispatch layer.
package toolkit

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// --- Request structures ---

// ToolKit is the top-level shape of an execution request as produced by the
// model. Several parents, each with several children, may be requested in a
// single call; this keeps round trips with the model to a minimum.
type ToolKit struct {
	Name           string          `json:"name" jsonschema:"required,description=The name of the toolkit."`
	ToolKitParents []ToolKitParent `json:"parents" jsonschema:"required,description=The parent toolkits to execute within the toolkit."`
}

// ToolKitParent selects one parent and the child tools to run under it.
type ToolKitParent struct {
	Name          string         `json:"name" jsonschema:"required,description=The name of the parent toolkit to execute."`
	ToolKitChilds []ToolKitChild `json:"childs" jsonschema:"required,description=The child tools to execute within this parent."`
}

// ToolKitChild names one child tool and carries its arguments as raw JSON.
// Arguments stay opaque until the child itself validates and decodes them.
type ToolKitChild struct {
	Name string          `json:"name" jsonschema:"required,description=The name of the child tool to execute."`
	Args json.RawMessage `json:"args" jsonschema:"required,description=The arguments for the child tool, as a JSON object."`
}

// --- Response structures ---

// ToolKitResponse mirrors the request hierarchy: one entry per requested
// parent, in request order.
type ToolKitResponse struct {
	Name      string           `json:"name"`
	Responses []ParentResponse `json:"responses,omitempty"`
}

// ParentResponse holds the ordered results of the children executed under one
// parent.
type ParentResponse struct {
	Name            string          `json:"name"`
	ChildsResponses []ChildResponse `json:"childsResponses,omitempty"`
}

// ChildResponse is the outcome of one child execution. Response holds either
// the handler's result or a ToolKitError, so callers process successes and
// failures through the same structure.
type ChildResponse struct {
	Name     string      `json:"name"`
	Response interface{} `json:"response,omitempty"`
}

// AddResponse appends a parent result in execution order.
func (tr *ToolKitResponse) AddResponse(pr ParentResponse) {
	tr.Responses = append(tr.Responses, pr)
}

// AddResponse appends a child result in execution order.
func (pr *ParentResponse) AddResponse(cr ChildResponse) {
	pr.ChildsResponses = append(pr.ChildsResponses, cr)
}

// --- Errors ---

// ToolKitError is the structured error carried inside responses. Code is
// machine readable; Message is for humans (and the model).
type ToolKitError struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
}

// Error implements the error interface.
func (e ToolKitError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError builds a ToolKitError.
//
// Codes used by the dispatch layer itself:
//   - "invalid_arguments": args failed schema validation or decoding
//   - "handler_execution_error": the tool handler returned an error
//   - "child_not_found" / "parent_not_found": unknown tool name
//   - "no_toolkit_parents": empty request
func NewError(code, message string) error {
	return ToolKitError{Code: code, Message: message}
}

// --- Schema generation ---

// GenerateSchema reflects a JSON schema from the struct type T, honoring
// `jsonschema:"required,description=..."` tags. The result is self-contained
// (no $refs) so it can be embedded directly in tool registrations.
func GenerateSchema[T any]() interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	return reflector.Reflect(&v)
}

// GetToolKitSchemaForAnthropic returns the schema for the top-level ToolKit
// request in the form Claude's tool registration expects.
func GetToolKitSchemaForAnthropic() interface{} {
	return GenerateSchema[ToolKit]()
}
