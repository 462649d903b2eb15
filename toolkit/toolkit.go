package toolkit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/h-ess/concierge-toolkit/pkg/logging"
)

// Toolkit is the top-level registry of Parent tools. It is registered with the
// model as a single tool whose input is the full ToolKit request structure.
type Toolkit struct {
	parents map[string]Parent
	name    string
}

// New builds a Toolkit from the given parents. Nil parents are skipped and a
// duplicate parent name overwrites the earlier registration; both cases are
// logged.
func New(name string, parents ...Parent) *Toolkit {
	parentMap := make(map[string]Parent, len(parents))
	for _, p := range parents {
		if p == nil {
			logging.Warn("toolkit: skipping nil parent", "toolkit", name)
			continue
		}
		if _, exists := parentMap[p.GetName()]; exists {
			logging.Warn("toolkit: duplicate parent name, overwriting", "parent", p.GetName())
		}
		parentMap[p.GetName()] = p
	}
	return &Toolkit{parents: parentMap, name: name}
}

// GetToolkitName returns the toolkit's configured name.
func (t *Toolkit) GetToolkitName() string {
	return t.name
}

// GetToolkitSchema returns the JSON schema of the ToolKit request for the
// given provider. Only "anthropic" is supported; anything else falls back to
// the Anthropic shape with a warning.
func (t *Toolkit) GetToolkitSchema(provider string) interface{} {
	switch provider {
	case "anthropic":
		return GetToolKitSchemaForAnthropic()
	default:
		logging.Warn("toolkit: unsupported schema provider, using anthropic", "provider", provider)
		return GetToolKitSchemaForAnthropic()
	}
}

// GetToolkitDescription renders an XML-like listing of every parent and child
// (with input schemas) for inclusion in the tool description given to the
// model.
func (t *Toolkit) GetToolkitDescription() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("In this environment, you have access to the following <toolkit name=%q>:\n", t.name))
	sb.WriteString("A <toolkit> is a collection of <parents>, a <parent> is a collection of <childs>.\n")
	sb.WriteString("Below is the list of available <parents> and their <childs>:\n")

	for _, parent := range t.parents {
		sb.WriteString(fmt.Sprintf("<parent name=%q description=%q>", parent.GetName(), parent.GetDescription()))
		sb.WriteString("\n")
		for _, child := range parent.GetChildren() {
			schemaStr := "schema_error"
			if schemaBytes, err := json.Marshal(child.GetInputSchema()); err == nil {
				schemaStr = string(schemaBytes)
			} else {
				logging.Error("toolkit: marshal child schema", "parent", parent.GetName(), "child", child.GetName(), "err", err)
			}
			sb.WriteString(fmt.Sprintf("<child name=%q description=%q><input_schema>%s</input_schema></child>\n",
				child.GetName(), child.GetDescription(), schemaStr))
		}
		sb.WriteString("</parent>\n")
		sb.WriteString("**NOTE**: A child tool cannot be invoked directly, the parent tool must be invoked first via its parent.\n")
	}
	sb.WriteString("</toolkit>")
	return sb.String()
}

// HandleToolKit is the entry point for an execution request: it parses the raw
// JSON payload and dispatches every requested parent/child.
//
// Failures are folded into the response structure rather than aborting the
// request: a parse failure yields a structured error response (and a non-nil
// error), an unknown parent yields a per-parent error entry, and child
// failures are reported inside the corresponding ChildResponse.
func (t *Toolkit) HandleToolKit(ctx context.Context, input json.RawMessage) (ToolKitResponse, error) {
	var tkRequest ToolKit
	if err := json.Unmarshal(input, &tkRequest); err != nil {
		logging.Error("toolkit: parse request", "err", err)
		errResp := ToolKitResponse{
			Name: "toolkit_request_parse_error",
			Responses: []ParentResponse{
				{
					Name: "_parse_error",
					ChildsResponses: []ChildResponse{
						{Name: "_input_error", Response: NewError("invalid_input_json", err.Error())},
					},
				},
			},
		}
		return errResp, fmt.Errorf("error unmarshaling toolkit JSON input: %w", err)
	}
	return t.dispatch(ctx, tkRequest)
}

func (t *Toolkit) dispatch(ctx context.Context, req ToolKit) (ToolKitResponse, error) {
	resp := ToolKitResponse{Name: t.name}

	if len(req.ToolKitParents) == 0 {
		return resp, NewError("no_toolkit_parents", "No toolkit parents specified in the request")
	}

	for _, parentReq := range req.ToolKitParents {
		parent, ok := t.parents[parentReq.Name]
		if !ok {
			logging.Warn("toolkit: requested parent not registered", "parent", parentReq.Name)
			resp.AddResponse(ParentResponse{
				Name: parentReq.Name,
				ChildsResponses: []ChildResponse{
					{Name: "_parent_error", Response: NewError("parent_not_found", fmt.Sprintf("Parent toolkit '%s' not registered", parentReq.Name))},
				},
			})
			continue
		}
		resp.AddResponse(parent.HandleChildren(ctx, parentReq.ToolKitChilds))
	}
	return resp, nil
}
