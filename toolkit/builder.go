// Builders for Parent and Child implementations. NewChild is where the
// validate-before-dispatch guarantee lives: every child compiles its
// reflected schema once at construction and checks incoming arguments against
// it before the handler runs.
package toolkit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	jsv "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/h-ess/concierge-toolkit/pkg/logging"
)

// --- Child ---

type childTool[T any] struct {
	name        string
	description string
	schema      interface{}
	compiled    *jsv.Schema
	handler     func(ctx context.Context, args T) (interface{}, error)
}

// NewChild wraps a typed handler into a Child. The input schema is reflected
// from T's struct tags and compiled for validation. If compilation fails the
// child still works, falling back to decode-time type checking only.
func NewChild[T any](name, description string, handler func(ctx context.Context, args T) (interface{}, error)) Child {
	schema := GenerateSchema[T]()
	compiled, err := compileSchema(schema)
	if err != nil {
		logging.Warn("toolkit: schema compilation failed, validation disabled for child", "child", name, "err", err)
	}
	return &childTool[T]{
		name:        name,
		description: description,
		schema:      schema,
		compiled:    compiled,
		handler:     handler,
	}
}

func compileSchema(schema interface{}) (*jsv.Schema, error) {
	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}
	c := jsv.NewCompiler()
	if err := c.AddResource("schema.json", doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return c.Compile("schema.json")
}

func (c *childTool[T]) GetName() string             { return c.name }
func (c *childTool[T]) GetDescription() string      { return c.description }
func (c *childTool[T]) GetInputSchema() interface{} { return c.schema }

// Handle validates the raw arguments against the compiled schema, decodes
// them into T and runs the handler. All failures come back as ToolKitError:
// "invalid_arguments" before the handler, "handler_execution_error" after
// (unless the handler itself returned a ToolKitError, which is preserved).
func (c *childTool[T]) Handle(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var doc interface{}
	if err := json.Unmarshal(args, &doc); err != nil {
		return nil, NewError("invalid_arguments", fmt.Sprintf("arguments for '%s' are not valid JSON: %v", c.name, err))
	}
	if c.compiled != nil {
		if err := c.compiled.Validate(doc); err != nil {
			return nil, NewError("invalid_arguments", fmt.Sprintf("arguments for '%s' failed schema validation: %v", c.name, err))
		}
	}

	var typed T
	if err := json.Unmarshal(args, &typed); err != nil {
		return nil, NewError("invalid_arguments", fmt.Sprintf("arguments for '%s' do not match the expected structure: %v", c.name, err))
	}

	result, err := c.handler(ctx, typed)
	if err != nil {
		var tkErr ToolKitError
		if errors.As(err, &tkErr) {
			return nil, tkErr
		}
		return nil, NewError("handler_execution_error", fmt.Sprintf("handler for '%s' failed: %v", c.name, err))
	}
	return result, nil
}

// --- Parent ---

type parentTool struct {
	name        string
	description string
	children    map[string]Child
}

// NewParent groups children under a named parent. Nil children are skipped
// with a warning; duplicate names overwrite.
func NewParent(name, description string, children ...Child) Parent {
	childMap := make(map[string]Child, len(children))
	for _, c := range children {
		if c == nil {
			logging.Warn("toolkit: skipping nil child", "parent", name)
			continue
		}
		if _, exists := childMap[c.GetName()]; exists {
			logging.Warn("toolkit: duplicate child name, overwriting", "parent", name, "child", c.GetName())
		}
		childMap[c.GetName()] = c
	}
	return &parentTool{name: name, description: description, children: childMap}
}

func (p *parentTool) GetName() string               { return p.name }
func (p *parentTool) GetDescription() string        { return p.description }
func (p *parentTool) GetChildren() map[string]Child { return p.children }

// HandleChildren runs the requested children in order. Each failure is
// recorded in that child's ChildResponse as a ToolKitError; execution always
// continues with the next child.
func (p *parentTool) HandleChildren(ctx context.Context, childRequests []ToolKitChild) ParentResponse {
	resp := ParentResponse{Name: p.name}

	for _, req := range childRequests {
		child, ok := p.children[req.Name]
		if !ok {
			logging.Warn("toolkit: requested child not registered", "parent", p.name, "child", req.Name)
			resp.AddResponse(ChildResponse{
				Name:     req.Name,
				Response: NewError("child_not_found", fmt.Sprintf("Child tool '%s' not registered under parent '%s'", req.Name, p.name)),
			})
			continue
		}

		result, err := child.Handle(ctx, req.Args)
		if err != nil {
			var tkErr ToolKitError
			if !errors.As(err, &tkErr) {
				tkErr = ToolKitError{Code: "handler_execution_error", Message: err.Error()}
			}
			resp.AddResponse(ChildResponse{Name: req.Name, Response: tkErr})
			continue
		}
		resp.AddResponse(ChildResponse{Name: req.Name, Response: result})
	}
	return resp
}
