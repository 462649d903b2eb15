package tests

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h-ess/concierge-toolkit/toolkit"
)

type echoArgs struct {
	Input string `json:"input" jsonschema:"required"`
}

type echoResponse struct {
	Output string `json:"output"`
}

func echoChild(name string, shouldError bool) toolkit.Child {
	handler := func(ctx context.Context, args echoArgs) (interface{}, error) {
		if shouldError {
			return nil, fmt.Errorf("error_from_%s", name)
		}
		return echoResponse{Output: name + ":" + args.Input}, nil
	}
	return toolkit.NewChild[echoArgs](name, "desc_"+name, handler)
}

func TestNewChild_Metadata(t *testing.T) {
	child := toolkit.NewChild("meta_child", "a child", func(ctx context.Context, args echoArgs) (interface{}, error) {
		return nil, nil
	})

	assert.Equal(t, "meta_child", child.GetName())
	assert.Equal(t, "a child", child.GetDescription())
	assert.NotNil(t, child.GetInputSchema())
}

func TestNewChild_Handle_Success(t *testing.T) {
	child := echoChild("echo", false)

	result, err := child.Handle(context.Background(), json.RawMessage(`{"input":"hello"}`))
	require.NoError(t, err)

	resp, ok := result.(echoResponse)
	require.True(t, ok, "unexpected result type %T", result)
	assert.Equal(t, "echo:hello", resp.Output)
}

func TestNewChild_Handle_HandlerErrorWrapped(t *testing.T) {
	child := echoChild("boom", true)

	_, err := child.Handle(context.Background(), json.RawMessage(`{"input":"x"}`))
	require.Error(t, err)

	var tkErr toolkit.ToolKitError
	require.ErrorAs(t, err, &tkErr)
	assert.Equal(t, "handler_execution_error", tkErr.Code)
	assert.Contains(t, tkErr.Message, "error_from_boom")
}

func TestNewChild_Handle_DomainErrorPreserved(t *testing.T) {
	child := toolkit.NewChild("domain", "desc", func(ctx context.Context, args echoArgs) (interface{}, error) {
		return nil, toolkit.NewError("already_cancelled", "no double cancel")
	})

	_, err := child.Handle(context.Background(), json.RawMessage(`{"input":"x"}`))
	require.Error(t, err)

	var tkErr toolkit.ToolKitError
	require.ErrorAs(t, err, &tkErr)
	assert.Equal(t, "already_cancelled", tkErr.Code)
}

func TestNewChild_Handle_MalformedJSON(t *testing.T) {
	child := toolkit.NewChild("strict", "desc", func(ctx context.Context, args echoArgs) (interface{}, error) {
		t.Fatal("handler must not run on malformed input")
		return nil, nil
	})

	_, err := child.Handle(context.Background(), json.RawMessage(`{"bad`))
	require.Error(t, err)

	var tkErr toolkit.ToolKitError
	require.ErrorAs(t, err, &tkErr)
	assert.Equal(t, "invalid_arguments", tkErr.Code)
}

func TestNewChild_Handle_SchemaRejectsBeforeHandler(t *testing.T) {
	handlerRan := false
	child := toolkit.NewChild("validated", "desc", func(ctx context.Context, args echoArgs) (interface{}, error) {
		handlerRan = true
		return echoResponse{Output: args.Input}, nil
	})

	tests := []struct {
		name string
		args string
	}{
		{name: "missing required field", args: `{}`},
		{name: "wrong type", args: `{"input": 42}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := child.Handle(context.Background(), json.RawMessage(tc.args))
			require.Error(t, err)
			var tkErr toolkit.ToolKitError
			require.ErrorAs(t, err, &tkErr)
			assert.Equal(t, "invalid_arguments", tkErr.Code)
			assert.False(t, handlerRan, "handler ran despite invalid arguments")
		})
	}
}

func TestNewParent_Metadata(t *testing.T) {
	parent := toolkit.NewParent("p", "a parent", echoChild("c1", false))
	assert.Equal(t, "p", parent.GetName())
	assert.Equal(t, "a parent", parent.GetDescription())
}

func TestNewParent_GetChildren(t *testing.T) {
	parent := toolkit.NewParent("p", "desc", echoChild("c1", false), echoChild("c2", false))

	children := parent.GetChildren()
	require.Len(t, children, 2)
	assert.Contains(t, children, "c1")
	assert.Contains(t, children, "c2")
	assert.NotContains(t, children, "c3")
}

func TestNewParent_SkipsNilAndOverwritesDuplicates(t *testing.T) {
	parent := toolkit.NewParent("p", "desc", echoChild("c1", false), nil, echoChild("c1", false))
	assert.Len(t, parent.GetChildren(), 1)
}

func TestNewParent_HandleChildren_Success(t *testing.T) {
	parent := toolkit.NewParent("p", "desc", echoChild("c1", false), echoChild("c2", false))

	resp := parent.HandleChildren(context.Background(), []toolkit.ToolKitChild{
		{Name: "c1", Args: json.RawMessage(`{"input":"a"}`)},
		{Name: "c2", Args: json.RawMessage(`{"input":"b"}`)},
	})

	assert.Equal(t, "p", resp.Name)
	require.Len(t, resp.ChildsResponses, 2)
	assert.Equal(t, "c1", resp.ChildsResponses[0].Name)
	assert.Equal(t, echoResponse{Output: "c1:a"}, resp.ChildsResponses[0].Response)
	assert.Equal(t, "c2", resp.ChildsResponses[1].Name)
	assert.Equal(t, echoResponse{Output: "c2:b"}, resp.ChildsResponses[1].Response)
}

func TestNewParent_HandleChildren_ChildNotFound(t *testing.T) {
	parent := toolkit.NewParent("p", "desc", echoChild("c1", false))

	resp := parent.HandleChildren(context.Background(), []toolkit.ToolKitChild{
		{Name: "c1", Args: json.RawMessage(`{"input":"a"}`)},
		{Name: "ghost", Args: json.RawMessage(`{}`)},
	})

	require.Len(t, resp.ChildsResponses, 2)
	tkErr, ok := resp.ChildsResponses[1].Response.(toolkit.ToolKitError)
	require.True(t, ok, "expected ToolKitError, got %T", resp.ChildsResponses[1].Response)
	assert.Equal(t, "child_not_found", tkErr.Code)
}

func TestNewParent_HandleChildren_ContinuesPastFailures(t *testing.T) {
	parent := toolkit.NewParent("p", "desc", echoChild("bad", true), echoChild("good", false))

	resp := parent.HandleChildren(context.Background(), []toolkit.ToolKitChild{
		{Name: "bad", Args: json.RawMessage(`{"input":"x"}`)},
		{Name: "good", Args: json.RawMessage(`{"input":"y"}`)},
	})

	require.Len(t, resp.ChildsResponses, 2)

	tkErr, ok := resp.ChildsResponses[0].Response.(toolkit.ToolKitError)
	require.True(t, ok)
	assert.Equal(t, "handler_execution_error", tkErr.Code)

	// The failure above did not stop the second child from running.
	assert.Equal(t, echoResponse{Output: "good:y"}, resp.ChildsResponses[1].Response)
}

func TestNewChild_ErrorsAreToolKitErrors(t *testing.T) {
	child := toolkit.NewChild("e", "desc", func(ctx context.Context, args echoArgs) (interface{}, error) {
		return nil, errors.New("plain failure")
	})
	_, err := child.Handle(context.Background(), json.RawMessage(`{"input":"x"}`))
	var tkErr toolkit.ToolKitError
	assert.ErrorAs(t, err, &tkErr)
}
