package tool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubTool(name string) *FunctionTool {
	return NewFunctionTool(name, "stub "+name,
		map[string]any{"type": "object", "properties": map[string]any{}},
		func(context.Context, map[string]any) (string, error) { return name + " ok", nil },
	)
}

func TestRegistry_RoleScopedResolution(t *testing.T) {
	reg := NewRegistry()
	reg.Register(stubTool("bash"), RolePrimary, RoleDelegated)
	reg.Register(stubTool("task"), RolePrimary)

	got, err := reg.Resolve(RolePrimary, "task")
	require.NoError(t, err)
	assert.Equal(t, "task", got.Name())

	// The delegation tool is structurally invisible to the delegated role.
	_, err = reg.Resolve(RoleDelegated, "task")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = reg.Resolve(RolePrimary, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistry_DefinitionsPreserveRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Register(stubTool("bash"), RolePrimary, RoleDelegated)
	reg.Register(stubTool("read"), RolePrimary, RoleDelegated)
	reg.Register(stubTool("todo_add"), RolePrimary)
	reg.Register(stubTool("task"), RolePrimary)

	var primary []string
	for _, d := range reg.Definitions(RolePrimary) {
		primary = append(primary, d.Name)
	}
	assert.Equal(t, []string{"bash", "read", "todo_add", "task"}, primary)

	assert.Equal(t, []string{"bash", "read"}, reg.Names(RoleDelegated))
	assert.Equal(t, 2, reg.Count(RoleDelegated))
}

func TestRegistry_ReRegisterReplacesHandler(t *testing.T) {
	reg := NewRegistry()
	reg.Register(stubTool("bash"), RolePrimary)

	replacement := NewFunctionTool("bash", "replacement",
		map[string]any{"type": "object", "properties": map[string]any{}},
		func(context.Context, map[string]any) (string, error) { return "new", nil },
	)
	reg.Register(replacement, RolePrimary, RoleDelegated)

	got, err := reg.Resolve(RoleDelegated, "bash")
	require.NoError(t, err)
	out, err := got.Call(context.Background(), map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "new", out)
	assert.Equal(t, 1, reg.Count(RolePrimary))
}

func TestFunctionTool_ValidatesArguments(t *testing.T) {
	echo := NewFunctionTool("echo", "echo back",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{"type": "string"},
			},
			"required": []string{"text"},
		},
		func(_ context.Context, args map[string]any) (string, error) {
			text, _ := StringArg(args, "text")
			return text, nil
		},
	)

	out, err := echo.Call(context.Background(), map[string]any{"text": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hi", out)

	_, err = echo.Call(context.Background(), map[string]any{})
	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "VALIDATION_ERROR", toolErr.Code)

	_, err = echo.Call(context.Background(), map[string]any{"text": 42})
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "VALIDATION_ERROR", toolErr.Code)
}
