package missioncontrol

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/missioncontrol/model"
	"github.com/MikeSquared-Agency/missioncontrol/subagent"
	"github.com/MikeSquared-Agency/missioncontrol/tool"
)

func TestNewRegistersScopedTools(t *testing.T) {
	o := New(model.NewMockModel())

	assert.Equal(t,
		[]string{"bash", "read", "write", "edit", "todo_add", "todo_update", "todo_list", "task"},
		o.Registry().Names(tool.RolePrimary),
	)
	assert.Equal(t,
		[]string{"bash", "read", "write", "edit"},
		o.Registry().Names(tool.RoleDelegated),
	)
}

func TestRunSimpleAnswer(t *testing.T) {
	mock := model.NewMockModel()
	mock.EnqueueFinal("the answer is 42")

	o := New(mock)
	out, err := o.Run(context.Background(), "what is the answer?")
	require.NoError(t, err)
	assert.Equal(t, "the answer is 42", out)
	assert.Equal(t, "", o.Status())
	assert.Equal(t, "No tasks yet.", o.Todos())
}

func TestRunTracksTodosAndSubagents(t *testing.T) {
	mock := model.NewMockModel()
	mock.EnqueueToolUse("todo_add", map[string]any{"task": "research the topic"})
	mock.EnqueueToolUse("task", map[string]any{"description": "summarize the findings"})
	// Script for the spawned subagent, which shares the model.
	mock.EnqueueFinal("summary ready")
	mock.EnqueueToolUse("todo_update", map[string]any{"index": 0, "status": "done"})
	mock.EnqueueFinal("all work complete")

	o := New(mock)
	out, err := o.Run(context.Background(), "research and summarize")
	require.NoError(t, err)
	assert.Equal(t, "all work complete", out)

	assert.Equal(t, "Todos: 1/1 | Subagents: 1 (0 running)", o.Status())
	assert.Equal(t, "0. [x] research the topic", o.Todos())

	subs := o.Subagents()
	require.Len(t, subs, 1)
	assert.Equal(t, subagent.StatusDone, subs[0].Status)
	assert.Equal(t, "summarize the findings", subs[0].Description)
}

func TestRunSurfacesSubagentReport(t *testing.T) {
	mock := model.NewMockModel()
	mock.EnqueueToolUse("task", map[string]any{"description": "isolated job"})
	mock.EnqueueFinal("isolated job report")
	mock.EnqueueFinal("integrated")

	o := New(mock)
	_, err := o.Run(context.Background(), "delegate this")
	require.NoError(t, err)

	// The primary saw the subagent's report as its tool result.
	requests := mock.Requests()
	last := requests[len(requests)-1]
	results := last.Messages[len(last.Messages)-1].ToolResults()
	require.Len(t, results, 1)
	assert.Equal(t, "isolated job report", results[0].Content)
	assert.False(t, results[0].IsError)
}

func TestRunPrimaryTurnCeiling(t *testing.T) {
	mock := model.NewMockModel()
	for i := 0; i < 4; i++ {
		mock.EnqueueToolUse("todo_list", map[string]any{})
	}

	o := New(mock, func(opts *Options) {
		opts.MaxTurns = 2
	})
	_, err := o.Run(context.Background(), "loop")
	require.NoError(t, err)
	assert.Len(t, mock.Requests(), 2)
}
