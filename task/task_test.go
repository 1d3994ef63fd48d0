package task

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/missioncontrol/tool"
)

func TestTrackerAddAssignsStablePositions(t *testing.T) {
	tracker := NewTracker()

	assert.Equal(t, 0, tracker.Add("first"))
	assert.Equal(t, 1, tracker.Add("second"))
	assert.Equal(t, 2, tracker.Add("third"))

	records := tracker.Records()
	require.Len(t, records, 3)
	assert.Equal(t, "first", records[0].Description)
	assert.Equal(t, StatusPending, records[0].Status)
}

func TestTrackerUpdate(t *testing.T) {
	tracker := NewTracker()
	tracker.Add("write report")

	require.NoError(t, tracker.Update(0, StatusInProgress))
	assert.Equal(t, StatusInProgress, tracker.Records()[0].Status)

	require.NoError(t, tracker.Update(0, StatusDone))
	assert.Equal(t, 1, tracker.DoneCount())
}

func TestTrackerUpdateOutOfRange(t *testing.T) {
	tracker := NewTracker()
	tracker.Add("only task")

	err := tracker.Update(5, StatusDone)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Contains(t, err.Error(), "0-0")

	err = tracker.Update(-1, StatusDone)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestTrackerUpdateInvalidStatus(t *testing.T) {
	tracker := NewTracker()
	tracker.Add("task")

	err := tracker.Update(0, Status("finished"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")
}

func TestTrackerListRendering(t *testing.T) {
	tracker := NewTracker()
	assert.Equal(t, "No tasks yet.", tracker.List())

	tracker.Add("gather requirements")
	tracker.Add("draft design")
	tracker.Add("review")
	require.NoError(t, tracker.Update(0, StatusDone))
	require.NoError(t, tracker.Update(1, StatusInProgress))

	lines := strings.Split(tracker.List(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "0. [x] gather requirements", lines[0])
	assert.Equal(t, "1. [~] draft design", lines[1])
	assert.Equal(t, "2. [ ] review", lines[2])
}

func TestTrackerRecordsReturnsCopy(t *testing.T) {
	tracker := NewTracker()
	tracker.Add("immutable")

	records := tracker.Records()
	records[0].Status = StatusDone

	assert.Equal(t, StatusPending, tracker.Records()[0].Status)
}

func TestAddTool(t *testing.T) {
	tracker := NewTracker()
	add := NewAddTool(tracker)

	out, err := add.Call(context.Background(), map[string]any{"task": "ship v1"})
	require.NoError(t, err)
	assert.Equal(t, "Added task 0: ship v1", out)

	out, err = add.Call(context.Background(), map[string]any{"task": "ship v2"})
	require.NoError(t, err)
	assert.Equal(t, "Added task 1: ship v2", out)
}

func TestUpdateTool(t *testing.T) {
	tracker := NewTracker()
	tracker.Add("ship v1")
	update := NewUpdateTool(tracker)

	out, err := update.Call(context.Background(), map[string]any{
		"index":  float64(0),
		"status": "in_progress",
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated task 0 to in_progress", out)
}

func TestUpdateToolOutOfRange(t *testing.T) {
	tracker := NewTracker()
	tracker.Add("ship v1")
	update := NewUpdateTool(tracker)

	_, err := update.Call(context.Background(), map[string]any{
		"index":  float64(5),
		"status": "done",
	})
	require.Error(t, err)

	var toolErr *tool.ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "VALIDATION_ERROR", toolErr.Code)
	assert.Contains(t, toolErr.Message, "Invalid index 5")
	assert.Contains(t, toolErr.Message, "Valid range: 0-0")
}

func TestListTool(t *testing.T) {
	tracker := NewTracker()
	list := NewListTool(tracker)

	out, err := list.Call(context.Background(), map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "No tasks yet.", out)

	tracker.Add("one")
	out, err = list.Call(context.Background(), map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "0. [ ] one", out)
}

func TestToolsOrder(t *testing.T) {
	tools := Tools(NewTracker())
	require.Len(t, tools, 3)
	assert.Equal(t, "todo_add", tools[0].Name())
	assert.Equal(t, "todo_update", tools[1].Name())
	assert.Equal(t, "todo_list", tools[2].Name())
}
