package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikeSquared-Agency/missioncontrol/tool"
)

type addArgs struct {
	Task string `json:"task" description:"Description of the task to add"`
}

type updateArgs struct {
	Index  int    `json:"index" description:"Zero-based index of the task to update"`
	Status string `json:"status" description:"New status for the task" enum:"pending,in_progress,done"`
}

type listArgs struct{}

// NewAddTool returns the todo_add tool bound to tracker.
func NewAddTool(tracker *Tracker) *tool.FunctionTool {
	return tool.NewFunctionToolFromStruct(
		"todo_add",
		"Add a new task to the todo list",
		addArgs{},
		func(ctx context.Context, args map[string]any) (string, error) {
			desc, _ := tool.StringArg(args, "task")
			index := tracker.Add(desc)
			return fmt.Sprintf("Added task %d: %s", index, desc), nil
		},
	)
}

// NewUpdateTool returns the todo_update tool bound to tracker. Out of range
// indices surface as a VALIDATION_ERROR naming the valid range.
func NewUpdateTool(tracker *Tracker) *tool.FunctionTool {
	return tool.NewFunctionToolFromStruct(
		"todo_update",
		"Update the status of a task by its index",
		updateArgs{},
		func(ctx context.Context, args map[string]any) (string, error) {
			index, _ := tool.IntArg(args, "index")
			status, _ := tool.StringArg(args, "status")
			if err := tracker.Update(index, Status(status)); err != nil {
				if errors.Is(err, ErrOutOfRange) {
					return "", &tool.ToolError{
						Tool:    "todo_update",
						Message: fmt.Sprintf("Invalid index %d. Valid range: 0-%d", index, tracker.Len()-1),
						Code:    "VALIDATION_ERROR",
					}
				}
				return "", err
			}
			return fmt.Sprintf("Updated task %d to %s", index, status), nil
		},
	)
}

// NewListTool returns the todo_list tool bound to tracker.
func NewListTool(tracker *Tracker) *tool.FunctionTool {
	return tool.NewFunctionToolFromStruct(
		"todo_list",
		"List all tasks with their current status",
		listArgs{},
		func(ctx context.Context, args map[string]any) (string, error) {
			return tracker.List(), nil
		},
	)
}

// Tools returns the three tracker tools in registration order.
func Tools(tracker *Tracker) []tool.Tool {
	return []tool.Tool{
		NewAddTool(tracker),
		NewUpdateTool(tracker),
		NewListTool(tracker),
	}
}
