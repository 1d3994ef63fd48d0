package subagent

import (
	"context"

	"github.com/MikeSquared-Agency/missioncontrol/tool"
)

type taskArgs struct {
	Description string `json:"description" description:"Clear, complete description of what the subagent should do"`
}

// NewTaskTool returns the delegation tool bound to the supervisor. Register
// it for the primary role only; offering it to delegated engines would allow
// unbounded recursion.
func NewTaskTool(supervisor *Supervisor) *tool.FunctionTool {
	return tool.NewFunctionToolFromStruct(
		"task",
		"Spawn a subagent to handle an isolated task. The subagent has its own context and tools (bash, read, write, edit). Use for independent subtasks.",
		taskArgs{},
		func(ctx context.Context, args map[string]any) (string, error) {
			description, _ := tool.StringArg(args, "description")
			return supervisor.Spawn(ctx, description)
		},
	)
}
