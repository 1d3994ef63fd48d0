// Package status renders a one-line progress summary from the task tracker
// and the subagent supervisor.
package status

import (
	"fmt"
	"strings"

	"github.com/MikeSquared-Agency/missioncontrol/subagent"
	"github.com/MikeSquared-Agency/missioncontrol/task"
)

// Summarize renders the current progress line, e.g.
// "Todos: 2/5 | Subagents: 1 (0 running)". Sections with nothing to report
// are omitted; with no tasks and no subagents the result is empty.
func Summarize(tracker *task.Tracker, supervisor *subagent.Supervisor) string {
	var parts []string
	if tracker != nil && tracker.Len() > 0 {
		parts = append(parts, fmt.Sprintf("Todos: %d/%d", tracker.DoneCount(), tracker.Len()))
	}
	if supervisor != nil && supervisor.Count() > 0 {
		parts = append(parts, fmt.Sprintf("Subagents: %d (%d running)", supervisor.Count(), supervisor.Running()))
	}
	return strings.Join(parts, " | ")
}
