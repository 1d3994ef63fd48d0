// Package missioncontrol provides a high-level façade over the conversation
// engine, tool registry, task tracker and subagent supervisor. Most
// applications interact with this package by:
//  1. Creating an Orchestrator via New() with a model (Anthropic, OpenAI or
//     a scripted mock)
//  2. Calling Run() with a task description and letting the loop delegate,
//     track todos and touch the filesystem as it sees fit
//  3. Inspecting Status(), Todos() and Subagents() afterwards
//
// The façade wires the fixed tool scopes: the primary engine sees every
// tool, spawned subagents only the file and command tools. Defaults are safe
// for local use; supply a structured logger and working directory for
// anything beyond that.
package missioncontrol

import (
	"context"

	"github.com/MikeSquared-Agency/missioncontrol/engine"
	"github.com/MikeSquared-Agency/missioncontrol/logging"
	"github.com/MikeSquared-Agency/missioncontrol/model"
	"github.com/MikeSquared-Agency/missioncontrol/status"
	"github.com/MikeSquared-Agency/missioncontrol/subagent"
	"github.com/MikeSquared-Agency/missioncontrol/task"
	"github.com/MikeSquared-Agency/missioncontrol/tool"
)

// PrimarySystem instructs the top-level engine. Adapted wording stays close
// to the tool names so the service reliably picks them.
const PrimarySystem = `You are a helpful coding assistant that can delegate tasks to subagents.

IMPORTANT WORKFLOW:
1. For complex tasks, break them down using todo_add
2. For isolated subtasks, spawn a subagent using the 'task' tool
3. Subagents have their own context - give them clear, complete instructions
4. Review subagent results and integrate their work

When to use subagents:
- Tasks that can be done independently
- When you want isolated context (won't pollute your main conversation)
- Parallel-style work (research, then implement)

Tools:
- bash: Run shell commands
- read: Read file contents
- write: Create/overwrite files
- edit: Find and replace in files
- todo_add/todo_update/todo_list: Track your tasks
- task: Spawn a subagent for isolated work

Be strategic about delegation. You're the orchestrator.`

// Options configures the Orchestrator.
type Options struct {
	// System overrides the primary system instruction.
	System string
	// MaxTurns caps the primary loop. Zero means unlimited; subagents always
	// run under their own ceiling regardless.
	MaxTurns int
	// SubagentMaxTurns caps each delegated run. Defaults to
	// subagent.DefaultMaxTurns.
	SubagentMaxTurns int
	// WorkDir anchors relative paths for the file and command tools.
	// Defaults to the process working directory.
	WorkDir string
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Orchestrator aggregates the engine, registry, tracker and supervisor
// behind a synchronous Run call.
type Orchestrator struct {
	opts       Options
	model      model.Model
	registry   *tool.Registry
	tracker    *task.Tracker
	supervisor *subagent.Supervisor
}

// New creates an Orchestrator driving the given model. The registry is
// populated with the full tool set: file and command tools for both scopes,
// tracker and delegation tools for the primary scope only.
func New(m model.Model, optFns ...func(o *Options)) *Orchestrator {
	opts := Options{
		System:           PrimarySystem,
		SubagentMaxTurns: subagent.DefaultMaxTurns,
		Logger:           logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	registry := tool.NewRegistry()

	fileOpts := func(o *tool.FileOptions) { o.WorkDir = opts.WorkDir }
	bashOpts := func(o *tool.BashOptions) { o.WorkDir = opts.WorkDir }
	registry.Register(tool.NewBashTool(bashOpts), tool.RolePrimary, tool.RoleDelegated)
	registry.Register(tool.NewReadTool(fileOpts), tool.RolePrimary, tool.RoleDelegated)
	registry.Register(tool.NewWriteTool(fileOpts), tool.RolePrimary, tool.RoleDelegated)
	registry.Register(tool.NewEditTool(fileOpts), tool.RolePrimary, tool.RoleDelegated)

	tracker := task.NewTracker()
	for _, t := range task.Tools(tracker) {
		registry.Register(t, tool.RolePrimary)
	}

	supervisor := subagent.NewSupervisor(m, registry, func(o *subagent.Options) {
		o.MaxTurns = opts.SubagentMaxTurns
		o.Logger = opts.Logger
	})
	registry.Register(subagent.NewTaskTool(supervisor), tool.RolePrimary)

	return &Orchestrator{
		opts:       opts,
		model:      m,
		registry:   registry,
		tracker:    tracker,
		supervisor: supervisor,
	}
}

// Run executes one task to completion and returns the final answer. Each
// call gets a fresh primary engine and conversation; the tracker and
// supervisor accumulate across calls so Status reflects the whole session.
func (o *Orchestrator) Run(ctx context.Context, taskDescription string) (string, error) {
	eng := engine.New(o.model, o.registry, tool.RolePrimary, func(eo *engine.Options) {
		eo.System = o.opts.System
		eo.MaxTurns = o.opts.MaxTurns
		eo.Logger = o.opts.Logger
	})
	result, err := eng.Run(ctx, taskDescription)
	if err != nil {
		return "", err
	}
	return result.Text, nil
}

// Status returns the one-line progress summary, or "" when there is nothing
// to report.
func (o *Orchestrator) Status() string {
	return status.Summarize(o.tracker, o.supervisor)
}

// Todos returns the rendered task list.
func (o *Orchestrator) Todos() string { return o.tracker.List() }

// Subagents returns a snapshot of every delegated run so far.
func (o *Orchestrator) Subagents() []subagent.Record {
	return o.supervisor.Records()
}

// Registry exposes the shared tool registry, letting callers add custom
// tools before Run.
func (o *Orchestrator) Registry() *tool.Registry { return o.registry }
