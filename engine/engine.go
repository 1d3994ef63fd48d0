package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/missioncontrol/core"
	"github.com/MikeSquared-Agency/missioncontrol/logging"
	"github.com/MikeSquared-Agency/missioncontrol/model"
	"github.com/MikeSquared-Agency/missioncontrol/tool"
)

// logEchoLimit caps how much of a tool result is echoed to the logger.
// The full result always enters the conversation.
const logEchoLimit = 500

// Result summarizes a finished run.
type Result struct {
	// Text is the final answer, or the partial text of the last response
	// when the turn ceiling cut the run short.
	Text string
	// Turns counts completed request/response cycles.
	Turns int
	// LimitReached is true when the run ended because of the turn ceiling
	// rather than a final answer.
	LimitReached bool
}

// TurnFunc observes the loop after each completed turn.
type TurnFunc func(turn int, resp *model.Response)

// Options configures an Engine.
type Options struct {
	// System is the system instruction sent on every request.
	System string
	// MaxTurns caps request/response cycles. Zero means unlimited.
	MaxTurns int
	// Logger receives loop telemetry. Defaults to a no-op logger.
	Logger logging.Logger
	// OnTurn, if set, is called after every completed turn.
	OnTurn TurnFunc
}

// Engine drives one conversation against one reasoning service under one
// role scope. It is not safe for concurrent use; each run of work gets its
// own Engine with a fresh Conversation.
type Engine struct {
	id           string
	model        model.Model
	registry     *tool.Registry
	role         tool.Role
	system       string
	maxTurns     int
	logger       logging.Logger
	onTurn       TurnFunc
	conversation *core.Conversation
}

// New creates an Engine bound to a model and a role scope over the registry.
func New(m model.Model, registry *tool.Registry, role tool.Role, optFns ...func(o *Options)) *Engine {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Engine{
		id:           uuid.NewString(),
		model:        m,
		registry:     registry,
		role:         role,
		system:       opts.System,
		maxTurns:     opts.MaxTurns,
		logger:       logging.OrNoOp(opts.Logger),
		onTurn:       opts.OnTurn,
		conversation: core.NewConversation(),
	}
}

// ID returns the engine's unique invocation identifier.
func (e *Engine) ID() string { return e.id }

// Conversation exposes the engine's history for inspection.
func (e *Engine) Conversation() *core.Conversation { return e.conversation }

// Run seeds the conversation with the given user text and loops until the
// service produces a final answer, the turn ceiling is hit, or the context
// is cancelled. Transport failures from the model are the only error path;
// tool failures are folded into the conversation as result text.
func (e *Engine) Run(ctx context.Context, seed string) (*Result, error) {
	e.conversation.Append(core.NewUserMessage(seed))
	return e.loop(ctx)
}

// Resume continues the loop on the existing history without seeding a new
// user message. The last message must be from the user.
func (e *Engine) Resume(ctx context.Context) (*Result, error) {
	last, ok := e.conversation.Last()
	if !ok || last.Role != core.RoleUser {
		return nil, errors.New("resume requires a pending user message")
	}
	return e.loop(ctx)
}

func (e *Engine) loop(ctx context.Context) (*Result, error) {
	defs := e.registry.Definitions(e.role)
	e.logger.Debug("engine run starting",
		"engine_id", e.id,
		"role", string(e.role),
		"tools", len(defs),
	)

	turns := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := e.model.Complete(ctx, model.Request{
			System:   e.system,
			Tools:    defs,
			Messages: e.conversation.Messages(),
		})
		if err != nil {
			return nil, fmt.Errorf("completion failed on turn %d: %w", turns+1, err)
		}
		turns++

		if e.onTurn != nil {
			e.onTurn(turns, resp)
		}

		if resp.StopReason != model.StopToolUse {
			e.logger.Info("engine run complete", "engine_id", e.id, "turns", turns)
			return &Result{Text: resp.Text(), Turns: turns}, nil
		}

		assistant := core.Message{Role: core.RoleAssistant, Parts: resp.Content}
		e.conversation.Append(assistant)
		e.conversation.Append(e.executeToolUses(ctx, resp.ToolUses()))

		if e.maxTurns > 0 && turns >= e.maxTurns {
			e.logger.Warn("engine hit turn ceiling", "engine_id", e.id, "max_turns", e.maxTurns)
			return &Result{Text: resp.Text(), Turns: turns, LimitReached: true}, nil
		}
	}
}

// executeToolUses runs every requested invocation in emission order and
// builds the single user message answering all of them.
func (e *Engine) executeToolUses(ctx context.Context, uses []core.ToolUse) core.Message {
	results := make([]core.ToolResult, 0, len(uses))
	for _, use := range uses {
		content, isError := e.executeOne(ctx, use)
		e.logger.Debug("tool result",
			"engine_id", e.id,
			"tool", use.Name,
			"tool_use_id", use.ID,
			"is_error", isError,
			"result", truncateForLog(content),
		)
		results = append(results, core.ToolResult{
			ToolUseID: use.ID,
			Content:   content,
			IsError:   isError,
		})
	}
	return core.NewToolResultsMessage(results)
}

// executeOne resolves and calls a single tool, converting every failure
// mode into descriptive result text. A handler panic is contained the same
// way so one misbehaving tool cannot take the loop down.
func (e *Engine) executeOne(ctx context.Context, use core.ToolUse) (content string, isError bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("tool panicked", "engine_id", e.id, "tool", use.Name, "panic", fmt.Sprintf("%v", r))
			content = fmt.Sprintf("Error: tool %s panicked: %v", use.Name, r)
			isError = true
		}
	}()

	handler, err := e.registry.Resolve(e.role, use.Name)
	if err != nil {
		return fmt.Sprintf("Unknown tool: %s", use.Name), true
	}

	args := map[string]any{}
	if len(use.Input) > 0 {
		if err := json.Unmarshal(use.Input, &args); err != nil {
			return fmt.Sprintf("Error: invalid arguments for %s: %v", use.Name, err), true
		}
	}

	out, err := handler.Call(ctx, args)
	if err != nil {
		var toolErr *tool.ToolError
		if errors.As(err, &toolErr) {
			return fmt.Sprintf("Error: %s", toolErr.Message), true
		}
		return fmt.Sprintf("Error: %v", err), true
	}
	return out, false
}

func truncateForLog(s string) string {
	if len(s) <= logEchoLimit {
		return s
	}
	cut := logEchoLimit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return strings.TrimSpace(s[:cut]) + "..."
}
