package subagent

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/missioncontrol/engine"
	"github.com/MikeSquared-Agency/missioncontrol/logging"
	"github.com/MikeSquared-Agency/missioncontrol/model"
	"github.com/MikeSquared-Agency/missioncontrol/tool"
)

// DefaultMaxTurns is the per-subagent turn ceiling. Delegated runs always
// carry a ceiling; only the primary engine may run unbounded.
const DefaultMaxTurns = 20

// DefaultSystem instructs a delegated engine. It never mentions delegation
// because the delegated scope has no delegation tool to offer.
const DefaultSystem = `You are a focused coding assistant working on a specific task.
You have access to bash, read, write, and edit tools.
Complete your assigned task efficiently and report back.
Do not ask questions - make reasonable decisions and proceed.`

// Status describes how a spawned run stands.
type Status string

const (
	StatusRunning Status = "running"
	StatusDone    Status = "done"
	// StatusTimeout marks a run cut off by the turn ceiling.
	StatusTimeout Status = "timeout"
)

// Record tracks one spawned subagent.
type Record struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	TurnsUsed   int    `json:"turns_used"`
}

// Options configures a Supervisor.
type Options struct {
	// MaxTurns caps each spawned run. Defaults to DefaultMaxTurns.
	MaxTurns int
	// System overrides the delegated system instruction.
	System string
	// Logger receives supervisor telemetry. Defaults to a no-op logger.
	Logger logging.Logger
}

// Supervisor spawns delegated engines and keeps a record per spawn. Spawn
// is synchronous; the mutex only protects the record list so Records and
// Running stay safe to call from other goroutines.
type Supervisor struct {
	model    model.Model
	registry *tool.Registry
	maxTurns int
	system   string
	logger   logging.Logger

	mu      sync.Mutex
	records []*Record
}

// NewSupervisor creates a Supervisor spawning engines against the given
// model and registry.
func NewSupervisor(m model.Model, registry *tool.Registry, optFns ...func(o *Options)) *Supervisor {
	opts := Options{
		MaxTurns: DefaultMaxTurns,
		System:   DefaultSystem,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.MaxTurns <= 0 {
		opts.MaxTurns = DefaultMaxTurns
	}
	return &Supervisor{
		model:    m,
		registry: registry,
		maxTurns: opts.MaxTurns,
		system:   opts.System,
		logger:   logging.OrNoOp(opts.Logger),
	}
}

// Spawn runs a delegated engine to completion on the given task description
// and returns its report. A ceiling-cut run still returns normally with a
// fixed notice; the record is marked timeout and keeps the turns used, so
// partial work on disk remains discoverable.
func (s *Supervisor) Spawn(ctx context.Context, description string) (string, error) {
	rec := &Record{
		ID:          uuid.NewString(),
		Description: description,
		Status:      StatusRunning,
	}
	s.mu.Lock()
	s.records = append(s.records, rec)
	s.mu.Unlock()

	s.logger.Info("subagent starting", "subagent_id", rec.ID, "task", description)

	eng := engine.New(s.model, s.registry, tool.RoleDelegated, func(o *engine.Options) {
		o.System = s.system
		o.MaxTurns = s.maxTurns
		o.Logger = s.logger
		o.OnTurn = func(turn int, resp *model.Response) {
			s.mu.Lock()
			rec.TurnsUsed = turn
			s.mu.Unlock()
		}
	})

	result, err := eng.Run(ctx, description)
	if err != nil {
		s.mu.Lock()
		rec.Status = StatusDone
		s.mu.Unlock()
		return "", fmt.Errorf("subagent %s failed: %w", rec.ID, err)
	}

	s.mu.Lock()
	if result.LimitReached {
		rec.Status = StatusTimeout
	} else {
		rec.Status = StatusDone
	}
	rec.TurnsUsed = result.Turns
	s.mu.Unlock()

	if result.LimitReached {
		s.logger.Warn("subagent hit turn ceiling", "subagent_id", rec.ID, "turns", result.Turns)
		return fmt.Sprintf("Subagent reached max turns (%d). Partial work may be completed.", s.maxTurns), nil
	}

	s.logger.Info("subagent done", "subagent_id", rec.ID, "turns", result.Turns)
	return result.Text, nil
}

// Records returns a snapshot of every spawn in start order.
func (s *Supervisor) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	for i, r := range s.records {
		out[i] = *r
	}
	return out
}

// Count returns the number of spawns so far.
func (s *Supervisor) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Running returns how many spawned runs are still in flight.
func (s *Supervisor) Running() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.records {
		if r.Status == StatusRunning {
			n++
		}
	}
	return n
}
