package model

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/missioncontrol/core"
)

// ToolDefinition declaratively exposes a callable tool to the reasoning
// service. Parameters is a JSON Schema object (minimal subset expected).
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// Request captures the normalized input for one completion turn.
type Request struct {
	System   string           `json:"system"`   // Role-specific system instruction
	Tools    []ToolDefinition `json:"tools"`    // Tool definitions offered this turn
	Messages []core.Message   `json:"messages"` // Full conversation so far
}

// StopReason signals why the reasoning service stopped producing content.
type StopReason string

const (
	// StopToolUse means the response requests one or more tool invocations
	// and the loop must execute them and report back.
	StopToolUse StopReason = "tool_use"
	// StopEnd means the response is final; its text is the answer.
	StopEnd StopReason = "end_turn"
)

// Response is the reasoning service's answer for one turn: a stop reason
// plus the ordered content parts (text and tool invocations).
type Response struct {
	StopReason StopReason  `json:"stop_reason"`
	Content    []core.Part `json:"content"`
}

// Text concatenates the response's text parts in order.
func (r *Response) Text() string {
	msg := core.Message{Role: core.RoleAssistant, Parts: r.Content}
	return msg.Text()
}

// ToolUses returns the tool invocations requested by the response, in the
// order the service emitted them.
func (r *Response) ToolUses() []core.ToolUse {
	msg := core.Message{Role: core.RoleAssistant, Parts: r.Content}
	return msg.ToolUses()
}

// Info contains metadata about a model implementation.
type Info struct {
	Name          string `json:"name"`
	Provider      string `json:"provider"` // "anthropic", "openai", "mock", ...
	SupportsTools bool   `json:"supports_tools"`
}

// Model is the minimal interface the engine requires to drive one turn.
type Model interface {
	// Complete sends the conversation plus tool definitions and blocks
	// until the service answers.
	Complete(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a scripted in-memory Model for tests and examples. Each call
// to Complete pops the next scripted response; when the script is exhausted
// it returns a plain final answer.
type MockModel struct {
	mu        sync.Mutex
	script    []Response
	requests  []Request
	exhausted string
}

// NewMockModel constructs an empty MockModel. Queue responses with
// EnqueueToolUse and EnqueueFinal.
func NewMockModel() *MockModel {
	return &MockModel{exhausted: "done"}
}

// EnqueueFinal scripts a final text-only response.
func (m *MockModel) EnqueueFinal(text string) *MockModel {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, Response{
		StopReason: StopEnd,
		Content:    []core.Part{core.TextPart{Text: text}},
	})
	return m
}

// EnqueueToolUse scripts a response requesting a single tool invocation
// with generated correlation id. The id of the queued invocation is returned
// so tests can assert correlation.
func (m *MockModel) EnqueueToolUse(name string, input map[string]any) string {
	raw, _ := json.Marshal(input)
	id := "toolu_" + uuid.NewString()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, Response{
		StopReason: StopToolUse,
		Content: []core.Part{
			core.ToolUsePart{ToolUse: core.ToolUse{ID: id, Name: name, Input: raw}},
		},
	})
	return id
}

// EnqueueResponse scripts an arbitrary response (for multi-invocation turns).
func (m *MockModel) EnqueueResponse(resp Response) *MockModel {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, resp)
	return m
}

// Requests returns a copy of every request Complete has received,
// letting tests inspect what the engine sent each turn.
func (m *MockModel) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// Complete implements Model by replaying the script.
func (m *MockModel) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("no messages provided")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if len(m.script) == 0 {
		return &Response{
			StopReason: StopEnd,
			Content:    []core.Part{core.TextPart{Text: m.exhausted}},
		}, nil
	}
	next := m.script[0]
	m.script = m.script[1:]
	return &next, nil
}

// Info implements Model.
func (m *MockModel) Info() Info {
	return Info{Name: "mock", Provider: "mock", SupportsTools: true}
}
