package core

import "strings"

// Role identifies the author of a message. The reasoning service only ever
// sees the two conversational roles; system instructions travel out of band.
type Role string

const (
	// RoleUser marks messages authored by the caller, including the user
	// messages that carry tool results back to the service.
	RoleUser Role = "user"
	// RoleAssistant marks messages authored by the reasoning service.
	RoleAssistant Role = "assistant"
)

// Message is one turn's contribution to a conversation: a role plus an
// ordered sequence of content parts.
type Message struct {
	Role  Role   `json:"role"`
	Parts []Part `json:"parts"`
}

// NewUserMessage builds a user message with a single text part.
func NewUserMessage(text string) Message {
	return Message{Role: RoleUser, Parts: []Part{TextPart{Text: text}}}
}

// NewToolResultsMessage builds the user message answering one assistant
// turn's tool invocations. Results keep the order they were produced in.
func NewToolResultsMessage(results []ToolResult) Message {
	parts := make([]Part, len(results))
	for i, r := range results {
		parts[i] = ToolResultPart{ToolResult: r}
	}
	return Message{Role: RoleUser, Parts: parts}
}

// Text concatenates all text parts of the message in order.
func (m Message) Text() string {
	var sb strings.Builder
	for _, p := range m.Parts {
		if tp, ok := p.(TextPart); ok {
			sb.WriteString(tp.Text)
		}
	}
	return sb.String()
}

// ToolUses returns the tool invocations in the message, in emission order.
func (m Message) ToolUses() []ToolUse {
	var uses []ToolUse
	for _, p := range m.Parts {
		if tu, ok := p.(ToolUsePart); ok {
			uses = append(uses, tu.ToolUse)
		}
	}
	return uses
}

// ToolResults returns the tool results in the message, in order.
func (m Message) ToolResults() []ToolResult {
	var results []ToolResult
	for _, p := range m.Parts {
		if tr, ok := p.(ToolResultPart); ok {
			results = append(results, tr.ToolResult)
		}
	}
	return results
}

// Conversation is an ordered, append-only message history owned by exactly
// one engine instance. Subagents never receive the parent's conversation;
// they are seeded with a fresh one.
type Conversation struct {
	messages []Message
}

// NewConversation creates an empty conversation.
func NewConversation() *Conversation {
	return &Conversation{}
}

// Append adds a message to the end of the history.
func (c *Conversation) Append(m Message) {
	c.messages = append(c.messages, m)
}

// Messages returns a copy of the history so callers cannot mutate it.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of messages in the history.
func (c *Conversation) Len() int { return len(c.messages) }

// Last returns the most recent message, or false when the history is empty.
func (c *Conversation) Last() (Message, bool) {
	if len(c.messages) == 0 {
		return Message{}, false
	}
	return c.messages[len(c.messages)-1], true
}

// CheckCorrelation verifies the tool-use/tool-result invariant between an
// assistant message and the user message that follows it: every invocation
// ID is answered exactly once, and no result answers an unknown ID. Result
// order is free; set membership must match exactly.
func CheckCorrelation(assistant, results Message) bool {
	uses := assistant.ToolUses()
	answered := make(map[string]int, len(uses))
	for _, u := range uses {
		answered[u.ID]++
	}
	for _, u := range uses {
		if answered[u.ID] != 1 {
			return false
		}
	}
	seen := make(map[string]bool, len(uses))
	for _, r := range results.ToolResults() {
		if _, ok := answered[r.ToolUseID]; !ok {
			return false
		}
		if seen[r.ToolUseID] {
			return false
		}
		seen[r.ToolUseID] = true
	}
	return len(seen) == len(uses)
}
