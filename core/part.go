package core

import "encoding/json"

// Part represents a polymorphic segment of role-based content. Concrete part
// types implement the unexported isPart marker enabling a closed set.
type Part interface{ isPart() }

// TextPart is a plain text content segment.
type TextPart struct {
	Text string // Plain UTF-8 text
}

// isPart implements the Part interface for TextPart.
func (TextPart) isPart() {}

// ToolUse describes a tool invocation requested by the reasoning service.
type ToolUse struct {
	ID    string          `json:"id"`    // Correlation id supplied by the service
	Name  string          `json:"name"`  // Tool identifier
	Input json.RawMessage `json:"input"` // Named inputs as a JSON object
}

// ToolUsePart wraps a ToolUse as a content part.
type ToolUsePart struct {
	ToolUse ToolUse
}

// isPart implements the Part interface for ToolUsePart.
func (ToolUsePart) isPart() {}

// ToolResult carries the textual outcome of a tool invocation back to the
// reasoning service. Content is always text: handler failures are converted
// to descriptive strings before a ToolResult is built, never raised.
type ToolResult struct {
	ToolUseID string `json:"tool_use_id"` // Matches the originating ToolUse ID
	Content   string `json:"content"`
	IsError   bool   `json:"is_error,omitempty"`
}

// ToolResultPart wraps a ToolResult as a content part.
type ToolResultPart struct {
	ToolResult ToolResult
}

// isPart implements the Part interface for ToolResultPart.
func (ToolResultPart) isPart() {}
