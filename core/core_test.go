package core

import "testing"

func TestMessage_TextConcatenatesInOrder(t *testing.T) {
	m := Message{Role: RoleAssistant, Parts: []Part{
		TextPart{Text: "first "},
		ToolUsePart{ToolUse: ToolUse{ID: "tu_1", Name: "read"}},
		TextPart{Text: "second"},
	}}
	if got := m.Text(); got != "first second" {
		t.Fatalf("Text() = %q", got)
	}
	if uses := m.ToolUses(); len(uses) != 1 || uses[0].ID != "tu_1" {
		t.Fatalf("ToolUses() = %+v", uses)
	}
}

func TestConversation_AppendOnlyAndCopied(t *testing.T) {
	c := NewConversation()
	c.Append(NewUserMessage("hi"))
	c.Append(Message{Role: RoleAssistant, Parts: []Part{TextPart{Text: "hello"}}})

	if c.Len() != 2 {
		t.Fatalf("expected 2 messages, got %d", c.Len())
	}

	msgs := c.Messages()
	msgs[0].Role = RoleAssistant
	if c.Messages()[0].Role != RoleUser {
		t.Error("Messages() should return a copy")
	}

	last, ok := c.Last()
	if !ok || last.Role != RoleAssistant {
		t.Fatalf("Last() = %+v, %v", last, ok)
	}
}

func TestCheckCorrelation(t *testing.T) {
	assistant := Message{Role: RoleAssistant, Parts: []Part{
		TextPart{Text: "running tools"},
		ToolUsePart{ToolUse: ToolUse{ID: "a", Name: "read"}},
		ToolUsePart{ToolUse: ToolUse{ID: "b", Name: "bash"}},
	}}

	ok := NewToolResultsMessage([]ToolResult{
		{ToolUseID: "b", Content: "out"},
		{ToolUseID: "a", Content: "content"},
	})
	if !CheckCorrelation(assistant, ok) {
		t.Error("out-of-order results with matching id set should correlate")
	}

	missing := NewToolResultsMessage([]ToolResult{{ToolUseID: "a", Content: "content"}})
	if CheckCorrelation(assistant, missing) {
		t.Error("missing result should fail correlation")
	}

	duplicate := NewToolResultsMessage([]ToolResult{
		{ToolUseID: "a", Content: "x"},
		{ToolUseID: "a", Content: "y"},
		{ToolUseID: "b", Content: "z"},
	})
	if CheckCorrelation(assistant, duplicate) {
		t.Error("duplicate result id should fail correlation")
	}

	stray := NewToolResultsMessage([]ToolResult{
		{ToolUseID: "a", Content: "x"},
		{ToolUseID: "c", Content: "stray"},
	})
	if CheckCorrelation(assistant, stray) {
		t.Error("result for unknown id should fail correlation")
	}
}
