// Package core defines the conversation primitives shared by the engine,
// the model adapters and the tool subsystem: role-tagged messages made of
// an ordered sequence of heterogeneous content parts (text, tool
// invocations, tool results), and the append-only Conversation each engine
// instance owns.
//
// The central invariant lives here: every tool-use part in an assistant
// message must be answered by exactly one tool-result part carrying the
// same correlation ID in the immediately following user message. Helpers
// such as ToolUses, ToolResults and CheckCorrelation make the invariant
// checkable without the caller walking parts by hand.
package core
