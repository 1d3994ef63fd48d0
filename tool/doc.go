// Package tool implements the tool-calling subsystem: the Tool interface,
// a generic FunctionTool adapter with schema-validated arguments, the
// role-scoped Registry, and the builtin file/command handlers (bash, read,
// write, edit).
//
// Role scoping is the structural safety property of the orchestrator: the
// delegated role is never offered the delegation or task tools, so a
// delegated engine cannot spawn further subagents no matter what the
// reasoning service requests.
//
// Handlers never let an underlying failure escape uncaught. Every failure
// is returned as an error value that the engine converts to descriptive
// result text; nothing in this package panics across its boundary.
package tool
