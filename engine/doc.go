// Package engine implements the conversation loop that drives a reasoning
// service through repeated tool-calling turns.
//
// One Engine owns one Conversation. Each turn it sends the full history plus
// the tool definitions visible to its role, then inspects the stop reason:
// a final answer ends the run, a tool-use response is executed invocation by
// invocation and answered with a single user message carrying every result.
// Tool failures never abort the loop; they become descriptive result text so
// the service can read the error and adjust.
//
// Tool results enter the history untruncated. Only the engine's log echo of
// a result is shortened.
package engine
