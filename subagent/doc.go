// Package subagent spawns and supervises delegated engines.
//
// A delegated engine gets a fresh conversation seeded only with its task
// description, sees the delegated tool scope (file and command tools, never
// delegation itself), and runs under a fixed turn ceiling. The Supervisor
// keeps a record per spawn so callers can report how much delegation is in
// flight and how each run ended.
package subagent
