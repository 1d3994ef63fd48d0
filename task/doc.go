// Package task implements the tracker behind the todo tools: an ordered,
// in-memory list of task records with a three-state lifecycle
// (pending, in_progress, done), addressed by stable zero-based positions.
// Positions are assigned at creation and never reused or reordered; there
// is no deletion operation. The tracker is pure state with no I/O; the
// FunctionTools in this package are the only mutation path the engine sees.
package task
