package task

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Status is the lifecycle state of a task record.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// ValidStatus reports whether s is one of the three lifecycle states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// marker returns the fixed per-status rendering used by List.
func (s Status) marker() string {
	switch s {
	case StatusInProgress:
		return "[~]"
	case StatusDone:
		return "[x]"
	default:
		return "[ ]"
	}
}

// Record is a single tracked task.
type Record struct {
	Description string `json:"description"`
	Status      Status `json:"status"`
}

// ErrOutOfRange marks an update addressed to a position that does not exist.
var ErrOutOfRange = errors.New("index out of range")

// EmptyListNotice is what List returns when no tasks have been added, so
// the reasoning service sees an explicit sentinel rather than a blank line.
const EmptyListNotice = "No tasks yet."

// Tracker owns the ordered task list. All mutation goes through Add and
// Update; no caller may reach into a record directly. The mutex guards the
// registry against a future parallel-subagent extension; operations are
// cheap so contention is a non-issue.
type Tracker struct {
	mu      sync.Mutex
	records []Record
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Add appends a new pending record and returns its stable position.
func (t *Tracker) Add(description string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records = append(t.records, Record{Description: description, Status: StatusPending})
	return len(t.records) - 1
}

// Update overwrites the status of the record at index. It fails with
// ErrOutOfRange when index is not a currently valid position; the error
// text names the valid range.
func (t *Tracker) Update(index int, status Status) error {
	if !ValidStatus(status) {
		return fmt.Errorf("invalid status %q: must be one of pending, in_progress, done", status)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if index < 0 || index >= len(t.records) {
		return fmt.Errorf("%w: %d (valid range: 0-%d)", ErrOutOfRange, index, len(t.records)-1)
	}
	t.records[index].Status = status
	return nil
}

// Records returns a copy of the current records in position order.
func (t *Tracker) Records() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Len returns the number of tracked records.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}

// DoneCount returns how many records have reached done.
func (t *Tracker) DoneCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, r := range t.records {
		if r.Status == StatusDone {
			n++
		}
	}
	return n
}

// List renders every record as "<index>. <marker> <description>", one per
// line, or the EmptyListNotice sentinel when nothing has been added.
func (t *Tracker) List() string {
	records := t.Records()
	if len(records) == 0 {
		return EmptyListNotice
	}
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = fmt.Sprintf("%d. %s %s", i, r.Status.marker(), r.Description)
	}
	return strings.Join(lines, "\n")
}
