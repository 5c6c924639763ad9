package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"taskpad/internal/task"
)

// ErrBadSnapshot marks a stored value that failed to decode or that
// breaks the collection's shape (missing/duplicate ids, blank titles).
// Callers use errors.Is to tell "corrupt store, starting empty" apart
// from infrastructure failures.
var ErrBadSnapshot = errors.New("malformed task snapshot")

// encode renders the whole collection as indented JSON so the stored
// snapshot stays pleasant to read and diff.
func encode(tasks []task.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []task.Task{}
	}
	b, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// decode parses and validates a snapshot. Unknown fields are dropped
// (old snapshots may carry transient UI flags); anything violating the
// id/title invariants rejects the snapshot as a whole.
func decode(data []byte) ([]task.Task, error) {
	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: json unmarshal: %v", ErrBadSnapshot, err)
	}
	seen := make(map[string]struct{}, len(tasks))
	for i, t := range tasks {
		if strings.TrimSpace(t.ID) == "" {
			return nil, fmt.Errorf("%w: task %d: missing id", ErrBadSnapshot, i)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrBadSnapshot, t.ID)
		}
		seen[t.ID] = struct{}{}
		if strings.TrimSpace(t.Title) == "" {
			return nil, fmt.Errorf("%w: task %q: empty title", ErrBadSnapshot, t.ID)
		}
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	return tasks, nil
}
