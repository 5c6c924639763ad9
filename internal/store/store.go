// Package store owns the ordered task collection and keeps it in sync
// with a persistent slot.
package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"taskpad/internal/storage"
	"taskpad/internal/task"
)

// Store is the single owner of task identity and order. Every
// effective mutation updates memory first, then writes the full
// snapshot through the slot. A failed write is returned to the caller
// but never rolls the mutation back; memory stays ahead of the slot
// until the next successful save.
//
// Mutations are invoked strictly sequentially by the surfaces; the
// RWMutex only lets renders read the collection safely in between.
type Store struct {
	slot storage.Slot

	mu    sync.RWMutex
	tasks []task.Task
}

func New(slot storage.Slot) *Store {
	return &Store{slot: slot, tasks: []task.Task{}}
}

// Load seeds the collection from the slot. An absent value is a
// normal first run and yields an empty collection. A value that fails
// to decode also yields an empty collection and returns an error
// wrapping ErrBadSnapshot; the caller decides how loudly to report it.
func (s *Store) Load(ctx context.Context) error {
	data, ok, err := s.slot.Read(ctx)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	loaded := []task.Task{}
	var decErr error
	if ok {
		if loaded, decErr = decode(data); decErr != nil {
			loaded = []task.Task{}
		}
	}
	s.mu.Lock()
	s.tasks = loaded
	s.mu.Unlock()
	return decErr
}

// Add appends a pending task with the trimmed title and a fresh ID.
// An empty or whitespace-only title is a no-op: nothing changes,
// nothing is saved, no error. This guard is the contract; surfaces
// may add messaging but never bypass it.
func (s *Store) Add(ctx context.Context, title string) (task.Task, bool, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return task.Task{}, false, nil
	}
	s.mu.Lock()
	t := task.New(title)
	for indexOf(s.tasks, t.ID) >= 0 {
		t = task.New(title)
	}
	s.tasks = append(s.tasks, t)
	s.mu.Unlock()
	return t, true, s.save(ctx)
}

// Remove deletes the task with the given ID, keeping the order of the
// rest. An unknown ID is a no-op, so stale references are harmless.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	i := indexOf(s.tasks, id)
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.mu.Unlock()
	return true, s.save(ctx)
}

// Toggle flips the completion flag in place; position and title stay.
func (s *Store) Toggle(ctx context.Context, id string) (task.Task, bool, error) {
	s.mu.Lock()
	i := indexOf(s.tasks, id)
	if i < 0 {
		s.mu.Unlock()
		return task.Task{}, false, nil
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	t := s.tasks[i]
	s.mu.Unlock()
	return t, true, s.save(ctx)
}

// Rename replaces the task's title with the trimmed new one; position
// and completion stay. An empty or whitespace-only title is a no-op
// and the existing title stands. An unknown ID is a no-op.
func (s *Store) Rename(ctx context.Context, id, title string) (task.Task, bool, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return task.Task{}, false, nil
	}
	s.mu.Lock()
	i := indexOf(s.tasks, id)
	if i < 0 {
		s.mu.Unlock()
		return task.Task{}, false, nil
	}
	s.tasks[i].Title = title
	t := s.tasks[i]
	s.mu.Unlock()
	return t, true, s.save(ctx)
}

// Tasks returns a copy of the collection in stored order.
func (s *Store) Tasks() []task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// Stats reports completed and pending counts for list headers.
func (s *Store) Stats() (done, pending int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func (s *Store) save(ctx context.Context) error {
	s.mu.RLock()
	data, err := encode(s.tasks)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.slot.Write(ctx, data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func indexOf(tasks []task.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
