package task

import "github.com/google/uuid"

// Task is the domain model for a single to-do entry.
// Kept minimal on purpose; everything durable lives here.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// New returns a pending task with a fresh opaque ID. The ID is the
// sole lookup key for the task's whole life; positions shift, IDs don't.
func New(title string) Task {
	return Task{ID: uuid.NewString(), Title: title}
}
