// Package storage defines the persistent slot the task snapshot lives in.
package storage

import "context"

// Key is the fixed name of the single slot every backend exposes.
// The whole on-disk contract is: this key maps to one JSON snapshot.
const Key = "@tasks"

// Slot is one persistent cell holding one value.
//
// Read reports ok=false when nothing has ever been written, which a
// caller must treat as a normal first run, not an error. Write
// replaces the entire value in one atomic step so a concurrent reader
// never observes a torn snapshot.
type Slot interface {
	Read(ctx context.Context) (data []byte, ok bool, err error)
	Write(ctx context.Context, data []byte) error
	Close() error
}
