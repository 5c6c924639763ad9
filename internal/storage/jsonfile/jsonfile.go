// Package jsonfile stores the snapshot as a single JSON file.
// Human-readable, portable, and the default backend.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// The slot key maps to one file in the data directory. A sibling
// .lock file guards cross-process access; the data file itself is
// replaced by rename, so a lock on it would follow the dead inode.
const (
	dataFileName = "tasks.json"
	lockRetry    = 25 * time.Millisecond
)

type Slot struct {
	path string
	lock *flock.Flock
}

// Open prepares the data directory and returns the file-backed slot.
// The file itself is created lazily on the first Write.
func Open(dir string) (*Slot, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	p := filepath.Join(dir, dataFileName)
	return &Slot{
		path: p,
		lock: flock.New(p + ".lock"),
	}, nil
}

// Path reports where the snapshot lives, for messages and debugging.
func (s *Slot) Path() string { return s.path }

func (s *Slot) Read(ctx context.Context) ([]byte, bool, error) {
	locked, err := s.lock.TryRLockContext(ctx, lockRetry)
	if err != nil {
		return nil, false, fmt.Errorf("lock %s: %w", s.path, err)
	}
	if !locked {
		return nil, false, fmt.Errorf("lock %s: not acquired", s.path)
	}
	defer func() { _ = s.lock.Unlock() }()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read file: %w", err)
	}
	return b, true, nil
}

// Write replaces the whole file through a temp file + rename, so a
// reader sees either the old snapshot or the new one, never a prefix.
func (s *Slot) Write(ctx context.Context, data []byte) error {
	locked, err := s.lock.TryLockContext(ctx, lockRetry)
	if err != nil {
		return fmt.Errorf("lock %s: %w", s.path, err)
	}
	if !locked {
		return fmt.Errorf("lock %s: not acquired", s.path)
	}
	defer func() { _ = s.lock.Unlock() }()

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func (s *Slot) Close() error { return nil }
