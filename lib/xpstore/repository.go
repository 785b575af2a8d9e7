package xpstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Repository is the storage boundary of the pipeline. The pipeline
// core only ever sees this interface, file paths live in the cmd
// layer and tests use the in-memory implementation.
type Repository[T any] interface {
	// Load returns the stored value, or the fresh default when
	// nothing usable is stored. It never fails: unreadable or corrupt
	// state is logged and treated as absent.
	Load() T
	Save(value T) error
	Exists() bool
}

type FileRepository[T any] struct {
	path  string
	fresh func() T
}

func NewFileRepository[T any](path string, fresh func() T) FileRepository[T] {
	return FileRepository[T]{path: path, fresh: fresh}
}

func (r FileRepository[T]) Load() T {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("failed to read state file, starting fresh", "path", r.path, "err", err)
		}
		return r.fresh()
	}

	out := r.fresh()
	err = json.Unmarshal(raw, &out)
	if err != nil {
		slog.Warn("failed to parse state file, starting fresh", "path", r.path, "err", err)
		return r.fresh()
	}
	return out
}

// Save pretty-prints the value and replaces the file atomically, a
// crash mid-write must never leave a truncated state file behind.
func (r FileRepository[T]) Save(value T) error {
	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	err = os.MkdirAll(dir, 0o755)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*")
	if err != nil {
		return err
	}
	_, err = tmp.Write(raw)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	return os.Rename(tmp.Name(), r.path)
}

func (r FileRepository[T]) Exists() bool {
	_, err := os.Stat(r.path)
	return err == nil
}

// MemoryRepository backs tests and is otherwise identical in behavior
// to FileRepository.
type MemoryRepository[T any] struct {
	value  T
	stored bool
	fresh  func() T

	// SaveErr, when set, makes every Save fail with it.
	SaveErr error
}

func NewMemoryRepository[T any](fresh func() T) *MemoryRepository[T] {
	return &MemoryRepository[T]{fresh: fresh}
}

func (r *MemoryRepository[T]) Load() T {
	if !r.stored {
		return r.fresh()
	}
	return r.value
}

func (r *MemoryRepository[T]) Save(value T) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.value = value
	r.stored = true
	return nil
}

func (r *MemoryRepository[T]) Exists() bool {
	return r.stored
}
