// Package storage is the key-value persistence layer of the tracker.
// Values are opaque bytes, the repo layer decides their encoding.
package storage

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is returned by Get for absent keys.
	ErrKeyNotFound = errors.New("key not found")
	// ErrStorage wraps every backend failure.
	ErrStorage = errors.New("storage error")
)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// List returns the keys starting with prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
	// Clear removes every key owned by the store.
	Clear(ctx context.Context) error
}

// OpError describes a failed backend operation.
type OpError struct {
	Op  string
	Key string
	Err error
}

func (e *OpError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("storage %s: %s", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s [%s]: %s", e.Op, e.Key, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func (e *OpError) Is(target error) bool {
	return target == ErrStorage
}

// IsNotFound reports whether err means the key is absent.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}

func opErr(op, key string, err error) error {
	return &OpError{Op: op, Key: key, Err: err}
}
