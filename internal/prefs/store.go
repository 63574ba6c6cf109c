// Package prefs persists small user preferences as string key/value pairs.
//
// Callers depend on the Store interface and receive a concrete store by
// injection: FileStore for the CLI, MemoryStore for tests and ephemeral runs.
// Typed helpers (GetBool, SetNumber, GetObject, ...) encode values as strings
// on top of any Store.
package prefs

import (
	"context"
	"errors"
)

// Store is a string key/value preference store.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}

// ErrStoreCorrupted indicates the preference file exists but contains invalid data.
var ErrStoreCorrupted = errors.New("preference file corrupted")

// ErrEmptyKey is returned when an operation is given an empty key.
var ErrEmptyKey = errors.New("preference key cannot be empty")
