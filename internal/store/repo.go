package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a key has no stored value.
	ErrNotFound = errors.New("key not found")

	// ErrQuotaExceeded is returned when a value is larger than the store quota.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// KVRepo persists opaque text values under string keys.
// Values are whole blobs: a Put replaces the previous value entirely.
type KVRepo interface {
	// Get returns the stored text for key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists all stored keys in lexical order.
	Keys(ctx context.Context) ([]string, error)
}
