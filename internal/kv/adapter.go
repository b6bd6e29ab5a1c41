// Package kv wraps a store.KVRepo with a JSON value codec that never fails
// to its callers: storage faults degrade to "absent" or "not saved" and are
// logged.
package kv

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/abhisek/secplus/internal/store"
)

// Adapter reads and writes JSON values through a KVRepo.
type Adapter struct {
	repo   store.KVRepo
	logger *zap.Logger
}

// New creates an Adapter. A nil logger discards diagnostics.
func New(repo store.KVRepo, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{repo: repo, logger: logger.Named("kv")}
}

// Get returns the raw JSON stored under key. The second result is false
// when the key is absent, the backend fails, or the stored text is not
// well-formed JSON.
func (a *Adapter) Get(ctx context.Context, key string) (json.RawMessage, bool) {
	if a.repo == nil {
		a.logger.Warn("storage unavailable", zap.String("key", key))
		return nil, false
	}

	text, err := a.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			a.logger.Error("read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	if text == "" {
		return nil, false
	}

	raw := json.RawMessage(text)
	if !json.Valid(raw) {
		a.logger.Error("stored value is not valid JSON", zap.String("key", key), zap.Int("bytes", len(text)))
		return nil, false
	}
	return raw, true
}

// Set JSON-encodes value and stores it under key. It reports whether the
// value was written.
func (a *Adapter) Set(ctx context.Context, key string, value any) bool {
	if a.repo == nil {
		a.logger.Warn("storage unavailable", zap.String("key", key))
		return false
	}

	b, err := json.Marshal(value)
	if err != nil {
		a.logger.Error("encode failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := a.repo.Put(ctx, key, string(b)); err != nil {
		a.logger.Error("write failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Remove deletes key. It reports whether the delete reached storage.
func (a *Adapter) Remove(ctx context.Context, key string) bool {
	if a.repo == nil {
		a.logger.Warn("storage unavailable", zap.String("key", key))
		return false
	}

	if err := a.repo.Delete(ctx, key); err != nil {
		a.logger.Error("remove failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}
