package kv

import (
	"context"
	"sort"
	"sync"

	"github.com/abhisek/secplus/internal/store"
)

// Memory is an in-memory store.KVRepo. Setting one of the Err fields makes
// the matching operation fail, which lets callers exercise fault paths.
type Memory struct {
	mu   sync.Mutex
	data map[string]string

	GetErr    error
	PutErr    error
	DeleteErr error
}

var _ store.KVRepo = (*Memory)(nil)

// NewMemory creates an empty Memory repo.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return "", m.GetErr
	}
	v, ok := m.data[key]
	if !ok {
		return "", store.ErrNotFound
	}
	return v, nil
}

func (m *Memory) Put(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PutErr != nil {
		return m.PutErr
	}
	m.data[key] = value
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.data, key)
	return nil
}

func (m *Memory) Keys(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Raw returns the stored text for key without going through the codec.
func (m *Memory) Raw(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

// SetRaw stores text verbatim, e.g. to plant corrupt values.
func (m *Memory) SetRaw(key, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = text
}
