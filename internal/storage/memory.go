package storage

import (
	"context"
	"sync"
)

// Memory is an in-process BlobStore for tests and dry runs.
// It is safe for concurrent use.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemory creates an empty in-memory blob store.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

// Get returns a copy of the blob stored under key, or (nil, nil) when absent.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	blob, ok := m.blobs[key]
	if !ok {
		return nil, nil
	}
	cpy := make([]byte, len(blob))
	copy(cpy, blob)
	return cpy, nil
}

// Set stores a copy of the blob under key.
func (m *Memory) Set(_ context.Context, key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cpy := make([]byte, len(blob))
	copy(cpy, blob)
	m.blobs[key] = cpy
	return nil
}
