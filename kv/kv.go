// Package kv provides the key/value persistence collaborator for the
// ledger: a byte-oriented store with last-write-wins semantics and no
// transactional guarantees, the local-storage analogue of the system.
package kv

import "sync"

// Store is a synchronous byte-oriented key/value store. Put replaces the
// value wholesale; Get reports presence with the second return value.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
}

// Memory is an in-memory Store, used by tests and throwaway sessions.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *Memory) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), value...)
	return nil
}

var _ Store = (*Memory)(nil)
