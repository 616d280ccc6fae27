// Package localstore is the durable device storage the cart persists to:
// a tiny key-value store with whole-value reads and writes.
package localstore

import "sync"

type Store interface {
	// Get returns the stored payload, or ok=false when the key is absent
	// or its content cannot be read back intact.
	Get(key string) (payload []byte, ok bool, err error)
	Set(key string, payload []byte) error
	Delete(key string) error
}

// Mem is an in-process store for tests and ephemeral runs.
type Mem struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMem() *Mem {
	return &Mem{data: make(map[string][]byte)}
}

func (m *Mem) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *Mem) Set(key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(payload))
	copy(v, payload)
	m.data[key] = v
	return nil
}

func (m *Mem) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
