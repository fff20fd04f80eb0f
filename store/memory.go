package store

import "sync"

// Memory keeps values in a map. Nothing survives the process.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory { return &Memory{values: make(map[string]string)} }

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Close() error { return nil }
