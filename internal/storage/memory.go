package storage

import (
	"errors"
	"sync"
)

// Memory is an in-process KV. FailReads and FailWrites simulate an
// unavailable backend.
type Memory struct {
	mu         sync.Mutex
	values     map[string][]byte
	writes     int
	FailReads  bool
	FailWrites bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads {
		return nil, false, unavailable("read", errors.New("simulated read failure"))
	}
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return unavailable("write", errors.New("simulated write failure"))
	}
	m.values[key] = append([]byte(nil), value...)
	m.writes++
	return nil
}

func (m *Memory) Close() error { return nil }

// Writes reports how many successful Set calls were made.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
