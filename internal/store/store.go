// Package store defines the string key-value storage that theme and
// checklist state persist to, plus an in-memory implementation.
package store

import "sync"

// Store is a flat string key-value store. Get reports ok=false for a
// missing key; Remove of a missing key is not an error.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// Memory is a map-backed Store. The zero value is ready to use.
type Memory struct {
	mu sync.Mutex
	m  map[string]string
}

// NewMemory returns a Memory seeded with a copy of kv.
func NewMemory(kv map[string]string) *Memory {
	m := &Memory{m: make(map[string]string, len(kv))}
	for k, v := range kv {
		m.m[k] = v
	}
	return m
}

func (s *Memory) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *Memory) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.m == nil {
		s.m = map[string]string{}
	}
	s.m[key] = value
	return nil
}

func (s *Memory) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

// Snapshot copies the current contents.
func (s *Memory) Snapshot() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.m))
	for k, v := range s.m {
		out[k] = v
	}
	return out
}
