package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// JSON-backed storage. One flat object per file, human-readable, portable.
// Every call reads the file fresh so the CLI and a running TUI see each
// other's writes; the mutex only covers goroutines of one process.

// DefaultFileName is the file created inside the data directory.
const DefaultFileName = "benchkit.json"

// Store persists keys to a single JSON file.
type Store struct {
	mu   sync.Mutex
	path string
}

// New returns a Store writing to dir/DefaultFileName. The directory is
// created on first write.
func New(dir string) *Store {
	return &Store{path: filepath.Join(dir, DefaultFileName)}
}

// Path is the backing file.
func (s *Store) Path() string { return s.path }

func (s *Store) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kv, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := kv[key]
	return v, ok, nil
}

func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kv, err := s.load()
	if err != nil {
		return err
	}
	kv[key] = value
	return s.save(kv)
}

func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kv, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := kv[key]; !ok {
		return nil
	}
	delete(kv, key)
	return s.save(kv)
}

func (s *Store) load() (map[string]string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	kv := map[string]string{}
	if len(b) == 0 {
		return kv, nil
	}
	if err := json.Unmarshal(b, &kv); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return kv, nil
}

func (s *Store) save(kv map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := json.MarshalIndent(kv, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
