package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Store persists a single JSON collection in one flat file. Every read loads
// the whole file and every write rewrites it. The mutex serializes
// read-modify-write sequences within this process; the store is not safe for
// multiple processes sharing the same file.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a store bound to the given file path. The file does not
// need to exist yet; a missing file reads as an empty collection.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the whole collection into v, which must be a pointer to a slice.
// A missing or empty file leaves v untouched.
func (s *Store) Load(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(v)
}

// Save rewrites the whole collection from v.
func (s *Store) Save(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(v)
}

// Update runs one read-modify-write cycle under the lock: the collection is
// loaded into v, fn mutates it through the pointer, and the file is rewritten.
// If fn returns an error the file is left untouched and the error propagates.
func (s *Store) Update(v any, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(v); err != nil {
		return err
	}
	if err := fn(); err != nil {
		return err
	}
	return s.save(v)
}

func (s *Store) load(v any) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) save(v any) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
