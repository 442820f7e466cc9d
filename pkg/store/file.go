package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// FileStore persists options as a flat TOML table. The file is read once on
// open and rewritten on every Set.
type FileStore struct {
	mu     sync.RWMutex
	path   string
	values map[string]any
}

// OpenFile loads path, creating an empty store when the file does not exist
// yet.
func OpenFile(path string) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("store: file path is required")
	}
	s := &FileStore{path: path, values: map[string]any{}}

	raw := map[string]any{}
	_, err := toml.DecodeFile(path, &raw)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}
	for key, value := range raw {
		normalized, err := Normalize(value)
		if err != nil {
			return nil, fmt.Errorf("store: read %s: key %q: %w", path, key, err)
		}
		s.values[key] = normalized
	}
	return s, nil
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Get implements host.OptionStore.
func (s *FileStore) Get(_ context.Context, key string) (any, bool, error) {
	s.mu.RLock()
	value, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	return clone(value), true, nil
}

// Set implements host.OptionStore. The previous value is restored when the
// file cannot be written.
func (s *FileStore) Set(ctx context.Context, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("store: key is required")
	}
	normalized, err := Normalize(value)
	if err != nil {
		return fmt.Errorf("store: set %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	previous, existed := s.values[key]
	s.values[key] = normalized
	if err := s.flush(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

// Keys returns the stored keys, sorted.
func (s *FileStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (s *FileStore) flush() error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s.values); err != nil {
		return fmt.Errorf("store: encode %s: %w", s.path, err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: write %s: %w", s.path, err)
	}
	tmp, err := os.CreateTemp(dir, ".settingstab-*.toml")
	if err != nil {
		return fmt.Errorf("store: write %s: %w", s.path, err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("store: write %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store: write %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store: write %s: %w", s.path, err)
	}
	return nil
}
