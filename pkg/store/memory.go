package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MemoryStore keeps option values in a map. Values are copied on the way in
// and out so callers cannot mutate stored slices.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]any{}}
}

// NewMemoryStoreWith seeds the store with values. It panics on unsupported
// value types and is meant for tests and examples.
func NewMemoryStoreWith(values map[string]any) *MemoryStore {
	s := NewMemoryStore()
	for key, value := range values {
		if err := s.Set(context.Background(), key, value); err != nil {
			panic(err)
		}
	}
	return s
}

// Get implements host.OptionStore.
func (s *MemoryStore) Get(_ context.Context, key string) (any, bool, error) {
	s.mu.RLock()
	value, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	return clone(value), true, nil
}

// Set implements host.OptionStore.
func (s *MemoryStore) Set(_ context.Context, key string, value any) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("store: key is required")
	}
	normalized, err := Normalize(value)
	if err != nil {
		return fmt.Errorf("store: set %q: %w", key, err)
	}
	s.mu.Lock()
	if s.values == nil {
		s.values = map[string]any{}
	}
	s.values[key] = normalized
	s.mu.Unlock()
	return nil
}

// Delete removes key.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
	return nil
}

// Keys returns the stored keys, sorted.
func (s *MemoryStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
