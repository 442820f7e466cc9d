// Package hooks is a small filter/action dispatcher modelled on the host's
// extension points. Callbacks are registered under an event name and run in
// ascending priority; ties run in registration order.
package hooks

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// DefaultPriority is used by callers that have no ordering preference.
const DefaultPriority = 10

// FilterFunc receives a value and returns the (possibly replaced) value.
type FilterFunc func(ctx context.Context, value any) (any, error)

// ActionFunc runs a side effect.
type ActionFunc func(ctx context.Context) error

type entry struct {
	priority int
	order    int
	filter   FilterFunc
	action   ActionFunc
}

// Registry stores filters and actions by name.
type Registry struct {
	mu      sync.RWMutex
	entries map[string][]entry
	seq     int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string][]entry)}
}

// AddFilter registers fn under name.
func (r *Registry) AddFilter(name string, priority int, fn FilterFunc) error {
	if fn == nil {
		return fmt.Errorf("hooks: filter %q: callback is required", name)
	}
	return r.add(name, entry{priority: priority, filter: fn})
}

// AddAction registers fn under name.
func (r *Registry) AddAction(name string, priority int, fn ActionFunc) error {
	if fn == nil {
		return fmt.Errorf("hooks: action %q: callback is required", name)
	}
	return r.add(name, entry{priority: priority, action: fn})
}

func (r *Registry) add(name string, e entry) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.New("hooks: name is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = make(map[string][]entry)
	}
	e.order = r.seq
	r.seq++
	r.entries[trimmed] = append(r.entries[trimmed], e)
	return nil
}

func (r *Registry) sorted(name string) []entry {
	r.mu.RLock()
	list := append([]entry(nil), r.entries[name]...)
	r.mu.RUnlock()
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].priority == list[j].priority {
			return list[i].order < list[j].order
		}
		return list[i].priority < list[j].priority
	})
	return list
}

// ApplyFilters threads value through every filter registered under name.
// The first failing filter stops the chain.
func (r *Registry) ApplyFilters(ctx context.Context, name string, value any) (any, error) {
	for _, e := range r.sorted(name) {
		if e.filter == nil {
			continue
		}
		next, err := e.filter(ctx, value)
		if err != nil {
			return value, fmt.Errorf("hooks: filter %q: %w", name, err)
		}
		value = next
	}
	return value, nil
}

// DoAction runs every action registered under name. All actions run; their
// errors are joined.
func (r *Registry) DoAction(ctx context.Context, name string) error {
	var errs []error
	for _, e := range r.sorted(name) {
		if e.action == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := e.action(ctx); err != nil {
			errs = append(errs, fmt.Errorf("hooks: action %q: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Has reports whether anything is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries[name]) > 0
}

// Names returns the registered event names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
