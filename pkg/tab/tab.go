// Package tab builds a settings tab from a field descriptor list. A Tab owns
// the prepared field list and the cached option values, and exposes the
// callbacks the host settings screen invokes.
package tab

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/goliatone/go-settingstab/pkg/host"
	"github.com/goliatone/go-settingstab/pkg/model"
)

// Tab is a settings tab instance. It is built once per admin request and
// holds no locks.
type Tab struct {
	name   string
	slug   string
	page   string
	fields []model.Field
	picker bool
	cache  map[string]any

	store     host.OptionStore
	hooks     Dispatcher
	request   host.Request
	assets    host.AssetEnqueuer
	renderer  host.FieldRenderer
	saver     host.OptionSaver
	sanitizer host.Sanitizer
	labeler   model.Labeler
	keygen    func() string
	logger    model.Logger

	assetBaseURL string
	priority     int
}

// New normalises fields, reads their current values from the store and,
// when a dispatcher was supplied, registers the tab callbacks.
func New(ctx context.Context, name, slug string, fields []model.Descriptor, opts ...Option) (*Tab, error) {
	if err := model.ValidateSlug(slug); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("tab: tab name is required")
	}

	t := &Tab{
		name:     strings.TrimSpace(name),
		slug:     slug,
		page:     host.SettingsPage,
		logger:   model.NopLogger(),
		priority: DefaultTabPriority,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}

	normalizer := model.NewNormalizer(
		model.WithSanitizer(t.sanitizer),
		model.WithLabeler(t.labeler),
		model.WithKeyGenerator(t.keygen),
		model.WithLogger(t.logger),
	)
	result, err := normalizer.Normalize(slug, fields)
	if err != nil {
		return nil, err
	}
	t.fields = result.Fields
	t.picker = result.Picker

	if err := t.loadCache(ctx); err != nil {
		return nil, err
	}

	if t.hooks != nil {
		if err := t.Register(t.hooks); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Tab) loadCache(ctx context.Context) error {
	t.cache = make(map[string]any, len(t.fields))
	for _, field := range t.fields {
		vf, ok := field.(model.ValueField)
		if !ok {
			continue
		}
		id := model.Unprefix(t.slug, vf.FieldID())
		value := vf.DefaultValue()
		if t.store != nil {
			stored, found, err := t.store.Get(ctx, vf.FieldID())
			if err != nil {
				return fmt.Errorf("tab: load option %q: %w", vf.FieldID(), err)
			}
			if found {
				value = stored
			}
		}
		t.cache[id] = coerce(vf, value)
	}
	return nil
}

func coerce(field model.ValueField, value any) any {
	if field.FieldType() == model.TypeMultiSelect {
		return model.StringSlice(value)
	}
	return model.StringValue(value)
}

// Name returns the tab display name.
func (t *Tab) Name() string { return t.name }

// Slug returns the tab slug.
func (t *Tab) Slug() string { return t.slug }

// Page returns the admin page the tab is registered on.
func (t *Tab) Page() string { return t.page }

// PickerEnabled reports whether any field asked for the enhanced picker.
func (t *Tab) PickerEnabled() bool { return t.picker }

// Fields returns a copy of the prepared field list.
func (t *Tab) Fields() []model.Field {
	return append([]model.Field(nil), t.fields...)
}

// Field returns the prepared field with the unprefixed id.
func (t *Tab) Field(id string) (model.Field, bool) {
	prefixed := model.Prefix(t.slug) + id
	for _, field := range t.fields {
		if field.FieldID() == prefixed {
			return field, true
		}
	}
	return nil, false
}

// Settings returns a copy of the cached values keyed by unprefixed id.
func (t *Tab) Settings() map[string]any {
	out := make(map[string]any, len(t.cache))
	for id, value := range t.cache {
		out[id] = cloneValue(value)
	}
	return out
}

// Get returns the cached value for an unprefixed field id.
func (t *Tab) Get(id string) (any, error) {
	value, ok := t.cache[id]
	if !ok {
		if suggestion := t.suggest(id); suggestion != "" {
			return nil, fmt.Errorf("%w: %q (did you mean %q?)", model.ErrFieldNotFound, id, suggestion)
		}
		return nil, fmt.Errorf("%w: %q", model.ErrFieldNotFound, id)
	}
	return cloneValue(value), nil
}

// GetString returns the value of id as a string. Multiselect values are
// joined with commas.
func (t *Tab) GetString(id string) (string, error) {
	value, err := t.Get(id)
	if err != nil {
		return "", err
	}
	if list, ok := value.([]string); ok {
		return strings.Join(list, ","), nil
	}
	return model.StringValue(value), nil
}

// GetStrings returns the value of id as a slice.
func (t *Tab) GetStrings(id string) ([]string, error) {
	value, err := t.Get(id)
	if err != nil {
		return nil, err
	}
	return model.StringSlice(value), nil
}

// Enabled reports whether a checkbox field is checked.
func (t *Tab) Enabled(id string) (bool, error) {
	value, err := t.GetString(id)
	if err != nil {
		return false, err
	}
	return value == "yes", nil
}

func (t *Tab) suggest(id string) string {
	ids := make([]string, 0, len(t.cache))
	for known := range t.cache {
		ids = append(ids, known)
	}
	sort.Strings(ids)

	best, bestDistance := "", -1
	for _, known := range ids {
		distance := levenshtein.ComputeDistance(id, known)
		if bestDistance == -1 || distance < bestDistance {
			best, bestDistance = known, distance
		}
	}
	limit := len(id) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDistance < 0 || bestDistance > limit {
		return ""
	}
	return best
}

func cloneValue(value any) any {
	if list, ok := value.([]string); ok {
		return append([]string{}, list...)
	}
	return value
}
