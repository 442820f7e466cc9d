// Package settingstab builds settings tabs for a WooCommerce style admin
// screen. The root package is a thin facade over pkg/tab, pkg/loader and
// pkg/admin for callers that only need the common entry points.
package settingstab

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-settingstab/pkg/admin"
	"github.com/goliatone/go-settingstab/pkg/loader"
	"github.com/goliatone/go-settingstab/pkg/model"
	"github.com/goliatone/go-settingstab/pkg/tab"
)

// Tab aliases tab.Tab.
type Tab = tab.Tab

// Option aliases tab.Option.
type Option = tab.Option

// Descriptor aliases model.Descriptor so field lists can be declared without
// importing pkg/model.
type Descriptor = model.Descriptor

// New exposes the tab constructor from the top-level module.
func New(ctx context.Context, name, slug string, fields []Descriptor, options ...Option) (*Tab, error) {
	return tab.New(ctx, name, slug, fields, options...)
}

// AddSettingsTab builds the tab, registering it when a dispatcher is given,
// and returns its settings keyed by unprefixed field id.
func AddSettingsTab(ctx context.Context, name, slug string, fields []Descriptor, options ...Option) (map[string]any, error) {
	t, err := tab.New(ctx, name, slug, fields, options...)
	if err != nil {
		return nil, err
	}
	return t.Settings(), nil
}

// LoadTab reads a YAML or JSON tab definition and builds it. A page set in
// the document applies unless options override it.
func LoadTab(ctx context.Context, path string, options ...Option) (*Tab, error) {
	doc, err := loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	opts := make([]Option, 0, len(options)+1)
	opts = append(opts, tab.WithPage(doc.Page))
	opts = append(opts, options...)
	return tab.New(ctx, doc.Name, doc.Slug, doc.Fields, opts...)
}

// EmbeddedTemplates exposes the built-in admin templates so callers can reuse
// or extend them without importing the admin package directly.
func EmbeddedTemplates() fs.FS {
	return admin.TemplatesFS()
}
