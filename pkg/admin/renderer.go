// Package admin is a reference host for settings tabs: it renders a prepared
// field list as a WooCommerce style settings table and saves posted values
// back to an option store.
package admin

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-settingstab/pkg/model"
	rendertemplate "github.com/goliatone/go-settingstab/pkg/render/template"
	"github.com/goliatone/go-settingstab/pkg/render/template/gotemplate"
	"github.com/goliatone/go-settingstab/pkg/widgets"
)

// PartialPrefix namespaces widget overrides in a theme's Partials map, e.g.
// "settings.checkbox".
const PartialPrefix = "settings."

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	widgets          *widgets.Registry
	theme            *theme.RendererConfig
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithWidgets replaces the widget registry.
func WithWidgets(reg *widgets.Registry) Option {
	return func(cfg *config) {
		if reg != nil {
			cfg.widgets = reg
		}
	}
}

// WithTheme applies a resolved go-theme configuration. CSS variables become
// an inline style on the wrapper and Partials entries prefixed with
// PartialPrefix replace widget templates.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// RenderOptions carries per-request values and errors, keyed by prefixed
// field id.
type RenderOptions struct {
	Values map[string]any
	Errors map[string]string
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
	widgets   *widgets.Registry
	theme     *theme.RendererConfig
}

// New constructs the admin renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.widgets == nil {
		cfg.widgets = widgets.NewRegistry()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("admin renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, widgets: cfg.widgets, theme: cfg.theme}, nil
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render draws fields for the tab slug. Fields without an entry in
// opts.Values show their resolved default.
func (r *Renderer) Render(ctx context.Context, slug string, fields []model.Field, opts RenderOptions) ([]byte, error) {
	if r == nil || r.templates == nil {
		return nil, errors.New("admin renderer: template renderer is nil")
	}

	rows := make([]string, 0, len(fields))
	for _, field := range fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		widget, ok := r.widgets.Resolve(field)
		if !ok {
			return nil, fmt.Errorf("admin renderer: no widget for field %q", field.FieldID())
		}
		value, hasValue := opts.Values[field.FieldID()]
		view := buildView(field, value, hasValue, opts.Errors[field.FieldID()])

		row, err := r.templates.RenderTemplate(r.partial(widget), map[string]any{"field": view})
		if err != nil {
			return nil, fmt.Errorf("admin renderer: render field %q: %w", field.FieldID(), err)
		}
		rows = append(rows, strings.TrimRight(row, "\n"))
	}

	data := map[string]any{
		"slug": slug,
		"rows": rows,
	}
	if r.theme != nil {
		data["style"] = styleAttr(r.theme.CSSVars)
		data["theme"] = r.theme.Theme
		data["variant"] = r.theme.Variant
	}
	result, err := r.templates.RenderTemplate("templates/tab.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("admin renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) partial(widget string) string {
	if r.theme != nil {
		if override := strings.TrimSpace(r.theme.Partials[PartialPrefix+widget]); override != "" {
			return override
		}
	}
	return "templates/widgets/" + widget + ".tmpl"
}
