package tab

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-settingstab/pkg/hooks"
	"github.com/goliatone/go-settingstab/pkg/host"
	"github.com/goliatone/go-settingstab/pkg/model"
	"github.com/goliatone/go-settingstab/pkg/runtime"
)

// ErrNoRenderer and ErrNoSaver are returned by the render and save callbacks
// when the tab has no collaborator to delegate to.
var (
	ErrNoRenderer = errors.New("tab: no field renderer configured")
	ErrNoSaver    = errors.New("tab: no option saver configured")
)

// Dispatcher is the part of a hook registry the tab registers with.
// *hooks.Registry satisfies it.
type Dispatcher interface {
	AddFilter(name string, priority int, fn hooks.FilterFunc) error
	AddAction(name string, priority int, fn hooks.ActionFunc) error
}

// Kind tells filters from actions.
type Kind string

const (
	KindFilter Kind = "filter"
	KindAction Kind = "action"
)

// Callback is a named binding an external dispatcher can register.
type Callback struct {
	Kind     Kind
	Name     string
	Priority int
	Filter   hooks.FilterFunc
	Action   hooks.ActionFunc
}

// Callbacks returns the tab registry filter followed by the render, save and
// enqueue actions.
func (t *Tab) Callbacks() []Callback {
	return []Callback{
		{Kind: KindFilter, Name: host.FilterSettingsTabs, Priority: t.priority, Filter: t.tabsFilter},
		{Kind: KindAction, Name: host.SettingsAction(t.slug), Priority: DefaultActionPriority, Action: t.RenderSettings},
		{Kind: KindAction, Name: host.UpdateOptionsAction(t.slug), Priority: DefaultActionPriority, Action: t.SaveSettings},
		{Kind: KindAction, Name: host.ActionAdminEnqueueScripts, Priority: DefaultActionPriority, Action: t.EnqueueAssets},
	}
}

// Register adds every callback to dispatcher.
func (t *Tab) Register(dispatcher Dispatcher) error {
	if dispatcher == nil {
		return errors.New("tab: dispatcher is required")
	}
	for _, cb := range t.Callbacks() {
		var err error
		switch cb.Kind {
		case KindFilter:
			err = dispatcher.AddFilter(cb.Name, cb.Priority, cb.Filter)
		case KindAction:
			err = dispatcher.AddAction(cb.Name, cb.Priority, cb.Action)
		}
		if err != nil {
			return fmt.Errorf("tab: register %s %q: %w", cb.Kind, cb.Name, err)
		}
	}
	return nil
}

// AddTab contributes this tab to the tab registry.
func (t *Tab) AddTab(tabs host.Tabs) host.Tabs {
	return tabs.Set(t.slug, t.name)
}

func (t *Tab) tabsFilter(_ context.Context, value any) (any, error) {
	switch tabs := value.(type) {
	case nil:
		return t.AddTab(nil), nil
	case host.Tabs:
		return t.AddTab(tabs), nil
	case []host.Tab:
		return t.AddTab(host.Tabs(tabs)), nil
	default:
		return value, fmt.Errorf("tab: expected host.Tabs, got %T", value)
	}
}

// RenderSettings hands the prepared fields to the host field renderer.
func (t *Tab) RenderSettings(ctx context.Context) error {
	if t.renderer == nil {
		return ErrNoRenderer
	}
	if err := t.renderer.RenderFields(ctx, t.Fields()); err != nil {
		return fmt.Errorf("tab: render %q: %w", t.slug, err)
	}
	return nil
}

// SaveSettings hands the prepared fields to the host option saver.
func (t *Tab) SaveSettings(ctx context.Context) error {
	if t.saver == nil {
		return ErrNoSaver
	}
	if err := t.saver.SaveFields(ctx, t.Fields()); err != nil {
		return fmt.Errorf("tab: save %q: %w", t.slug, err)
	}
	return nil
}

// EnqueueAssets queues the picker script and style when a field uses the
// picker and the current request is this tab's screen. Otherwise it does
// nothing.
func (t *Tab) EnqueueAssets(ctx context.Context) error {
	if reason := t.skipAssets(); reason != "" {
		t.logger.LogEvent(model.Event{Name: model.EventAssetsSkipped, Slug: t.slug, Message: reason})
		return nil
	}

	version := runtime.Version()
	style := host.Style{
		Handle:  runtime.StyleHandle,
		Src:     runtime.URL(t.assetBaseURL, runtime.StyleName),
		Version: version,
	}
	if err := t.assets.EnqueueStyle(ctx, style); err != nil {
		return fmt.Errorf("tab: enqueue style: %w", err)
	}
	script := host.Script{
		Handle:   runtime.ScriptHandle,
		Src:      runtime.URL(t.assetBaseURL, runtime.ScriptName),
		Deps:     append([]string(nil), runtime.ScriptDeps...),
		Version:  version,
		InFooter: true,
	}
	if err := t.assets.EnqueueScript(ctx, script); err != nil {
		return fmt.Errorf("tab: enqueue script: %w", err)
	}
	t.logger.LogEvent(model.Event{Name: model.EventAssetsEnqueued, Slug: t.slug, Count: 2})
	return nil
}

func (t *Tab) skipAssets() string {
	if !t.picker {
		return "no picker fields"
	}
	if t.assets == nil {
		return "no asset enqueuer"
	}
	if t.request == nil {
		return "no request"
	}
	if page, _ := t.request.Query("page"); page != t.page {
		return "page mismatch"
	}
	if current, _ := t.request.Query("tab"); current != t.slug {
		return "tab mismatch"
	}
	return ""
}
