package tab

import (
	"strings"

	"github.com/goliatone/go-settingstab/pkg/host"
	"github.com/goliatone/go-settingstab/pkg/model"
)

const (
	// DefaultTabPriority is the priority used for the tab registry filter.
	DefaultTabPriority = 50
	// DefaultActionPriority is used for the render, save and enqueue actions.
	DefaultActionPriority = 10
)

// Option customises a Tab.
type Option func(*Tab)

// WithStore supplies the option store read during construction.
func WithStore(store host.OptionStore) Option {
	return func(t *Tab) {
		t.store = store
	}
}

// WithHooks registers the tab callbacks with dispatcher during New.
func WithHooks(dispatcher Dispatcher) Option {
	return func(t *Tab) {
		t.hooks = dispatcher
	}
}

// WithRequest supplies the current admin request used for asset matching.
func WithRequest(req host.Request) Option {
	return func(t *Tab) {
		t.request = req
	}
}

// WithAssets supplies the asset enqueuer used by EnqueueAssets.
func WithAssets(assets host.AssetEnqueuer) Option {
	return func(t *Tab) {
		t.assets = assets
	}
}

// WithFieldRenderer supplies the host field renderer.
func WithFieldRenderer(renderer host.FieldRenderer) Option {
	return func(t *Tab) {
		t.renderer = renderer
	}
}

// WithOptionSaver supplies the host option saver.
func WithOptionSaver(saver host.OptionSaver) Option {
	return func(t *Tab) {
		t.saver = saver
	}
}

// WithSanitizer overrides the title-to-id sanitizer.
func WithSanitizer(sanitizer host.Sanitizer) Option {
	return func(t *Tab) {
		if sanitizer != nil {
			t.sanitizer = sanitizer
		}
	}
}

// WithLabeler overrides how untitled fields get a title.
func WithLabeler(labeler model.Labeler) Option {
	return func(t *Tab) {
		if labeler != nil {
			t.labeler = labeler
		}
	}
}

// WithKeyGenerator replaces the random suffix of generated field keys.
func WithKeyGenerator(fn func() string) Option {
	return func(t *Tab) {
		if fn != nil {
			t.keygen = fn
		}
	}
}

// WithLogger receives normalization and asset events.
func WithLogger(logger model.Logger) Option {
	return func(t *Tab) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithPage overrides the admin page the tab lives on.
func WithPage(page string) Option {
	return func(t *Tab) {
		if trimmed := strings.TrimSpace(page); trimmed != "" {
			t.page = trimmed
		}
	}
}

// WithAssetBaseURL sets where the picker assets are served from.
func WithAssetBaseURL(base string) Option {
	return func(t *Tab) {
		t.assetBaseURL = strings.TrimSpace(base)
	}
}

// WithTabPriority overrides the tab registry filter priority.
func WithTabPriority(priority int) Option {
	return func(t *Tab) {
		t.priority = priority
	}
}
