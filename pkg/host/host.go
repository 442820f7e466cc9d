package host

import (
	"context"

	"github.com/goliatone/go-settingstab/pkg/model"
)

// Hook names fired by the host settings screen.
const (
	FilterSettingsTabs        = "woocommerce_settings_tabs_array"
	ActionSettingsPrefix      = "woocommerce_settings_"
	ActionUpdateOptionsPrefix = "woocommerce_update_options_"
	ActionAdminEnqueueScripts = "admin_enqueue_scripts"

	// SettingsPage is the admin page query value of the settings screen.
	SettingsPage = "wc-settings"
)

// SettingsAction returns the render hook name for a tab slug.
func SettingsAction(slug string) string {
	return ActionSettingsPrefix + slug
}

// UpdateOptionsAction returns the save hook name for a tab slug.
func UpdateOptionsAction(slug string) string {
	return ActionUpdateOptionsPrefix + slug
}

// OptionStore reads and writes persisted option values by key. Values are
// strings or string slices.
type OptionStore interface {
	Get(ctx context.Context, key string) (value any, ok bool, err error)
	Set(ctx context.Context, key string, value any) error
}

// FieldRenderer draws a prepared field list on the settings screen.
type FieldRenderer interface {
	RenderFields(ctx context.Context, fields []model.Field) error
}

// FieldRendererFunc adapts a function to FieldRenderer.
type FieldRendererFunc func(ctx context.Context, fields []model.Field) error

// RenderFields implements FieldRenderer.
func (fn FieldRendererFunc) RenderFields(ctx context.Context, fields []model.Field) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, fields)
}

// OptionSaver persists submitted values for a prepared field list.
type OptionSaver interface {
	SaveFields(ctx context.Context, fields []model.Field) error
}

// OptionSaverFunc adapts a function to OptionSaver.
type OptionSaverFunc func(ctx context.Context, fields []model.Field) error

// SaveFields implements OptionSaver.
func (fn OptionSaverFunc) SaveFields(ctx context.Context, fields []model.Field) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, fields)
}

// Script describes a script handed to the asset enqueuer.
type Script struct {
	Handle   string
	Src      string
	Deps     []string
	Version  string
	InFooter bool
}

// Style describes a stylesheet handed to the asset enqueuer.
type Style struct {
	Handle  string
	Src     string
	Deps    []string
	Version string
}

// AssetEnqueuer queues admin assets for the current page.
type AssetEnqueuer interface {
	EnqueueStyle(ctx context.Context, style Style) error
	EnqueueScript(ctx context.Context, script Script) error
}

// Request exposes the current admin request's query parameters.
type Request interface {
	Query(name string) (string, bool)
}

// Sanitizer turns a label into a safe id.
type Sanitizer = model.Sanitizer
