package timezones

import "strings"

// Options configures the picker field and the search handler.
type Options struct {
	SearchParam  string
	LimitParam   string
	DefaultLimit int
	MaxLimit     int
	// Default is the zone preselected before the first save.
	Default string
	// Source is the search endpoint the picker queries as the user types.
	Source string
	// Zones replaces the embedded list when non-nil.
	Zones []string
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		SearchParam:  "q",
		LimitParam:   "limit",
		DefaultLimit: 20,
		MaxLimit:     100,
		Default:      "UTC",
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn != nil {
			fn(&opts)
		}
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 20
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = 100
	}
	if strings.TrimSpace(opts.SearchParam) == "" {
		opts.SearchParam = "q"
	}
	if strings.TrimSpace(opts.LimitParam) == "" {
		opts.LimitParam = "limit"
	}
	if opts.Zones != nil {
		opts.Zones = append([]string{}, opts.Zones...)
	}
	return opts
}

func WithDefault(zone string) OptionFn {
	return func(o *Options) {
		o.Default = strings.TrimSpace(zone)
	}
}

func WithSource(url string) OptionFn {
	return func(o *Options) {
		o.Source = strings.TrimSpace(url)
	}
}

func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) {
		o.DefaultLimit = limit
	}
}

func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) {
		o.MaxLimit = limit
	}
}

func WithZones(zones []string) OptionFn {
	return func(o *Options) {
		if zones == nil {
			o.Zones = nil
			return
		}
		o.Zones = append([]string{}, zones...)
	}
}

func (o Options) zones() ([]string, error) {
	if o.Zones != nil {
		return o.Zones, nil
	}
	return DefaultZones()
}

func clampLimit(limit int, opts Options) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = opts.DefaultLimit
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		return opts.MaxLimit
	}
	return limit
}
