package timezones

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-settingstab/pkg/model"
)

// Field returns a picker select descriptor listing every zone. The
// configured default is kept only when it is one of the zones.
func Field(id, title string, fns ...OptionFn) (model.Descriptor, error) {
	opts := NewOptions(fns...)
	zones, err := opts.zones()
	if err != nil {
		return model.Descriptor{}, fmt.Errorf("timezones: load zones: %w", err)
	}

	options := make(model.Options, 0, len(zones))
	for _, zone := range zones {
		options = append(options, model.Option{Value: zone, Label: Label(zone)})
	}
	d := model.Descriptor{
		Key:         id,
		ID:          id,
		Title:       title,
		Type:        model.TypeSelect,
		Picker:      true,
		Placeholder: "Choose a timezone...",
		Default:     opts.Default,
		Options:     options,
	}
	if opts.Source != "" {
		d.CustomAttributes = map[string]string{"data-source": opts.Source}
	}
	return d, nil
}

// Label turns "America/Argentina/Buenos_Aires" into
// "America / Argentina / Buenos Aires".
func Label(zone string) string {
	return strings.ReplaceAll(strings.ReplaceAll(zone, "_", " "), "/", " / ")
}
