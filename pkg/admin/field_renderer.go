package admin

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goliatone/go-settingstab/pkg/host"
	"github.com/goliatone/go-settingstab/pkg/model"
)

// FieldRenderer adapts Renderer to host.FieldRenderer. Current values are
// read from Store and the markup is written to Out.
type FieldRenderer struct {
	Renderer *Renderer
	Store    host.OptionStore
	Out      io.Writer
	Slug     string
	// Errors is shown next to the matching fields, keyed by prefixed id.
	Errors map[string]string
}

var _ host.FieldRenderer = (*FieldRenderer)(nil)

// RenderFields implements host.FieldRenderer.
func (fr *FieldRenderer) RenderFields(ctx context.Context, fields []model.Field) error {
	if fr == nil || fr.Renderer == nil {
		return errors.New("admin: renderer is required")
	}
	if fr.Out == nil {
		return errors.New("admin: output writer is required")
	}

	values := map[string]any{}
	if fr.Store != nil {
		for _, field := range fields {
			if field.Structural() {
				continue
			}
			value, ok, err := fr.Store.Get(ctx, field.FieldID())
			if err != nil {
				return fmt.Errorf("admin: load option %q: %w", field.FieldID(), err)
			}
			if ok {
				values[field.FieldID()] = value
			}
		}
	}

	html, err := fr.Renderer.Render(ctx, fr.Slug, fields, RenderOptions{Values: values, Errors: fr.Errors})
	if err != nil {
		return err
	}
	if _, err := fr.Out.Write(html); err != nil {
		return fmt.Errorf("admin: write output: %w", err)
	}
	return nil
}
