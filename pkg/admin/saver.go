package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/goliatone/go-settingstab/pkg/host"
	"github.com/goliatone/go-settingstab/pkg/model"
	"github.com/goliatone/go-settingstab/pkg/schema"
)

// FormSource yields the submitted form for a save request.
type FormSource func(ctx context.Context) (url.Values, error)

// StaticForm always returns values.
func StaticForm(values url.Values) FormSource {
	return func(context.Context) (url.Values, error) {
		return values, nil
	}
}

// RequestForm parses the body of r.
func RequestForm(r *http.Request) FormSource {
	return func(context.Context) (url.Values, error) {
		if r == nil {
			return nil, errors.New("admin: request is required")
		}
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("admin: parse form: %w", err)
		}
		return r.PostForm, nil
	}
}

// FieldErrors maps prefixed field ids to validation messages. It is returned
// by Saver when a submitted value fails validation; nothing is written in
// that case.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	ids := make([]string, 0, len(e))
	for id := range e {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, id+": "+e[id])
	}
	return "admin: invalid values: " + strings.Join(parts, "; ")
}

// Saver implements host.OptionSaver from a posted form.
type Saver struct {
	store host.OptionStore
	form  FormSource
}

var _ host.OptionSaver = (*Saver)(nil)

// NewSaver returns a Saver writing to store.
func NewSaver(store host.OptionStore, form FormSource) *Saver {
	return &Saver{store: store, form: form}
}

// SaveFields implements host.OptionSaver.
func (s *Saver) SaveFields(ctx context.Context, fields []model.Field) error {
	if s == nil || s.store == nil {
		return errors.New("admin: option store is required")
	}
	if s.form == nil {
		return errors.New("admin: form source is required")
	}
	form, err := s.form(ctx)
	if err != nil {
		return err
	}

	values, err := Resolve(fields, form)
	if err != nil {
		return err
	}
	for _, field := range fields {
		value, ok := values[field.FieldID()]
		if !ok {
			continue
		}
		if err := s.store.Set(ctx, field.FieldID(), value); err != nil {
			return fmt.Errorf("admin: save option %q: %w", field.FieldID(), err)
		}
	}
	return nil
}

// Resolve turns a posted form into clean values keyed by prefixed id. Every
// value is checked against the field schema; failures come back as
// FieldErrors.
func Resolve(fields []model.Field, form url.Values) (map[string]any, error) {
	values := make(map[string]any, len(fields))
	invalid := FieldErrors{}
	for _, field := range fields {
		vf, ok := field.(model.ValueField)
		if !ok {
			continue
		}
		value := clean(vf, form)
		if err := schema.ValidateField(vf, value); err != nil {
			invalid[vf.FieldID()] = schema.Reason(err)
			continue
		}
		values[vf.FieldID()] = value
	}
	if len(invalid) > 0 {
		return nil, invalid
	}
	return values, nil
}

func clean(field model.ValueField, form url.Values) any {
	id := field.FieldID()
	raw, posted := lookup(form, id)

	switch f := field.(type) {
	case model.Checkbox:
		if posted && raw != "" && raw != "0" && raw != "no" {
			return "yes"
		}
		return ""
	case model.MultiSelect:
		list := form[id+"[]"]
		if len(list) == 0 {
			list = form[id]
		}
		out := make([]string, 0, len(list))
		for _, item := range list {
			item = optionKey(f.Options, item)
			if item == "" || !f.Options.Has(item) {
				continue
			}
			out = append(out, item)
		}
		return out
	case model.Select:
		return choice(f.Options, optionKey(f.Options, raw), f.Default)
	case model.Radio:
		return choice(f.Options, optionKey(f.Options, raw), f.Default)
	}

	switch field.FieldType() {
	case model.TypeTextarea:
		return SanitizeHTML(raw)
	case model.TypePassword:
		return raw
	default:
		return StripTags(raw)
	}
}

// optionKey returns raw untouched when it is already an option key and the
// stripped text otherwise.
func optionKey(options model.Options, raw string) string {
	if options.Has(raw) {
		return raw
	}
	return StripTags(raw)
}

// choice keeps value when it is an option key. An empty submission is
// allowed when the options include an empty entry; anything else falls back
// to the resolved default.
func choice(options model.Options, value, fallback string) string {
	if value == "" && options.Has("") {
		return ""
	}
	if options.Has(value) {
		return value
	}
	return fallback
}

func lookup(form url.Values, key string) (string, bool) {
	values, ok := form[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
