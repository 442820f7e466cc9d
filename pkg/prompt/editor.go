// Package prompt edits a prepared settings tab from a terminal. The answers
// come back as a posted form so the same save path as the admin page applies.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/goliatone/go-settingstab/pkg/admin"
	"github.com/goliatone/go-settingstab/pkg/host"
	"github.com/goliatone/go-settingstab/pkg/model"
	"github.com/goliatone/go-settingstab/pkg/schema"
)

// Option configures an Editor.
type Option func(*Editor)

// WithDriver overrides the prompt driver.
func WithDriver(driver Driver) Option {
	return func(e *Editor) {
		if driver != nil {
			e.driver = driver
		}
	}
}

// WithStore supplies current values shown as prompt defaults.
func WithStore(store host.OptionStore) Option {
	return func(e *Editor) {
		e.store = store
	}
}

// Editor asks one question per value field.
type Editor struct {
	driver Driver
	store  host.OptionStore
}

// NewEditor returns an Editor backed by the survey driver unless
// WithDriver is given.
func NewEditor(options ...Option) *Editor {
	e := &Editor{}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	if e.driver == nil {
		e.driver = SurveyDriver(nil)
	}
	return e
}

// Edit walks fields in order and returns the answers keyed the way the admin
// form posts them: multiselect values under "<id>[]", checkboxes as "yes"
// or absent.
func (e *Editor) Edit(ctx context.Context, fields []model.Field) (url.Values, error) {
	form := url.Values{}
	for _, field := range fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch f := field.(type) {
		case model.Title:
			if f.Title == "" {
				continue
			}
			if err := e.driver.Info(ctx, "== "+f.Title+" =="); err != nil {
				return nil, err
			}
			continue
		case model.SectionEnd:
			continue
		}

		vf, ok := field.(model.ValueField)
		if !ok {
			continue
		}
		current, err := e.current(ctx, vf)
		if err != nil {
			return nil, err
		}
		if err := e.ask(ctx, vf, current, form); err != nil {
			return nil, fmt.Errorf("prompt: field %q: %w", vf.FieldID(), err)
		}
	}
	return form, nil
}

func (e *Editor) current(ctx context.Context, field model.ValueField) (any, error) {
	if e.store != nil {
		value, ok, err := e.store.Get(ctx, field.FieldID())
		if err != nil {
			return nil, fmt.Errorf("prompt: load option %q: %w", field.FieldID(), err)
		}
		if ok {
			return value, nil
		}
	}
	return field.DefaultValue(), nil
}

func (e *Editor) ask(ctx context.Context, field model.ValueField, current any, form url.Values) error {
	base := field.Base()
	message := base.Title
	if message == "" {
		message = base.ID
	}
	help := schemaHelp(base)
	id := base.ID

	switch f := field.(type) {
	case model.Checkbox:
		yes, err := e.driver.Confirm(ctx, ConfirmConfig{Message: message, Help: help, Default: model.StringValue(current) == "yes"})
		if err != nil {
			return err
		}
		if yes {
			form.Set(id, "yes")
		}
		return nil
	case model.MultiSelect:
		opts := nonEmpty(f.Options)
		chosen, err := e.driver.MultiSelect(ctx, SelectConfig{
			Message:  message,
			Help:     help,
			Options:  labels(opts),
			Defaults: indicesFor(opts, model.StringSlice(current)),
		})
		if err != nil {
			return err
		}
		for _, idx := range chosen {
			if idx >= 0 && idx < len(opts) {
				form.Add(id+"[]", opts[idx].Value)
			}
		}
		return nil
	case model.Select:
		return e.choose(ctx, message, help, id, f.Options, model.StringValue(current), form)
	case model.Radio:
		return e.choose(ctx, message, help, id, f.Options, model.StringValue(current), form)
	}

	validate := func(answer string) error {
		return schemaError(schema.ValidateField(field, answer))
	}
	switch base.Type {
	case model.TypeTextarea:
		answer, err := e.driver.TextArea(ctx, TextAreaConfig{Message: message, Help: help, Default: model.StringValue(current)})
		if err != nil {
			return err
		}
		form.Set(id, answer)
	case model.TypePassword:
		answer, err := e.driver.Password(ctx, InputConfig{Message: message, Help: help, Validator: validate})
		if err != nil {
			return err
		}
		// an empty answer keeps the stored secret
		if answer == "" {
			answer = model.StringValue(current)
		}
		form.Set(id, answer)
	default:
		answer, err := e.driver.Input(ctx, InputConfig{Message: message, Help: help, Default: model.StringValue(current), Validator: validate})
		if err != nil {
			return err
		}
		form.Set(id, answer)
	}
	return nil
}

func (e *Editor) choose(ctx context.Context, message, help, id string, opts model.Options, current string, form url.Values) error {
	if len(opts) == 0 {
		return nil
	}
	defaultIdx := 0
	for i, opt := range opts {
		if opt.Value == current {
			defaultIdx = i
			break
		}
	}
	idx, err := e.driver.Select(ctx, SelectConfig{Message: message, Help: help, Options: labels(opts), DefaultIndex: defaultIdx})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(opts) {
		return errors.New("selection out of range")
	}
	form.Set(id, opts[idx].Value)
	return nil
}

func schemaHelp(base model.Common) string {
	if base.Description == "" {
		return ""
	}
	return admin.StripTags(base.Description)
}

func schemaError(err error) error {
	if err == nil {
		return nil
	}
	return errors.New(schema.Reason(err))
}

func labels(opts model.Options) []string {
	out := make([]string, len(opts))
	for i, opt := range opts {
		out[i] = opt.Label
		if out[i] == "" {
			out[i] = "(none)"
		}
	}
	return out
}

func nonEmpty(opts model.Options) model.Options {
	out := make(model.Options, 0, len(opts))
	for _, opt := range opts {
		if opt.Value != "" {
			out = append(out, opt)
		}
	}
	return out
}

func indicesFor(opts model.Options, values []string) []int {
	var out []int
	for i, opt := range opts {
		for _, value := range values {
			if opt.Value == value {
				out = append(out, i)
				break
			}
		}
	}
	return out
}
