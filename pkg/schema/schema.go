// Package schema describes a prepared field list as an OpenAPI object schema
// and validates submitted values against it.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-settingstab/pkg/model"
)

// TypeExtension records the original field type on each property.
const TypeExtension = "x-settingstab-type"

const numberPattern = `^(-?[0-9]+(\.[0-9]+)?)?$`

// Generate returns an object schema with one property per value field, keyed
// by the unprefixed id.
func Generate(slug string, fields []model.Field) *openapi3.Schema {
	root := openapi3.NewObjectSchema()
	root.Title = slug
	for _, field := range fields {
		vf, ok := field.(model.ValueField)
		if !ok {
			continue
		}
		id := model.Unprefix(slug, vf.FieldID())
		root.WithProperty(id, property(vf))
	}
	return root
}

func property(field model.ValueField) *openapi3.Schema {
	base := field.Base()
	var prop *openapi3.Schema

	switch f := field.(type) {
	case model.Select:
		prop = enumSchema(f.Options.Keys())
	case model.Radio:
		prop = enumSchema(f.Options.Keys())
	case model.MultiSelect:
		prop = openapi3.NewArraySchema().WithItems(enumSchema(f.Options.Keys()))
	case model.Checkbox:
		prop = openapi3.NewStringSchema().WithEnum("yes", "")
	default:
		prop = openapi3.NewStringSchema()
		switch base.Type {
		case model.TypeNumber:
			prop.Pattern = numberPattern
		case model.TypeDate:
			prop.Format = "date"
		case model.TypePassword:
			prop.Format = "password"
		}
	}

	prop.Title = base.Title
	prop.Description = base.Description
	prop.Default = jsonValue(field.DefaultValue())
	prop.Extensions = map[string]any{TypeExtension: string(base.Type)}
	return prop
}

func enumSchema(keys []string) *openapi3.Schema {
	prop := openapi3.NewStringSchema()
	if len(keys) == 0 {
		return prop
	}
	values := make([]any, len(keys))
	for i, key := range keys {
		values[i] = key
	}
	return prop.WithEnum(values...)
}

// ValidateValue checks value against the property for id.
func ValidateValue(s *openapi3.Schema, id string, value any) error {
	if s == nil {
		return errors.New("schema: schema is required")
	}
	ref, ok := s.Properties[id]
	if !ok || ref == nil || ref.Value == nil {
		return fmt.Errorf("schema: %w: %q", model.ErrFieldNotFound, id)
	}
	if err := ref.Value.VisitJSON(jsonValue(value)); err != nil {
		return fmt.Errorf("schema: field %q: %w", id, err)
	}
	return nil
}

// ValidateField checks value against the schema of a single prepared field.
func ValidateField(field model.ValueField, value any) error {
	if field == nil {
		return errors.New("schema: field is required")
	}
	if err := property(field).VisitJSON(jsonValue(value)); err != nil {
		return fmt.Errorf("schema: field %q: %w", field.FieldID(), err)
	}
	return nil
}

// Validate checks every entry of values and joins the failures. Keys are
// visited in sorted order so the joined message is stable.
func Validate(s *openapi3.Schema, values map[string]any) error {
	ids := make([]string, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var errs []error
	for _, id := range ids {
		if err := ValidateValue(s, id, values[id]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Reason returns the short validation message of err without the schema
// and value dump kin-openapi appends.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) && schemaErr.Reason != "" {
		return schemaErr.Reason
	}
	return err.Error()
}

// MarshalJSON renders the schema with indentation for export.
func MarshalJSON(s *openapi3.Schema) ([]byte, error) {
	if s == nil {
		return nil, errors.New("schema: schema is required")
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("schema: marshal: %w", err)
	}
	return data, nil
}

// jsonValue converts store values to the shapes the validator understands.
func jsonValue(value any) any {
	switch v := value.(type) {
	case []string:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = item
		}
		return out
	default:
		return v
	}
}
