package model

import (
	"encoding/json"
	"strings"
)

// Type enumerates the field kinds understood by the host settings renderer.
type Type string

const (
	TypeTitle       Type = "title"
	TypeSectionEnd  Type = "sectionend"
	TypeText        Type = "text"
	TypeTextarea    Type = "textarea"
	TypeNumber      Type = "number"
	TypePassword    Type = "password"
	TypeDate        Type = "date"
	TypeColor       Type = "color"
	TypeSelect      Type = "select"
	TypeMultiSelect Type = "multiselect"
	TypeRadio       Type = "radio"
	TypeCheckbox    Type = "checkbox"
	TypeHidden      Type = "hidden"
)

// Structural reports whether the type bounds a section instead of holding a
// value.
func (t Type) Structural() bool {
	return t == TypeTitle || t == TypeSectionEnd
}

func (t Type) normalized() Type {
	trimmed := Type(strings.ToLower(strings.TrimSpace(string(t))))
	if trimmed == "" {
		return TypeText
	}
	return trimmed
}

// Descriptor is the developer supplied definition of a single settings
// field. Only ID or Title is required; everything else is filled in by the
// Normalizer. Default is nil when the developer did not declare one.
type Descriptor struct {
	Key              string            `json:"key,omitempty" yaml:"key,omitempty"`
	Type             Type              `json:"type,omitempty" yaml:"type,omitempty"`
	ID               string            `json:"id,omitempty" yaml:"id,omitempty"`
	Title            string            `json:"title,omitempty" yaml:"title,omitempty"`
	Description      string            `json:"desc,omitempty" yaml:"desc,omitempty"`
	Default          any               `json:"default,omitempty" yaml:"default,omitempty"`
	Placeholder      string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Class            string            `json:"class,omitempty" yaml:"class,omitempty"`
	Tooltip          bool              `json:"desc_tip,omitempty" yaml:"desc_tip,omitempty"`
	CustomAttributes map[string]string `json:"custom_attributes,omitempty" yaml:"custom_attributes,omitempty"`
	Options          Options           `json:"options,omitempty" yaml:"-"`
	Picker           bool              `json:"select2,omitempty" yaml:"select2,omitempty"`
	AllowClear       *bool             `json:"allow_clear,omitempty" yaml:"allow_clear,omitempty"`
	Extra            map[string]any    `json:"extra,omitempty" yaml:"-"`
}

// Field is one entry of a prepared field list. The concrete types are Title,
// SectionEnd, Input, Select, MultiSelect, Radio and Checkbox; the set is
// closed.
type Field interface {
	FieldKey() string
	FieldID() string
	FieldType() Type
	Structural() bool
	withPrefix(prefix string) Field
}

// ValueField is implemented by every non-structural field.
type ValueField interface {
	Field
	Base() Common
	DefaultValue() any
}

// Common holds the attributes shared by every value-carrying field.
type Common struct {
	Key              string            `json:"key"`
	Type             Type              `json:"type"`
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"desc"`
	Placeholder      string            `json:"placeholder"`
	Class            string            `json:"class"`
	Tooltip          bool              `json:"desc_tip"`
	CustomAttributes map[string]string `json:"custom_attributes"`
	Extra            map[string]any    `json:"extra,omitempty"`
	// Picker marks fields that received the enhanced picker treatment.
	Picker bool `json:"-"`
}

func (c Common) FieldKey() string { return c.Key }
func (c Common) FieldID() string  { return c.ID }
func (c Common) FieldType() Type  { return c.Type }
func (c Common) Structural() bool { return false }
func (c Common) Base() Common     { return c }

// Title opens a section.
type Title struct {
	Key         string `json:"key"`
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"desc"`
	// Auto is set when the normalizer synthesised the title.
	Auto bool `json:"-"`
}

func (t Title) FieldKey() string { return t.Key }
func (t Title) FieldID() string  { return t.ID }
func (t Title) FieldType() Type  { return TypeTitle }
func (t Title) Structural() bool { return true }

func (t Title) withPrefix(prefix string) Field {
	t.ID = prefix + t.ID
	return t
}

// MarshalJSON includes the type discriminator.
func (t Title) MarshalJSON() ([]byte, error) {
	type alias Title
	return json.Marshal(struct {
		Type Type `json:"type"`
		alias
	}{Type: TypeTitle, alias: alias(t)})
}

// SectionEnd closes the open section.
type SectionEnd struct {
	Key  string `json:"key"`
	ID   string `json:"id"`
	Auto bool   `json:"-"`
}

func (s SectionEnd) FieldKey() string { return s.Key }
func (s SectionEnd) FieldID() string  { return s.ID }
func (s SectionEnd) FieldType() Type  { return TypeSectionEnd }
func (s SectionEnd) Structural() bool { return true }

func (s SectionEnd) withPrefix(prefix string) Field {
	s.ID = prefix + s.ID
	return s
}

// MarshalJSON includes the type discriminator.
func (s SectionEnd) MarshalJSON() ([]byte, error) {
	type alias SectionEnd
	return json.Marshal(struct {
		Type Type `json:"type"`
		alias
	}{Type: TypeSectionEnd, alias: alias(s)})
}

// Input covers the free-form field types (text, textarea, number, password,
// date, color, hidden) and any type the normalizer does not special-case.
type Input struct {
	Common
	Default string `json:"default"`
}

func (f Input) DefaultValue() any { return f.Default }

func (f Input) withPrefix(prefix string) Field {
	f.ID = prefix + f.ID
	return f
}

// Select is a single-choice dropdown.
type Select struct {
	Common
	Options Options `json:"options"`
	Default string  `json:"default"`
}

func (f Select) DefaultValue() any { return f.Default }

func (f Select) withPrefix(prefix string) Field {
	f.ID = prefix + f.ID
	return f
}

// MultiSelect is a multiple-choice dropdown.
type MultiSelect struct {
	Common
	Options Options  `json:"options"`
	Default []string `json:"default"`
}

func (f MultiSelect) DefaultValue() any { return append([]string{}, f.Default...) }

func (f MultiSelect) withPrefix(prefix string) Field {
	f.ID = prefix + f.ID
	return f
}

// Radio is a single-choice radio group.
type Radio struct {
	Common
	Options Options `json:"options"`
	Default string  `json:"default"`
}

func (f Radio) DefaultValue() any { return f.Default }

func (f Radio) withPrefix(prefix string) Field {
	f.ID = prefix + f.ID
	return f
}

// Checkbox holds "yes" when checked and "" otherwise.
type Checkbox struct {
	Common
	Default string `json:"default"`
}

func (f Checkbox) DefaultValue() any { return f.Default }

func (f Checkbox) withPrefix(prefix string) Field {
	f.ID = prefix + f.ID
	return f
}

// Prefix returns the namespace prefix applied to every id of a tab.
func Prefix(slug string) string {
	return slug + "-"
}

// Unprefix strips the tab prefix from a prepared field id.
func Unprefix(slug, id string) string {
	return strings.TrimPrefix(id, Prefix(slug))
}
