package schema

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-settingstab/pkg/model"
)

func prepared(t *testing.T) []model.Field {
	t.Helper()
	result, err := model.NewNormalizer().Normalize("my_tab", []model.Descriptor{
		{Title: "Intro", Type: model.TypeTitle},
		{ID: "store_name", Title: "Store name", Description: "Shown on invoices", Default: "Acme"},
		{ID: "mode", Type: model.TypeSelect, Options: model.NewOptions("a", "A", "b", "B")},
		{ID: "tags", Type: model.TypeMultiSelect, Options: model.NewOptions("x", "X", "y", "Y"), Default: []string{"x"}},
		{ID: "enabled", Type: model.TypeCheckbox, Default: "yes"},
		{ID: "retries", Type: model.TypeNumber},
		{ID: "starts", Type: model.TypeDate},
	})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	return result.Fields
}

func TestGenerateProperties(t *testing.T) {
	s := Generate("my_tab", prepared(t))

	var ids []string
	for id := range s.Properties {
		ids = append(ids, id)
	}
	if len(ids) != 6 {
		t.Fatalf("expected 6 properties, got %v", ids)
	}
	if !s.Type.Is("object") {
		t.Fatalf("expected object schema")
	}

	mode := s.Properties["mode"].Value
	if diff := cmp.Diff([]any{"a", "b"}, mode.Enum); diff != "" {
		t.Fatalf("mode enum mismatch (-want +got):\n%s", diff)
	}
	if mode.Default != "a" {
		t.Fatalf("expected auto-selected default, got %v", mode.Default)
	}

	tags := s.Properties["tags"].Value
	if !tags.Type.Is("array") {
		t.Fatalf("expected tags to be an array")
	}
	if diff := cmp.Diff([]any{"x", "y"}, tags.Items.Value.Enum); diff != "" {
		t.Fatalf("tags enum mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{"x"}, tags.Default); diff != "" {
		t.Fatalf("tags default mismatch (-want +got):\n%s", diff)
	}

	enabled := s.Properties["enabled"].Value
	if diff := cmp.Diff([]any{"yes", ""}, enabled.Enum); diff != "" {
		t.Fatalf("checkbox enum mismatch (-want +got):\n%s", diff)
	}

	name := s.Properties["store_name"].Value
	if name.Title != "Store name" || name.Description != "Shown on invoices" || name.Default != "Acme" {
		t.Fatalf("unexpected store_name schema: %#v", name)
	}
	if got := s.Properties["retries"].Value.Extensions[TypeExtension]; got != "number" {
		t.Fatalf("expected type extension, got %v", got)
	}
	if got := s.Properties["starts"].Value.Format; got != "date" {
		t.Fatalf("expected date format, got %q", got)
	}
}

func TestValidateValue(t *testing.T) {
	s := Generate("my_tab", prepared(t))

	valid := map[string]any{
		"mode":       "b",
		"tags":       []string{"x", "y"},
		"enabled":    "",
		"retries":    "12",
		"store_name": "<anything>",
	}
	if err := Validate(s, valid); err != nil {
		t.Fatalf("expected values to validate: %v", err)
	}

	cases := []struct {
		id    string
		value any
	}{
		{id: "mode", value: "c"},
		{id: "tags", value: []string{"z"}},
		{id: "enabled", value: "no"},
		{id: "retries", value: "many"},
	}
	for _, tc := range cases {
		if err := ValidateValue(s, tc.id, tc.value); err == nil {
			t.Fatalf("expected %s=%v to be rejected", tc.id, tc.value)
		} else if !strings.Contains(err.Error(), `schema: field "`+tc.id+`"`) {
			t.Fatalf("unexpected error message %q", err)
		}
	}

	if err := ValidateValue(s, "missing", "x"); !errors.Is(err, model.ErrFieldNotFound) {
		t.Fatalf("expected field not found, got %v", err)
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	s := Generate("my_tab", prepared(t))
	err := Validate(s, map[string]any{"mode": "c", "enabled": "no"})
	if err == nil {
		t.Fatalf("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, `"enabled"`) || !strings.Contains(msg, `"mode"`) {
		t.Fatalf("expected both fields in %q", msg)
	}
	if strings.Index(msg, `"enabled"`) > strings.Index(msg, `"mode"`) {
		t.Fatalf("expected sorted error order, got %q", msg)
	}
}

func TestMarshalJSON(t *testing.T) {
	data, err := MarshalJSON(Generate("my_tab", prepared(t)))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	props, ok := decoded["properties"].(map[string]any)
	if !ok {
		t.Fatalf("expected properties in %s", data)
	}
	mode := props["mode"].(map[string]any)
	if mode[TypeExtension] != "select" {
		t.Fatalf("expected extension in export, got %v", mode)
	}
}

func TestValidateField(t *testing.T) {
	fields := prepared(t)
	var mode model.ValueField
	for _, f := range fields {
		if f.FieldID() == "my_tab-mode" {
			mode = f.(model.ValueField)
		}
	}
	if mode == nil {
		t.Fatalf("mode field not found")
	}
	if err := ValidateField(mode, "a"); err != nil {
		t.Fatalf("expected valid value: %v", err)
	}
	err := ValidateField(mode, "z")
	if err == nil || !strings.Contains(err.Error(), `"my_tab-mode"`) {
		t.Fatalf("expected prefixed id in error, got %v", err)
	}
}

func TestReason(t *testing.T) {
	s := Generate("my_tab", prepared(t))
	err := ValidateValue(s, "enabled", "no")
	if err == nil {
		t.Fatalf("expected error")
	}
	reason := Reason(err)
	if reason == "" || strings.Contains(reason, "\n") {
		t.Fatalf("expected single line reason, got %q", reason)
	}
	if Reason(nil) != "" {
		t.Fatalf("expected empty reason for nil")
	}
}
