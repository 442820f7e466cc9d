package widgets

import (
	"testing"

	"github.com/goliatone/go-settingstab/pkg/model"
)

func TestResolve_ExplicitWidgetWins(t *testing.T) {
	reg := NewRegistry()
	field := model.Checkbox{Common: model.Common{
		Type:  model.TypeCheckbox,
		Extra: map[string]any{"widget": "custom-toggle"},
	}}

	if got, ok := reg.Resolve(field); !ok || got != "custom-toggle" {
		t.Fatalf("expected explicit widget to win, got %q (ok=%v)", got, ok)
	}
}

func TestResolve_Builtins(t *testing.T) {
	reg := NewRegistry()

	cases := []struct {
		name   string
		field  model.Field
		expect string
	}{
		{name: "title", field: model.Title{ID: "t"}, expect: WidgetTitle},
		{name: "sectionend", field: model.SectionEnd{ID: "t_end"}, expect: WidgetSectionEnd},
		{
			name:   "picker select",
			field:  model.Select{Common: model.Common{Type: model.TypeSelect, Picker: true}},
			expect: WidgetPicker,
		},
		{
			name:   "picker multiselect",
			field:  model.MultiSelect{Common: model.Common{Type: model.TypeMultiSelect, Picker: true}},
			expect: WidgetPicker,
		},
		{name: "checkbox", field: model.Checkbox{Common: model.Common{Type: model.TypeCheckbox}}, expect: WidgetCheckbox},
		{name: "radio", field: model.Radio{Common: model.Common{Type: model.TypeRadio}}, expect: WidgetRadio},
		{name: "multiselect", field: model.MultiSelect{Common: model.Common{Type: model.TypeMultiSelect}}, expect: WidgetMultiSelect},
		{name: "select", field: model.Select{Common: model.Common{Type: model.TypeSelect}}, expect: WidgetSelect},
		{name: "textarea", field: model.Input{Common: model.Common{Type: model.TypeTextarea}}, expect: WidgetTextarea},
		{name: "color input", field: model.Input{Common: model.Common{Type: model.TypeColor}}, expect: WidgetInput},
		{name: "unknown type", field: model.Input{Common: model.Common{Type: "range"}}, expect: WidgetInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := reg.Resolve(tc.field)
			if !ok || got != tc.expect {
				t.Fatalf("expected %q, got %q (ok=%v)", tc.expect, got, ok)
			}
		})
	}
}

func TestRegisterPriorityAndOrder(t *testing.T) {
	reg := &Registry{}
	always := func(model.Field) bool { return true }
	reg.Register("low", 1, always)
	reg.Register("first-high", 10, always)
	reg.Register("second-high", 10, always)
	reg.Register(" ", 99, always)
	reg.Register("nil", 99, nil)

	got, ok := reg.Resolve(model.Input{})
	if !ok || got != "first-high" {
		t.Fatalf("expected first registered high priority widget, got %q (ok=%v)", got, ok)
	}
}

func TestResolve_EmptyRegistry(t *testing.T) {
	var reg *Registry
	if _, ok := reg.Resolve(model.Input{}); ok {
		t.Fatalf("nil registry must not resolve")
	}
	if _, ok := (&Registry{}).Resolve(model.Input{}); ok {
		t.Fatalf("empty registry must not resolve")
	}
	if _, ok := NewRegistry().Resolve(nil); ok {
		t.Fatalf("nil field must not resolve")
	}
}
