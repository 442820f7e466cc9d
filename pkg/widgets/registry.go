// Package widgets picks the partial used to draw a prepared field.
package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-settingstab/pkg/model"
)

// Built-in widget identifiers exposed by the registry. Each one names a
// partial of the admin renderer.
const (
	WidgetTitle       = "title"
	WidgetSectionEnd  = "sectionend"
	WidgetPicker      = "picker"
	WidgetCheckbox    = "checkbox"
	WidgetRadio       = "radio"
	WidgetMultiSelect = "multiselect"
	WidgetSelect      = "select"
	WidgetTextarea    = "textarea"
	WidgetInput       = "input"
)

// Matcher decides whether a widget renderer should handle the supplied field.
type Matcher func(field model.Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for fields based on an explicit "widget" extra or
// registered matchers. Higher priority wins; ties fall back to registration
// order. An empty registry never resolves a widget.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in widget matchers
// registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher with the provided name and priority. Higher
// priority values take precedence.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for a field. A value field carrying
// Extra["widget"] is honoured before matcher evaluation.
func (r *Registry) Resolve(field model.Field) (string, bool) {
	if field == nil {
		return "", false
	}
	if explicit := explicitWidget(field); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

func explicitWidget(field model.Field) string {
	vf, ok := field.(model.ValueField)
	if !ok {
		return ""
	}
	extra := vf.Base().Extra
	if extra == nil {
		return ""
	}
	if widget, ok := extra["widget"].(string); ok {
		return strings.TrimSpace(widget)
	}
	return ""
}

func ofType(kinds ...model.Type) Matcher {
	return func(field model.Field) bool {
		for _, kind := range kinds {
			if field.FieldType() == kind {
				return true
			}
		}
		return false
	}
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetTitle, 100, ofType(model.TypeTitle))
	r.Register(WidgetSectionEnd, 100, ofType(model.TypeSectionEnd))

	r.Register(WidgetPicker, 95, func(field model.Field) bool {
		vf, ok := field.(model.ValueField)
		return ok && vf.Base().Picker
	})

	r.Register(WidgetCheckbox, 90, ofType(model.TypeCheckbox))
	r.Register(WidgetRadio, 85, ofType(model.TypeRadio))
	r.Register(WidgetMultiSelect, 80, ofType(model.TypeMultiSelect))
	r.Register(WidgetSelect, 70, ofType(model.TypeSelect))
	r.Register(WidgetTextarea, 60, ofType(model.TypeTextarea))

	r.Register(WidgetInput, 0, func(field model.Field) bool {
		return !field.Structural()
	})
}
