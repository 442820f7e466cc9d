package admin

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-settingstab/pkg/model"
)

type optionView struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type fieldView struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Key         string            `json:"key"`
	Type        string            `json:"type"`
	InputType   string            `json:"input_type"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Tooltip     bool              `json:"tooltip"`
	Placeholder string            `json:"placeholder"`
	Class       string            `json:"class"`
	Attrs       map[string]string `json:"attrs"`
	Value       string            `json:"value"`
	Values      []string          `json:"values"`
	Options     []optionView      `json:"options"`
	Multiple    bool              `json:"multiple"`
	Error       string            `json:"error"`
}

// extraAttrs are descriptor extras copied onto the input element.
var extraAttrs = map[string]struct{}{
	"min": {}, "max": {}, "step": {}, "rows": {}, "cols": {}, "maxlength": {}, "pattern": {},
}

func buildView(field model.Field, value any, hasValue bool, errMsg string) fieldView {
	switch f := field.(type) {
	case model.Title:
		return fieldView{
			ID:          f.ID,
			Key:         f.Key,
			Type:        string(model.TypeTitle),
			Title:       f.Title,
			Description: SanitizeHTML(f.Description),
		}
	case model.SectionEnd:
		return fieldView{ID: f.ID, Key: f.Key, Type: string(model.TypeSectionEnd)}
	}

	vf, ok := field.(model.ValueField)
	if !ok {
		return fieldView{ID: field.FieldID(), Type: string(field.FieldType())}
	}
	base := vf.Base()
	if !hasValue {
		value = vf.DefaultValue()
	}

	view := fieldView{
		ID:          base.ID,
		Name:        base.ID,
		Key:         base.Key,
		Type:        string(base.Type),
		InputType:   inputType(base.Type),
		Title:       base.Title,
		Description: SanitizeHTML(base.Description),
		Tooltip:     base.Tooltip,
		Placeholder: base.Placeholder,
		Class:       base.Class,
		Attrs:       attributes(base),
		Error:       errMsg,
	}

	switch f := field.(type) {
	case model.MultiSelect:
		view.Name = base.ID + "[]"
		view.Multiple = true
		view.Values = model.StringSlice(value)
		view.Options = options(f.Options)
	case model.Select:
		view.Value = model.StringValue(value)
		view.Values = []string{view.Value}
		view.Options = options(f.Options)
	case model.Radio:
		view.Value = model.StringValue(value)
		view.Options = options(f.Options)
	default:
		if base.Type == model.TypePassword {
			// never echo secrets back into the page
			view.Value = ""
			break
		}
		view.Value = model.StringValue(value)
	}
	return view
}

func inputType(t model.Type) string {
	switch t {
	case model.TypeNumber, model.TypePassword, model.TypeDate, model.TypeColor, model.TypeHidden:
		return string(t)
	default:
		return "text"
	}
}

func attributes(base model.Common) map[string]string {
	attrs := make(map[string]string, len(base.CustomAttributes))
	for name, value := range base.CustomAttributes {
		attrs[name] = value
	}
	for name, value := range base.Extra {
		if _, ok := extraAttrs[name]; !ok {
			continue
		}
		if _, set := attrs[name]; set {
			continue
		}
		attrs[name] = fmt.Sprint(value)
	}
	return attrs
}

func options(opts model.Options) []optionView {
	out := make([]optionView, len(opts))
	for i, opt := range opts {
		out[i] = optionView{Value: opt.Value, Label: opt.Label}
	}
	return out
}

// styleAttr turns CSS variables into an inline style, sorted by name.
func styleAttr(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		if strings.HasPrefix(name, "--") {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+vars[name])
	}
	return strings.Join(parts, "; ")
}
