package gotemplate

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

var filtersOnce sync.Once

// registerFilters adds the filters the settings templates use. pongo2 keeps
// filters in a global table, so this runs once per process.
func registerFilters() {
	filtersOnce.Do(func() {
		for name, fn := range map[string]pongo2.FilterFunction{
			"trim":      filterTrim,
			"htmlattrs": filterHTMLAttrs,
			"contains":  filterContains,
		} {
			if !pongo2.FilterExists(name) {
				_ = pongo2.RegisterFilter(name, fn)
			}
		}
	})
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterHTMLAttrs renders a map as escaped name="value" pairs, sorted by name,
// each preceded by a space. Names outside [A-Za-z0-9-_:.] are dropped.
func filterHTMLAttrs(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	attrs := map[string]string{}
	switch v := in.Interface().(type) {
	case map[string]string:
		attrs = v
	case map[string]any:
		for key, value := range v {
			attrs[key] = fmt.Sprint(value)
		}
	default:
		return pongo2.AsSafeValue(""), nil
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		if validAttrName(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, ` %s="%s"`, name, html.EscapeString(attrs[name]))
	}
	return pongo2.AsSafeValue(b.String()), nil
}

func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == ':', r == '.':
		default:
			return false
		}
	}
	return true
}

// filterContains reports whether the input list holds the parameter.
func filterContains(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if param == nil {
		return pongo2.AsValue(false), nil
	}
	needle := param.String()
	switch v := in.Interface().(type) {
	case []string:
		for _, item := range v {
			if item == needle {
				return pongo2.AsValue(true), nil
			}
		}
	case []any:
		for _, item := range v {
			if fmt.Sprint(item) == needle {
				return pongo2.AsValue(true), nil
			}
		}
	case string:
		return pongo2.AsValue(v == needle), nil
	}
	return pongo2.AsValue(false), nil
}
