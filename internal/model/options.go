package model

// Option is one value/label pair of a select, multiselect or radio field.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Options keeps choices in declaration order. The host renders them in this
// order and the first entry is what a browser shows as selected.
type Options []Option

// NewOptions builds Options from value/label pairs. A trailing value without
// a label uses the value as its label.
func NewOptions(pairs ...string) Options {
	out := make(Options, 0, (len(pairs)+1)/2)
	for i := 0; i < len(pairs); i += 2 {
		opt := Option{Value: pairs[i], Label: pairs[i]}
		if i+1 < len(pairs) {
			opt.Label = pairs[i+1]
		}
		out = append(out, opt)
	}
	return out
}

// Has reports whether value is one of the option keys.
func (o Options) Has(value string) bool {
	for _, opt := range o {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// Keys returns the option values in order.
func (o Options) Keys() []string {
	if len(o) == 0 {
		return nil
	}
	keys := make([]string, len(o))
	for i, opt := range o {
		keys[i] = opt.Value
	}
	return keys
}

// First returns the first option.
func (o Options) First() (Option, bool) {
	if len(o) == 0 {
		return Option{}, false
	}
	return o[0], true
}

// Label returns the label for value.
func (o Options) Label(value string) (string, bool) {
	for _, opt := range o {
		if opt.Value == value {
			return opt.Label, true
		}
	}
	return "", false
}

// Clone returns a copy that can be mutated independently. The result is
// never nil.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	copy(out, o)
	return out
}

// WithEmpty returns a copy with an empty option in front unless one is
// already present.
func (o Options) WithEmpty() Options {
	if o.Has("") {
		return o.Clone()
	}
	out := make(Options, 0, len(o)+1)
	out = append(out, Option{})
	return append(out, o...)
}
