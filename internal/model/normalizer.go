package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	// PickerClass is the marker class the picker runtime looks for.
	PickerClass = "settingstab-picker"

	defaultSectionTitle      = "Settings"
	defaultPickerPlaceholder = "Select an option..."
)

// Normalizer converts descriptor lists into prepared field lists.
type Normalizer struct {
	sanitizer Sanitizer
	labeler   Labeler
	logger    Logger
	keygen    func() string
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithSanitizer overrides the title-to-id sanitizer.
func WithSanitizer(s Sanitizer) NormalizerOption {
	return func(n *Normalizer) {
		if s != nil {
			n.sanitizer = s
		}
	}
}

// WithLabeler overrides how untitled fields get a title.
func WithLabeler(l Labeler) NormalizerOption {
	return func(n *Normalizer) {
		if l != nil {
			n.labeler = l
		}
	}
}

// WithLogger receives normalization events.
func WithLogger(l Logger) NormalizerOption {
	return func(n *Normalizer) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithKeyGenerator replaces the random suffix used for generated keys.
func WithKeyGenerator(fn func() string) NormalizerOption {
	return func(n *Normalizer) {
		if fn != nil {
			n.keygen = fn
		}
	}
}

// NewNormalizer returns a Normalizer with the default sanitizer, the id
// labeler and a no-op logger.
func NewNormalizer(options ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		sanitizer: DefaultSanitizer(),
		labeler:   IDLabeler,
		logger:    NopLogger(),
		keygen:    randomKeySuffix,
	}
	for _, opt := range options {
		if opt != nil {
			opt(n)
		}
	}
	return n
}

// Result is the outcome of a normalization pass.
type Result struct {
	Fields []Field
	// Picker is true when at least one field asked for the enhanced picker.
	Picker bool
}

// Normalize validates slug and fields and returns the prepared list. Section
// boundaries are inserted where missing, defaults are resolved to what the
// rendered page shows before the first save, and every id is prefixed with
// "<slug>-".
func (n *Normalizer) Normalize(slug string, fields []Descriptor) (Result, error) {
	if err := ValidateSlug(slug); err != nil {
		return Result{}, err
	}

	st := &pass{
		n:        n,
		slug:     slug,
		declared: make(map[string]struct{}, len(fields)),
		seen:     make(map[string]struct{}, len(fields)),
		out:      make([]Field, 0, len(fields)+2),
	}
	for _, d := range fields {
		if id := n.plannedID(d); id != "" {
			st.declared[id] = struct{}{}
		}
	}

	for idx, d := range fields {
		kind := d.Type.normalized()
		if st.open == "" && kind != TypeTitle {
			st.openAutoSection()
		}

		switch kind {
		case TypeTitle:
			if st.open != "" {
				st.closeSection()
			}
			st.openSection(n.title(st, d))
		case TypeSectionEnd:
			id := strings.TrimSpace(d.ID)
			if id == "" {
				id = st.open + "_end"
			}
			key := d.Key
			if key == "" {
				key = id
			}
			st.seen[id] = struct{}{}
			st.out = append(st.out, SectionEnd{Key: key, ID: id})
			st.open = ""
		default:
			field, err := n.valueField(st, idx, kind, d)
			if err != nil {
				return Result{}, err
			}
			st.out = append(st.out, field)
		}
	}
	if st.open != "" {
		st.closeSection()
	}

	prefix := Prefix(slug)
	prepared := make([]Field, len(st.out))
	for i, field := range st.out {
		prepared[i] = field.withPrefix(prefix)
	}

	n.logger.LogEvent(Event{Name: EventNormalized, Slug: slug, Count: len(prepared)})
	return Result{Fields: prepared, Picker: st.picker}, nil
}

// pass holds the state of one Normalize call. Ids tracked here are
// unprefixed.
type pass struct {
	n        *Normalizer
	slug     string
	declared map[string]struct{}
	seen     map[string]struct{}
	open     string
	autoSeq  int
	picker   bool
	out      []Field
}

func (st *pass) nextAutoID() string {
	for {
		st.autoSeq++
		id := fmt.Sprintf("%s_settings_%d", st.slug, st.autoSeq)
		if _, ok := st.declared[id]; ok {
			continue
		}
		if _, ok := st.seen[id]; ok {
			continue
		}
		return id
	}
}

func (st *pass) openAutoSection() {
	id := st.nextAutoID()
	st.openSection(Title{Key: id, ID: id, Title: defaultSectionTitle, Auto: true})
	st.n.logger.LogEvent(Event{Name: EventAutoTitle, Slug: st.slug, FieldID: id})
}

func (st *pass) openSection(t Title) {
	st.seen[t.ID] = struct{}{}
	st.open = t.ID
	st.out = append(st.out, t)
}

func (st *pass) closeSection() {
	id := st.open + "_end"
	st.seen[id] = struct{}{}
	st.out = append(st.out, SectionEnd{Key: id, ID: id, Auto: true})
	st.open = ""
	st.n.logger.LogEvent(Event{Name: EventAutoSectionEnd, Slug: st.slug, FieldID: id})
}

func (st *pass) corrected(id string, declared, resolved any) {
	if declared == nil {
		return
	}
	if fmt.Sprint(declared) == fmt.Sprint(resolved) {
		return
	}
	st.n.logger.LogEvent(Event{
		Name:    EventDefaultCorrected,
		Slug:    st.slug,
		FieldID: id,
		From:    declared,
		To:      resolved,
	})
}

// plannedID is the id d will receive when it has one independent of the
// pass state: declared, or derived from the title. Generated ids avoid it.
func (n *Normalizer) plannedID(d Descriptor) string {
	if id := strings.TrimSpace(d.ID); id != "" {
		return id
	}
	switch d.Type.normalized() {
	case TypeSectionEnd:
		return ""
	case TypeTitle:
		if base := n.sanitizer.SanitizeTitle(d.Title); base != "" {
			return base + "_section"
		}
		return ""
	default:
		return n.sanitizer.SanitizeTitle(d.Title)
	}
}

func (n *Normalizer) title(st *pass, d Descriptor) Title {
	t := Title{
		Key:         d.Key,
		ID:          strings.TrimSpace(d.ID),
		Title:       d.Title,
		Description: d.Description,
	}
	if t.ID == "" {
		if base := n.sanitizer.SanitizeTitle(d.Title); base != "" {
			t.ID = base + "_section"
		} else {
			t.ID = st.nextAutoID()
		}
	}
	if t.Key == "" {
		t.Key = t.ID
	}
	return t
}

func (n *Normalizer) valueField(st *pass, idx int, kind Type, d Descriptor) (Field, error) {
	id := strings.TrimSpace(d.ID)
	title := d.Title
	if title == "" && id != "" {
		title = n.labeler(id)
	}
	if id == "" {
		id = n.sanitizer.SanitizeTitle(title)
	}
	key := n.key(d, id)
	if id == "" {
		return nil, &ValidationError{Index: idx, Key: d.Key, Err: ErrMissingID}
	}
	if _, dup := st.seen[id]; dup {
		return nil, &ValidationError{Index: idx, Key: key, ID: id, Err: ErrDuplicateID}
	}
	st.seen[id] = struct{}{}

	common := Common{
		Key:              key,
		Type:             kind,
		ID:               id,
		Title:            title,
		Description:      d.Description,
		Placeholder:      d.Placeholder,
		Class:            strings.TrimSpace(d.Class),
		Tooltip:          d.Tooltip,
		CustomAttributes: cloneStringMap(d.CustomAttributes),
		Extra:            cloneAnyMap(d.Extra),
	}

	switch kind {
	case TypeSelect:
		return n.selectField(st, common, d), nil
	case TypeMultiSelect:
		return n.multiSelectField(st, common, d), nil
	case TypeRadio:
		declared := stringValue(d.Default)
		f := Radio{Common: common, Options: d.Options.Clone()}
		f.Default = autoSelect(f.Options, declared)
		st.corrected(id, d.Default, f.Default)
		return f, nil
	case TypeCheckbox:
		f := Checkbox{Common: common, Default: checkboxValue(d.Default)}
		st.corrected(id, d.Default, f.Default)
		return f, nil
	default:
		return Input{Common: common, Default: stringValue(d.Default)}, nil
	}
}

func (n *Normalizer) selectField(st *pass, c Common, d Descriptor) Field {
	declared := stringValue(d.Default)
	f := Select{Options: d.Options.Clone()}

	if d.Picker {
		st.applyPicker(&c, d)
		f.Default = declared
		if !f.Options.Has(f.Default) {
			f.Default = ""
		}
		if f.Default == "" {
			f.Options = f.Options.WithEmpty()
		}
	} else {
		f.Default = autoSelect(f.Options, declared)
	}

	f.Common = c
	st.corrected(c.ID, d.Default, f.Default)
	return f
}

func (n *Normalizer) multiSelectField(st *pass, c Common, d Descriptor) Field {
	f := MultiSelect{Options: d.Options.Clone(), Default: stringSlice(d.Default)}
	if d.Picker {
		st.applyPicker(&c, d)
		payload, err := json.Marshal(f.Default)
		if err == nil {
			c.CustomAttributes["data-default"] = string(payload)
		}
	}
	if hasClass(c.Class, PickerClass) {
		f.Options = f.Options.WithEmpty()
	}
	f.Common = c
	return f
}

func (st *pass) applyPicker(c *Common, d Descriptor) {
	st.picker = true
	c.Picker = true
	if !hasClass(c.Class, PickerClass) {
		c.Class = strings.TrimSpace(c.Class + " " + PickerClass)
	}
	placeholder := d.Placeholder
	if placeholder == "" {
		placeholder = defaultPickerPlaceholder
	}
	c.CustomAttributes["data-placeholder"] = placeholder
	allowClear := true
	if d.AllowClear != nil {
		allowClear = *d.AllowClear
	}
	c.CustomAttributes["data-allow-clear"] = strconv.FormatBool(allowClear)
}

func (n *Normalizer) key(d Descriptor, id string) string {
	if d.Key != "" {
		return d.Key
	}
	if id := strings.TrimSpace(d.ID); id != "" {
		return id
	}
	base := id
	if base == "" {
		base = "field"
	}
	return base + "_" + n.keygen()
}

// autoSelect keeps declared when it is an option key, otherwise picks the
// first option, matching what a browser shows for an unsaved dropdown.
func autoSelect(options Options, declared string) string {
	if options.Has(declared) {
		return declared
	}
	if first, ok := options.First(); ok {
		return first.Value
	}
	return ""
}

func checkboxValue(value any) string {
	switch v := value.(type) {
	case string:
		if v == "yes" {
			return "yes"
		}
	case bool:
		if v {
			return "yes"
		}
	}
	return ""
}

func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func stringSlice(value any) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case string:
		if v == "" {
			return []string{}
		}
		return []string{v}
	case []string:
		return append([]string{}, v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, stringValue(item))
		}
		return out
	default:
		return []string{stringValue(v)}
	}
}

// StringValue converts a stored option value to the string form used for
// single-value fields.
func StringValue(value any) string {
	return stringValue(value)
}

// StringSlice converts a stored option value to the slice form used for
// multiselect fields.
func StringSlice(value any) []string {
	return stringSlice(value)
}

func hasClass(class, name string) bool {
	for _, item := range strings.Fields(class) {
		if item == name {
			return true
		}
	}
	return false
}

func cloneStringMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func cloneAnyMap(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func randomKeySuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
