// Package testsupport holds fixtures and helpers shared by package tests.
package testsupport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-settingstab/pkg/loader"
	"github.com/goliatone/go-settingstab/pkg/model"
)

// SampleDescriptors returns a field list touching every default policy.
func SampleDescriptors() []model.Descriptor {
	return []model.Descriptor{
		{Type: model.TypeTitle, Title: "Store", Description: "Basic store details."},
		{Key: "store_name", ID: "store_name", Title: "Store name", Default: "Acme", Placeholder: "Your store"},
		{Key: "notes", ID: "notes", Title: "Notes", Type: model.TypeTextarea, Description: "Shown <em>internally</em>."},
		{Key: "mode", ID: "mode", Title: "Mode", Type: model.TypeSelect, Options: model.NewOptions("a", "Option A", "b", "Option B")},
		{Key: "country", ID: "country", Title: "Country", Type: model.TypeSelect, Picker: true, Options: model.NewOptions("us", "United States", "ca", "Canada")},
		{Key: "tags", ID: "tags", Title: "Tags", Type: model.TypeMultiSelect, Options: model.NewOptions("x", "X", "y", "Y"), Default: []string{"x"}},
		{Key: "size", ID: "size", Title: "Size", Type: model.TypeRadio, Options: model.NewOptions("s", "Small", "l", "Large"), Default: "l"},
		{Key: "enabled", ID: "enabled", Title: "Enabled", Type: model.TypeCheckbox, Default: true},
		{Key: "retries", ID: "retries", Title: "Retries", Type: model.TypeNumber, Default: 3, Extra: map[string]any{"min": 0}},
		{Key: "api_key", ID: "api_key", Title: "API key", Type: model.TypePassword},
	}
}

// MustPrepare normalizes descriptors with deterministic generated keys.
func MustPrepare(t testing.TB, slug string, descriptors []model.Descriptor) []model.Field {
	t.Helper()
	result, err := model.NewNormalizer(model.WithKeyGenerator(Sequence("k"))).Normalize(slug, descriptors)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	return result.Fields
}

// Sequence returns a key generator yielding prefix1, prefix2, ...
func Sequence(prefix string) func() string {
	var (
		mu sync.Mutex
		n  int
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

// MustLoadDocument loads a tab definition fixture.
func MustLoadDocument(t testing.TB, path string) loader.Document {
	t.Helper()
	doc, err := loader.LoadFile(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// FieldIDs lists the ids of a prepared field list.
func FieldIDs(fields []model.Field) []string {
	out := make([]string, len(fields))
	for i, field := range fields {
		out[i] = field.FieldID()
	}
	return out
}

// RecordingLogger keeps every event it receives.
type RecordingLogger struct {
	mu     sync.Mutex
	events []model.Event
}

// LogEvent implements model.Logger.
func (l *RecordingLogger) LogEvent(event model.Event) {
	l.mu.Lock()
	l.events = append(l.events, event)
	l.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (l *RecordingLogger) Events() []model.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]model.Event(nil), l.events...)
}

// Names returns the recorded event names in order.
func (l *RecordingLogger) Names() []string {
	events := l.Events()
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Name
	}
	return out
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t testing.TB, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t testing.TB, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t testing.TB, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
