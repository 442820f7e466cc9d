package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-settingstab/pkg/host"
)

var (
	_ host.OptionStore = (*MemoryStore)(nil)
	_ host.OptionStore = (*FileStore)(nil)
)

func mustGet(t *testing.T, s host.OptionStore, key string) any {
	t.Helper()
	value, ok, err := s.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("get %q: %v", key, err)
	}
	if !ok {
		t.Fatalf("expected %q to be stored", key)
	}
	return value
}

func mustSet(t *testing.T, s host.OptionStore, key string, value any) {
	t.Helper()
	if err := s.Set(context.Background(), key, value); err != nil {
		t.Fatalf("set %q: %v", key, err)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, ok, err := s.Get(ctx, "my_tab-store_name"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	mustSet(t, s, "my_tab-store_name", "Acme")
	tags := []string{"a", "b"}
	mustSet(t, s, "my_tab-tags", tags)
	tags[0] = "mutated"

	if got := mustGet(t, s, "my_tab-store_name"); got != "Acme" {
		t.Fatalf("expected Acme, got %v", got)
	}
	value := mustGet(t, s, "my_tab-tags")
	if diff := cmp.Diff([]string{"a", "b"}, value); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}

	value.([]string)[1] = "changed"
	if diff := cmp.Diff([]string{"a", "b"}, mustGet(t, s, "my_tab-tags")); diff != "" {
		t.Fatalf("stored slice was shared (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"my_tab-store_name", "my_tab-tags"}, s.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if err := s.Delete(ctx, "my_tab-tags"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if diff := cmp.Diff([]string{"my_tab-store_name"}, s.Keys()); diff != "" {
		t.Fatalf("keys after delete mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryStoreRejectsUnsupportedValues(t *testing.T) {
	s := NewMemoryStore()
	if err := s.Set(context.Background(), "key", map[string]string{"a": "b"}); err == nil {
		t.Fatalf("expected map value to be rejected")
	}
	if err := s.Set(context.Background(), "  ", "value"); err == nil {
		t.Fatalf("expected blank key to be rejected")
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  any
	}{
		{name: "nil", input: nil, want: ""},
		{name: "string", input: "yes", want: "yes"},
		{name: "bool", input: true, want: "true"},
		{name: "int", input: 42, want: "42"},
		{name: "float", input: 1.5, want: "1.5"},
		{name: "any slice", input: []any{"a", 2}, want: []string{"a", "2"}},
		{name: "string slice", input: []string{"x"}, want: []string{"x"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.input)
			if err != nil {
				t.Fatalf("normalize: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("normalize mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFileStorePersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "options.toml")

	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, ok, err := s.Get(ctx, "my_tab-store_name"); err != nil || ok {
		t.Fatalf("expected empty store, got ok=%v err=%v", ok, err)
	}

	mustSet(t, s, "my_tab-store_name", "Acme")
	mustSet(t, s, "my_tab-tags", []string{"a", "b"})
	mustSet(t, s, "my_tab-empty", []string{})

	reopened, err := OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}

	got := map[string]any{
		"my_tab-store_name": mustGet(t, reopened, "my_tab-store_name"),
		"my_tab-tags":       mustGet(t, reopened, "my_tab-tags"),
		"my_tab-empty":      mustGet(t, reopened, "my_tab-empty"),
	}
	want := map[string]any{
		"my_tab-store_name": "Acme",
		"my_tab-tags":       []string{"a", "b"},
		"my_tab-empty":      []string{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("reopened values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"my_tab-empty", "my_tab-store_name", "my_tab-tags"}, reopened.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenFileRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := OpenFile(path)
	if err == nil || !strings.Contains(err.Error(), "store: read") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestFileStoreHonoursCancelledContext(t *testing.T) {
	s, err := OpenFile(filepath.Join(t.TempDir(), "options.toml"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Set(ctx, "key", "value"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
