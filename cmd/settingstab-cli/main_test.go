package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-settingstab/pkg/model"
	"github.com/goliatone/go-settingstab/pkg/prompt"
	"github.com/goliatone/go-settingstab/pkg/store"
)

var fixture = filepath.Join("..", "..", "pkg", "loader", "testdata", "general.yaml")

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func memoryConfig(t *testing.T) string {
	return writeConfig(t, "[store]\ndriver = \"memory\"\n")
}

func TestRunShow(t *testing.T) {
	var stdout, stderr bytes.Buffer
	c := &cli{stdout: &stdout, stderr: &stderr}

	require.NoError(t, c.run(context.Background(), []string{"show", "-config", memoryConfig(t), fixture}))
	out := stdout.String()
	for _, fragment := range []string{"General (general_tab)", "Store details", "store-name", "Acme", "mode", "x"} {
		assert.Contains(t, out, fragment)
	}
}

func TestRunRenderIncludesPickerAssets(t *testing.T) {
	var stdout, stderr bytes.Buffer
	c := &cli{stdout: &stdout, stderr: &stderr}

	require.NoError(t, c.run(context.Background(), []string{"render", "-config", memoryConfig(t), fixture}))
	out := stdout.String()
	assert.Contains(t, out, `<div class="settingstab" data-tab="general_tab">`)
	assert.Contains(t, out, "/settingstab/settingstab-picker.css")
	assert.Contains(t, out, "/settingstab/settingstab-picker.js")
	assert.Less(t, strings.Index(out, "settingstab-picker.css"), strings.Index(out, `data-tab="general_tab"`))
}

func TestRunRenderUsesConfiguredPage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	c := &cli{stdout: &stdout, stderr: &stderr}
	cfg := writeConfig(t, "page = \"other\"\n[store]\ndriver = \"memory\"\n[log]\nlevel = \"debug\"\n")

	require.NoError(t, c.run(context.Background(), []string{"render", "-config", cfg, fixture}))
	assert.Contains(t, stdout.String(), `data-tab="general_tab"`)
	assert.Contains(t, stdout.String(), "settingstab-picker.js")
	assert.Contains(t, stderr.String(), "normalized")
}

func TestRunSchemaToFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	c := &cli{stdout: &stdout, stderr: &stderr}
	output := filepath.Join(t.TempDir(), "schema.json")

	require.NoError(t, c.run(context.Background(), []string{"schema", "-config", memoryConfig(t), "-output", output, fixture}))
	assert.Contains(t, stdout.String(), "schema written to")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok, "expected properties in %s", data)
	assert.Contains(t, props, "mode")
	assert.Contains(t, props, "tags")
}

type answers struct {
	inputs []string
	picks  []int
	multis [][]int
}

func (a *answers) Input(context.Context, prompt.InputConfig) (string, error) {
	if len(a.inputs) == 0 {
		return "", errors.New("no input scripted")
	}
	v := a.inputs[0]
	a.inputs = a.inputs[1:]
	return v, nil
}

func (a *answers) Password(context.Context, prompt.InputConfig) (string, error) {
	return "", nil
}

func (a *answers) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return false, nil
}

func (a *answers) Select(context.Context, prompt.SelectConfig) (int, error) {
	if len(a.picks) == 0 {
		return -1, errors.New("no select scripted")
	}
	v := a.picks[0]
	a.picks = a.picks[1:]
	return v, nil
}

func (a *answers) MultiSelect(context.Context, prompt.SelectConfig) ([]int, error) {
	if len(a.multis) == 0 {
		return nil, errors.New("no multiselect scripted")
	}
	v := a.multis[0]
	a.multis = a.multis[1:]
	return v, nil
}

func (a *answers) TextArea(context.Context, prompt.TextAreaConfig) (string, error) {
	return "", nil
}

func (a *answers) Info(context.Context, string) error { return nil }

func TestRunEditSavesToFileStore(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "options.toml")
	cfg := writeConfig(t, "[store]\ndriver = \"file\"\npath = \""+filepath.ToSlash(storePath)+"\"\n")

	var stdout, stderr bytes.Buffer
	c := &cli{
		stdout: &stdout,
		stderr: &stderr,
		driver: &answers{inputs: []string{"Shop", "4"}, picks: []int{1}, multis: [][]int{{1}}},
	}
	require.NoError(t, c.run(context.Background(), []string{"edit", "-config", cfg, fixture}))
	assert.Contains(t, stdout.String(), "saved general_tab")

	st, err := store.OpenFile(storePath)
	require.NoError(t, err)
	ctx := context.Background()
	for key, want := range map[string]any{
		"general_tab-store-name": "Shop",
		"general_tab-mode":       "a",
		"general_tab-tags":       []string{"y"},
		"general_tab-retries":    "4",
	} {
		got, ok, err := st.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}
}

func TestRunEditReportsInvalidValues(t *testing.T) {
	var stdout, stderr bytes.Buffer
	c := &cli{
		stdout: &stdout,
		stderr: &stderr,
		driver: &answers{inputs: []string{"Shop", "lots"}, picks: []int{0}, multis: [][]int{{}}},
	}
	err := c.run(context.Background(), []string{"edit", "-config", memoryConfig(t), fixture})
	assert.EqualError(t, err, "validation failed")
	assert.Contains(t, stdout.String(), "retries")
}

func TestRunUsageErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	c := &cli{stdout: &stdout, stderr: &stderr}
	ctx := context.Background()

	assert.Error(t, c.run(ctx, nil))
	assert.Contains(t, stderr.String(), "usage: settingstab-cli")
	assert.Error(t, c.run(ctx, []string{"show", "-config", memoryConfig(t)}))
	assert.ErrorContains(t, c.run(ctx, []string{"bogus", "-config", memoryConfig(t), fixture}), `unknown command "bogus"`)
}

func TestSlogEvents(t *testing.T) {
	var buf bytes.Buffer
	events := slogEvents{log: newSlog(&buf, LogConfig{Level: "info", Format: "json"})}

	events.LogEvent(model.Event{Name: model.EventNormalized, Slug: "demo", Count: 3})
	events.LogEvent(model.Event{Name: model.EventDefaultCorrected, Slug: "demo", FieldID: "mode", From: "z", To: "a"})
	events.LogEvent(model.Event{Name: model.EventAssetsSkipped, Slug: "demo", Message: "page mismatch"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "default_corrected", first["msg"])
	assert.Equal(t, "mode", first["field"])
	assert.Equal(t, "a", first["to"])
	assert.Contains(t, lines[1], `"reason":"page mismatch"`)
}
