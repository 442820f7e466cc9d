package prompt

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/AlecAivazis/survey/v2/core"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-settingstab/pkg/admin"
	"github.com/goliatone/go-settingstab/pkg/store"
	"github.com/goliatone/go-settingstab/pkg/testsupport"
)

type stubDriver struct {
	inputs    []string
	selectIdx []int
	multiIdx  [][]int
	confirm   []bool
	textAreas []string
	passwords []string

	infoMessages []string
	selects      []SelectConfig
	multis       []SelectConfig
	inputConfigs []InputConfig

	inputPos   int
	selectPos  int
	multiPos   int
	confirmPos int
	textPos    int
	passPos    int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputConfigs = append(s.inputConfigs, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, _ InputConfig) (string, error) {
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selects = append(s.selects, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	s.multis = append(s.multis, cfg)
	if s.multiPos >= len(s.multiIdx) {
		return nil, errors.New("no multiselect scripted")
	}
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func scriptedDriver() *stubDriver {
	return &stubDriver{
		inputs:    []string{"Shop", "7"},
		textAreas: []string{"hi"},
		selectIdx: []int{1, 2, 0},
		multiIdx:  [][]int{{1}},
		confirm:   []bool{false},
		passwords: []string{""},
	}
}

func TestEditCollectsAnswersAsForm(t *testing.T) {
	driver := scriptedDriver()
	st := store.NewMemoryStoreWith(map[string]any{"demo-api_key": "old"})
	fields := testsupport.MustPrepare(t, "demo", testsupport.SampleDescriptors())

	form, err := NewEditor(WithDriver(driver), WithStore(st)).Edit(context.Background(), fields)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}

	want := url.Values{
		"demo-store_name": {"Shop"},
		"demo-notes":      {"hi"},
		"demo-mode":       {"b"},
		"demo-country":    {"ca"},
		"demo-tags[]":     {"y"},
		"demo-size":       {"s"},
		"demo-retries":    {"7"},
		"demo-api_key":    {"old"},
	}
	if diff := cmp.Diff(want, form); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"== Store =="}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestEditUsesCurrentValuesAsDefaults(t *testing.T) {
	driver := scriptedDriver()
	st := store.NewMemoryStoreWith(map[string]any{"demo-mode": "b", "demo-tags": []string{"y"}})
	fields := testsupport.MustPrepare(t, "demo", testsupport.SampleDescriptors())

	if _, err := NewEditor(WithDriver(driver), WithStore(st)).Edit(context.Background(), fields); err != nil {
		t.Fatalf("edit: %v", err)
	}

	if got := driver.selects[0].DefaultIndex; got != 1 {
		t.Fatalf("expected stored mode to preselect index 1, got %d", got)
	}
	if diff := cmp.Diff([]string{"United States", "Canada"}, driver.selects[1].Options[1:]); diff != "" {
		t.Fatalf("country options mismatch (-want +got):\n%s", diff)
	}
	if got := driver.selects[2].DefaultIndex; got != 1 {
		t.Fatalf("expected size default l at index 1, got %d", got)
	}
	if diff := cmp.Diff([]int{1}, driver.multis[0].Defaults); diff != "" {
		t.Fatalf("tags defaults mismatch (-want +got):\n%s", diff)
	}
	if got := driver.inputConfigs[0].Default; got != "Acme" {
		t.Fatalf("expected declared default for store name, got %q", got)
	}
}

func TestEditInputValidatorUsesFieldSchema(t *testing.T) {
	driver := scriptedDriver()
	fields := testsupport.MustPrepare(t, "demo", testsupport.SampleDescriptors())
	if _, err := NewEditor(WithDriver(driver)).Edit(context.Background(), fields); err != nil {
		t.Fatalf("edit: %v", err)
	}

	retries := driver.inputConfigs[1]
	if retries.Validator == nil {
		t.Fatalf("expected validator on number input")
	}
	if err := retries.Validator("12"); err != nil {
		t.Fatalf("expected number to pass: %v", err)
	}
	if err := retries.Validator("many"); err == nil {
		t.Fatalf("expected non-number to fail")
	}
}

func TestEditedFormResolvesThroughSaver(t *testing.T) {
	fields := testsupport.MustPrepare(t, "demo", testsupport.SampleDescriptors())
	form, err := NewEditor(WithDriver(scriptedDriver())).Edit(context.Background(), fields)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}

	values, err := admin.Resolve(fields, form)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if values["demo-enabled"] != "" {
		t.Fatalf("expected unchecked box to resolve empty, got %v", values["demo-enabled"])
	}
	if diff := cmp.Diff([]string{"y"}, values["demo-tags"]); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestEditStopsOnDriverError(t *testing.T) {
	driver := &stubDriver{}
	fields := testsupport.MustPrepare(t, "demo", testsupport.SampleDescriptors())
	_, err := NewEditor(WithDriver(driver)).Edit(context.Background(), fields)
	if err == nil {
		t.Fatalf("expected error when the driver has no answers")
	}
}

func TestEditHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fields := testsupport.MustPrepare(t, "demo", testsupport.SampleDescriptors())
	if _, err := NewEditor(WithDriver(scriptedDriver())).Edit(ctx, fields); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSurveyPromptsUseIndices(t *testing.T) {
	options := []string{"Same", "Same", "Other"}

	single := selectPrompt(SelectConfig{Options: options, DefaultIndex: 1})
	if single.Default != 1 {
		t.Fatalf("expected select default index 1, got %#v", single.Default)
	}
	if unset := selectPrompt(SelectConfig{Options: options, DefaultIndex: 7}); unset.Default != nil {
		t.Fatalf("expected out of range default to be dropped, got %#v", unset.Default)
	}

	multi := multiSelectPrompt(SelectConfig{Options: options, Defaults: []int{1, 9, 2}})
	if diff := cmp.Diff([]int{1, 2}, multi.Default); diff != "" {
		t.Fatalf("multiselect defaults mismatch (-want +got):\n%s", diff)
	}

	var picked int
	if err := core.WriteAnswer(&picked, "", core.OptionAnswer{Value: "Same", Index: 1}); err != nil {
		t.Fatalf("write select answer: %v", err)
	}
	if picked != 1 {
		t.Fatalf("expected second duplicate label to resolve to index 1, got %d", picked)
	}

	var many []int
	answers := []core.OptionAnswer{{Value: "Same", Index: 1}, {Value: "Other", Index: 2}}
	if err := core.WriteAnswer(&many, "", answers); err != nil {
		t.Fatalf("write multiselect answer: %v", err)
	}
	if diff := cmp.Diff([]int{1, 2}, many); diff != "" {
		t.Fatalf("multiselect answer mismatch (-want +got):\n%s", diff)
	}
}
