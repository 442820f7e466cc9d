package testsupport

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-settingstab/pkg/model"
)

func TestMustPrepareUsesSequentialKeys(t *testing.T) {
	fields := MustPrepare(t, "demo", []model.Descriptor{{Title: "First"}, {Title: "Second"}})

	var keys []string
	for _, f := range fields {
		if !f.Structural() {
			keys = append(keys, f.FieldKey())
		}
	}
	if diff := cmp.Diff([]string{"first_k1", "second_k2"}, keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestSampleDescriptorsNormalize(t *testing.T) {
	fields := MustPrepare(t, "demo", SampleDescriptors())
	ids := FieldIDs(fields)
	if ids[0] != "demo-store_section" || ids[len(ids)-1] != "demo-store_section_end" {
		t.Fatalf("unexpected boundaries: %v", ids)
	}
}

func TestRecordingLogger(t *testing.T) {
	logger := &RecordingLogger{}
	logger.LogEvent(model.Event{Name: model.EventNormalized})
	if diff := cmp.Diff([]string{model.EventNormalized}, logger.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}
