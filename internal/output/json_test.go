// internal/output/json_test.go
package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"cpgscan/internal/report"
	"cpgscan/pkg/api"
)

func TestWriteJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	list := []report.Island{{
		SequenceID: "s", Start: 0, End: 4, Length: 4, GC: 4, Density: 1,
	}}
	if err := WriteJSON(buf, list); err != nil {
		t.Fatalf("json write: %v", err)
	}
	var got []api.IslandV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil || len(got) != 1 || got[0].SequenceID != "s" {
		t.Fatalf("json round-trip failed: %v %v", err, got)
	}
	if got[0].Length != 4 || got[0].GC != 4 || got[0].Density != 1 {
		t.Fatalf("fields lost in conversion: %+v", got[0])
	}
}

func TestWriteJSON_OmitsEmptySeq(t *testing.T) {
	var buf bytes.Buffer
	is := report.Island{SequenceID: "s", Start: 0, End: 8, Length: 8, GC: 6, Density: 0.75}
	if err := WriteJSON(&buf, []report.Island{is}); err != nil {
		t.Fatal(err)
	}
	var out []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) == 0 {
		t.Fatalf("expected JSON array with at least one element")
	}
	if _, ok := out[0]["seq"]; ok {
		t.Fatalf("seq should be omitted when no sequence was requested")
	}
	if _, ok := out[0]["source_file"]; ok {
		t.Fatalf("source_file should be omitted for inline scans")
	}
}

func TestWriteJSON_EmptyListIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	var out []api.IslandV1
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("empty output should still be a JSON array: %v", err)
	}
}
