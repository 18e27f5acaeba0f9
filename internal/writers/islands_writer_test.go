package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"cpgscan/internal/report"
	"cpgscan/pkg/api"
)

func TestStartIslandWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartIslandWriter(&buf, "json", false, 4)
	in <- report.Island{SequenceID: "s", Start: 0, End: 4, Length: 4, GC: 4, Density: 1}
	in <- report.Island{SequenceID: "s", Start: 8, End: 12, Length: 4, GC: 3, Density: 0.75}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	var got []api.IslandV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil || len(got) != 2 {
		t.Fatalf("json roundtrip: %v len=%d", err, len(got))
	}
	if got[0].Start != 0 || got[1].Start != 8 {
		t.Fatalf("arrival order lost: %+v", got)
	}
}

func TestStartIslandWriter_TextHeader(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartIslandWriter(&buf, "text", true, 0)
	in <- report.Island{SequenceID: "s", Start: 0, End: 4, Length: 4, GC: 2, Density: 0.5}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "source_file\t") {
		t.Fatalf("unexpected text output: %q", buf.String())
	}
}

func TestStartIslandWriter_JSONL(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartIslandWriter(&buf, "jsonl", false, 4)
	in <- report.Island{SequenceID: "s", Start: 0, End: 4, Length: 4, GC: 4, Density: 1}
	in <- report.Island{SequenceID: "s", Start: 8, End: 12, Length: 4, GC: 3, Density: 0.75}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want one JSON object per line, got %q", buf.String())
	}
	for _, ln := range lines {
		var is api.IslandV1
		if err := json.Unmarshal([]byte(ln), &is); err != nil {
			t.Fatalf("line not valid JSON: %q (%v)", ln, err)
		}
	}
}

func TestStartIslandWriter_FASTA(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartIslandWriter(&buf, "fasta", false, 4)
	in <- report.Island{SequenceID: "s", Seq: "CGCG", Start: 0, End: 4, Length: 4, GC: 4, Density: 1}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	if !strings.HasPrefix(buf.String(), ">s_island_1 ") {
		t.Fatalf("unexpected fasta output: %q", buf.String())
	}
}

func TestStartIslandWriter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartIslandWriter(&buf, "xml", false, 1)
	close(in)
	if err := <-done; err == nil {
		t.Fatalf("want error for unknown format")
	}
}
