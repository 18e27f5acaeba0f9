package output

import "testing"

func TestTSVHeader_Stable(t *testing.T) {
	const want = "source_file\tsequence_id\tstart\tend\tlength\tgc\tdensity"
	if TSVHeader != want {
		t.Fatalf("TSVHeader changed:\n got:  %q\n want: %q", TSVHeader, want)
	}
}

func TestFormats_Stable(t *testing.T) {
	if FormatText != "text" || FormatJSON != "json" || FormatJSONL != "jsonl" || FormatFASTA != "fasta" {
		t.Fatalf("output format constants changed")
	}
}
