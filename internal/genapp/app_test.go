// internal/genapp/app_test.go
package genapp

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"cpgscan-core/fasta"
)

func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var out, errB bytes.Buffer
	code := Run(args, &out, &errB)
	return out.String(), errB.String(), code
}

func TestGenerateWrapsLines(t *testing.T) {
	out, errS, code := run(t, "-n", "130", "-w", "60", "--seed", "5", "-q")
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errS)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 || lines[0] != ">random_1" {
		t.Fatalf("unexpected layout:\n%s", out)
	}
	if len(lines[1]) != 60 || len(lines[2]) != 60 || len(lines[3]) != 10 {
		t.Fatalf("bad wrapping: %d %d %d", len(lines[1]), len(lines[2]), len(lines[3]))
	}
}

func TestGenerateCountAndIDs(t *testing.T) {
	out, _, code := run(t, "-n", "8", "-c", "3", "--id", "chr", "--seed", "1", "-q")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	for _, id := range []string{">chr_1", ">chr_2", ">chr_3"} {
		if !strings.Contains(out, id+"\n") {
			t.Errorf("missing record %s:\n%s", id, out)
		}
	}
}

func TestSeedReproducible(t *testing.T) {
	a, _, _ := run(t, "-n", "256", "--seed", "9", "-q")
	b, _, _ := run(t, "-n", "256", "--seed", "9", "-q")
	if a != b {
		t.Fatalf("same seed should reproduce the same FASTA")
	}
	c, _, _ := run(t, "-n", "256", "--seed", "10", "-q")
	if a == c {
		t.Fatalf("different seeds should differ")
	}
}

func TestGCBiasExtremes(t *testing.T) {
	out, _, code := run(t, "-n", "64", "--gc", "1", "--seed", "2", "-w", "0", "-q")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	seq := strings.Split(strings.TrimRight(out, "\n"), "\n")[1]
	if strings.ContainsAny(seq, "AT") {
		t.Fatalf("gc=1 should emit only G/C: %s", seq)
	}
}

func TestOutputIsScannable(t *testing.T) {
	out, _, code := run(t, "-n", "100", "-c", "2", "--seed", "3", "-q")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var records, bases int
	err := fasta.StreamCtx(context.Background(), strings.NewReader(out), func(r fasta.Record) error {
		records++
		bases += len(r.Seq)
		return nil
	})
	if err != nil {
		t.Fatalf("parse back: %v", err)
	}
	if records != 2 || bases != 200 {
		t.Fatalf("round-trip mismatch: records=%d bases=%d", records, bases)
	}
}

func TestUsageErrorExit2(t *testing.T) {
	if _, _, code := run(t, "-n", "0"); code != 2 {
		t.Fatalf("want exit 2, got %d", code)
	}
	if _, _, code := run(t, "stray"); code != 2 {
		t.Fatalf("positional should exit 2, got %d", code)
	}
}

func TestVersionFlag(t *testing.T) {
	out, _, code := run(t, "--version")
	if code != 0 || !strings.HasPrefix(out, "cpgscan-gen version ") {
		t.Fatalf("version output %q code %d", out, code)
	}
}

func TestSummaryOnStderr(t *testing.T) {
	_, errS, code := run(t, "-n", "16", "--seed", "4")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(errS, "generated 1 record(s)") {
		t.Fatalf("missing summary: %q", errS)
	}
}
