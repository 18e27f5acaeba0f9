// core/scan/islands_test.go
package scan

import (
	"reflect"
	"testing"
)

func TestExtractIslands(t *testing.T) {
	cases := []struct {
		name      string
		chunks    []Chunk
		threshold float64
		minLength int
		want      []Island
	}{
		{
			name: "alternating dense and sparse runs",
			chunks: []Chunk{
				{0, 2, 2}, {2, 2, 2}, {4, 2, 0}, {6, 2, 0}, {8, 2, 2}, {10, 2, 2},
			},
			threshold: 0.5,
			minLength: 4,
			want:      []Island{{0, 4, 4}, {8, 4, 4}},
		},
		{
			name:      "single chunk spanning min length",
			chunks:    []Chunk{{0, 8, 6}},
			threshold: 0.5,
			minLength: 8,
			want:      []Island{{0, 8, 6}},
		},
		{
			name:      "single chunk under min length",
			chunks:    []Chunk{{0, 4, 4}},
			threshold: 0.5,
			minLength: 8,
			want:      nil,
		},
		{
			name:      "final accepted chunk extends through its own bases",
			chunks:    []Chunk{{0, 4, 4}, {4, 4, 3}},
			threshold: 0.5,
			minLength: 8,
			want:      []Island{{0, 8, 7}},
		},
		{
			name:      "final rejected chunk closes before itself",
			chunks:    []Chunk{{0, 4, 4}, {4, 4, 0}},
			threshold: 0.5,
			minLength: 8,
			want:      nil,
		},
		{
			name:      "rejected chunk splits two qualifying runs",
			chunks:    []Chunk{{0, 4, 4}, {4, 2, 0}, {6, 4, 3}},
			threshold: 0.5,
			minLength: 4,
			want:      []Island{{0, 4, 4}, {6, 4, 3}},
		},
		{
			name:      "zero threshold accepts everything",
			chunks:    []Chunk{{0, 4, 0}, {4, 4, 1}},
			threshold: 0,
			minLength: 8,
			want:      []Island{{0, 8, 1}},
		},
		{
			name:      "exact threshold counts as dense",
			chunks:    []Chunk{{0, 4, 2}},
			threshold: 0.5,
			minLength: 4,
			want:      []Island{{0, 4, 2}},
		},
		{
			name:      "nothing dense",
			chunks:    []Chunk{{0, 4, 0}, {4, 4, 1}},
			threshold: 0.5,
			minLength: 1,
			want:      nil,
		},
		{
			name:      "no chunks",
			chunks:    nil,
			threshold: 0.5,
			minLength: 1,
			want:      nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractIslands(tc.chunks, tc.threshold, tc.minLength)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("islands = %v, want %v", got, tc.want)
			}
		})
	}
}

// Islands must come back sorted by start and disjoint no matter how
// the dense runs fall.
func TestExtractIslandsOrderedAndDisjoint(t *testing.T) {
	chunks := []Chunk{
		{0, 3, 3}, {3, 3, 0}, {6, 3, 3}, {9, 3, 3}, {12, 3, 0}, {15, 3, 2},
	}
	islands := ExtractIslands(chunks, 0.6, 3)
	for i := 1; i < len(islands); i++ {
		if islands[i].Start < islands[i-1].End() {
			t.Fatalf("islands overlap or unsorted: %v then %v", islands[i-1], islands[i])
		}
	}
	for _, is := range islands {
		if is.Length < 3 {
			t.Fatalf("island shorter than min length: %v", is)
		}
	}
}

func TestChunkDensity(t *testing.T) {
	if d := (Chunk{0, 4, 3}).Density(); d != 0.75 {
		t.Fatalf("density = %v, want 0.75", d)
	}
	if d := (Chunk{0, 5, 0}).Density(); d != 0 {
		t.Fatalf("AT-only chunk density = %v, want 0", d)
	}
}

func TestIslandSlice(t *testing.T) {
	seq := []byte("ATCGCGAT")
	is := Island{Start: 2, Length: 4, GC: 4}
	if got := string(is.Slice(seq)); got != "CGCG" {
		t.Fatalf("slice = %q, want %q", got, "CGCG")
	}
	if is.End() != 6 {
		t.Fatalf("end = %d, want 6", is.End())
	}
	if is.Density() != 1 {
		t.Fatalf("density = %v, want 1", is.Density())
	}
}
