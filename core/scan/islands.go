// core/scan/islands.go
package scan

// ExtractIslands walks ordered contiguous chunks and merges runs of
// GC-dense ones into islands.
//
// A chunk whose density is at least threshold opens an island, or
// extends the current one through its own bases. A chunk below
// threshold closes the current island at the boundary before itself
// and contributes nothing. Wherever an island closes, including at the
// end of input, it is kept only if its span is at least minLength
// bases.
func ExtractIslands(chunks []Chunk, threshold float64, minLength int) []Island {
	var out []Island
	start := -1 // start of the open island, -1 when none
	end := 0    // exclusive end of the open island
	gc := 0

	for _, c := range chunks {
		if c.Density() >= threshold {
			if start < 0 {
				start = c.Start
				gc = 0
			}
			gc += c.GC
			end = c.Start + c.Length
			continue
		}
		if start >= 0 && end-start >= minLength {
			out = append(out, Island{Start: start, Length: end - start, GC: gc})
		}
		start = -1
	}
	if start >= 0 && end-start >= minLength {
		out = append(out, Island{Start: start, Length: end - start, GC: gc})
	}
	return out
}
