// core/dna/random.go
package dna

import "math/rand"

// Random generates an n-base sequence drawing C/G with total probability gc
// and A/T with the remainder, split evenly within each pair. gc=0.5 gives
// the uniform alphabet of the classic generator; higher values salt the
// sequence with island-like GC runs, which is handy for demos and tests.
// The caller supplies the source so runs are reproducible under a seed.
func Random(n int, gc float64, r *rand.Rand) []byte {
	if n <= 0 {
		return nil
	}
	if gc < 0 {
		gc = 0
	}
	if gc > 1 {
		gc = 1
	}
	out := make([]byte, n)
	half := gc / 2
	for i := range out {
		f := r.Float64()
		switch {
		case f < half:
			out[i] = 'C'
		case f < gc:
			out[i] = 'G'
		case f < gc+(1-gc)/2:
			out[i] = 'A'
		default:
			out[i] = 'T'
		}
	}
	return out
}
