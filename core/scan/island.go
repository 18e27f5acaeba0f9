// core/scan/island.go
package scan

import "fmt"

// Island is a maximal run of GC-dense chunks that met the acceptance
// rules. Start and Length are in bases of the scanned sequence.
type Island struct {
	Start  int
	Length int
	GC     int
}

// End returns the exclusive end offset.
func (i Island) End() int { return i.Start + i.Length }

// Density returns the island's GC fraction. Islands always span at
// least one base, so the division needs no guard.
func (i Island) Density() float64 {
	return float64(i.GC) / float64(i.Length)
}

// Slice returns the island's bases from the sequence it was scanned
// from. The caller must pass the same sequence.
func (i Island) Slice(seq []byte) []byte {
	return seq[i.Start : i.Start+i.Length]
}

func (i Island) String() string {
	return fmt.Sprintf("island[%d-%d gc=%d]", i.Start, i.End(), i.GC)
}
