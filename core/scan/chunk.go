// core/scan/chunk.go
package scan

import "fmt"

// Chunk is one ordered piece of a partitioned sequence with its GC
// count. Start and Length are in bases relative to the scanned
// sequence; chunks produced by Partition are contiguous, cover it, and
// always have positive Length.
type Chunk struct {
	Start  int
	Length int
	GC     int
}

// Density returns the GC fraction of the chunk. Partition never
// produces an empty chunk, so the division needs no guard.
func (c Chunk) Density() float64 {
	return float64(c.GC) / float64(c.Length)
}

func (c Chunk) String() string {
	return fmt.Sprintf("chunk[%d+%d gc=%d]", c.Start, c.Length, c.GC)
}
