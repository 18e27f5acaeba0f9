// internal/report/island.go
package report

// Island is one reported CpG island, enriched with the record and file
// it came from. Coordinates are 0-based, End exclusive.
type Island struct {
	SourceFile string `json:"source_file,omitempty"`
	SequenceID string `json:"sequence_id"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
	Length     int    `json:"length"`
	GC         int    `json:"gc"`

	// GC / Length
	Density float64 `json:"density"`

	// Optional island sequence
	Seq string `json:"seq,omitempty"`
}
