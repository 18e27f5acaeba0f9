// pkg/api/islands_v1.go
package api

// IslandV1 is the stable JSON schema for reported CpG islands.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type IslandV1 struct {
	SequenceID string  `json:"sequence_id"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Length     int     `json:"length"`
	GC         int     `json:"gc"`
	Density    float64 `json:"density"`
	Seq        string  `json:"seq,omitempty"`
	SourceFile string  `json:"source_file,omitempty"`
}
