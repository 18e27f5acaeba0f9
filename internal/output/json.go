// internal/output/json.go
package output

import (
	"io"

	"cpgscan/internal/jsonutil"
	"cpgscan/internal/report"
	"cpgscan/pkg/api"
)

// ToAPIIsland converts a reported island to the stable wire schema (v1).
func ToAPIIsland(is report.Island) api.IslandV1 {
	return api.IslandV1{
		SequenceID: is.SequenceID,
		Start:      is.Start,
		End:        is.End,
		Length:     is.Length,
		GC:         is.GC,
		Density:    is.Density,
		Seq:        is.Seq,
		SourceFile: is.SourceFile,
	}
}

func toAPIIslands(list []report.Island) []api.IslandV1 {
	out := make([]api.IslandV1, 0, len(list))
	for _, is := range list {
		out = append(out, ToAPIIsland(is))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 islands (pretty-indented).
func WriteJSON(w io.Writer, list []report.Island) error {
	return jsonutil.EncodePretty(w, toAPIIslands(list))
}
