// internal/writers/islands_jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"cpgscan/internal/jsonlutil"
	"cpgscan/internal/output"
	"cpgscan/internal/report"
)

// StartIslandJSONLWriter streams each report.Island as one JSON line (v1).
func StartIslandJSONLWriter(out io.Writer, bufSize int) (chan<- report.Island, <-chan error) {
	return jsonlutil.Start[report.Island](out, bufSize,
		func(enc *json.Encoder, is report.Island) error {
			return enc.Encode(output.ToAPIIsland(is))
		},
		IsBrokenPipe,
	)
}
