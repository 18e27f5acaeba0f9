// internal/output/rows.go
package output

import (
	"fmt"

	"cpgscan/internal/report"
)

// FormatRowTSV returns the 7 base columns (no trailing newline).
// Density is fixed to 4 decimals so text output is stable across runs.
func FormatRowTSV(is report.Island) string {
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%d\t%d\t%.4f",
		is.SourceFile, is.SequenceID,
		is.Start, is.End, is.Length, is.GC, is.Density,
	)
}
