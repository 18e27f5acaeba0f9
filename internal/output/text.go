// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"cpgscan/internal/report"
)

func writeRowTSV(w io.Writer, is report.Island) error {
	_, err := fmt.Fprintln(w, FormatRowTSV(is))
	return err
}

// StreamText prints one TSV line per island as it arrives.
func StreamText(w io.Writer, in <-chan report.Island, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for is := range in {
		if err := writeRowTSV(w, is); err != nil {
			return err
		}
	}
	return nil
}

// WriteText writes a slice of islands as TSV.
func WriteText(w io.Writer, list []report.Island, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, is := range list {
		if err := writeRowTSV(w, is); err != nil {
			return err
		}
	}
	return nil
}
