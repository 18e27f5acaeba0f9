package output

import (
	"fmt"
	"io"

	"cpgscan/internal/report"
)

func writeFASTARecord(w io.Writer, is report.Island, idx int) error {
	src := ""
	if is.SourceFile != "" {
		src = " source_file=" + is.SourceFile
	}
	_, err := fmt.Fprintf(
		w,
		">%s_island_%d start=%d end=%d len=%d gc=%d%s\n%s\n",
		is.SequenceID, idx, is.Start, is.End, is.Length, is.GC, src, is.Seq,
	)
	return err
}

// StreamFASTA streams islands that carry sequence content as FASTA
// records. Islands without a sequence are skipped.
func StreamFASTA(w io.Writer, in <-chan report.Island) error {
	idx := 1
	for is := range in {
		if is.Seq == "" {
			continue
		}
		if err := writeFASTARecord(w, is, idx); err != nil {
			return err
		}
		idx++
	}
	return nil
}

// WriteFASTA writes a slice of islands as FASTA records.
func WriteFASTA(w io.Writer, list []report.Island) error {
	idx := 1
	for _, is := range list {
		if is.Seq == "" {
			continue
		}
		if err := writeFASTARecord(w, is, idx); err != nil {
			return err
		}
		idx++
	}
	return nil
}
