package writers

import (
	"fmt"
	"io"

	"cpgscan/internal/output"
	"cpgscan/internal/report"
)

// StartIslandWriter spins up a writer goroutine for report.Island items.
// Islands are written in arrival order; closing the returned channel
// finishes the writer and its final error arrives on the error channel.
func StartIslandWriter(out io.Writer, format string, header bool, bufSize int) (chan<- report.Island, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan report.Island, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case output.FormatJSON:
			// JSON is one array; buffer until the channel closes.
			var buf []report.Island
			for is := range in {
				buf = append(buf, is)
			}
			err = output.WriteJSON(out, buf)

		case output.FormatJSONL:
			pipe, done := StartIslandJSONLWriter(out, bufSize)
			for is := range in {
				pipe <- is
			}
			close(pipe)
			err = <-done

		case output.FormatFASTA:
			err = output.StreamFASTA(out, in)

		case output.FormatText:
			err = output.StreamText(out, in, header)

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		errCh <- err
		// Drain leftovers so a blocked producer can always finish.
		for range in {
		}
	}()

	return in, errCh
}
