// internal/cli/examples.go
package cli

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested
// examples. Apps should catch this and exit 0.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples prints a small quickstart block, followed by a one-line
// tip to discover full help.
func PrintExamples(out io.Writer, name string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s – quickstart\n\n", name)
	_, _ = fmt.Fprintf(out, "  # scan a genome with the defaults\n")
	_, _ = fmt.Fprintf(out, "  %s genome.fa\n\n", name)
	_, _ = fmt.Fprintf(out, "  # stricter islands: density >= 0.7 over at least 200 bp\n")
	_, _ = fmt.Fprintf(out, "  %s --threshold 0.7 --min-length 200 genome.fa\n\n", name)
	_, _ = fmt.Fprintf(out, "  # quick look at an inline fragment\n")
	_, _ = fmt.Fprintf(out, "  %s --seq CGCGATATCGCG -c 2 --threshold 0.5 -m 4\n\n", name)
	_, _ = fmt.Fprintf(out, "  # machine-readable output straight from a gzip\n")
	_, _ = fmt.Fprintf(out, "  %s -o json genome.fa.gz\n", name)
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
