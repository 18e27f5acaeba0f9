// internal/genapp/app.go
package genapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"time"

	"cpgscan-core/dna"
	"cpgscan/internal/cmdutil"
	"cpgscan/internal/gencli"
	"cpgscan/internal/runutil"
	"cpgscan/internal/version"
	"cpgscan/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := gencli.NewFlagSet("cpgscan-gen")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		// Register flags so Usage can look up default values.
		_, _ = gencli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	opts, err := gencli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "cpgscan-gen version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	seed := runutil.EffectiveSeed(opts.Seed)
	rng := rand.New(rand.NewSource(seed))

	start := time.Now()
	for i := 1; i <= opts.Count; i++ {
		if parent.Err() != nil {
			return 130
		}
		id := fmt.Sprintf("%s_%d", opts.IDPrefix, i)
		seq := dna.Random(opts.Length, opts.GCBias, rng)
		if err := writeRecord(outw, id, seq, opts.LineWidth); err != nil {
			if writers.IsBrokenPipe(err) {
				return 0
			}
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	cmdutil.Logf(stderr, opts.Quiet, "generated %d record(s) of %d bases (gc=%.2f, seed=%d) in %s",
		opts.Count, opts.Length, opts.GCBias, seed, time.Since(start).Round(time.Millisecond))
	return 0
}

// writeRecord writes one FASTA record, wrapping the sequence at width
// columns. width <= 0 writes the sequence on a single line.
func writeRecord(w io.Writer, id string, seq []byte, width int) error {
	if _, err := fmt.Fprintf(w, ">%s\n", id); err != nil {
		return err
	}
	if width <= 0 {
		width = len(seq)
	}
	for len(seq) > 0 {
		n := width
		if n > len(seq) {
			n = len(seq)
		}
		if _, err := w.Write(seq[:n]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		seq = seq[n:]
	}
	return nil
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
