// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"cpgscan-core/dna"
	"cpgscan-core/fasta"
	"cpgscan-core/scan"
	"cpgscan/internal/cli"
	"cpgscan/internal/cmdutil"
	"cpgscan/internal/pipeline"
	"cpgscan/internal/report"
	"cpgscan/internal/runutil"
	"cpgscan/internal/version"
	"cpgscan/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("cpgscan")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		// Register flags so Usage can look up default values.
		_, _ = cli.ParseArgs(fs, []string{"-h"})
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

	opts, err := cli.ParseArgs(fs, argv)
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
		if errors.Is(err, cli.ErrPrintedAndExitOK) {
			cli.PrintExamples(outw, fs.Name())
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
		_, _ = fmt.Fprintf(outw, "cpgscan version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	scanner, err := scan.New(scan.Options{
		ChunkSize: opts.ChunkSize,
		Threshold: opts.Threshold,
		MinLength: opts.MinLength,
		Workers:   opts.Threads,
	})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	// Inline and generated sequences are scanned after the files.
	var extra []fasta.Record
	if opts.Seq != "" {
		seq := []byte(strings.ToUpper(opts.Seq))
		if err := dna.Validate(seq); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		extra = append(extra, fasta.Record{ID: "inline", Seq: seq})
	}
	if opts.RandomLen > 0 {
		seed := runutil.EffectiveSeed(opts.Seed)
		rng := rand.New(rand.NewSource(seed))
		extra = append(extra, fasta.Record{ID: "random", Seq: dna.Random(opts.RandomLen, opts.GCBias, rng)})
		cmdutil.Logf(stderr, opts.Quiet, "generated %d bases with seed %d", opts.RandomLen, seed)
	} else if opts.Seed != 0 || opts.GCBias != 0.5 {
		cmdutil.Warnf(stderr, opts.Quiet, "--seed/--gc only affect --random-length sequences")
	}

	thr := scanner.Workers()
	inCh, writeErr := writers.StartIslandWriter(outw, opts.Output, opts.Header, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	start := time.Now()
	st, perr := pipeline.ForEachIsland(ctx,
		pipeline.Config{
			Scanner: scanner,
			NeedSeq: runutil.ComputeNeedSeq(opts.Output, opts.Products),
		},
		opts.SeqFiles,
		extra,
		func(is report.Island) error {
			select {
			case inCh <- is:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		return 3
	}

	cmdutil.Logf(stderr, opts.Quiet, "run %s: %d records, %d chunks, %d islands in %s (%d workers)",
		uuid.NewString(), st.Records, st.Chunks, st.Islands,
		time.Since(start).Round(time.Millisecond), thr)

	if st.Islands == 0 {
		return opts.NoMatchExitCode
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
