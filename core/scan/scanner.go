// core/scan/scanner.go

// Package scan locates CpG islands in DNA sequences. A sequence is
// partitioned into fixed-size pieces scored in parallel, then the
// ordered pieces are merged into islands by a linear pass.
package scan

import (
	"context"

	"cpgscan-core/task"
)

// Result is the outcome of scanning one sequence.
type Result struct {
	Chunks  int // number of scored pieces produced by partitioning
	Islands []Island
}

// Scanner runs CpG-island scans with fixed options.
type Scanner struct {
	opts Options
}

// New validates opts and creates a Scanner.
func New(opts Options) (*Scanner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Scanner{opts: opts}, nil
}

// Options returns the scanner's configuration.
func (s *Scanner) Options() Options { return s.opts }

// Workers reports the pool size a scan will use.
func (s *Scanner) Workers() int { return s.opts.effectiveWorkers() }

// Scan partitions seq, scores the pieces on a fresh pool and extracts
// islands. An empty seq yields a zero Result and no error. For a given
// seq and options the result does not depend on Workers.
func (s *Scanner) Scan(ctx context.Context, seq []byte) (Result, error) {
	if len(seq) == 0 {
		return Result{}, nil
	}
	pool := task.New[[]Chunk](s.opts.effectiveWorkers())
	defer pool.Close()

	chunks, err := Partition(ctx, seq, s.opts.ChunkSize, pool)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Chunks:  len(chunks),
		Islands: ExtractIslands(chunks, s.opts.Threshold, s.opts.MinLength),
	}, nil
}
