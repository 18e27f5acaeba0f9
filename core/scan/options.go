// core/scan/options.go
package scan

import (
	"errors"
	"fmt"
	"math"
	"runtime"
)

// ErrConfig is wrapped by every Options validation failure.
var ErrConfig = errors.New("scan: invalid configuration")

// Options holds the scanner parameters.
type Options struct {
	// ChunkSize is the maximum piece length, in bases, produced by
	// partitioning.
	ChunkSize int
	// Threshold is the minimum GC density for a piece to open or
	// extend an island. Must lie within [0,1].
	Threshold float64
	// MinLength is the minimum span, in bases, an island must reach
	// to be kept.
	MinLength int
	// Workers is the pool size used per scan; <= 0 selects all CPUs.
	Workers int
}

// Defaults returns the stock scanner parameters.
func Defaults() Options {
	return Options{ChunkSize: 4, Threshold: 0.6, MinLength: 8}
}

// Validate reports the first invalid field, wrapped in ErrConfig.
func (o Options) Validate() error {
	if o.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size must be positive, got %d", ErrConfig, o.ChunkSize)
	}
	if o.MinLength <= 0 {
		return fmt.Errorf("%w: min island length must be positive, got %d", ErrConfig, o.MinLength)
	}
	if math.IsNaN(o.Threshold) || o.Threshold < 0 || o.Threshold > 1 {
		return fmt.Errorf("%w: threshold must be within [0,1], got %v", ErrConfig, o.Threshold)
	}
	return nil
}

// effectiveWorkers resolves Workers to a concrete pool size.
func (o Options) effectiveWorkers() int {
	if o.Workers <= 0 {
		return runtime.NumCPU()
	}
	return o.Workers
}
