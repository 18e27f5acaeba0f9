// internal/pipeline/scanner.go
package pipeline

import (
	"context"

	"cpgscan-core/scan"
)

// Scanner is the minimal capability the pipeline needs.
// Any scanner (including fakes in tests) can satisfy this.
type Scanner interface {
	Scan(ctx context.Context, seq []byte) (scan.Result, error)
}
