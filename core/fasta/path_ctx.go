// core/fasta/path_ctx.go
package fasta

import "context"

// StreamPathCtx opens `path` (gzip and "-" for stdin are handled
// transparently) and streams its records through emit.
//
// Cancellation via ctx is honored promptly, between lines and between
// records. emit may return a non-nil error (e.g. ctx.Err()) to stop early.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamCtx(ctx, rc, emit)
}
