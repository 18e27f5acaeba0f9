package fasta

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStreamPathCtx_CancelImmediately_YieldsNoRecords(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "x.fa")
	if err := os.WriteFile(fn, []byte(">s\nACGT\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // already canceled

	n := 0
	err := StreamPathCtx(ctx, fn, func(Record) error {
		n++
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 records due to immediate cancel, got %d", n)
	}
}
