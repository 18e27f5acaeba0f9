// core/scan/partition.go
package scan

import (
	"context"

	"cpgscan-core/dna"
	"cpgscan-core/task"
)

// Partition splits seq into successive pieces of at most chunkSize
// bases and counts the GC bases of each. Splits land on the piece
// grid, so every piece is exactly chunkSize long except possibly the
// last. The two halves of every split are scored as pool tasks,
// recursively, and re-joined left before right, so the returned chunks
// are ordered by Start and cover seq exactly regardless of task
// completion order. An empty seq yields nil chunks and no error.
func Partition(ctx context.Context, seq []byte, chunkSize int, pool *task.Pool[[]Chunk]) ([]Chunk, error) {
	return partition(ctx, seq, 0, chunkSize, pool)
}

func partition(ctx context.Context, seq []byte, base, chunkSize int, pool *task.Pool[[]Chunk]) ([]Chunk, error) {
	if len(seq) == 0 {
		return nil, nil
	}
	if len(seq) <= chunkSize {
		return []Chunk{{Start: base, Length: len(seq), GC: dna.CountGC(seq)}}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// Half the piece count, not half the byte count. Both halves stay
	// non-empty whenever len(seq) > chunkSize.
	npieces := (len(seq) + chunkSize - 1) / chunkSize
	mid := npieces / 2 * chunkSize

	left := pool.Submit(func() ([]Chunk, error) {
		return partition(ctx, seq[:mid], base, chunkSize, pool)
	})
	right := pool.Submit(func() ([]Chunk, error) {
		return partition(ctx, seq[mid:], base+mid, chunkSize, pool)
	})
	l, err := left.Result()
	if err != nil {
		return nil, err
	}
	r, err := right.Result()
	if err != nil {
		return nil, err
	}
	return append(l, r...), nil
}
