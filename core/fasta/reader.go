// core/fasta/reader.go
package fasta

import (
	"context"
)

// Record represents a parsed FASTA sequence. Seq is normalized to
// uppercase at parse time.
type Record struct {
	ID  string
	Seq []byte
}

// ReadAll loads every record from path into memory. Intended for small
// inputs and tests; scanning code should prefer StreamPathCtx.
func ReadAll(path string) ([]Record, error) {
	var recs []Record
	err := StreamPathCtx(context.Background(), path, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}
