// internal/pipeline/pipeline.go
package pipeline

import (
	"context"

	"cpgscan-core/fasta"
	"cpgscan/internal/report"
)

// Config controls the scanning pipeline.
type Config struct {
	Scanner Scanner
	NeedSeq bool // fill Island.Seq by slicing the record sequence
}

// Stats summarizes a finished run.
type Stats struct {
	Records int
	Chunks  int
	Islands int
}

// ForEachIsland scans every record from seqFiles, then any extra
// in-memory records, and calls visit for each island found.
//
// Records are scanned one at a time so islands arrive in input order;
// the parallelism lives inside Scanner.Scan. Files that fail to open
// are skipped so the rest of the workload still gets scanned, and the
// first such error is returned at the end. Errors from scanning or from
// visit abort the run immediately.
func ForEachIsland(
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	extra []fasta.Record,
	visit func(report.Island) error,
) (Stats, error) {
	var st Stats

	scanRecord := func(sourceFile string, rec fasta.Record) error {
		res, err := cfg.Scanner.Scan(ctx, rec.Seq)
		if err != nil {
			return err
		}
		st.Records++
		st.Chunks += res.Chunks
		for _, is := range res.Islands {
			row := report.Island{
				SourceFile: sourceFile,
				SequenceID: rec.ID,
				Start:      is.Start,
				End:        is.End(),
				Length:     is.Length,
				GC:         is.GC,
				Density:    is.Density(),
			}
			if cfg.NeedSeq {
				row.Seq = string(is.Slice(rec.Seq))
			}
			st.Islands++
			if err := visit(row); err != nil {
				return err
			}
		}
		return nil
	}

	var ferr error // first open failure; reported after the rest ran
	for _, fa := range seqFiles {
		rc, err := fasta.Open(fa)
		if err != nil {
			if ferr == nil {
				ferr = err
			}
			continue
		}
		err = fasta.StreamCtx(ctx, rc, func(rec fasta.Record) error {
			return scanRecord(fa, rec)
		})
		if cerr := rc.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			return st, err
		}
	}
	for _, rec := range extra {
		if err := scanRecord("", rec); err != nil {
			return st, err
		}
	}

	if ctx.Err() != nil {
		return st, ctx.Err()
	}
	return st, ferr
}
