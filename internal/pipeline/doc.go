// Package pipeline streams FASTA records through a Scanner, enriches
// the resulting islands with record and file context, and calls a
// visit callback.
//
// The only contract to implement is Scanner (Scan).
// This keeps the pipeline swappable and testable.
package pipeline
