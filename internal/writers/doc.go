// Package writers turns reported islands into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV, JSON, FASTA).
//   • Scan stays domain-only; Pipeline stays orchestration-only.
//   • JSON goes through pkg/api (v1) for a stable wire format.
package writers
