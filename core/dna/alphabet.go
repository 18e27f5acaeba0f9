// core/dna/alphabet.go
package dna

import "fmt"

/* -------------------------- base lookup tables -------------------------- */

// gcMask marks the CpG-relevant bases. Scoring is strict-uppercase; input
// readers are expected to normalize case before scanning.
var gcMask [256]bool

// baseMask marks bytes accepted by Validate. 'N' is a legal genome byte
// (assembly gaps, masked repeats) but never counts toward GC.
var baseMask [256]bool

func init() {
	gcMask['C'] = true
	gcMask['G'] = true
	for _, c := range []byte("ACGTN") {
		baseMask[c] = true
	}
}

// IsGC reports whether b belongs to the {C,G} match subset.
func IsGC(b byte) bool { return gcMask[b] }

// CountGC returns the number of C/G bases in seq. One linear pass; this is
// the leaf statistic of the scanner and dominates total work at scale.
func CountGC(seq []byte) int {
	n := 0
	for _, b := range seq {
		if gcMask[b] {
			n++
		}
	}
	return n
}

// Validate checks that seq contains only A/C/G/T/N. Lowercase or IUPAC
// ambiguity codes are rejected here: callers normalize case at the input
// boundary, and density over ambiguity codes is not defined.
func Validate(seq []byte) error {
	for i, b := range seq {
		if !baseMask[b] {
			return fmt.Errorf("dna: invalid base %q at position %d", b, i)
		}
	}
	return nil
}
