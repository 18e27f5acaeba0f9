// internal/runutil/runutil.go
package runutil

import "time"

// ComputeNeedSeq tells the pipeline whether to populate Island.Seq.
// We need sequences for --products and for FASTA output.
func ComputeNeedSeq(output string, products bool) bool {
	if products {
		return true
	}
	return output == "fasta"
}

// EffectiveSeed resolves the --seed flag: 0 means "pick one now".
func EffectiveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
