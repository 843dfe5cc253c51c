package planner

import (
	"fmt"
	"hash/fnv"
)

// Wait jitter models day-to-day variance in posted wait times without
// sacrificing reproducibility: the offset is a pure function of the
// (normalized activity key, hour bucket) pair and the configured seed.
// Two runs with identical inputs MUST produce identical offsets.

// jitterOffset returns a value in [-spread, +spread] derived from the key.
// spread <= 0 disables jitter.
func jitterOffset(normKey string, hour int, spread int, seed int64) int {
	if spread <= 0 {
		return 0
	}
	h := fnv1a64(fmt.Sprintf("%s@%d", normKey, hour)) ^ seed
	span := int64(2*spread + 1)
	off := h % span
	if off < 0 {
		off += span
	}
	return int(off) - spread
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
