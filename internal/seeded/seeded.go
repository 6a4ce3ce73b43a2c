// Package seeded derives reproducible pseudo-random values from string
// seeds. The mapping is pure: the same seed yields the same value across
// processes and runs, which keeps synthetic fleets stable between queries.
package seeded

import (
	"crypto/md5"
	"math/big"
)

// Value hashes seed and reduces it into the inclusive range [min, max].
func Value(seed string, min, max int) int {
	if max < min {
		min, max = max, min
	}
	sum := md5.Sum([]byte(seed))
	n := new(big.Int).SetBytes(sum[:])
	width := big.NewInt(int64(max - min + 1))
	return min + int(new(big.Int).Mod(n, width).Int64())
}

// Pick returns a stable choice from options for the given seed.
func Pick(seed string, options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[Value(seed, 0, len(options)-1)]
}
