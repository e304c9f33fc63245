package rendezvous

import (
	"math/bits"
)

// CalculateK derives a default redundancy count from the size of a
// replica ID set. The count grows logarithmically in the pool size, so
// that larger pools get enough copies to keep the whole chosen set from
// becoming unavailable at once, without storage overhead scaling with
// the pool. The count depends on nothing but the pool size, so every
// caller that agrees on the replica ID set derives the same default.
func CalculateK(replicaIDs [][]byte) (int, error) {
	if err := validateReplicaIDs(replicaIDs); err != nil {
		return 0, err
	}
	return calculateK(len(replicaIDs)), nil
}

// calculateK computes min(n, max(1, ceil(1.5 * ceil(log2(n))))) without
// floating point math, so that every architecture derives the same
// count. For n >= 1, ceil(log2(n)) equals the bit length of n-1.
func calculateK(n int) int {
	ceilLog2 := bits.Len(uint(n - 1))
	k := (3*ceilLog2 + 1) / 2
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}
	return k
}
