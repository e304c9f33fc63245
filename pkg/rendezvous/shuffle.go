package rendezvous

import (
	"github.com/k98kurz/hrw/pkg/random"
)

// ShuffleChosen randomizes the order of a chosen replica set in place.
// Sort and Choose are deterministic, which means that every caller
// contacts the chosen replicas in the same order. Callers that use the
// chosen set for load-balanced reads should shuffle it first, so that
// requests spread across all replicas holding the content. The fallback
// list returned by Choose must never be shuffled, as its order encodes
// the retry priority.
func ShuffleChosen(generator random.SingleThreadedGenerator, chosen [][]byte) {
	generator.Shuffle(len(chosen), func(i, j int) {
		chosen[i], chosen[j] = chosen[j], chosen[i]
	})
}
