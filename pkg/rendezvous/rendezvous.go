// Package rendezvous implements rendezvous hashing, also known as
// highest random weight (HRW) hashing. For a given content ID it ranks
// the IDs of all replicas in a pool by hashing every (content, replica)
// pair, without requiring any coordination between callers. Independent
// callers that agree on the replica ID set therefore agree on which
// replicas should hold a piece of content, and in which order the
// remaining replicas should be tried if those are unreachable.
//
// Adding or removing a replica ID only affects content that ranks the
// affected replica; all other pairwise orderings are preserved.
package rendezvous

import (
	"bytes"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Replica sets at least this large have their weights computed across
// multiple goroutines. Hashing a single short preimage is cheap, so
// below this size the fan-out costs more than it saves.
const parallelWeighingThreshold = 1024

func validateReplicaIDs(replicaIDs [][]byte) error {
	if len(replicaIDs) == 0 {
		return status.Error(codes.InvalidArgument, "Replica ID list is empty")
	}
	seen := make(map[string]struct{}, len(replicaIDs))
	for _, replicaID := range replicaIDs {
		if _, ok := seen[string(replicaID)]; ok {
			return status.Errorf(codes.InvalidArgument, "Duplicate replica ID: %x", replicaID)
		}
		seen[string(replicaID)] = struct{}{}
	}
	return nil
}

type weightedReplica struct {
	id     []byte
	weight []byte
}

func weighReplica(contentID, replicaID []byte, hashFunction HashFunction) []byte {
	preimage := make([]byte, 0, len(contentID)+len(replicaID))
	preimage = append(preimage, contentID...)
	preimage = append(preimage, replicaID...)
	return hashFunction(preimage)
}

// weighReplicas computes the weight of every replica. Weights have no
// data dependencies between them, so for large replica sets the work is
// chunked over the available CPUs.
func weighReplicas(contentID []byte, replicaIDs [][]byte, hashFunction HashFunction) []weightedReplica {
	replicas := make([]weightedReplica, len(replicaIDs))
	weigh := func(start, end int) {
		for i := start; i < end; i++ {
			replicas[i] = weightedReplica{
				id:     replicaIDs[i],
				weight: weighReplica(contentID, replicaIDs[i], hashFunction),
			}
		}
	}
	if len(replicaIDs) < parallelWeighingThreshold {
		weigh(0, len(replicaIDs))
		return replicas
	}

	var group errgroup.Group
	concurrency := runtime.GOMAXPROCS(0)
	chunkSize := (len(replicaIDs) + concurrency - 1) / concurrency
	for start := 0; start < len(replicaIDs); start += chunkSize {
		start, end := start, min(start+chunkSize, len(replicaIDs))
		group.Go(func() error {
			weigh(start, end)
			return nil
		})
	}
	// The workers never return an error.
	group.Wait()
	return replicas
}

// sortValidated ranks a replica ID set whose validity has already been
// established by the caller.
func sortValidated(contentID []byte, replicaIDs [][]byte, hashFunction HashFunction) [][]byte {
	replicas := weighReplicas(contentID, replicaIDs, hashFunction)

	// Digests of equal length compare as big-endian unsigned integers
	// through plain byte comparison. Ties between distinct replica IDs
	// are broken by comparing the raw IDs, so that the ranking is a
	// pure function of the ID set even for degenerate hash functions.
	sort.Slice(replicas, func(i, j int) bool {
		if c := bytes.Compare(replicas[i].weight, replicas[j].weight); c != 0 {
			return c > 0
		}
		return bytes.Compare(replicas[i].id, replicas[j].id) < 0
	})

	ranking := make([][]byte, 0, len(replicas))
	for _, replica := range replicas {
		ranking = append(ranking, replica.id)
	}
	return ranking
}

// Sort ranks all replica IDs by descending affinity to a content ID.
// The returned ranking is a permutation of replicaIDs that does not
// depend on the order in which the replica IDs were supplied.
func Sort(contentID []byte, replicaIDs [][]byte, hashFunction HashFunction) ([][]byte, error) {
	if err := validateReplicaIDs(replicaIDs); err != nil {
		return nil, err
	}
	if hashFunction == nil {
		return nil, status.Error(codes.InvalidArgument, "No hash function provided")
	}
	return sortValidated(contentID, replicaIDs, hashFunction), nil
}

// Choose partitions the ranking of a replica ID set into the k replicas
// that should hold the content and an ordered fallback list of the
// remaining ones. Both slices preserve the descending-weight order of
// the ranking; callers that want to spread load over the chosen
// replicas may shuffle the first slice afterwards (e.g., using
// ShuffleChosen), as the fallback order of the second slice must not be
// disturbed.
//
// A k of zero requests the default redundancy count computed by
// CalculateK. Any other value must lie in [1, len(replicaIDs)].
func Choose(contentID []byte, replicaIDs [][]byte, k int, hashFunction HashFunction) (chosen, remaining [][]byte, err error) {
	if err := validateReplicaIDs(replicaIDs); err != nil {
		return nil, nil, err
	}
	if hashFunction == nil {
		return nil, nil, status.Error(codes.InvalidArgument, "No hash function provided")
	}
	if k == 0 {
		k = calculateK(len(replicaIDs))
	} else if k < 0 || k > len(replicaIDs) {
		return nil, nil, status.Errorf(codes.InvalidArgument, "Redundancy count %d is outside range [1, %d]", k, len(replicaIDs))
	}

	ranking := sortValidated(contentID, replicaIDs, hashFunction)
	return ranking[:k:k], ranking[k:], nil
}
