package rendezvous

import (
	"crypto/sha256"

	"github.com/zeebo/blake3"

	"golang.org/x/crypto/sha3"
)

// HashFunction turns a byte string preimage into a digest. Functions of
// this type must be deterministic, free of side effects and return a
// digest whose length is the same for every call, as digests are
// compared against each other as big-endian unsigned integers.
type HashFunction func(preimage []byte) []byte

// SHA256HashFunction is the hash function that is used by Sort and
// Choose when the caller has no reason to pick a different one.
func SHA256HashFunction(preimage []byte) []byte {
	digest := sha256.Sum256(preimage)
	return digest[:]
}

// NewSHAKE256HashFunction creates a hash function that computes digests
// of an arbitrary size using the SHAKE256 extendable-output function.
func NewSHAKE256HashFunction(digestSizeBytes int) HashFunction {
	return func(preimage []byte) []byte {
		digest := make([]byte, digestSizeBytes)
		sha3.ShakeSum256(digest, preimage)
		return digest
	}
}

// NewBLAKE3HashFunction creates a hash function that computes digests
// of an arbitrary size using BLAKE3 in extendable-output mode. BLAKE3
// is significantly faster than SHA-256 on large replica sets.
func NewBLAKE3HashFunction(digestSizeBytes int) HashFunction {
	return func(preimage []byte) []byte {
		h := blake3.New()
		h.Write(preimage)
		digest := make([]byte, digestSizeBytes)
		h.Digest().Read(digest)
		return digest
	}
}
