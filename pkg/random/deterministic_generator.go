package random

import (
	"encoding/binary"

	"github.com/lazybeaver/xorshift"
)

type deterministicGenerator struct {
	sequence xorshift.XorShift
}

// NewDeterministicGenerator creates a SingleThreadedGenerator that
// emits a sequence that is fully determined by the provided seed.
// Useful for reproducible shuffles in tests and simulations.
func NewDeterministicGenerator(seed uint64) SingleThreadedGenerator {
	// Xorshift sequences get stuck at zero.
	if seed == 0 {
		seed = 1
	}
	return &deterministicGenerator{
		sequence: xorshift.NewXorShift64Star(seed),
	}
}

func (g *deterministicGenerator) IntN(n int) int {
	return int(g.sequence.Next() % uint64(n))
}

func (g *deterministicGenerator) Read(p []byte) (int, error) {
	var b [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(b[:], g.sequence.Next())
		copy(p[i:], b[:])
	}
	return len(p), nil
}

func (g *deterministicGenerator) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, g.IntN(i+1))
	}
}

func (g *deterministicGenerator) Uint64() uint64 {
	return g.sequence.Next()
}
