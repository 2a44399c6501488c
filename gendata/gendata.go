package gendata

import (
	"math/rand"

	"github.com/parsortlab/parsort"
)

// seedBase is added to rank*12345 to derive each rank's generator seed, so
// every rank produces a distinct but reproducible sequence.
const seedBase = 42

// keyMax is the inclusive upper bound of generated keys.
const keyMax = 1000000000

// Generate returns n pseudo-random keys in [0, keyMax], seeded from rank so
// that the same (rank, n) pair always reproduces the same sequence.
func Generate(rank, n int) parsort.LocalBlock {
	seed := int64(seedBase) + int64(rank)*12345
	r := rand.New(rand.NewSource(seed))
	out := make(parsort.LocalBlock, n)
	for i := range out {
		out[i] = parsort.Key(r.Int63n(keyMax + 1))
	}
	return out
}
