package xhash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// defaultSeed is the stable seed used for token ids.
const defaultSeed uint64 = 0xc0ffee

// Hash64 returns the 64-bit hash of b under the fixed default seed.
// Complexity: O(len(b)).
func Hash64(b []byte) uint64 {
	return Hash64Seeded(b, defaultSeed)
}

// Hash64Seeded returns the 64-bit hash of b folded with an explicit
// seed. Seeding is implemented by feeding the seed's bytes into the
// digest ahead of b, which keeps the result reproducible across
// xxhash/v2 releases without depending on a NewWithSeed constructor.
// Complexity: O(len(b)).
func Hash64Seeded(b []byte, seed uint64) uint64 {
	var seedBuf [8]byte
	binary.LittleEndian.PutUint64(seedBuf[:], seed)

	d := xxhash.New()
	_, _ = d.Write(seedBuf[:]) // Digest.Write never errors
	_, _ = d.Write(b)

	return d.Sum64()
}

// Pair returns the order-independent fingerprint of two hashes,
// defined as their XOR. Collisions
// h(a) == h(b) cause Pair to be zero; the matrix engine never relies
// on Pair for correctness, only for optional caching by hosts.
func Pair(a, b uint64) uint64 {
	return a ^ b
}
