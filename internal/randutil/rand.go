// Package randutil centralises how deck RNGs are constructed so that tests
// get reproducible sequences and production gets an unpredictable one.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper derives the two 64-bit seeds required by rand/v2 so that all
// call sites get reproducible sequences from a single seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewUnpredictable returns a *rand.Rand seeded from the operating system's
// entropy source. Hole cards stay hidden until showdown, so the draw sequence
// must not be guessable by participants.
func NewUnpredictable() *rand.Rand {
	var buf [16]byte
	if _, err := crand.Read(buf[:]); err != nil {
		panic("randutil: reading entropy: " + err.Error())
	}
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(buf[:8]),
		binary.LittleEndian.Uint64(buf[8:]),
	))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
