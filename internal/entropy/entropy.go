// Package entropy provides the random sources passphrases are generated from.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
)

// Crypto returns a source backed by the operating system's CSPRNG. It's the
// right choice for anything used as a real secret.
func Crypto() mrand.Source {
	return cryptoSource{}
}

type cryptoSource struct{}

// Uint64 implements mrand.Source.
func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	// crypto/rand.Read never returns an error on supported platforms; it
	// crashes the program irrecoverably instead.
	_, _ = rand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// Seeded returns a deterministic PCG source. Output generated from it is
// reproducible by anyone who knows the seed, so it's only suitable for tests
// and demonstrations.
func Seeded(seed uint64) mrand.Source {
	return mrand.NewPCG(seed, seed)
}

// New wraps src in a *rand.Rand. A single instance should be shared by every
// step of one generation.
func New(src mrand.Source) *mrand.Rand {
	return mrand.New(src)
}
