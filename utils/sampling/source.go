// Package sampling implements a deterministic seeded source of
// cryptographically secure pseudo random bytes and numbers.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"

	"golang.org/x/crypto/blake2b"
)

// NewSeed samples a fresh 256-bit seed from crypto/rand.
func NewSeed() (seed [32]byte) {
	if _, err := rand.Read(seed[:]); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	return
}

// Source is a deterministic generator of pseudo random bytes and numbers.
// Two sources instantiated with the same seed produce the same stream.
// The stream is generated with the blake2b XOF keyed with the seed, so
// backward sequence security (given the digest i, compute the digest i-1)
// is ensured.
// A Source is not safe for concurrent use; use [Source.NewSource] to
// derive independent sources for concurrent samplers.
type Source struct {
	seed [32]byte
	xof  blake2b.XOF
	*mrand.Rand
}

// NewSource instantiates a new [Source] from a 256-bit seed.
func NewSource(seed [32]byte) (s *Source) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, seed[:])
	if err != nil {
		// Sanity check, blake2b.NewXOF only fails on invalid key size.
		panic(err)
	}
	s = &Source{seed: seed, xof: xof}
	s.Rand = mrand.New(s)
	return
}

// NewSource returns a new [Source] seeded from the stream of the receiver.
// The returned source can be used concurrently with the receiver.
func (s *Source) NewSource() *Source {
	var seed [32]byte
	if _, err := s.xof.Read(seed[:]); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	return NewSource(seed)
}

// GetSeed returns the seed of the receiver.
func (s *Source) GetSeed() (seed [32]byte) {
	return s.seed
}

// Reset restores the receiver to its initial state.
// The embedded [mrand.Rand] is re-created so that any state buffered by
// its helpers does not leak into the stream following the reset.
func (s *Source) Reset() {
	s.xof.Reset()
	s.Rand = mrand.New(s)
}

// Read fills p with pseudo random bytes from the stream.
func (s *Source) Read(p []byte) (n int, err error) {
	return s.xof.Read(p)
}

// Uint64 returns a pseudo random uint64.
func (s *Source) Uint64() uint64 {
	var b [8]byte
	if _, err := s.xof.Read(b[:]); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Int63 returns a non-negative pseudo random int64.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed implements math/rand.Source. The stream of a [Source] is
// fixed by its 256-bit seed, so Seed is a no-op.
func (s *Source) Seed(int64) {}
