package grammar

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"
)

// Source supplies uniform draws in [0, 1). *rand.Rand from math/rand/v2
// satisfies it. A Source is the only non-deterministic input to generation.
type Source interface {
	Float64() float64
}

// NewSource returns a PCG-backed generator seeded with seed. It is not safe
// for concurrent use; give each goroutine its own or use NewLockedSource.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// LockedSource serializes access to an underlying Source.
type LockedSource struct {
	mu  sync.Mutex
	src Source
}

// NewLockedSource wraps a seeded generator so one source can be shared by
// concurrent Generate calls.
func NewLockedSource(seed uint64) *LockedSource {
	return &LockedSource{src: NewSource(seed)}
}

// Float64 implements Source.
func (s *LockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Float64()
}

// RandomSeed draws a seed from crypto/rand for callers that want a fresh,
// unpredictable stream but still need to log the seed to reproduce it.
func RandomSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("failed to read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
