// Package xrand provides seeded random sources for the evolutionary
// engine's operators. Each Source wraps its own *rand.Rand so that
// concurrent callers never share generator state.
package xrand

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
	"time"
)

// Source is a single-owner random generator. It is not safe for
// concurrent use by multiple goroutines; callers that need independent
// streams (e.g. one per worker goroutine) should construct one Source
// per goroutine.
type Source struct {
	r *mathrand.Rand
}

// New returns a Source seeded from a cryptographic entropy source. If
// reading entropy fails (practically never, on any supported platform)
// it falls back to a wall-clock seed rather than failing the caller.
func New() *Source {
	return &Source{r: mathrand.New(mathrand.NewSource(cryptoSeed()))}
}

// NewFromSeed returns a Source seeded deterministically, for
// reproducible tests and simulations.
func NewFromSeed(seed int64) *Source {
	return &Source{r: mathrand.New(mathrand.NewSource(seed))}
}

func cryptoSeed() int64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// Int returns a pseudo-random integer in the inclusive range [lo, hi].
// If hi <= lo it returns lo.
func (s *Source) Int(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Intn(hi-lo+1)
}

// Float returns a pseudo-random float64 in the half-open range [lo, hi).
// If hi <= lo it returns lo.
func (s *Source) Float(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Float64()*(hi-lo)
}

// NormFloat returns a normally distributed float64 with mean 0, stddev 1.
func (s *Source) NormFloat() float64 {
	return s.r.NormFloat64()
}

// Shuffle permutes a slice of length n in place using the Fisher-Yates
// algorithm driven by this Source, via the swap callback.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}
