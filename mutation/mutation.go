// Package mutation implements the mutation operator algebra: no-op,
// value replacement, value insertion, numeric perturbation, and
// composite chaining of any of the above.
package mutation

import (
	"golang.org/x/exp/constraints"

	"github.com/DeveloperPaul123/genetic/engine"
	"github.com/DeveloperPaul123/genetic/xrand"
)

// NoOp returns its argument unchanged.
func NoOp[C any](_ *xrand.Source, c C) C { return c }

// NewValueReplacement returns a mutator that replaces count randomly
// chosen elements of the chromosome with a value drawn from pool. Each
// draw that happens to equal the element it would replace is resampled
// until it differs, matching the source operator's while-loop behavior.
// rng is supplied by the caller at invocation time, not captured at
// construction, so the returned operator is safe to share across
// concurrent worker goroutines.
func NewValueReplacement[S ~[]E, E comparable](pool []E, count int) engine.MutationFunc[S] {
	return func(rng *xrand.Source, c S) S {
		if len(c) == 0 || len(pool) == 0 || count <= 0 {
			return c
		}
		out := append(S(nil), c...)
		for n := 0; n < count; n++ {
			idx := rng.Int(0, len(out)-1)
			v := pool[rng.Int(0, len(pool)-1)]
			for v == out[idx] {
				v = pool[rng.Int(0, len(pool)-1)]
			}
			out[idx] = v
		}
		return out
	}
}

// NewValueInsertion returns a mutator that grows the chromosome by
// count elements, each produced by generate and inserted at a uniformly
// chosen index in the chromosome as it stands at that point in the
// loop, shifting later elements over by one.
func NewValueInsertion[S ~[]E, E any](generate func() E, count int) engine.MutationFunc[S] {
	return func(rng *xrand.Source, c S) S {
		if count <= 0 {
			return c
		}
		out := append(S(nil), c...)
		for n := 0; n < count; n++ {
			idx := rng.Int(0, len(out)-1)
			out = insertAt(out, idx, generate())
		}
		return out
	}
}

// insertAt inserts v at index idx of s, shifting s[idx:] right by one.
func insertAt[S ~[]E, E any](s S, idx int, v E) S {
	var zero E
	s = append(s, zero)
	copy(s[idx+1:], s[idx:len(s)-1])
	s[idx] = v
	return s
}

// NewNumericPerturbationFloat returns a mutator that adds an
// independent U(lo,hi) draw to every element. It does not clamp the
// result; wrap with Clamp if bounds must be enforced.
func NewNumericPerturbationFloat[S ~[]T, T constraints.Float](lo, hi T) engine.MutationFunc[S] {
	return func(rng *xrand.Source, c S) S {
		out := append(S(nil), c...)
		for i := range out {
			out[i] += T(rng.Float(float64(lo), float64(hi)))
		}
		return out
	}
}

// NewNumericPerturbationInt returns a mutator that adds an independent
// integer draw in [lo,hi] to every element.
func NewNumericPerturbationInt[S ~[]T, T constraints.Integer](lo, hi T) engine.MutationFunc[S] {
	return func(rng *xrand.Source, c S) S {
		out := append(S(nil), c...)
		for i := range out {
			out[i] += T(rng.Int(int(lo), int(hi)))
		}
		return out
	}
}

// Composite chains mutators left to right; an empty chain is the
// identity. The same rng is threaded into every stage.
func Composite[C any](ops ...engine.MutationFunc[C]) engine.MutationFunc[C] {
	return func(rng *xrand.Source, c C) C {
		for _, op := range ops {
			c = op(rng, c)
		}
		return c
	}
}

// Clamp wraps next and clamps every element of its output into [lo,hi].
func Clamp[S ~[]T, T constraints.Ordered](lo, hi T, next engine.MutationFunc[S]) engine.MutationFunc[S] {
	return func(rng *xrand.Source, c S) S {
		out := next(rng, c)
		for i, v := range out {
			if v < lo {
				out[i] = lo
			} else if v > hi {
				out[i] = hi
			}
		}
		return out
	}
}
