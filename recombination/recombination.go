// Package recombination implements crossover operators that combine
// two parent chromosomes into a child.
package recombination

import (
	"github.com/DeveloperPaul123/genetic/engine"
	"github.com/DeveloperPaul123/genetic/xrand"
)

// Cross splices a[:pivotA] with b[pivotB:] into a freshly allocated
// slice of the combined length. pivotA and pivotB are clamped into
// [0,len(a)] and [0,len(b)] respectively.
func Cross[S ~[]E, E any](a, b S, pivotA, pivotB int) S {
	pivotA = clamp(pivotA, 0, len(a))
	pivotB = clamp(pivotB, 0, len(b))

	out := make(S, 0, pivotA+(len(b)-pivotB))
	out = append(out, a[:pivotA]...)
	out = append(out, b[pivotB:]...)
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RandomCrossover returns a CrossoverFunc that draws independent pivots
// for each parent uniformly from their respective index ranges and
// splices them with Cross. If either parent is empty, it returns the
// zero value of S rather than drawing a pivot over an empty range. The
// random source is supplied by the caller at invocation time (the
// engine's per-worker Source), not captured at construction, so the
// returned operator is safe to share across concurrent worker
// goroutines.
func RandomCrossover[S ~[]E, E any]() engine.CrossoverFunc[S] {
	return func(rng *xrand.Source, a, b S) S {
		if len(a) == 0 || len(b) == 0 {
			var zero S
			return zero
		}
		pivotA := rng.Int(0, len(a))
		pivotB := rng.Int(0, len(b))
		return Cross(a, b, pivotA, pivotB)
	}
}

// Additive is the non-sequence crossover fallback for chromosomes that
// define addition but are not themselves a sequence type, e.g. a scalar
// real-valued gene.
func Additive[T engine.Number](a, b T) T {
	return a + b
}
