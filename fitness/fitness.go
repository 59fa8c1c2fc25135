// Package fitness implements the fitness operator algebra: raw
// accumulation, element-wise comparison against a target, and
// composite combination of any operators with sum, difference, or
// product.
package fitness

import (
	"math"

	"github.com/DeveloperPaul123/genetic/engine"
)

// Accumulation sums the elements of a numeric-sequence chromosome.
func Accumulation[S ~[]T, T engine.Number](c S) float64 {
	var sum float64
	for _, v := range c {
		sum += float64(v)
	}
	return sum
}

// NewElementWiseComparison returns a fitness operator that awards
// matchScore for every position at which the chromosome equals
// solution, over the common prefix length, then subtracts the absolute
// difference in length between the two so that padding or truncating a
// chromosome to game the match count is never free.
func NewElementWiseComparison[S ~[]E, E comparable](solution S, matchScore float64) engine.FitnessFunc[S] {
	return func(c S) float64 {
		n := len(c)
		if len(solution) < n {
			n = len(solution)
		}
		var score float64
		for i := 0; i < n; i++ {
			if c[i] == solution[i] {
				score += matchScore
			}
		}
		if len(solution) != len(c) {
			score -= math.Abs(float64(len(solution) - len(c)))
		}
		return score
	}
}

// CompositeSum folds a non-empty list of fitness operators with +.
// It panics if ops is empty.
func CompositeSum[C any](ops ...engine.FitnessFunc[C]) engine.FitnessFunc[C] {
	requireNonEmpty(ops)
	return func(c C) float64 {
		total := ops[0](c)
		for _, op := range ops[1:] {
			total += op(c)
		}
		return total
	}
}

// CompositeDifference folds a non-empty list of fitness operators with
// -, left to right. It panics if ops is empty.
func CompositeDifference[C any](ops ...engine.FitnessFunc[C]) engine.FitnessFunc[C] {
	requireNonEmpty(ops)
	return func(c C) float64 {
		total := ops[0](c)
		for _, op := range ops[1:] {
			total -= op(c)
		}
		return total
	}
}

// CompositeProduct folds a non-empty list of fitness operators with *,
// left to right. It panics if ops is empty.
func CompositeProduct[C any](ops ...engine.FitnessFunc[C]) engine.FitnessFunc[C] {
	requireNonEmpty(ops)
	return func(c C) float64 {
		total := ops[0](c)
		for _, op := range ops[1:] {
			total *= op(c)
		}
		return total
	}
}

func requireNonEmpty[C any](ops []engine.FitnessFunc[C]) {
	if len(ops) == 0 {
		panic("fitness: composite operator requires at least one operand")
	}
}
