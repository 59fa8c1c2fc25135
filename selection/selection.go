// Package selection implements parent-selection operators over an
// ascending-sorted population.
package selection

import (
	"github.com/DeveloperPaul123/genetic/engine"
	"github.com/DeveloperPaul123/genetic/xrand"
)

// Roulette returns a fitness-proportional selection operator: each
// member's chance of being picked is proportional to its fitness score.
// If the population's total fitness is non-positive, it falls back to
// returning the first two members (or the same member twice for a
// single-element population) rather than dividing by a non-positive
// total.
func Roulette[C any](rng *xrand.Source) engine.SelectionFunc[C] {
	return func(population []C, fitnessFn engine.FitnessFunc[C]) (C, C) {
		weights := make([]float64, len(population))
		total := 0.0
		for i, c := range population {
			w := fitnessFn(c)
			weights[i] = w
			total += w
		}

		if total <= 0 {
			second := 0
			if len(population) > 1 {
				second = 1
			}
			return population[0], population[second]
		}

		return pick(population, weights, total, rng), pick(population, weights, total, rng)
	}
}

func pick[C any](population []C, weights []float64, total float64, rng *xrand.Source) C {
	threshold := rng.Float(0, total)
	running := 0.0
	for i, w := range weights {
		running += w
		if running >= threshold {
			return population[i]
		}
	}
	return population[len(population)-1]
}

// Rank returns a linear rank-proportional selection operator: assuming
// population is ascending-sorted by fitness (the engine's documented
// precondition), it assigns weight i+1 to population[i] so the best
// individual (at the highest index) receives the largest weight and the
// worst receives weight 1, then performs roulette selection over those
// weights. This keeps selection magnitude-independent: only relative
// rank, not the fitness values themselves, determines selection odds.
func Rank[C any](rng *xrand.Source) engine.SelectionFunc[C] {
	return func(population []C, _ engine.FitnessFunc[C]) (C, C) {
		n := len(population)
		weights := make([]float64, n)
		total := 0.0
		for i := range population {
			w := float64(i + 1)
			weights[i] = w
			total += w
		}
		if total <= 0 {
			second := 0
			if n > 1 {
				second = 1
			}
			return population[0], population[second]
		}
		return pick(population, weights, total, rng), pick(population, weights, total, rng)
	}
}
