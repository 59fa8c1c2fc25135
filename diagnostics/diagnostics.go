// Package diagnostics computes population-level statistics reported
// alongside a generation's Stats, using gonum's statistics routines so
// the engine's own fitness operators can stay generic over any numeric
// chromosome type without depending on a []float64-only library.
package diagnostics

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Spread is the mean and variance of a generation's fitness values.
type Spread struct {
	Mean     float64
	Variance float64
	Sum      float64
}

// ComputeSpread returns the mean, variance, and sum of values. An empty
// or single-element slice yields a zero Variance.
func ComputeSpread(values []float64) Spread {
	if len(values) == 0 {
		return Spread{}
	}
	if len(values) == 1 {
		return Spread{Mean: values[0], Sum: values[0]}
	}
	mean, variance := stat.MeanVariance(values, nil)
	return Spread{
		Mean:     mean,
		Variance: variance,
		Sum:      floats.Sum(values),
	}
}

// FitnessValues extracts the fitness of every member of a population
// using fitnessFn, for feeding into ComputeSpread.
func FitnessValues[C any](population []C, fitnessFn func(C) float64) []float64 {
	out := make([]float64, len(population))
	for i, c := range population {
		out[i] = fitnessFn(c)
	}
	return out
}
