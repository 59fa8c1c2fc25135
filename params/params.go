// Package params bundles the five operator kinds the engine needs into
// a single value, with a builder that fills in the documented defaults
// for whichever operators the caller doesn't supply.
package params

import (
	"github.com/DeveloperPaul123/genetic/engine"
	"github.com/DeveloperPaul123/genetic/fitness"
	"github.com/DeveloperPaul123/genetic/mutation"
	"github.com/DeveloperPaul123/genetic/recombination"
	"github.com/DeveloperPaul123/genetic/selection"
	"github.com/DeveloperPaul123/genetic/termination"
	"github.com/DeveloperPaul123/genetic/xrand"
)

// Params is a plain aggregate of operator function values; copying it
// copies the bundle.
type Params[C any] struct {
	Fitness     engine.FitnessFunc[C]
	Selection   engine.SelectionFunc[C]
	Crossover   engine.CrossoverFunc[C]
	Mutation    engine.MutationFunc[C]
	Termination engine.TerminationFunc[C]
}

// Builder accumulates a Params value. Fitness has no generic zero-value
// default (accumulation only type-checks for numeric sequences), so it
// is supplied up front; mutation, selection and termination default to
// no-op mutation, roulette selection and max-generations(1000)
// termination unless overridden. Crossover has no working default for
// arbitrary C: the crossover slot holds a placeholder that panics when
// invoked until WithCrossover replaces it.
type Builder[C any] struct {
	p Params[C]
}

// New starts a Builder with the required fitness operator and the
// defaults described on Builder for everything else. rng seeds the
// default roulette-selection operator; pass nil to get a crypto-seeded
// xrand.Source.
func New[C any](fitnessFn engine.FitnessFunc[C], rng *xrand.Source) *Builder[C] {
	if rng == nil {
		rng = xrand.New()
	}
	return &Builder[C]{p: Params[C]{
		Fitness:     fitnessFn,
		Selection:   selection.Roulette[C](rng),
		Crossover:   defaultCrossover[C](),
		Mutation:    mutation.NoOp[C],
		Termination: termination.NewMaxGenerations[C](1000).Terminate,
	}}
}

// defaultCrossover returns a crossover operator usable for any C; since
// recombination.RandomCrossover requires a slice-shaped chromosome and
// Builder is generic over arbitrary C, the true default is installed by
// DefaultForSequence below for the sequence case. For non-sequence C the
// caller must call WithCrossover explicitly; this stub panics only if
// invoked, never during construction.
func defaultCrossover[C any]() engine.CrossoverFunc[C] {
	return func(_ *xrand.Source, a, b C) C {
		panic("params: no crossover operator configured; call WithCrossover or use DefaultForSequence for slice chromosomes")
	}
}

func (b *Builder[C]) WithSelection(fn engine.SelectionFunc[C]) *Builder[C] {
	b.p.Selection = fn
	return b
}

func (b *Builder[C]) WithCrossover(fn engine.CrossoverFunc[C]) *Builder[C] {
	b.p.Crossover = fn
	return b
}

func (b *Builder[C]) WithMutation(fn engine.MutationFunc[C]) *Builder[C] {
	b.p.Mutation = fn
	return b
}

func (b *Builder[C]) WithTermination(fn engine.TerminationFunc[C]) *Builder[C] {
	b.p.Termination = fn
	return b
}

// Build returns the assembled Params value.
func (b *Builder[C]) Build() Params[C] {
	return b.p
}

// ToOperators adapts a Params value to the engine.Operators shape Solve
// accepts. engine cannot import params directly (params imports every
// operator package, which would make the dependency circular), so this
// conversion is the bridge between the two.
func (p Params[C]) ToOperators() engine.Operators[C] {
	return engine.Operators[C]{
		Fitness:     p.Fitness,
		Selection:   p.Selection,
		Crossover:   p.Crossover,
		Mutation:    p.Mutation,
		Termination: p.Termination,
	}
}

// DefaultForSequence returns the literal defaults the engine documents
// for the common case of a numeric-slice chromosome: accumulation
// fitness, no-op mutation, random crossover, max-generations(1000)
// termination, roulette selection.
func DefaultForSequence[T engine.Number](rng *xrand.Source) Params[[]T] {
	if rng == nil {
		rng = xrand.New()
	}
	return Params[[]T]{
		Fitness:     fitness.Accumulation[[]T],
		Selection:   selection.Roulette[[]T](rng),
		Crossover:   recombination.RandomCrossover[[]T, T](),
		Mutation:    mutation.NoOp[[]T],
		Termination: termination.NewMaxGenerations[[]T](1000).Terminate,
	}
}
