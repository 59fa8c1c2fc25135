package engine

import (
	"context"
	"errors"
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/DeveloperPaul123/genetic/internal/workerpool"
	"github.com/DeveloperPaul123/genetic/xrand"
)

// minElite is the floor applied to the elite count whenever
// ElitismRate is positive but rounds to zero. minCrossover is applied
// unconditionally whenever the rounded crossover count is 0 or 1,
// including when CrossoverRate is 0 — a generation always produces at
// least minCrossover offspring pairs.
const (
	minElite     = 2
	minCrossover = 4
)

// Operators bundles the five operator kinds Solve needs, mirroring
// params.Params without importing the params package (which itself
// depends on every operator package, and would create an import
// cycle if engine depended back on it).
type Operators[C any] struct {
	Fitness     FitnessFunc[C]
	Selection   SelectionFunc[C]
	Crossover   CrossoverFunc[C]
	Mutation    MutationFunc[C]
	Termination TerminationFunc[C]
}

type annotated[C any] struct {
	chromosome C
	fitness    float64
}

// Solve evolves initialPopulation under the supplied settings and
// operators until the termination operator reports true, invoking
// onIteration once per generation with a snapshot of the run's
// progress. onIteration may be nil.
//
// Solve validates Settings and the population before doing any work:
// an empty population yields ErrEmptyPopulation, and a rate outside
// [0,1] yields an *InvalidRateError. A worker-pool failure (ctx being
// canceled while offspring are generated) yields an
// *ExecutorFailureError and discards that generation's partial
// offspring. A panic raised by an operator on a worker goroutine is
// re-raised with the same value on the goroutine that called Solve.
func Solve[C any](ctx context.Context, initialPopulation []C, settings Settings, ops Operators[C], onIteration func(Stats[C])) (Results[C], error) {
	if len(initialPopulation) == 0 {
		return Results[C]{}, ErrEmptyPopulation
	}
	for _, r := range []struct {
		name string
		v    float64
	}{
		{"ElitismRate", settings.ElitismRate},
		{"CrossoverRate", settings.CrossoverRate},
		{"MutationRate", settings.MutationRate},
	} {
		if r.v < 0 || r.v > 1 {
			return Results[C]{}, &InvalidRateError{Field: r.name, Value: r.v}
		}
	}

	population := sortAscending(initialPopulation, ops.Fitness)
	best := population[len(population)-1]
	bestFitness := ops.Fitness(best)

	pool := workerpool.New(runtime.NumCPU())

	var generation uint64
	for {
		eliteCount := int(math.Round(float64(len(population)) * settings.ElitismRate))
		if eliteCount == 0 && settings.ElitismRate > 0 {
			eliteCount = minElite
		}
		if eliteCount > len(population) {
			eliteCount = len(population)
		}

		crossCount := int(math.Round(float64(len(population)) * settings.CrossoverRate))
		if crossCount <= 1 {
			crossCount = minCrossover
		}

		elites := make([]C, eliteCount)
		copy(elites, population[len(population)-eliteCount:])

		type job struct {
			p1, p2 C
		}
		jobs := make([]job, crossCount)
		for i := 0; i < crossCount; i++ {
			p1, p2 := ops.Selection(population, ops.Fitness)
			jobs[i] = job{p1: p1, p2: p2}
		}

		type pair struct {
			a, b annotated[C]
		}
		var (
			panicOnce sync.Once
			jobPanic  any
		)
		results, err := workerpool.Run[*xrand.Source, pair](ctx, pool, crossCount, xrand.New, func(_ context.Context, local *xrand.Source, idx int) (res pair, err error) {
			defer func() {
				if r := recover(); r != nil {
					panicOnce.Do(func() { jobPanic = r })
					err = errors.New("engine: operator panicked")
				}
			}()
			j := jobs[idx]
			c1 := ops.Mutation(local, ops.Crossover(local, j.p1, j.p2))
			c2 := ops.Mutation(local, ops.Crossover(local, j.p2, j.p1))
			return pair{
				a: annotated[C]{chromosome: c1, fitness: ops.Fitness(c1)},
				b: annotated[C]{chromosome: c2, fitness: ops.Fitness(c2)},
			}, nil
		})
		if jobPanic != nil {
			panic(jobPanic)
		}
		if err != nil {
			return Results[C]{}, &ExecutorFailureError{Generation: generation, Err: err}
		}

		next := make([]C, 0, eliteCount+2*crossCount)
		next = append(next, elites...)
		for _, r := range results {
			next = append(next, r.a.chromosome, r.b.chromosome)
		}

		population = sortAscending(next, ops.Fitness)
		generation++

		genBest := population[len(population)-1]
		genBestFitness := ops.Fitness(genBest)

		if genBestFitness > bestFitness {
			best = genBest
			bestFitness = genBestFitness
		} else {
			// Elitism of best: the generation failed to improve on the
			// incumbent, so the incumbent is reinjected at the
			// ascending-sort minimum, overwriting whatever currently
			// occupies slot 0.
			population[0] = best
		}

		if onIteration != nil {
			onIteration(Stats[C]{
				CurrentBest:            Results[C]{Chromosome: best, Fitness: bestFitness},
				CurrentGenerationCount: generation,
				PopulationSize:         uint64(len(population)),
			})
		}

		if ops.Termination != nil && ops.Termination(best, bestFitness) {
			break
		}
	}

	return Results[C]{Chromosome: best, Fitness: bestFitness}, nil
}

func sortAscending[C any](population []C, fitnessFn FitnessFunc[C]) []C {
	out := append([]C(nil), population...)
	sort.SliceStable(out, func(i, j int) bool {
		return fitnessFn(out[i]) < fitnessFn(out[j])
	})
	return out
}

