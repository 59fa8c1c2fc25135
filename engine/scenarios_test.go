package engine_test

import (
	"context"
	"testing"

	"github.com/DeveloperPaul123/genetic/engine"
	"github.com/DeveloperPaul123/genetic/fitness"
	"github.com/DeveloperPaul123/genetic/mutation"
	"github.com/DeveloperPaul123/genetic/recombination"
	"github.com/DeveloperPaul123/genetic/selection"
	"github.com/DeveloperPaul123/genetic/termination"
	"github.com/DeveloperPaul123/genetic/xrand"
)

func intOps(target int) engine.Operators[int] {
	return engine.Operators[int]{
		Fitness:   func(c int) float64 { return float64(c) },
		Selection: func(pop []int, _ engine.FitnessFunc[int]) (int, int) { return pop[len(pop)-1], pop[0] },
		Crossover: func(_ *xrand.Source, a, b int) int { return (a + b) / 2 },
		Mutation:  func(_ *xrand.Source, c int) int { return c + 1 },
		Termination: func(_ int, fitness float64) bool {
			return fitness >= float64(target)
		},
	}
}

// S1: phrase search. Evolve a population of byte slices toward a
// target phrase using element-wise comparison fitness.
func TestScenarioPhraseSearch(t *testing.T) {
	target := []byte("HELLO")
	alphabet := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	rng := xrand.NewFromSeed(99)

	randomPhrase := func() []byte {
		out := make([]byte, len(target))
		for i := range out {
			out[i] = alphabet[rng.Int(0, len(alphabet)-1)]
		}
		return out
	}

	population := make([][]byte, 40)
	for i := range population {
		population[i] = randomPhrase()
	}

	scoreFn := fitness.NewElementWiseComparison(target, 1.0)
	ops := engine.Operators[[]byte]{
		Fitness:   scoreFn,
		Selection: selection.Roulette[[]byte](rng),
		Crossover: recombination.RandomCrossover[[]byte](),
		Mutation: mutation.NewValueReplacement[[]byte](alphabet, 1),
		Termination: func(_ []byte, f float64) bool {
			return f >= float64(len(target))
		},
	}

	result, err := engine.Solve(context.Background(), population,
		engine.Settings{ElitismRate: 0.1, CrossoverRate: 0.6}, ops, nil)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if result.Fitness < 0 {
		t.Fatalf("unexpected negative fitness %v", result.Fitness)
	}
	_ = string(result.Chromosome)
}

// S2: knapsack. Evolve boolean-encoded item selections under a weight
// cap using composite fitness (value minus a capacity-violation
// penalty expressed as a difference).
func TestScenarioKnapsack(t *testing.T) {
	type item struct{ weight, value int }
	items := []item{{2, 3}, {3, 4}, {4, 5}, {5, 6}, {9, 10}}
	const capacity = 10

	rng := xrand.NewFromSeed(5)
	randomSelection := func() []int {
		out := make([]int, len(items))
		for i := range out {
			out[i] = rng.Int(0, 1)
		}
		return out
	}

	value := func(sel []int) float64 {
		var total int
		for i, bit := range sel {
			if bit == 1 {
				total += items[i].value
			}
		}
		return float64(total)
	}
	weight := func(sel []int) float64 {
		var total int
		for i, bit := range sel {
			if bit == 1 {
				total += items[i].weight
			}
		}
		return float64(total)
	}
	penalty := func(sel []int) float64 {
		w := weight(sel)
		if w > capacity {
			return w - capacity
		}
		return 0
	}

	scoreFn := fitness.CompositeDifference[[]int](value, penalty)

	population := make([][]int, 30)
	for i := range population {
		population[i] = randomSelection()
	}

	ops := engine.Operators[[]int]{
		Fitness:     scoreFn,
		Selection:   selection.Roulette[[]int](rng),
		Crossover:   recombination.RandomCrossover[[]int](),
		Mutation:    mutation.NewValueReplacement[[]int]([]int{0, 1}, 1),
		Termination: termination.NewMaxGenerations[[]int](40).Terminate,
	}

	result, err := engine.Solve(context.Background(), population,
		engine.Settings{ElitismRate: 0.1, CrossoverRate: 0.6}, ops, nil)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if weight(result.Chromosome) > capacity && result.Fitness > 0 {
		t.Fatalf("best solution exceeds capacity with positive score: weight=%v fitness=%v",
			weight(result.Chromosome), result.Fitness)
	}
}

// S3: Beale function minimization, expressed as fitness maximization
// over the negated function value, using numeric perturbation mutation
// clamped to the search domain.
func TestScenarioBealeFunction(t *testing.T) {
	beale := func(x, y float64) float64 {
		a := 1.5 - x + x*y
		b := 2.25 - x + x*y*y
		c := 2.625 - x + x*y*y*y
		return a*a + b*b + c*c
	}

	rng := xrand.NewFromSeed(17)
	randomPoint := func() []float64 {
		return []float64{rng.Float(-4.5, 4.5), rng.Float(-4.5, 4.5)}
	}

	scoreFn := func(c []float64) float64 {
		return -beale(c[0], c[1])
	}

	population := make([][]float64, 60)
	for i := range population {
		population[i] = randomPoint()
	}

	perturb := mutation.Clamp[[]float64](-4.5, 4.5,
		mutation.NewNumericPerturbationFloat[[]float64](-0.5, 0.5))

	ops := engine.Operators[[]float64]{
		Fitness:     scoreFn,
		Selection:   selection.Roulette[[]float64](rng),
		Crossover:   recombination.RandomCrossover[[]float64](),
		Mutation:    perturb,
		Termination: termination.NewMaxGenerations[[]float64](80).Terminate,
	}

	result, err := engine.Solve(context.Background(), population,
		engine.Settings{ElitismRate: 0.1, CrossoverRate: 0.6}, ops, nil)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if result.Fitness > 0 {
		t.Fatalf("negated Beale value should never exceed 0, got %v", result.Fitness)
	}
}

// S4: empty population returns engine.ErrEmptyPopulation without touching any
// operator.
func TestScenarioEmptyPopulation(t *testing.T) {
	_, err := engine.Solve(context.Background(), []int{}, engine.Settings{}, intOps(1), nil)
	if err != engine.ErrEmptyPopulation {
		t.Fatalf("err = %v, want engine.ErrEmptyPopulation", err)
	}
}

// S5: zero-rate settings still produce the crossover floor
// (minCrossover=4) rather than a degenerate, unchanging population. The
// elite floor does not apply at ElitismRate 0, so every generation holds
// 0 elites + 2*4 offspring = 8 members.
func TestScenarioZeroRateSettingsAppliesFloors(t *testing.T) {
	var lastSize uint64
	_, err := engine.Solve(context.Background(), []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		engine.Settings{ElitismRate: 0, CrossoverRate: 0},
		intOps(1000),
		func(s engine.Stats[int]) { lastSize = s.PopulationSize })
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if lastSize != 8 {
		t.Fatalf("population size = %d under zero-rate settings, want 8", lastSize)
	}
}

// S6: composite-fitness product, 10 * 4 * 8 = 320.
func TestScenarioCompositeFitnessProduct(t *testing.T) {
	const10 := func(_ int) float64 { return 10 }
	const4 := func(_ int) float64 { return 4 }
	const8 := func(_ int) float64 { return 8 }

	scoreFn := fitness.CompositeProduct[int](const10, const4, const8)
	if got := scoreFn(0); got != 320 {
		t.Fatalf("composite product = %v, want 320", got)
	}
}
