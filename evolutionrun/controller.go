package evolutionrun

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/DeveloperPaul123/genetic/diagnostics"
	"github.com/DeveloperPaul123/genetic/engine"
	"github.com/DeveloperPaul123/genetic/params"
	"github.com/DeveloperPaul123/genetic/xrand"
)

// Controller reconciles EvolutionRun resources by driving engine.Solve
// and persisting progress to the resource's status subresource.
type Controller struct {
	Client  client.Client
	Scheme  *runtime.Scheme
	Rng     *xrand.Source
	Workers int
}

// NewController returns a Controller. A nil rng installs a
// crypto-seeded xrand.Source.
func NewController(c client.Client, scheme *runtime.Scheme, rng *xrand.Source) *Controller {
	if rng == nil {
		rng = xrand.New()
	}
	return &Controller{Client: c, Scheme: scheme, Rng: rng}
}

// Reconcile fetches the named EvolutionRun, drives it to completion (or
// to the configured generation budget), and persists Status throughout.
func (c *Controller) Reconcile(ctx context.Context, name, namespace string) error {
	run := &EvolutionRun{}
	key := types.NamespacedName{Name: name, Namespace: namespace}
	if err := c.Client.Get(ctx, key, run); err != nil {
		return fmt.Errorf("fetch evolutionrun %s/%s: %w", namespace, name, err)
	}

	if run.Status.Phase == PhaseConverged || run.Status.Phase == PhaseExhausted || run.Status.Phase == PhaseFailed {
		return nil
	}

	run.Status.Phase = PhaseRunning
	if err := c.updateStatus(ctx, run); err != nil {
		return err
	}

	p := params.DefaultForSequence[float64](c.Rng)
	maxGen := run.Spec.MaxGenerations
	if maxGen == 0 {
		maxGen = 1000
	}
	p.Termination = boundedTermination(run.Spec.TargetFitness, maxGen)

	var bestHistory []float64
	onIteration := func(st engine.Stats[[]float64]) {
		bestHistory = append(bestHistory, st.CurrentBest.Fitness)
		spread := diagnostics.ComputeSpread(bestHistory)

		run.Status.CurrentGenerationCount = st.CurrentGenerationCount
		run.Status.BestFitness = st.CurrentBest.Fitness
		run.Status.BestChromosome = st.CurrentBest.Chromosome
		run.Status.FitnessMean = spread.Mean
		run.Status.FitnessVariance = spread.Variance
		run.Status.LastUpdate = metav1.Now()

		if err := c.updateStatus(ctx, run); err != nil {
			// Status update failures during the run are not fatal to
			// the search itself; the final persist below still runs.
			return
		}
	}

	settings := engine.Settings{
		ElitismRate:   run.Spec.Settings.ElitismRate,
		CrossoverRate: run.Spec.Settings.CrossoverRate,
		MutationRate:  run.Spec.Settings.MutationRate,
	}

	result, err := engine.Solve(ctx, run.Spec.InitialPopulation, settings, p.ToOperators(), onIteration)
	if err != nil {
		run.Status.Phase = PhaseFailed
		c.setCondition(run, "Failed", metav1.ConditionTrue, "SolveError", err.Error())
		_ = c.updateStatus(ctx, run)
		return fmt.Errorf("solve: %w", err)
	}

	run.Status.BestFitness = result.Fitness
	run.Status.BestChromosome = result.Chromosome
	if run.Spec.TargetFitness != nil && result.Fitness >= *run.Spec.TargetFitness {
		run.Status.Phase = PhaseConverged
		c.setCondition(run, "Converged", metav1.ConditionTrue, "TargetFitnessReached", "best fitness reached target")
	} else {
		run.Status.Phase = PhaseExhausted
		c.setCondition(run, "Converged", metav1.ConditionFalse, "GenerationBudgetExhausted", "generation budget exhausted without reaching target")
	}
	run.Status.LastUpdate = metav1.Now()

	return c.updateStatus(ctx, run)
}

func boundedTermination(target *float64, maxGenerations uint64) engine.TerminationFunc[[]float64] {
	var count uint64
	return func(_ []float64, fitness float64) bool {
		count++
		if target != nil && fitness >= *target {
			return true
		}
		return count >= maxGenerations
	}
}

func (c *Controller) setCondition(run *EvolutionRun, condType string, status metav1.ConditionStatus, reason, message string) {
	now := metav1.Now()
	for i, cond := range run.Status.Conditions {
		if cond.Type == condType {
			run.Status.Conditions[i] = metav1.Condition{
				Type: condType, Status: status, LastTransitionTime: now, Reason: reason, Message: message,
			}
			return
		}
	}
	run.Status.Conditions = append(run.Status.Conditions, metav1.Condition{
		Type: condType, Status: status, LastTransitionTime: now, Reason: reason, Message: message,
	})
}

func (c *Controller) updateStatus(ctx context.Context, run *EvolutionRun) error {
	if err := c.Client.Status().Update(ctx, run); err != nil {
		return fmt.Errorf("k8s status update: %w", err)
	}
	return nil
}
