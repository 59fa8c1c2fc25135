package evolutionrun

import (
	"context"
	"testing"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	fakeclient "sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/DeveloperPaul123/genetic/xrand"
)

func newFakeRun(name string) *EvolutionRun {
	target := 100.0
	return &EvolutionRun{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: "default"},
		Spec: EvolutionRunSpec{
			InitialPopulation: [][]float64{{1, 2}, {3, 4}, {5, 6}, {2, 3}},
			Settings:          SettingsSpec{ElitismRate: 0.25, CrossoverRate: 0.5},
			OperatorSet:       "default",
			MaxGenerations:    10,
			TargetFitness:     &target,
		},
	}
}

func newScheme(t *testing.T) *runtime.Scheme {
	t.Helper()
	scheme := runtime.NewScheme()
	scheme.AddKnownTypeWithName(GroupVersionKind, &EvolutionRun{})
	scheme.AddKnownTypeWithName(GroupVersionKind.GroupVersion().WithKind("EvolutionRunList"), &EvolutionRunList{})
	return scheme
}

func TestReconcileExhaustsBudgetOrConverges(t *testing.T) {
	scheme := newScheme(t)
	run := newFakeRun("demo")

	c := fakeclient.NewClientBuilder().WithScheme(scheme).WithObjects(run).WithStatusSubresource(run).Build()
	ctrl := NewController(c, scheme, xrand.NewFromSeed(9))

	if err := ctrl.Reconcile(context.Background(), "demo", "default"); err != nil {
		t.Fatalf("Reconcile returned error: %v", err)
	}

	got := &EvolutionRun{}
	if err := c.Get(context.Background(), types.NamespacedName{Name: "demo", Namespace: "default"}, got); err != nil {
		t.Fatalf("fetch after reconcile: %v", err)
	}
	if got.Status.Phase != PhaseConverged && got.Status.Phase != PhaseExhausted {
		t.Fatalf("Status.Phase = %q, want Converged or Exhausted", got.Status.Phase)
	}
	if got.Status.CurrentGenerationCount == 0 {
		t.Fatal("expected at least one recorded generation")
	}
}

func TestReconcileSkipsTerminalRuns(t *testing.T) {
	scheme := newScheme(t)
	run := newFakeRun("already-done")
	run.Status.Phase = PhaseConverged

	c := fakeclient.NewClientBuilder().WithScheme(scheme).WithObjects(run).WithStatusSubresource(run).Build()
	ctrl := NewController(c, scheme, xrand.NewFromSeed(1))

	if err := ctrl.Reconcile(context.Background(), "already-done", "default"); err != nil {
		t.Fatalf("Reconcile returned error: %v", err)
	}
}
