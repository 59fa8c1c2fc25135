// Package evolutionrun wires engine.Solve into a Kubernetes custom
// resource's status subresource, mirroring the antibody controller's
// reconcile-and-status-update pattern for a generic evolutionary run.
package evolutionrun

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// EvolutionRunSpec describes one Solve invocation: the initial
// population encoded as numeric sequences, the engine settings, the
// operator set to use, and a generation budget.
type EvolutionRunSpec struct {
	InitialPopulation [][]float64 `json:"initialPopulation"`
	Settings          SettingsSpec `json:"settings"`
	OperatorSet       string      `json:"operatorSet"`
	MaxGenerations    uint64      `json:"maxGenerations"`
	TargetFitness     *float64    `json:"targetFitness,omitempty"`
}

// SettingsSpec mirrors engine.Settings for CRD serialization.
type SettingsSpec struct {
	ElitismRate   float64 `json:"elitismRate"`
	CrossoverRate float64 `json:"crossoverRate"`
	MutationRate  float64 `json:"mutationRate"`
}

// EvolutionRunStatus reports progress and outcome.
type EvolutionRunStatus struct {
	Phase                  string             `json:"phase,omitempty"`
	CurrentGenerationCount uint64             `json:"currentGenerationCount,omitempty"`
	BestFitness            float64            `json:"bestFitness,omitempty"`
	BestChromosome         []float64          `json:"bestChromosome,omitempty"`
	FitnessMean            float64            `json:"fitnessMean,omitempty"`
	FitnessVariance        float64            `json:"fitnessVariance,omitempty"`
	LastUpdate             metav1.Time        `json:"lastUpdate,omitempty"`
	Conditions             []metav1.Condition `json:"conditions,omitempty"`
}

const (
	PhasePending   = "Pending"
	PhaseRunning   = "Running"
	PhaseConverged = "Converged"
	PhaseExhausted = "Exhausted"
	PhaseFailed    = "Failed"
)

// EvolutionRun is the custom resource reconciled by Controller.
type EvolutionRun struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec              EvolutionRunSpec   `json:"spec"`
	Status            EvolutionRunStatus `json:"status,omitempty"`
}

// DeepCopyObject satisfies runtime.Object. Hand-written because no
// code generator ran over this type.
func (r *EvolutionRun) DeepCopyObject() runtime.Object {
	if r == nil {
		return nil
	}
	out := &EvolutionRun{
		TypeMeta:   r.TypeMeta,
		ObjectMeta: *r.ObjectMeta.DeepCopy(),
		Spec:       *r.Spec.deepCopy(),
		Status:     *r.Status.deepCopy(),
	}
	return out
}

func (s *EvolutionRunSpec) deepCopy() *EvolutionRunSpec {
	out := *s
	out.InitialPopulation = make([][]float64, len(s.InitialPopulation))
	for i, c := range s.InitialPopulation {
		out.InitialPopulation[i] = append([]float64(nil), c...)
	}
	if s.TargetFitness != nil {
		v := *s.TargetFitness
		out.TargetFitness = &v
	}
	return &out
}

func (s *EvolutionRunStatus) deepCopy() *EvolutionRunStatus {
	out := *s
	out.BestChromosome = append([]float64(nil), s.BestChromosome...)
	out.Conditions = append([]metav1.Condition(nil), s.Conditions...)
	return &out
}

// EvolutionRunList satisfies the client.ObjectList shape for List calls.
type EvolutionRunList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []EvolutionRun `json:"items"`
}

func (l *EvolutionRunList) DeepCopyObject() runtime.Object {
	if l == nil {
		return nil
	}
	out := &EvolutionRunList{TypeMeta: l.TypeMeta, ListMeta: *l.ListMeta.DeepCopy()}
	out.Items = make([]EvolutionRun, len(l.Items))
	for i := range l.Items {
		out.Items[i] = *l.Items[i].DeepCopyObject().(*EvolutionRun)
	}
	return out
}

// GroupVersionKind identifies EvolutionRun within the scheme.
var GroupVersionKind = schema.GroupVersionKind{
	Group:   "genetic.DeveloperPaul123.github.com",
	Version: "v1alpha1",
	Kind:    "EvolutionRun",
}
