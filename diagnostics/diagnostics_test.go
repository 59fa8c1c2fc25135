package diagnostics

import "testing"

func TestComputeSpread(t *testing.T) {
	s := ComputeSpread([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if s.Mean != 5 {
		t.Fatalf("Mean = %v, want 5", s.Mean)
	}
	if s.Sum != 40 {
		t.Fatalf("Sum = %v, want 40", s.Sum)
	}
	if s.Variance <= 0 {
		t.Fatalf("Variance = %v, want >0 for a spread-out sample", s.Variance)
	}
}

func TestComputeSpreadEmpty(t *testing.T) {
	s := ComputeSpread(nil)
	if s != (Spread{}) {
		t.Fatalf("ComputeSpread(nil) = %+v, want zero value", s)
	}
}

func TestFitnessValues(t *testing.T) {
	population := [][]int{{1, 2}, {3, 4}, {5}}
	sumFn := func(c []int) float64 {
		var total float64
		for _, v := range c {
			total += float64(v)
		}
		return total
	}
	got := FitnessValues(population, sumFn)
	want := []float64{3, 7, 5}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("FitnessValues()[%d] = %v, want %v", i, got[i], v)
		}
	}
}
