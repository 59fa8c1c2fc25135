package recombination

import (
	"reflect"
	"testing"

	"github.com/DeveloperPaul123/genetic/xrand"
)

func TestCrossLength(t *testing.T) {
	a := []int{1, 2, 3, 4, 5}
	b := []int{10, 20, 30, 40, 50, 60}

	got := Cross(a, b, 2, 3)
	want := []int{1, 2, 40, 50, 60}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Cross(a,b,2,3) = %v, want %v", got, want)
	}
	if len(got) != 2+(6-3) {
		t.Fatalf("Cross length = %d, want %d", len(got), 2+(6-3))
	}
}

func TestCrossClampsPivots(t *testing.T) {
	a := []int{1, 2, 3}
	b := []int{4, 5}
	got := Cross(a, b, 100, -5)
	want := []int{1, 2, 3, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Cross with out-of-range pivots = %v, want %v", got, want)
	}
}

func TestRandomCrossoverEmptyParentYieldsZeroValue(t *testing.T) {
	rng := xrand.NewFromSeed(1)
	cx := RandomCrossover[[]int]()

	got := cx(rng, nil, []int{1, 2, 3})
	if got != nil {
		t.Fatalf("expected nil/zero value for empty parent, got %v", got)
	}
}

func TestAdditive(t *testing.T) {
	if got := Additive(3, 4); got != 7 {
		t.Fatalf("Additive(3,4) = %d, want 7", got)
	}
	if got := Additive(1.5, 2.5); got != 4.0 {
		t.Fatalf("Additive(1.5,2.5) = %v, want 4.0", got)
	}
}
