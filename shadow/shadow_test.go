package shadow

import (
	"math"
	"testing"
)

func TestBuildSingleSourceDistancesGrowManhattan(t *testing.T) {
	const w, h = 10, 10
	fd := Build(w, h, func(i, j int) bool { return i == 5 && j == 5 })

	cases := []struct {
		i, j int
		want int
	}{
		{5, 5, 0},
		{5, 6, 1},
		{4, 5, 1},
		{5, 7, 2},
		{0, 0, 10},
	}
	for _, c := range cases {
		d, ok := fd.Distance(c.i, c.j)
		if !ok {
			t.Errorf("(%d,%d): not reached, want distance %d", c.i, c.j, c.want)
			continue
		}
		if d != c.want {
			t.Errorf("(%d,%d): distance = %d, want %d", c.i, c.j, d, c.want)
		}
	}
}

func TestBuildNoDivergingPixelsLeavesFieldEmpty(t *testing.T) {
	fd := Build(4, 4, func(i, j int) bool { return false })
	if _, ok := fd.Distance(2, 2); ok {
		t.Error("expected no pixel to be reached when nothing diverges")
	}
}

func TestWeightDecaysWithDistance(t *testing.T) {
	w0 := Weight(0, 100, 2.0)
	if w0 != 1 {
		t.Errorf("Weight(0, ...) = %v, want 1", w0)
	}
	w1 := Weight(50, 100, 2.0)
	want := math.Exp(-1)
	if math.Abs(w1-want) > 1e-12 {
		t.Errorf("Weight(50, 100, 2.0) = %v, want %v", w1, want)
	}
}
