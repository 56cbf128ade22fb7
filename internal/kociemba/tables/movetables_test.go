package tables

import (
	"testing"

	"github.com/kosolve/twophase/internal/kociemba/cube"
)

func TestBuildProducesExpectedSizes(t *testing.T) {
	tb := Build()

	cases := []struct {
		name string
		got  int
		want int
	}{
		{"twist", len(tb.Twist), cube.TwistRange},
		{"flip", len(tb.Flip), cube.FlipRange},
		{"slice", len(tb.Slice), cube.SliceRange},
		{"cornerPerm", len(tb.CornerPerm), cube.CornerPermRange},
		{"udEdges", len(tb.UDEdges), cube.UDEdgesRange},
		{"slicePerm", len(tb.SlicePerm), cube.SlicePermRange},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s table size = %d, want %d", c.name, c.got, c.want)
		}
	}

	if tb.TwistSlicePruning.Length != cube.TwistRange*cube.SliceRange {
		t.Errorf("twist-slice pruning size = %d, want %d", tb.TwistSlicePruning.Length, cube.TwistRange*cube.SliceRange)
	}
	if tb.FlipSlicePruning.Length != cube.FlipRange*cube.SliceRange {
		t.Errorf("flip-slice pruning size = %d, want %d", tb.FlipSlicePruning.Length, cube.FlipRange*cube.SliceRange)
	}
	if tb.CornerSlicePruning.Length != cube.CornerPermRange*cube.SlicePermRange {
		t.Errorf("corner-slice pruning size = %d, want %d", tb.CornerSlicePruning.Length, cube.CornerPermRange*cube.SlicePermRange)
	}
	if tb.UDEdgeSlicePruning.Length != cube.UDEdgesRange*cube.SlicePermRange {
		t.Errorf("ud-edge-slice pruning size = %d, want %d", tb.UDEdgeSlicePruning.Length, cube.UDEdgesRange*cube.SlicePermRange)
	}
}

func TestTwistMoveTableMatchesDirectComposition(t *testing.T) {
	tb := Build()
	for _, i := range []int{0, 1, 17, 1000, 2186} {
		state := cube.SetTwist(uint16(i))
		for mi, m := range cube.ALL {
			want := cube.GetTwist(cube.Compose(state, m.Cubie()))
			if got := tb.Twist[i][mi]; got != want {
				t.Errorf("twist table[%d][%s] = %d, want %d", i, m, got, want)
			}
		}
	}
}

func TestSlicePermMoveTableMatchesDirectComposition(t *testing.T) {
	tb := Build()
	for i := 0; i < cube.SlicePermRange; i++ {
		state := cube.SetSlicePerm(i)
		for mi, m := range cube.ALL {
			want := cube.GetSlicePerm(cube.Compose(state, m.Cubie()))
			if got := tb.SlicePerm[i][mi]; int(got) != want {
				t.Errorf("slicePerm table[%d][%s] = %d, want %d", i, m, got, want)
			}
		}
	}
}

func TestPruningGoalIsZero(t *testing.T) {
	tb := Build()
	if tb.TwistSlicePruning.Get(0) != 0 {
		t.Error("twist-slice pruning at the solved pair should be 0")
	}
	if tb.FlipSlicePruning.Get(0) != 0 {
		t.Error("flip-slice pruning at the solved pair should be 0")
	}
	if tb.CornerSlicePruning.Get(0) != 0 {
		t.Error("corner-slice pruning at the solved pair should be 0")
	}
	if tb.UDEdgeSlicePruning.Get(0) != 0 {
		t.Error("ud-edge-slice pruning at the solved pair should be 0")
	}
}

func TestPruningSingleMoveFromSolvedTracksG1(t *testing.T) {
	tb := Build()
	state := cube.Compose(cube.Solved, cube.R2.Cubie())
	twist, slice := cube.GetTwist(state), cube.GetSlice(state)
	if twist != 0 { // R2 stays in G1 (twist/flip/slice all 0)
		t.Fatalf("R2 from solved should have twist 0, got %d", twist)
	}
	if dist := tb.TwistSlicePruning.Get(int(twist)*cube.SliceRange + int(slice)); dist != 0 {
		t.Errorf("R2 stays in G1, phase-1 distance should be 0, got %d", dist)
	}

	state = cube.Compose(cube.Solved, cube.R.Cubie())
	twist, slice = cube.GetTwist(state), cube.GetSlice(state)
	dist := tb.TwistSlicePruning.Get(int(twist)*cube.SliceRange + int(slice))
	if dist == 0 {
		t.Error("R from solved leaves G1, phase-1 distance should be > 0")
	}
}
