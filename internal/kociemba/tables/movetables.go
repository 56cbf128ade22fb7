// Package tables builds and holds the precomputed move and pruning tables
// the solver needs for O(1) coordinate transitions and admissible
// heuristics. A Tables value is built once and held read-only thereafter;
// it owns no mutable state a concurrent solve could race on.
package tables

import "github.com/kosolve/twophase/internal/kociemba/cube"

// MoveTable is a dense (range x 18) rectangle of coordinate transitions:
// MoveTable[coord][move] is the coordinate reached by applying move to
// the state with coordinate coord.
type MoveTable [][18]uint16

func buildMoveTable(size int, set func(int) cube.CubieCube, get func(cube.CubieCube) uint16) MoveTable {
	t := make(MoveTable, size)
	for i := 0; i < size; i++ {
		state := set(i)
		for mi, m := range cube.ALL {
			t[i][mi] = get(cube.Compose(state, m.Cubie()))
		}
	}
	return t
}

func buildMoveTableInt(size int, set func(int) cube.CubieCube, get func(cube.CubieCube) int) MoveTable {
	return buildMoveTable(size, set, func(c cube.CubieCube) uint16 { return uint16(get(c)) })
}

// Tables holds the six move tables and the four pruning tables built from
// them. Phase 1 (twist, flip, slice) move tables are populated for all 18
// moves; Phase 2 move tables (cornerPerm, udEdges, slicePerm) are also
// populated for all 18 moves, but the Phase-2 pruning BFS only reads the
// columns of the 10-move Phase-2 subset.
type Tables struct {
	Twist      MoveTable // [2187][18]
	Flip       MoveTable // [2048][18]
	Slice      MoveTable // [495][18]
	CornerPerm MoveTable // [40320][18]
	UDEdges    MoveTable // [40320][18]
	SlicePerm  MoveTable // [24][18]

	TwistSlicePruning  NibbleArray
	FlipSlicePruning   NibbleArray
	CornerSlicePruning NibbleArray
	UDEdgeSlicePruning NibbleArray
}

// Build constructs all six move tables and four pruning tables from
// scratch. Deterministic: depends only on the cube package's generator
// constants and coordinate definitions.
func Build() *Tables {
	t := &Tables{
		Twist:      buildMoveTable(cube.TwistRange, func(i int) cube.CubieCube { return cube.SetTwist(uint16(i)) }, cube.GetTwist),
		Flip:       buildMoveTable(cube.FlipRange, func(i int) cube.CubieCube { return cube.SetFlip(uint16(i)) }, cube.GetFlip),
		Slice:      buildMoveTable(cube.SliceRange, func(i int) cube.CubieCube { return cube.SetSlice(uint16(i)) }, cube.GetSlice),
		CornerPerm: buildMoveTableInt(cube.CornerPermRange, cube.SetCornerPerm, cube.GetCornerPerm),
		UDEdges:    buildMoveTableInt(cube.UDEdgesRange, cube.SetUDEdges, cube.GetUDEdges),
		SlicePerm:  buildMoveTableInt(cube.SlicePermRange, cube.SetSlicePerm, cube.GetSlicePerm),
	}

	t.TwistSlicePruning = generatePhase1Pruning(t.Twist, t.Slice, cube.TwistRange, cube.SliceRange)
	t.FlipSlicePruning = generatePhase1Pruning(t.Flip, t.Slice, cube.FlipRange, cube.SliceRange)

	phase2Idx := phase2MoveIndices()
	t.CornerSlicePruning = generatePhase2Pruning(t.CornerPerm, t.SlicePerm, cube.CornerPermRange, cube.SlicePermRange, phase2Idx)
	t.UDEdgeSlicePruning = generatePhase2Pruning(t.UDEdges, t.SlicePerm, cube.UDEdgesRange, cube.SlicePermRange, phase2Idx)

	return t
}

// phase2MoveIndices returns the indices into cube.ALL (and therefore into
// a MoveTable's 18 columns) that the PHASE2 subset occupies.
func phase2MoveIndices() []int {
	pos := map[cube.Move]int{}
	for i, m := range cube.ALL {
		pos[m] = i
	}
	idx := make([]int, len(cube.PHASE2))
	for i, m := range cube.PHASE2 {
		idx[i] = pos[m]
	}
	return idx
}
