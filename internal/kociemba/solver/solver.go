// Package solver implements the nested IDA* search that composes Phase 1
// (reach the G1 subgroup) and Phase 2 (finish inside G1) into a
// length-minimising two-phase solve.
package solver

import (
	"github.com/kosolve/twophase/internal/kociemba/cube"
	"github.com/kosolve/twophase/internal/kociemba/tables"
)

// DefaultMaxLength is the search's starting upper bound. 20-22 is the
// typical ceiling for Kociemba's two-phase algorithm; this is not God's
// number (20, not guaranteed) but a practical cutoff no legal scramble
// should exceed.
const DefaultMaxLength = 22

// Solver borrows an immutable table set and drives searches against it.
// Zero value is not usable; construct with New.
type Solver struct {
	tables    *tables.Tables
	maxLength int
}

// New returns a solver bound to the given tables, with the default
// maximum solution length.
func New(t *tables.Tables) *Solver {
	return &Solver{tables: t, maxLength: DefaultMaxLength}
}

// WithMaxLength overrides the starting upper bound on solution length
// (the CLI sets it from its --max-length flag).
func (s *Solver) WithMaxLength(n int) *Solver {
	s.maxLength = n
	return s
}

// search carries the mutable state of one solve: the best length found so
// far and the best path, shared across the Phase-1/Phase-2 recursion.
type search struct {
	tables     *tables.Tables
	bestLength int
	best       []cube.Move
}

// Solve returns the shortest move sequence found transforming cube to
// solved, or (nil, false) if none exists within the solver's maximum
// length.
func (s *Solver) Solve(c cube.CubieCube) ([]cube.Move, bool) {
	srch := &search{tables: s.tables, bestLength: s.maxLength + 1}

	path := make([]cube.Move, 0, s.maxLength)
	for p1Bound := 0; p1Bound < srch.bestLength; p1Bound++ {
		srch.phase1Search(c, 0, p1Bound, path)
	}

	if srch.best == nil {
		return nil, false
	}
	return srch.best, true
}

// phase1Search explores Phase 1 at a fixed depth bound, handing off to
// Phase 2 at every G1 leaf found at exactly that bound (not only the
// first one) so a later, shorter combined solution is never missed.
func (srch *search) phase1Search(c cube.CubieCube, g, bound int, path []cube.Move) {
	twist := cube.GetTwist(c)
	flip := cube.GetFlip(c)
	slice := cube.GetSlice(c)

	distTwist := int(srch.tables.TwistSlicePruning.Get(int(twist)*cube.SliceRange + int(slice)))
	distFlip := int(srch.tables.FlipSlicePruning.Get(int(flip)*cube.SliceRange + int(slice)))
	h1 := distTwist
	if distFlip > h1 {
		h1 = distFlip
	}

	if g+h1 > bound || g+h1 >= srch.bestLength {
		return
	}

	if h1 == 0 && g == bound {
		srch.phase2Handoff(c, g, path)
		return
	}

	if g == bound {
		return
	}

	var last *cube.Move
	if len(path) > 0 {
		last = &path[len(path)-1]
	}

	for _, m := range cube.ALL {
		if !cube.Allowed(m, last) {
			continue
		}
		next := cube.Compose(c, m.Cubie())
		path = append(path, m)
		srch.phase1Search(next, g+1, bound, path)
		path = path[:len(path)-1]
	}
}

// phase2Handoff tries increasing Phase-2 bounds, strictly below the
// remaining budget to the current best, and lowers the best length on
// success (phase2Search has then recorded the full path).
func (srch *search) phase2Handoff(c cube.CubieCube, g int, path []cube.Move) {
	for p2Bound := 0; p2Bound < srch.bestLength-g; p2Bound++ {
		if srch.phase2Search(c, 0, p2Bound, path) {
			srch.bestLength = g + p2Bound
			return
		}
	}
}

// phase2Search explores Phase 2 at a fixed depth bound, requiring both
// h2 == 0 and exact-depth completion to count as success (the corrected
// recursion: an early h2 == 0 at g2 < bound is not itself a solution).
// On success it records the full Phase-1 plus Phase-2 path as the best.
func (srch *search) phase2Search(c cube.CubieCube, g2, bound int, path []cube.Move) bool {
	cp := cube.GetCornerPerm(c)
	ud := cube.GetUDEdges(c)
	slicePerm := cube.GetSlicePerm(c)

	distCP := int(srch.tables.CornerSlicePruning.Get(cp*cube.SlicePermRange + slicePerm))
	distUD := int(srch.tables.UDEdgeSlicePruning.Get(ud*cube.SlicePermRange + slicePerm))
	h2 := distCP
	if distUD > h2 {
		h2 = distUD
	}

	if g2+h2 > bound {
		return false
	}

	if cp == 0 && ud == 0 && slicePerm == 0 {
		if g2 != bound {
			return false
		}
		srch.best = append(make([]cube.Move, 0, len(path)), path...)
		return true
	}

	if g2 == bound {
		return false
	}

	var last *cube.Move
	if len(path) > 0 {
		last = &path[len(path)-1]
	}

	for _, m := range cube.PHASE2 {
		if !cube.Allowed(m, last) {
			continue
		}
		next := cube.Compose(c, m.Cubie())
		path = append(path, m)
		if srch.phase2Search(next, g2+1, bound, path) {
			return true
		}
		path = path[:len(path)-1]
	}

	return false
}
