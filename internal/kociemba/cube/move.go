package cube

// Move is one of the 18 half-turn-metric face turns, identified by its
// index 0..17 in ALL's order.
type Move uint8

// Move indices, in the fixed order [U, U2, U', R, R2, R', F, F2, F', D,
// D2, D', L, L2, L', B, B2, B'].
const (
	U Move = iota
	U2
	U3
	R
	R2
	R3
	F
	F2
	F3
	D
	D2
	D3
	L
	L2
	L3
	B
	B2
	B3
)

// ALL is the 18 moves in their canonical index order.
var ALL = [18]Move{U, U2, U3, R, R2, R3, F, F2, F3, D, D2, D3, L, L2, L3, B, B2, B3}

// PHASE2 is the 10-move subset legal inside the G1 subgroup: half-turns,
// plus all three turns of U and D.
var PHASE2 = [10]Move{U, U2, U3, D, D2, D3, R2, L2, F2, B2}

var names = [18]string{
	"U", "U2", "U'",
	"R", "R2", "R'",
	"F", "F2", "F'",
	"D", "D2", "D'",
	"L", "L2", "L'",
	"B", "B2", "B'",
}

// String returns the canonical move-string token, e.g. "U2" or "R'".
func (m Move) String() string {
	return names[m]
}

// Face returns the face index: U=0, D=1, L=2, R=3, F=4, B=5.
func (m Move) Face() uint8 {
	switch {
	case m <= U3:
		return 0
	case m <= R3:
		return 3
	case m <= F3:
		return 4
	case m <= D3:
		return 1
	case m <= L3:
		return 2
	default:
		return 5
	}
}

// axisOf maps a face index to its axis (U/D=0, L/R=1, F/B=2).
func axisOf(face uint8) uint8 {
	switch face {
	case 0, 1:
		return 0
	case 2, 3:
		return 1
	default:
		return 2
	}
}

var generators = [6]CubieCube{genU, genD, genL, genR, genF, genB}

// Cubie returns the canonical cubie representation of m, derived from the
// six generators by group multiplication (X2 = X*X, X' = X*X*X).
func (m Move) Cubie() CubieCube {
	base := generators[m.Face()]
	switch m % 3 {
	case 0:
		return base
	case 1:
		return Compose(base, base)
	default:
		return Compose(base, Compose(base, base))
	}
}

// Allowed decides whether placing current after last is a non-redundant
// continuation. A nil last (no prior move) always allows current.
func Allowed(current Move, last *Move) bool {
	if last == nil {
		return true
	}
	cf, lf := current.Face(), last.Face()
	if cf == lf {
		return false
	}
	if axisOf(cf) == axisOf(lf) && cf < lf {
		return false
	}
	return true
}
