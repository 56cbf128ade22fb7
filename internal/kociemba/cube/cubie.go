// Package cube implements the cubie-level group representation of a
// 3x3x3 Rubik's cube: permutation/orientation arrays, the six generator
// moves, and group composition.
package cube

// CubieCube is the ground-truth cube state: corner permutation/orientation
// and edge permutation/orientation. Values are copied freely and never
// aliased.
type CubieCube struct {
	Cp [8]uint8  // corner permutation, 0..7
	Co [8]uint8  // corner orientation, 0..2
	Ep [12]uint8 // edge permutation, 0..11
	Eo [12]uint8 // edge orientation, 0..1
}

// Solved is the identity element of the cube group.
var Solved = CubieCube{
	Cp: [8]uint8{0, 1, 2, 3, 4, 5, 6, 7},
	Ep: [12]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
}

// The six generator cubies, bit-exact per the reference table: a single
// quarter turn of each face.
var (
	genU = CubieCube{
		Cp: [8]uint8{3, 0, 1, 2, 4, 5, 6, 7},
		Ep: [12]uint8{3, 0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11},
	}
	genR = CubieCube{
		Cp: [8]uint8{4, 1, 2, 0, 7, 5, 6, 3},
		Co: [8]uint8{2, 0, 0, 1, 1, 0, 0, 2},
		Ep: [12]uint8{8, 1, 2, 3, 11, 5, 6, 7, 4, 9, 10, 0},
	}
	genF = CubieCube{
		Cp: [8]uint8{1, 5, 2, 3, 0, 4, 6, 7},
		Co: [8]uint8{1, 2, 0, 0, 2, 1, 0, 0},
		Ep: [12]uint8{0, 9, 2, 3, 4, 8, 6, 7, 1, 5, 10, 11},
		Eo: [12]uint8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	}
	genD = CubieCube{
		Cp: [8]uint8{0, 1, 2, 3, 5, 6, 7, 4},
		Ep: [12]uint8{0, 1, 2, 3, 5, 6, 7, 4, 8, 9, 10, 11},
	}
	genL = CubieCube{
		Cp: [8]uint8{0, 2, 6, 3, 4, 1, 5, 7},
		Co: [8]uint8{0, 1, 2, 0, 0, 2, 1, 0},
		Ep: [12]uint8{0, 1, 10, 3, 4, 5, 9, 7, 8, 2, 6, 11},
	}
	genB = CubieCube{
		Cp: [8]uint8{0, 1, 3, 7, 4, 5, 2, 6},
		Co: [8]uint8{0, 0, 1, 2, 0, 0, 2, 1},
		Ep: [12]uint8{0, 1, 2, 11, 4, 5, 6, 10, 8, 9, 3, 7},
		Eo: [12]uint8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	}
)

// Compose returns a*b: the cube reached by first applying a, then b.
func Compose(a, b CubieCube) CubieCube {
	var c CubieCube
	for i := 0; i < 8; i++ {
		c.Cp[i] = a.Cp[b.Cp[i]]
		c.Co[i] = (a.Co[b.Cp[i]] + b.Co[i]) % 3
	}
	for i := 0; i < 12; i++ {
		c.Ep[i] = a.Ep[b.Ep[i]]
		c.Eo[i] = (a.Eo[b.Ep[i]] + b.Eo[i]) % 2
	}
	return c
}

// Inverse returns the group inverse of a.
func Inverse(a CubieCube) CubieCube {
	var b CubieCube
	for i := 0; i < 8; i++ {
		b.Cp[a.Cp[i]] = uint8(i)
		b.Co[a.Cp[i]] = (3 - a.Co[i]) % 3
	}
	for i := 0; i < 12; i++ {
		b.Ep[a.Ep[i]] = uint8(i)
		b.Eo[a.Ep[i]] = (2 - a.Eo[i]) % 2
	}
	return b
}

// ApplySequence left-to-right composes cube with each move's cubie in turn
// and returns the result; cube itself is left unmodified.
func ApplySequence(c CubieCube, moves []Move) CubieCube {
	for _, m := range moves {
		c = Compose(c, m.Cubie())
	}
	return c
}
