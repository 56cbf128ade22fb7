package cube

// Coordinate ranges.
const (
	TwistRange      = 2187 // 3^7
	FlipRange       = 2048 // 2^11
	SliceRange      = 495  // C(12,4)
	CornerPermRange = 40320 // 8!
	UDEdgesRange    = 40320 // 8!
	SlicePermRange  = 24    // 4!
)

// binomial[n][k] = C(n,k) for n in 0..11, k in 0..4.
var binomial = [12][5]uint16{
	{1, 0, 0, 0, 0},
	{1, 1, 0, 0, 0},
	{1, 2, 1, 0, 0},
	{1, 3, 3, 1, 0},
	{1, 4, 6, 4, 1},
	{1, 5, 10, 10, 5},
	{1, 6, 15, 20, 15},
	{1, 7, 21, 35, 35},
	{1, 8, 28, 56, 70},
	{1, 9, 36, 84, 126},
	{1, 10, 45, 120, 210},
	{1, 11, 55, 165, 330},
}

// factorial7[k] = k! for k in 0..7.
var factorial7 = [8]int{1, 1, 2, 6, 24, 120, 720, 5040}

// GetTwist returns the corner-orientation coordinate (0..2186): the first
// seven corner orientations folded as a base-3 number.
func GetTwist(c CubieCube) uint16 {
	var twist uint16
	for i := 0; i < 7; i++ {
		twist = 3*twist + uint16(c.Co[i])
	}
	return twist
}

// SetTwist builds a canonical cube carrying the given twist coordinate;
// the eighth corner's orientation is fixed by the sum-to-0-mod-3
// invariant.
func SetTwist(twist uint16) CubieCube {
	c := Solved
	var sum uint16
	for i := 6; i >= 0; i-- {
		v := twist % 3
		twist /= 3
		c.Co[i] = uint8(v)
		sum += v
	}
	c.Co[7] = uint8((3 - sum%3) % 3)
	return c
}

// GetFlip returns the edge-orientation coordinate (0..2047): the first
// eleven edge orientations folded as a base-2 number.
func GetFlip(c CubieCube) uint16 {
	var flip uint16
	for i := 0; i < 11; i++ {
		flip = 2*flip + uint16(c.Eo[i])
	}
	return flip
}

// SetFlip builds a canonical cube carrying the given flip coordinate; the
// twelfth edge's orientation is fixed by the sum-to-0-mod-2 invariant.
func SetFlip(flip uint16) CubieCube {
	c := Solved
	var sum uint16
	for i := 10; i >= 0; i-- {
		v := flip % 2
		flip /= 2
		c.Eo[i] = uint8(v)
		sum += v
	}
	c.Eo[11] = uint8((2 - sum%2) % 2)
	return c
}

// GetSlice returns the UD-slice coordinate (0..494): which 4 of the 12
// edge positions hold a middle-layer edge (index >= 8), ignoring their
// relative order among themselves.
func GetSlice(c CubieCube) uint16 {
	var idx uint16
	k := 1
	for n := 11; n >= 0 && k <= 4; n-- {
		if c.Ep[n] >= 8 {
			idx += binomial[11-n][k]
			k++
		}
	}
	return idx
}

// SetSlice builds a canonical cube with the four slice edges (in their
// natural order 8,9,10,11) placed according to idx; the complement
// positions hold the non-slice edges in natural order.
func SetSlice(idx uint16) CubieCube {
	c := Solved
	sliceEdges := [4]uint8{8, 9, 10, 11}
	otherEdges := [8]uint8{0, 1, 2, 3, 4, 5, 6, 7}
	k, other := 4, 0
	for n := 0; n < 12; n++ {
		if k > 0 && idx >= binomial[11-n][k] {
			c.Ep[n] = sliceEdges[4-k]
			idx -= binomial[11-n][k]
			k--
		} else {
			c.Ep[n] = otherEdges[other]
			other++
		}
	}
	return c
}

// GetCornerPerm returns the standard Lehmer-code rank of cp (0..40319).
func GetCornerPerm(c CubieCube) int {
	idx := 0
	for i := 0; i < 7; i++ {
		count := 0
		for j := i + 1; j < 8; j++ {
			if c.Cp[j] < c.Cp[i] {
				count++
			}
		}
		idx = (idx + count) * (7 - i)
	}
	return idx
}

// SetCornerPerm reconstructs cp from its Lehmer-code rank.
func SetCornerPerm(idx int) CubieCube {
	c := Solved
	available := []uint8{0, 1, 2, 3, 4, 5, 6, 7}
	for i := 0; i < 7; i++ {
		fact := factorial7[7-i]
		sel := idx / fact
		idx %= fact
		c.Cp[i] = available[sel]
		available = append(available[:sel], available[sel+1:]...)
	}
	c.Cp[7] = available[0]
	return c
}

// GetUDEdges returns the Lehmer-code rank of ep[0:8] (0..40319); only
// meaningful when the four slice edges occupy positions 8..11.
func GetUDEdges(c CubieCube) int {
	idx := 0
	vals := c.Ep[0:8]
	for i := 0; i < 7; i++ {
		count := 0
		for j := i + 1; j < 8; j++ {
			if vals[j] < vals[i] {
				count++
			}
		}
		idx = (idx + count) * (7 - i)
	}
	return idx
}

// SetUDEdges reconstructs ep[0:8] from its Lehmer-code rank.
func SetUDEdges(idx int) CubieCube {
	c := Solved
	available := []uint8{0, 1, 2, 3, 4, 5, 6, 7}
	for i := 0; i < 7; i++ {
		fact := factorial7[7-i]
		sel := idx / fact
		idx %= fact
		c.Ep[i] = available[sel]
		available = append(available[:sel], available[sel+1:]...)
	}
	c.Ep[7] = available[0]
	return c
}

// GetSlicePerm returns the Lehmer-code rank of ep[8:12] (0..23); only
// meaningful when the four slice edges occupy positions 8..11.
func GetSlicePerm(c CubieCube) int {
	idx := 0
	vals := c.Ep[8:12]
	for i := 0; i < 3; i++ {
		count := 0
		for j := i + 1; j < 4; j++ {
			if vals[j] < vals[i] {
				count++
			}
		}
		idx = (idx + count) * (3 - i)
	}
	return idx
}

var slicePermFacts = [3]int{6, 2, 1}

// SetSlicePerm reconstructs ep[8:12] from its Lehmer-code rank.
func SetSlicePerm(idx int) CubieCube {
	c := Solved
	available := []uint8{8, 9, 10, 11}
	for i := 0; i < 3; i++ {
		fact := slicePermFacts[i]
		sel := idx / fact
		idx %= fact
		c.Ep[8+i] = available[sel]
		available = append(available[:sel], available[sel+1:]...)
	}
	c.Ep[11] = available[0]
	return c
}
