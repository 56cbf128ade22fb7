// Package render projects a cubie-level CubieCube onto the 54-sticker
// facelet view of a physical cube, for human-readable display. It is a
// display collaborator outside the search core: nothing in solver or
// tables depends on it.
package render

import "github.com/kosolve/twophase/internal/kociemba/cube"

// Color is one of the six sticker colors, indexed by face (U=0, R=1,
// F=2, D=3, L=4, B=5) in solved position.
type Color uint8

const (
	ColorU Color = iota
	ColorR
	ColorF
	ColorD
	ColorL
	ColorB
)

var colorLetters = [6]string{"U", "R", "F", "D", "L", "B"}
var colorNames = [6]string{"W", "R", "G", "Y", "O", "B"} // White/Red/Green/Yellow/Orange/Blue, standard WCA scheme

// String returns the single-letter face-of-origin label (U/R/F/D/L/B).
func (c Color) String() string { return colorLetters[c] }

// ColorLetter returns the WCA sticker-color letter (W/R/G/Y/O/B).
func (c Color) ColorLetter() string { return colorNames[c] }

// facelet index helpers: each face occupies 9 contiguous slots in the
// order U R F D L B, row-major within the face.
const (
	uBase = 0
	rBase = 9
	fBase = 18
	dBase = 27
	lBase = 36
	bBase = 45
)

// cornerFacelet[corner] lists the three facelet indices that corner
// occupies in solved position, in the fixed order (U/D-face sticker
// first, then proceeding around the piece).
var cornerFacelet = [8][3]int{
	{uBase + 8, rBase + 0, fBase + 2}, // URF
	{uBase + 6, fBase + 0, lBase + 2}, // UFL
	{uBase + 0, lBase + 0, bBase + 2}, // ULB
	{uBase + 2, bBase + 0, rBase + 2}, // UBR
	{dBase + 2, fBase + 8, rBase + 6}, // DFR
	{dBase + 0, lBase + 8, fBase + 6}, // DLF
	{dBase + 6, bBase + 8, lBase + 6}, // DBL
	{dBase + 8, rBase + 8, bBase + 6}, // DRB
}

// cornerColor[corner] gives the solved-position color of each of that
// corner's three stickers, in the same order as cornerFacelet.
var cornerColor = [8][3]Color{
	{ColorU, ColorR, ColorF}, // URF
	{ColorU, ColorF, ColorL}, // UFL
	{ColorU, ColorL, ColorB}, // ULB
	{ColorU, ColorB, ColorR}, // UBR
	{ColorD, ColorF, ColorR}, // DFR
	{ColorD, ColorL, ColorF}, // DLF
	{ColorD, ColorB, ColorL}, // DBL
	{ColorD, ColorR, ColorB}, // DRB
}

// edgeFacelet[edge] lists the two facelet indices that edge occupies in
// solved position.
var edgeFacelet = [12][2]int{
	{uBase + 5, rBase + 1}, // UR
	{uBase + 7, fBase + 1}, // UF
	{uBase + 3, lBase + 1}, // UL
	{uBase + 1, bBase + 1}, // UB
	{dBase + 5, rBase + 7}, // DR
	{dBase + 1, fBase + 7}, // DF
	{dBase + 3, lBase + 7}, // DL
	{dBase + 7, bBase + 7}, // DB
	{fBase + 5, rBase + 3}, // FR
	{fBase + 3, lBase + 5}, // FL
	{bBase + 5, lBase + 3}, // BL
	{bBase + 3, rBase + 5}, // BR
}

// edgeColor[edge] gives the solved-position color of each of that edge's
// two stickers, in the same order as edgeFacelet.
var edgeColor = [12][2]Color{
	{ColorU, ColorR}, // UR
	{ColorU, ColorF}, // UF
	{ColorU, ColorL}, // UL
	{ColorU, ColorB}, // UB
	{ColorD, ColorR}, // DR
	{ColorD, ColorF}, // DF
	{ColorD, ColorL}, // DL
	{ColorD, ColorB}, // DB
	{ColorF, ColorR}, // FR
	{ColorF, ColorL}, // FL
	{ColorB, ColorL}, // BL
	{ColorB, ColorR}, // BR
}

// Facelets maps c onto the 54-sticker facelet layout (U R F D L B face
// order, row-major within each face). Centers never move on a 3x3x3 and
// are fixed to their face's color.
func Facelets(c cube.CubieCube) [54]Color {
	var f [54]Color
	for face := 0; face < 6; face++ {
		f[face*9+4] = Color(face) // center sticker
	}

	for i := 0; i < 8; i++ {
		corner := c.Cp[i]
		ori := c.Co[i]
		for n := 0; n < 3; n++ {
			f[cornerFacelet[i][(n+int(ori))%3]] = cornerColor[corner][n]
		}
	}

	for i := 0; i < 12; i++ {
		edge := c.Ep[i]
		ori := c.Eo[i]
		for n := 0; n < 2; n++ {
			f[edgeFacelet[i][(n+int(ori))%2]] = edgeColor[edge][n]
		}
	}

	return f
}
