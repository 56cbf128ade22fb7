// Package scramble generates random legal move sequences for testing and
// for the CLI's "scramble" command. It is a collaborator outside the
// search core; the core never generates its own random input.
package scramble

import (
	"math/rand"

	"github.com/kosolve/twophase/internal/kociemba/cube"
)

// Random draws n moves from cube.ALL using src, re-rolling any candidate
// that would be a redundant continuation of the previous move (per
// cube.Allowed), so the result never contains an immediately-cancelling
// or same-axis-out-of-order pair.
func Random(n int, src *rand.Rand) []cube.Move {
	moves := make([]cube.Move, 0, n)
	var last *cube.Move
	for len(moves) < n {
		candidate := cube.ALL[src.Intn(len(cube.ALL))]
		if !cube.Allowed(candidate, last) {
			continue
		}
		moves = append(moves, candidate)
		last = &moves[len(moves)-1]
	}
	return moves
}
