// Package notation parses and formats the half-turn-metric move strings
// (U, U2, U', ...) used at the CLI and HTTP boundaries. It is a
// collaborator of the search core, not part of it: the core only ever
// sees cube.Move values.
package notation

import (
	"fmt"
	"strings"

	"github.com/kosolve/twophase/internal/kociemba/cube"
)

// ParseError reports an unrecognised token and where it occurred.
type ParseError struct {
	Token string
	Index int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("notation: unrecognized move %q at position %d", e.Token, e.Index)
}

var byName = func() map[string]cube.Move {
	m := make(map[string]cube.Move, 18)
	for _, mv := range cube.ALL {
		m[mv.String()] = mv
	}
	return m
}()

// Parse splits s on whitespace and maps each token to its Move. On an
// unrecognised token it returns a *ParseError naming the token and its
// 0-based position among the tokens; no partial result is returned.
func Parse(s string) ([]cube.Move, error) {
	fields := strings.Fields(s)
	moves := make([]cube.Move, 0, len(fields))
	for i, tok := range fields {
		m, ok := byName[tok]
		if !ok {
			return nil, &ParseError{Token: tok, Index: i}
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Format renders moves as a space-separated string using the same
// vocabulary Parse accepts, so Parse(Format(m)) round-trips.
func Format(moves []cube.Move) string {
	tokens := make([]string, len(moves))
	for i, m := range moves {
		tokens[i] = m.String()
	}
	return strings.Join(tokens, " ")
}
