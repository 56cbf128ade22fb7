package scramble

import (
	"math/rand"
	"testing"

	"github.com/kosolve/twophase/internal/kociemba/cube"
)

func TestRandomLength(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	moves := Random(25, rng)
	if len(moves) != 25 {
		t.Fatalf("expected 25 moves, got %d", len(moves))
	}
}

func TestRandomNeverRedundant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		moves := Random(40, rng)
		var last *cube.Move
		for i, m := range moves {
			if !cube.Allowed(m, last) {
				t.Fatalf("trial %d: move %d (%s) is a redundant continuation of %v", trial, i, m, last)
			}
			mm := m
			last = &mm
		}
	}
}

func TestRandomZero(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	moves := Random(0, rng)
	if len(moves) != 0 {
		t.Errorf("expected no moves, got %v", moves)
	}
}
