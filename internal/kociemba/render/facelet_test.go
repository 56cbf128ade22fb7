package render

import (
	"strings"
	"testing"

	"github.com/kosolve/twophase/internal/kociemba/cube"
)

func TestSolvedCubeIsNineOfEachColor(t *testing.T) {
	facelets := Facelets(cube.Solved)
	var counts [6]int
	for _, f := range facelets {
		counts[f]++
	}
	for color, count := range counts {
		if count != 9 {
			t.Errorf("color %d appears %d times on a solved cube, want 9", color, count)
		}
	}
}

func TestSolvedFaceIsUniform(t *testing.T) {
	facelets := Facelets(cube.Solved)
	for face := 0; face < 6; face++ {
		want := facelets[face*9]
		for i := 1; i < 9; i++ {
			if got := facelets[face*9+i]; got != want {
				t.Errorf("face %d sticker %d = %v, want %v (uniform)", face, i, got, want)
			}
		}
	}
}

func TestSingleMoveBreaksUniformity(t *testing.T) {
	c := cube.Compose(cube.Solved, cube.R.Cubie())
	facelets := Facelets(c)
	uniformFaces := 0
	for face := 0; face < 6; face++ {
		want := facelets[face*9]
		uniform := true
		for i := 1; i < 9; i++ {
			if facelets[face*9+i] != want {
				uniform = false
				break
			}
		}
		if uniform {
			uniformFaces++
		}
	}
	if uniformFaces == 6 {
		t.Error("a single R turn should break uniformity on at least one face")
	}
}

func TestStringContainsAllFaceNames(t *testing.T) {
	s := String(cube.Solved)
	for _, name := range []string{"Up face:", "Right face:", "Front face:", "Down face:", "Left face:", "Back face:"} {
		if !strings.Contains(s, name) {
			t.Errorf("rendered string missing %q", name)
		}
	}
}
