package render

import (
	"fmt"
	"strings"

	"github.com/kosolve/twophase/internal/kociemba/cube"
)

// ansiCodes gives the muted terminal color for each sticker color, in the
// same restrained style the teacher codebase uses for its NxN renderer.
var ansiCodes = [6]string{
	"\033[37mW\033[0m", // white
	"\033[31mR\033[0m", // red
	"\033[32mG\033[0m", // green
	"\033[33mY\033[0m", // yellow
	"\033[35mO\033[0m", // orange (magenta for terminal contrast)
	"\033[34mB\033[0m", // blue
}

var unicodeSquares = [6]string{"⬜", "🟥", "🟩", "🟨", "🟧", "🟦"}

var faceNames = [6]string{"Up", "Right", "Front", "Down", "Left", "Back"}

// stickerString renders a single sticker as a unicode square, an
// ANSI-colored letter, or a plain color letter.
func (c Color) stickerString(useColor, useUnicode bool) string {
	if useUnicode {
		return unicodeSquares[c]
	}
	if useColor {
		return ansiCodes[c]
	}
	return c.ColorLetter()
}

// String renders c face-by-face using plain color letters.
func String(c cube.CubieCube) string {
	return StringWithColor(c, false, false)
}

// StringWithColor renders c face-by-face, optionally with ANSI color or
// unicode squares, matching the teacher codebase's display convention.
func StringWithColor(c cube.CubieCube, useColor, useUnicode bool) string {
	facelets := Facelets(c)

	var sb strings.Builder
	for face := 0; face < 6; face++ {
		sb.WriteString(fmt.Sprintf("%s face:\n", faceNames[face]))
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				sticker := facelets[face*9+row*3+col]
				sb.WriteString(sticker.stickerString(useColor, useUnicode))
				sb.WriteString(" ")
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
