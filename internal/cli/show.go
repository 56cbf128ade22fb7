package cli

import (
	"fmt"
	"os"

	"github.com/kosolve/twophase/internal/kociemba/cube"
	"github.com/kosolve/twophase/internal/kociemba/notation"
	"github.com/kosolve/twophase/internal/kociemba/render"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [scramble]",
	Short: "Show cube state after applying a scramble",
	Long: `Show displays the cube state reached by applying a scramble to
the solved cube.

Examples:
  cube show "R U R' U'"
  cube show "R U R' U'" --color`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}

		useColor, _ := cmd.Flags().GetBool("color")
		useLetters, _ := cmd.Flags().GetBool("letters")
		useUnicode := useColor && !useLetters

		moves, err := notation.Parse(scramble)
		if err != nil {
			fmt.Printf("Error parsing scramble: %v\n", err)
			os.Exit(1)
		}

		c := cube.ApplySequence(cube.Solved, moves)
		if scramble != "" {
			fmt.Printf("Cube state after scramble: %s\n\n", scramble)
		} else {
			fmt.Println("Solved cube state:")
		}
		fmt.Println(render.StringWithColor(c, useColor, useUnicode))
	},
}

func init() {
	showCmd.Flags().BoolP("color", "c", false, "Use colored output (Unicode blocks by default)")
	showCmd.Flags().Bool("letters", false, "Use letters instead of Unicode blocks when using --color")
}
