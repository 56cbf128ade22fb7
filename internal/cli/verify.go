package cli

import (
	"fmt"
	"os"

	"github.com/kosolve/twophase/internal/kociemba/cube"
	"github.com/kosolve/twophase/internal/kociemba/notation"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [scramble] [solution]",
	Short: "Verify that a solution solves a scramble",
	Long: `Verify applies scramble then solution to a solved cube and reports
whether the result is solved.

Examples:
  cube verify "R U R' U'" "U R U' R'"`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		scramble, solution := args[0], args[1]
		headless, _ := cmd.Flags().GetBool("headless")

		scrambleMoves, err := notation.Parse(scramble)
		if err != nil {
			fail(headless, "Error parsing scramble: %v\n", err)
		}
		solutionMoves, err := notation.Parse(solution)
		if err != nil {
			fail(headless, "Error parsing solution: %v\n", err)
		}

		c := cube.ApplySequence(cube.Solved, scrambleMoves)
		c = cube.ApplySequence(c, solutionMoves)

		if c == cube.Solved {
			if !headless {
				fmt.Println("PASS: solution returns the cube to solved")
			}
			os.Exit(0)
		}

		if !headless {
			fmt.Println("FAIL: cube is not solved after applying the solution")
		}
		os.Exit(1)
	},
}

func init() {
	verifyCmd.Flags().Bool("headless", false, "Exit with code 0 for pass, 1 for fail (no output)")
}
