package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/kosolve/twophase/internal/kociemba/cube"
	"github.com/kosolve/twophase/internal/kociemba/notation"
	"github.com/kosolve/twophase/internal/kociemba/render"
	"github.com/kosolve/twophase/internal/kociemba/solver"
	"github.com/kosolve/twophase/internal/kociemba/tablecache"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube",
	Long: `Solve finds a move sequence that returns a scrambled cube to the
solved state, using the two-phase algorithm.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}
		headless, _ := cmd.Flags().GetBool("headless")
		maxLength, _ := cmd.Flags().GetInt("max-length")
		cachePath, _ := cmd.Flags().GetString("cache")
		useColor, _ := cmd.Flags().GetBool("color")
		useLetters, _ := cmd.Flags().GetBool("letters")
		useUnicode := useColor && !useLetters

		moves, err := notation.Parse(scramble)
		if err != nil {
			fail(headless, "Error parsing scramble: %v\n", err)
		}
		c := cube.ApplySequence(cube.Solved, moves)

		if !headless {
			fmt.Printf("Solving scramble: %s\n\n", scramble)
			fmt.Println(render.StringWithColor(c, useColor, useUnicode))
		}

		t, err := tablecache.LoadOrBuild(cachePath)
		if err != nil {
			fail(headless, "Error loading tables: %v\n", err)
		}

		s := solver.New(t).WithMaxLength(maxLength)

		start := time.Now()
		result, ok := s.Solve(c)
		elapsed := time.Since(start)
		if !ok {
			fail(headless, "No solution found within the maximum search length\n")
		}

		solutionStr := notation.Format(result)

		if headless {
			fmt.Print(solutionStr)
		} else {
			fmt.Printf("Solution: %s\n", solutionStr)
			fmt.Printf("Moves: %d\n", len(result))
			fmt.Printf("Time: %v\n", elapsed)
		}
	},
}

func fail(headless bool, format string, a ...interface{}) {
	if !headless {
		fmt.Printf(format, a...)
	}
	os.Exit(1)
}

func init() {
	solveCmd.Flags().BoolP("color", "c", false, "Use colored output (Unicode blocks by default)")
	solveCmd.Flags().Bool("letters", false, "Use letters instead of Unicode blocks when using --color")
	solveCmd.Flags().Bool("headless", false, "Output only space-separated moves for programmatic use")
	solveCmd.Flags().Int("max-length", solver.DefaultMaxLength, "Maximum solution length to search for")
	solveCmd.Flags().String("cache", defaultCachePath, "Path to the move/pruning table cache file")
}
