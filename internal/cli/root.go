package cli

import (
	"github.com/spf13/cobra"
)

// defaultCachePath is where the move/pruning tables are cached on disk
// between runs, shared by solve and serve.
const defaultCachePath = "twophase-tables.cache"

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "A Rubik's cube solver using the two-phase algorithm",
	Long: `Cube solves a 3x3x3 Rubik's cube using Kociemba's two-phase
algorithm, with move and pruning tables cached on disk across runs.`,
	Version: "2.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(scrambleCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(serveCmd)
}
