package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/kosolve/twophase/internal/kociemba/notation"
	"github.com/kosolve/twophase/internal/kociemba/scramble"
	"github.com/spf13/cobra"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble [n]",
	Short: "Print a random scramble",
	Long:  `Scramble prints a random, redundancy-free n-move scramble (default 25).`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n := 25
		if len(args) > 0 {
			fmt.Sscanf(args[0], "%d", &n)
		}
		src := rand.New(rand.NewSource(time.Now().UnixNano()))
		moves := scramble.Random(n, src)
		fmt.Println(notation.Format(moves))
	},
}
