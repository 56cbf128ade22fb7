package cli

import (
	"fmt"

	"github.com/kosolve/twophase/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve [addr]",
	Short: "Start the HTTP API",
	Long: `Serve starts an HTTP server exposing the solver over a small JSON
API for use by other programs.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addr := "localhost:8080"
		if len(args) > 0 {
			addr = args[0]
		}
		cachePath, _ := cmd.Flags().GetString("cache")

		server, err := web.NewServer(cachePath)
		if err != nil {
			fmt.Printf("Error initializing server: %v\n", err)
			return
		}

		fmt.Printf("Starting web server at http://%s\n", addr)
		if err := server.Start(addr); err != nil {
			fmt.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	serveCmd.Flags().String("cache", defaultCachePath, "Path to the move/pruning table cache file")
}
