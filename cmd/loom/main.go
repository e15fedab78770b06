package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "loom",
		Short: "Slot-addressed hooks runtime demo",
		Long: `Loom is an educational hooks runtime for server-driven Go UIs.

It demonstrates call-order-addressed state and effect primitives:

  • UseState with stable setters and last-write-wins updates
  • UseEffect with shallow dependency diffing and cleanup
  • Custom hooks composed from the primitives
  • A rendering host that commits frames before flushing effects

The demo page composes three counters and serves them live over WebSocket.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		renderCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("loom %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
