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
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "primitives",
		Short: "Scoped context primitives for server-rendered Go UIs",
		Long: `Primitives is a component library built around scoped context:
typed Provider/Consumer pairs, named context scopes, and scope
composition for composite components.

The CLI serves the component showcase with SSR pages, Prometheus
metrics, and a live re-render WebSocket endpoint.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
