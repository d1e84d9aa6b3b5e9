package main

import (
	"github.com/spf13/cobra"

	"github.com/stephen9412/primitives/internal/showcase"
)

func serveCmd() *cobra.Command {
	var (
		addr   string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the component showcase",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := showcase.New(showcase.Config{
				Addr:   addr,
				Pretty: pretty,
			})
			return server.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent HTML output")

	return cmd
}
