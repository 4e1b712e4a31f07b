package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/service/client"
)

// verbose lists pending registrations after the status line.
var verbose bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the alarm status line.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signalContext()
		defer stop()

		return client.Status(ctx, options(cmd), verbose)
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	statusCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "list pending registrations")
	rootCmd.AddCommand(statusCmd)
}
