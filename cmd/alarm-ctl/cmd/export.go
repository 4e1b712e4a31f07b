package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/service/client"
)

var exportCmd = &cobra.Command{
	Use:   "export [file.ics]",
	Short: "Export the tracked alarm as an iCalendar file.",
	Long:  "Writes the tracked alarm as a recurring VEVENT with a display VALARM. Prints to stdout without a file.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) > 0 {
			path = args[0]
		}

		ctx, stop := signalContext()
		defer stop()

		return client.Export(ctx, options(cmd), path)
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(exportCmd)
}
