package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/service/client"
)

// code selects a registration by request code instead of the tracked alarm.
var code int32

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Cancel the tracked alarm.",
	Long: `Cancels the tracked alarm and clears the status line.

A snooze is not tracked: once an alarm has rung, its snooze rings every
10 minutes until canceled by code. List pending registrations with
"alarm-ctl status -v", then stop the snooze with "alarm-ctl delete --code N".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var selected *int32
		if cmd.Flags().Changed("code") {
			selected = &code
		}

		ctx, stop := signalContext()
		defer stop()

		return client.Delete(ctx, options(cmd), selected)
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	deleteCmd.Flags().Int32Var(&code, "code", 0, "cancel the registration with this request code (e.g. a snooze)")
	rootCmd.AddCommand(deleteCmd)
}
