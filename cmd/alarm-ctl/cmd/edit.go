package cmd

import (
	"github.com/spf13/cobra"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/service/client"
)

var editCmd = &cobra.Command{
	Use:   "edit [HH:MM]",
	Short: "Show the tracked alarm time and optionally move it.",
	Long: `Loads the tracked alarm time into the picker and prints it.
With HH:MM the new time is confirmed, replacing the current alarm.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var next *domain.ClockTime

		if len(args) > 0 {
			clock, err := domain.ParseClock(args[0])
			if err != nil {
				return err
			}

			next = &clock
		}

		ctx, stop := signalContext()
		defer stop()

		return client.Edit(ctx, options(cmd), next)
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(editCmd)
}
