package cmd

import (
	"time"

	"github.com/spf13/cobra"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/service/client"
)

// every is the custom repeat interval; zero means daily.
var every time.Duration

var setCmd = &cobra.Command{
	Use:   "set HH:MM",
	Short: "Schedule the daily alarm.",
	Long: `Schedules the alarm for HH:MM today, repeating every day.
The previous alarm is replaced. Nothing is scheduled when Do Not Disturb blocks all sounds.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clock, err := domain.ParseClock(args[0])
		if err != nil {
			return err
		}

		ctx, stop := signalContext()
		defer stop()

		return client.Set(ctx, options(cmd), clock, every)
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	setCmd.Flags().DurationVarP(&every, "every", "e", 0, "custom repeat interval instead of daily (e.g. 12h)")
	rootCmd.AddCommand(setCmd)
}
