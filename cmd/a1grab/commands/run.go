package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/a1grab/cmd/a1grab/handlers"
	"github.com/imamik/a1grab/internal/config"
)

// Run returns the command that runs the capacity retry loop.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: a1grab.yaml)
//	--log-file: Also write the structured log to this file
//	--interval, --jitter: Override the standard retry cadence
//	--peak, --peak-start, --peak-end, --peak-interval, --peak-jitter:
//	    Override the peak-hour window
func Run() *cobra.Command {
	var (
		configPath string
		logFile    string

		interval     int
		jitter       int
		peak         bool
		peakStart    int
		peakEnd      int
		peakInterval int
		peakJitter   int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Retry launching the A1 instance until capacity is available",
		Long: `Retry launching the A1 instance until capacity is available.

The loop provisions the network once, then keeps attempting to launch a
VM.Standard.A1.Flex instance, rotating availability domains on each
capacity failure. Fatal API errors stop the loop; Ctrl+C exits with
status 2.

Examples:
  # Run with a1grab.yaml in the current directory
  a1grab run

  # Faster cadence during the night window
  a1grab run --peak --peak-start 22 --peak-end 2 --peak-interval 20`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides := config.Overrides{}
			flags := cmd.Flags()
			if flags.Changed("interval") {
				overrides.IntervalSeconds = &interval
			}
			if flags.Changed("jitter") {
				overrides.JitterSeconds = &jitter
			}
			if flags.Changed("peak") {
				overrides.PeakEnabled = &peak
			}
			if flags.Changed("peak-start") {
				overrides.PeakStartHour = &peakStart
			}
			if flags.Changed("peak-end") {
				overrides.PeakEndHour = &peakEnd
			}
			if flags.Changed("peak-interval") {
				overrides.PeakIntervalSeconds = &peakInterval
			}
			if flags.Changed("peak-jitter") {
				overrides.PeakJitterSeconds = &peakJitter
			}
			return handlers.Run(cmd.Context(), configPath, logFile, overrides)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: a1grab.yaml)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Also write the log to this file")
	cmd.Flags().IntVar(&interval, "interval", 0, "Standard retry interval in seconds")
	cmd.Flags().IntVar(&jitter, "jitter", 0, "Standard retry jitter in seconds")
	cmd.Flags().BoolVar(&peak, "peak", false, "Enable the peak-hour retry window")
	cmd.Flags().IntVar(&peakStart, "peak-start", 0, "Peak window start hour (0-23)")
	cmd.Flags().IntVar(&peakEnd, "peak-end", 0, "Peak window end hour (0-23)")
	cmd.Flags().IntVar(&peakInterval, "peak-interval", 0, "Peak retry interval in seconds")
	cmd.Flags().IntVar(&peakJitter, "peak-jitter", 0, "Peak retry jitter in seconds")

	return cmd
}
