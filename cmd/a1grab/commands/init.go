package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/a1grab/cmd/a1grab/handlers"
)

// Init returns the command for interactively creating a configuration file.
//
// Flags:
//
//	--output, -o: Path to output file (default "a1grab.yaml")
//	--non-interactive: Write defaults without asking questions
func Init() *cobra.Command {
	var (
		outputPath     string
		nonInteractive bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a configuration file",
		Long: `Interactively create an a1grab configuration file.

The wizard asks about:

  - OCI identity (profile, region, compartment OCID)
  - Instance sizing (OCPUs; memory follows at 6 GB per OCPU)
  - Retry cadence and the optional peak-hour window

With --non-interactive (or when stdout is not a terminal) the defaults
are written without prompting; fill in the compartment OCID afterwards.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath, nonInteractive)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "a1grab.yaml", "Output file path")
	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Write defaults without prompting")

	return cmd
}
