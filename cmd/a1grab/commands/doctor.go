package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/a1grab/cmd/a1grab/handlers"
)

// Doctor returns the command for diagnosing configuration and OCI access.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: a1grab.yaml)
func Doctor() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose configuration and OCI access",
		Long: `Diagnose the a1grab configuration and OCI access.

Checks, in order:
  - configuration file loads and validates
  - SSH public key is readable
  - OCI credentials authenticate
  - compartment is reachable
  - availability domains resolve
  - launch image resolves

Each check prints a pass/fail line; the command exits non-zero if any
check fails.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: a1grab.yaml)")

	return cmd
}
