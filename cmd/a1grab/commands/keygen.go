package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/a1grab/cmd/a1grab/handlers"
)

// Keygen returns the command for generating an SSH key pair for the
// instance.
//
// Flags:
//
//	--dir, -d: Directory to write the key pair into (default ".")
//	--bits: RSA key size in bits (default 4096)
func Keygen() *cobra.Command {
	var (
		dir  string
		bits int
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an SSH key pair for the instance",
		Long: `Generate an RSA SSH key pair for logging into the instance.

Writes id_rsa (0600) and id_rsa.pub (0644) into the target directory and
refuses to overwrite existing keys. Point ssh.public_key_path in
a1grab.yaml at the generated public key.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Keygen(dir, bits)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory to write the key pair into")
	cmd.Flags().IntVar(&bits, "bits", 4096, "RSA key size in bits")

	return cmd
}
