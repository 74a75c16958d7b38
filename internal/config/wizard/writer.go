package wizard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/imamik/a1grab/internal/config"
)

const header = `# a1grab configuration
# Generated by "a1grab init". Edit freely; unset values fall back to defaults.

`

// WriteConfig marshals the configuration to YAML and writes it to path.
// The file is created with 0600 since it names a compartment OCID.
func WriteConfig(cfg *config.Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(header), data...), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
