package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "a1grab.yaml"

// LoadFile reads and parses the configuration from a YAML file, applies
// defaults and validates the result.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration with all defaults applied and no
// compartment set. Used by the init wizard as its starting point.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Profile == "" {
		c.Profile = "DEFAULT"
	}

	if c.Instance.Shape == "" {
		c.Instance.Shape = "VM.Standard.A1.Flex"
	}
	if c.Instance.Ocpus == 0 {
		c.Instance.Ocpus = 4
	}
	if c.Instance.MemoryGBs == 0 {
		c.Instance.MemoryGBs = 24
	}
	if c.Instance.BootVolumeGBs == 0 {
		c.Instance.BootVolumeGBs = 50
	}
	if c.Instance.DisplayNamePrefix == "" {
		c.Instance.DisplayNamePrefix = "a1"
	}

	if c.Image.ID == "" {
		if c.Image.OperatingSystem == "" {
			c.Image.OperatingSystem = "Canonical Ubuntu"
		}
		if c.Image.OperatingSystemVersion == "" {
			c.Image.OperatingSystemVersion = "22.04"
		}
	}

	if c.SSH.PublicKeyPath == "" {
		c.SSH.PublicKeyPath = "id_rsa.pub"
	}

	if c.Network.VcnName == "" {
		c.Network.VcnName = "a1grab-vcn"
	}
	if c.Network.VcnCIDR == "" {
		c.Network.VcnCIDR = "10.0.0.0/16"
	}
	if c.Network.SubnetName == "" {
		c.Network.SubnetName = "a1grab-subnet"
	}
	if c.Network.SubnetCIDR == "" {
		c.Network.SubnetCIDR = "10.0.0.0/24"
	}
	if c.Network.InternetGatewayName == "" {
		c.Network.InternetGatewayName = "a1grab-igw"
	}
	if c.Network.RouteTableName == "" {
		c.Network.RouteTableName = "a1grab-rt"
	}
	if c.Network.SecurityListName == "" {
		c.Network.SecurityListName = "a1grab-sl"
	}

	if c.Retry.IntervalSeconds == 0 {
		c.Retry.IntervalSeconds = 60
	}
	if c.Retry.JitterSeconds == 0 {
		c.Retry.JitterSeconds = 30
	}
	if c.Retry.Peak.IntervalSeconds == 0 {
		c.Retry.Peak.IntervalSeconds = 30
	}
	if c.Retry.Peak.JitterSeconds == 0 {
		c.Retry.Peak.JitterSeconds = 15
	}

	if c.Tag.Key == "" {
		c.Tag.Key = "ManagedBy"
	}
	if c.Tag.Value == "" {
		c.Tag.Value = "A1RetryScript"
	}
}

// Overrides carries command-line retry overrides. Nil fields keep the file
// value.
type Overrides struct {
	IntervalSeconds     *int
	JitterSeconds       *int
	PeakEnabled         *bool
	PeakStartHour       *int
	PeakEndHour         *int
	PeakIntervalSeconds *int
	PeakJitterSeconds   *int
}

// Apply merges the overrides into the configuration.
func (c *Config) Apply(o Overrides) {
	if o.IntervalSeconds != nil {
		c.Retry.IntervalSeconds = *o.IntervalSeconds
	}
	if o.JitterSeconds != nil {
		c.Retry.JitterSeconds = *o.JitterSeconds
	}
	if o.PeakEnabled != nil {
		c.Retry.Peak.Enabled = *o.PeakEnabled
	}
	if o.PeakStartHour != nil {
		c.Retry.Peak.StartHour = *o.PeakStartHour
	}
	if o.PeakEndHour != nil {
		c.Retry.Peak.EndHour = *o.PeakEndHour
	}
	if o.PeakIntervalSeconds != nil {
		c.Retry.Peak.IntervalSeconds = *o.PeakIntervalSeconds
	}
	if o.PeakJitterSeconds != nil {
		c.Retry.Peak.JitterSeconds = *o.PeakJitterSeconds
	}
}
