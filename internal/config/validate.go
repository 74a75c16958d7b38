package config

import (
	"fmt"
	"net"
	"strings"
)

// Validate checks the configuration for common errors and returns a detailed
// error if validation fails.
func (c *Config) Validate() error {
	if c.CompartmentID == "" {
		return fmt.Errorf("compartment_id is required")
	}
	if !strings.HasPrefix(c.CompartmentID, "ocid1.") {
		return fmt.Errorf("compartment_id %q is not an OCID", c.CompartmentID)
	}

	if err := c.validateInstance(); err != nil {
		return fmt.Errorf("instance validation failed: %w", err)
	}
	if err := c.validateNetwork(); err != nil {
		return fmt.Errorf("network validation failed: %w", err)
	}
	if err := c.validateRetry(); err != nil {
		return fmt.Errorf("retry validation failed: %w", err)
	}

	if c.Tag.Key == "" || c.Tag.Value == "" {
		return fmt.Errorf("tag key and value are required")
	}

	return nil
}

func (c *Config) validateInstance() error {
	if c.Instance.Shape != "VM.Standard.A1.Flex" {
		return fmt.Errorf("unsupported shape %q: only VM.Standard.A1.Flex is supported", c.Instance.Shape)
	}
	if c.Instance.Ocpus <= 0 {
		return fmt.Errorf("ocpus must be positive, got %v", c.Instance.Ocpus)
	}
	if c.Instance.MemoryGBs <= 0 {
		return fmt.Errorf("memory_gbs must be positive, got %v", c.Instance.MemoryGBs)
	}
	if c.Instance.BootVolumeGBs < 50 {
		return fmt.Errorf("boot_volume_gbs must be at least 50, got %d", c.Instance.BootVolumeGBs)
	}
	if c.Instance.DisplayNamePrefix == "" {
		return fmt.Errorf("display_name_prefix is required")
	}
	return nil
}

func (c *Config) validateNetwork() error {
	for name, cidr := range map[string]string{
		"vcn_cidr":    c.Network.VcnCIDR,
		"subnet_cidr": c.Network.SubnetCIDR,
	} {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, cidr, err)
		}
	}
	return nil
}

func (c *Config) validateRetry() error {
	if c.Retry.IntervalSeconds <= 0 {
		return fmt.Errorf("interval_seconds must be positive, got %d", c.Retry.IntervalSeconds)
	}
	if c.Retry.JitterSeconds < 0 {
		return fmt.Errorf("jitter_seconds must not be negative, got %d", c.Retry.JitterSeconds)
	}
	if c.Retry.Peak.Enabled {
		if c.Retry.Peak.StartHour < 0 || c.Retry.Peak.StartHour > 23 {
			return fmt.Errorf("peak start_hour must be 0-23, got %d", c.Retry.Peak.StartHour)
		}
		if c.Retry.Peak.EndHour < 0 || c.Retry.Peak.EndHour > 23 {
			return fmt.Errorf("peak end_hour must be 0-23, got %d", c.Retry.Peak.EndHour)
		}
		if c.Retry.Peak.IntervalSeconds <= 0 {
			return fmt.Errorf("peak interval_seconds must be positive, got %d", c.Retry.Peak.IntervalSeconds)
		}
		if c.Retry.Peak.JitterSeconds < 0 {
			return fmt.Errorf("peak jitter_seconds must not be negative, got %d", c.Retry.Peak.JitterSeconds)
		}
	}
	return nil
}
