// Package config defines the configuration structure and methods for the
// application.
package config

// Config holds the application configuration.
type Config struct {
	// OCIConfigPath points to an OCI CLI config file. Empty uses the SDK
	// default chain (~/.oci/config plus environment variables).
	OCIConfigPath string `yaml:"oci_config_path"`
	// Profile selects the profile inside the OCI config file.
	Profile string `yaml:"profile"`
	// Region overrides the profile's region when set.
	Region string `yaml:"region"`
	// CompartmentID is the compartment all resources live in.
	CompartmentID string `yaml:"compartment_id"`

	// AvailabilityDomains is the explicit AD cycle order. Empty means
	// "query the region and use provider order".
	AvailabilityDomains []string `yaml:"availability_domains"`

	Instance InstanceConfig `yaml:"instance"`
	Image    ImageConfig    `yaml:"image"`
	SSH      SSHConfig      `yaml:"ssh"`
	Network  NetworkConfig  `yaml:"network"`
	Retry    RetryConfig    `yaml:"retry"`
	Tag      TagConfig      `yaml:"tag"`

	// Singleton stops the run once one managed instance is active.
	// Default: true.
	Singleton *bool `yaml:"singleton"`
}

// InstanceConfig describes the one instance this tool provisions.
type InstanceConfig struct {
	Shape             string  `yaml:"shape"`               // default VM.Standard.A1.Flex
	Ocpus             float32 `yaml:"ocpus"`               // default 4
	MemoryGBs         float32 `yaml:"memory_gbs"`          // default 24
	BootVolumeGBs     int64   `yaml:"boot_volume_gbs"`     // default 50
	DisplayNamePrefix string  `yaml:"display_name_prefix"` // default a1
	AssignPublicIP    *bool   `yaml:"assign_public_ip"`    // default true
}

// ImageConfig selects the boot image: an explicit OCID, or the latest image
// matching OS and version for the configured shape.
type ImageConfig struct {
	ID                     string `yaml:"id"`
	OperatingSystem        string `yaml:"operating_system"`         // default Canonical Ubuntu
	OperatingSystemVersion string `yaml:"operating_system_version"` // default 22.04
}

// SSHConfig points at the public key injected into the instance.
type SSHConfig struct {
	PublicKeyPath string `yaml:"public_key_path"` // default id_rsa.pub
}

// NetworkConfig names the network objects and their CIDR blocks.
type NetworkConfig struct {
	VcnName             string `yaml:"vcn_name"`
	VcnCIDR             string `yaml:"vcn_cidr"`
	SubnetName          string `yaml:"subnet_name"`
	SubnetCIDR          string `yaml:"subnet_cidr"`
	InternetGatewayName string `yaml:"internet_gateway_name"`
	RouteTableName      string `yaml:"route_table_name"`
	SecurityListName    string `yaml:"security_list_name"`
}

// RetryConfig sets the standard retry cadence and the optional peak-hour
// window with its own cadence.
type RetryConfig struct {
	IntervalSeconds int        `yaml:"interval_seconds"` // default 60
	JitterSeconds   int        `yaml:"jitter_seconds"`   // default 30
	Peak            PeakConfig `yaml:"peak"`
}

// PeakConfig describes the peak-hour window. Hours are local and inclusive;
// StartHour > EndHour means the window wraps past midnight.
type PeakConfig struct {
	Enabled         bool `yaml:"enabled"`
	StartHour       int  `yaml:"start_hour"`
	EndHour         int  `yaml:"end_hour"`
	IntervalSeconds int  `yaml:"interval_seconds"` // default 30
	JitterSeconds   int  `yaml:"jitter_seconds"`   // default 15
}

// TagConfig is the freeform tag marking every resource this tool creates.
type TagConfig struct {
	Key   string `yaml:"key"`   // default ManagedBy
	Value string `yaml:"value"` // default A1RetryScript
}

// SingletonEnabled reports whether singleton enforcement is on.
func (c *Config) SingletonEnabled() bool {
	return c.Singleton == nil || *c.Singleton
}

// AssignPublicIP reports whether launched instances get a public IP.
func (c *Config) AssignPublicIP() bool {
	return c.Instance.AssignPublicIP == nil || *c.Instance.AssignPublicIP
}

// ManagedTags returns the freeform tag map applied to created resources.
func (c *Config) ManagedTags() map[string]string {
	return map[string]string{c.Tag.Key: c.Tag.Value}
}
