package oci

// Narrow views of the provider objects, carrying only the fields the
// provisioner consumes. Keeping SDK types out of the interfaces keeps mocks
// and callers free of the SDK.

// ResourceReady is the lifecycle state a network object must reach before it
// can be referenced by dependent objects.
const ResourceReady = "AVAILABLE"

// NetworkResource is a reference to one provider network object (VCN,
// internet gateway, route table, security list or subnet).
type NetworkResource struct {
	ID             string
	DisplayName    string
	LifecycleState string
}

// Instance is a compute instance as reported by the provider.
type Instance struct {
	ID                 string
	DisplayName        string
	AvailabilityDomain string
	Shape              string
	LifecycleState     string
	FreeformTags       map[string]string
}

// InstanceAddresses holds the IPs of an instance's primary network interface.
type InstanceAddresses struct {
	PrivateIP string
	PublicIP  string
}

// LaunchSpec describes one create-instance request.
type LaunchSpec struct {
	AvailabilityDomain string
	CompartmentID      string
	DisplayName        string
	Shape              string
	Ocpus              float32
	MemoryGBs          float32
	BootVolumeGBs      int64
	ImageID            string
	SubnetID           string
	AssignPublicIP     bool
	SSHAuthorizedKeys  string
	FreeformTags       map[string]string
}
