package handlers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/imamik/a1grab/internal/oci"
)

// saveAndRestoreFactories snapshots all factory variables and restores them
// after the test, so tests can replace them freely.
func saveAndRestoreFactories(t *testing.T) {
	t.Helper()

	origNewGateway := newGateway
	origNewLogger := newLogger
	origLoadConfigFile := loadConfigFile
	origReadFile := readFile
	origFileExists := fileExists
	origRunWizard := runWizard
	origWriteConfig := writeConfig
	origIsTerminal := isTerminal
	origGenerateKeyPair := generateKeyPair

	t.Cleanup(func() {
		newGateway = origNewGateway
		newLogger = origNewLogger
		loadConfigFile = origLoadConfigFile
		readFile = origReadFile
		fileExists = origFileExists
		runWizard = origRunWizard
		writeConfig = origWriteConfig
		isTerminal = origIsTerminal
		generateKeyPair = origGenerateKeyPair
	})
}

// writeTestConfig writes a minimal valid config file and returns its path.
func writeTestConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "a1grab.yaml")
	data := []byte("compartment_id: ocid1.compartment.oc1..aaaa\n" +
		"availability_domains:\n" +
		"  - xkcd:EU-FRANKFURT-1-AD-1\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// availableResource answers every network find with a ready resource, so a
// run against the mock reuses an existing topology.
func availableResource(id string) *oci.NetworkResource {
	return &oci.NetworkResource{ID: id, LifecycleState: oci.ResourceReady}
}

// healthyGateway is a mock where every check passes and the first launch
// attempt succeeds.
func healthyGateway() *oci.MockGateway {
	return &oci.MockGateway{
		CheckAuthFunc: func(context.Context) (string, error) {
			return "ocid1.tenancy.oc1..aaaa", nil
		},
		FindVcnFunc: func(context.Context, string, string) (*oci.NetworkResource, error) {
			return availableResource("ocid1.vcn.oc1..aaaa"), nil
		},
		FindInternetGatewayFunc: func(context.Context, string, string, string) (*oci.NetworkResource, error) {
			return availableResource("ocid1.internetgateway.oc1..aaaa"), nil
		},
		FindRouteTableFunc: func(context.Context, string, string, string) (*oci.NetworkResource, error) {
			return availableResource("ocid1.routetable.oc1..aaaa"), nil
		},
		FindSecurityListFunc: func(context.Context, string, string, string) (*oci.NetworkResource, error) {
			return availableResource("ocid1.securitylist.oc1..aaaa"), nil
		},
		FindSubnetFunc: func(context.Context, string, string, string) (*oci.NetworkResource, error) {
			return availableResource("ocid1.subnet.oc1..aaaa"), nil
		},
		LatestImageFunc: func(context.Context, string, string, string, string) (string, error) {
			return "ocid1.image.oc1..ubuntu", nil
		},
		LaunchInstanceFunc: func(context.Context, oci.LaunchSpec) (string, error) {
			return "ocid1.instance.oc1..new", nil
		},
		GetInstanceFunc: func(_ context.Context, id string) (*oci.Instance, error) {
			return &oci.Instance{ID: id, DisplayName: "a1-1", LifecycleState: "PROVISIONING"}, nil
		},
		InstanceAddressesFunc: func(context.Context, string, string) (*oci.InstanceAddresses, error) {
			return &oci.InstanceAddresses{PrivateIP: "10.0.0.2", PublicIP: "129.0.0.1"}, nil
		},
	}
}
