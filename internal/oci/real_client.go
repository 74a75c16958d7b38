package oci

import (
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/oracle/oci-go-sdk/v65/identity"
)

// RealClient implements Gateway against the OCI SDK.
type RealClient struct {
	identity  identity.IdentityClient
	compute   core.ComputeClient
	vnet      core.VirtualNetworkClient
	tenancyID string
}

// NewRealClient builds a Gateway from an OCI CLI config file. An empty
// configPath falls back to the SDK default chain (~/.oci/config plus
// environment variables); an empty region keeps the profile's region.
func NewRealClient(configPath, profile, region string) (*RealClient, error) {
	var provider common.ConfigurationProvider
	if configPath != "" {
		provider = common.CustomProfileConfigProvider(configPath, profile)
	} else {
		provider = common.DefaultConfigProvider()
	}

	tenancyID, err := provider.TenancyOCID()
	if err != nil {
		return nil, fmt.Errorf("failed to read tenancy from OCI config: %w", err)
	}

	identityClient, err := identity.NewIdentityClientWithConfigurationProvider(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to build identity client: %w", err)
	}
	computeClient, err := core.NewComputeClientWithConfigurationProvider(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to build compute client: %w", err)
	}
	vnetClient, err := core.NewVirtualNetworkClientWithConfigurationProvider(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to build virtual network client: %w", err)
	}

	if region != "" {
		identityClient.SetRegion(region)
		computeClient.SetRegion(region)
		vnetClient.SetRegion(region)
	}

	return &RealClient{
		identity:  identityClient,
		compute:   computeClient,
		vnet:      vnetClient,
		tenancyID: tenancyID,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
