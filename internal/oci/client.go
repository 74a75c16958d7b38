// Package oci provides a wrapper around the Oracle Cloud Infrastructure API.
package oci

import (
	"context"
)

// IdentityAPI covers the identity-plane calls the provisioner needs.
type IdentityAPI interface {
	// CheckAuth verifies that the configured credentials can reach the
	// tenancy. Returns the tenancy OCID on success.
	CheckAuth(ctx context.Context) (string, error)

	// CheckCompartment verifies that the compartment exists and is readable.
	CheckCompartment(ctx context.Context, compartmentID string) error

	// ListAvailabilityDomains returns the AD names of the configured region,
	// in the order the provider reports them.
	ListAvailabilityDomains(ctx context.Context, compartmentID string) ([]string, error)
}

// NetworkAPI covers the virtual-network calls. Find methods look up by exact
// display name within their parent scope and return nil when nothing matches.
type NetworkAPI interface {
	FindVcn(ctx context.Context, compartmentID, name string) (*NetworkResource, error)
	CreateVcn(ctx context.Context, compartmentID, name, cidr string, tags map[string]string) (*NetworkResource, error)

	FindInternetGateway(ctx context.Context, compartmentID, vcnID, name string) (*NetworkResource, error)
	CreateInternetGateway(ctx context.Context, compartmentID, vcnID, name string, tags map[string]string) (*NetworkResource, error)

	FindRouteTable(ctx context.Context, compartmentID, vcnID, name string) (*NetworkResource, error)
	// CreateRouteTable creates a route table with a single default route
	// (0.0.0.0/0) through the given internet gateway.
	CreateRouteTable(ctx context.Context, compartmentID, vcnID, name, gatewayID string, tags map[string]string) (*NetworkResource, error)

	FindSecurityList(ctx context.Context, compartmentID, vcnID, name string) (*NetworkResource, error)
	// CreateSecurityList creates a security list allowing ingress TCP/22 from
	// anywhere and all egress.
	CreateSecurityList(ctx context.Context, compartmentID, vcnID, name string, tags map[string]string) (*NetworkResource, error)

	FindSubnet(ctx context.Context, compartmentID, vcnID, name string) (*NetworkResource, error)
	CreateSubnet(ctx context.Context, compartmentID, vcnID, name, cidr, routeTableID string, securityListIDs []string, tags map[string]string) (*NetworkResource, error)

	// InstanceAddresses returns the IPs of the instance's first network
	// interface, or nil when the instance has no interface attached.
	InstanceAddresses(ctx context.Context, compartmentID, instanceID string) (*InstanceAddresses, error)
}

// ComputeAPI covers the compute-plane calls.
type ComputeAPI interface {
	// LaunchInstance issues exactly one create-instance request and returns
	// the new instance OCID.
	LaunchInstance(ctx context.Context, spec LaunchSpec) (string, error)

	// ListInstances returns all instances of the compartment, following
	// pagination.
	ListInstances(ctx context.Context, compartmentID string) ([]Instance, error)

	GetInstance(ctx context.Context, id string) (*Instance, error)

	// LatestImage returns the newest image matching the given OS, OS version
	// and shape.
	LatestImage(ctx context.Context, compartmentID, operatingSystem, osVersion, shape string) (string, error)
}

// Gateway bundles the API surfaces a full provisioning run needs.
type Gateway interface {
	IdentityAPI
	NetworkAPI
	ComputeAPI
}
