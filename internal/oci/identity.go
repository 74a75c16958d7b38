package oci

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/identity"
)

// CheckAuth verifies that the configured credentials can list the tenancy's
// region subscriptions. This is the cheapest call that exercises signing,
// endpoint resolution and IAM in one round trip.
func (c *RealClient) CheckAuth(ctx context.Context) (string, error) {
	_, err := c.identity.ListRegionSubscriptions(ctx, identity.ListRegionSubscriptionsRequest{
		TenancyId: common.String(c.tenancyID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to list region subscriptions for tenancy: %w", err)
	}
	return c.tenancyID, nil
}

// CheckCompartment verifies that the compartment exists and is readable with
// the configured credentials.
func (c *RealClient) CheckCompartment(ctx context.Context, compartmentID string) error {
	_, err := c.identity.GetCompartment(ctx, identity.GetCompartmentRequest{
		CompartmentId: common.String(compartmentID),
	})
	if err != nil {
		return fmt.Errorf("failed to access compartment %s: %w", compartmentID, err)
	}
	return nil
}

// ListAvailabilityDomains returns the AD names of the region in provider
// order.
func (c *RealClient) ListAvailabilityDomains(ctx context.Context, compartmentID string) ([]string, error) {
	resp, err := c.identity.ListAvailabilityDomains(ctx, identity.ListAvailabilityDomainsRequest{
		CompartmentId: common.String(compartmentID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list availability domains: %w", err)
	}

	names := make([]string, 0, len(resp.Items))
	for _, ad := range resp.Items {
		names = append(names, deref(ad.Name))
	}
	return names, nil
}
