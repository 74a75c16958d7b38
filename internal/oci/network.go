package oci

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
)

// live reports whether a listed network object still counts as existing.
// Terminated objects keep their display name, so they must not satisfy a
// find-by-name lookup.
func live(state string) bool {
	return state != "TERMINATED" && state != "TERMINATING"
}

// FindVcn returns the VCN with the given display name, or nil.
func (c *RealClient) FindVcn(ctx context.Context, compartmentID, name string) (*NetworkResource, error) {
	resp, err := c.vnet.ListVcns(ctx, core.ListVcnsRequest{
		CompartmentId: common.String(compartmentID),
		DisplayName:   common.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list VCNs: %w", err)
	}
	for _, v := range resp.Items {
		if state := string(v.LifecycleState); live(state) {
			return &NetworkResource{ID: deref(v.Id), DisplayName: deref(v.DisplayName), LifecycleState: state}, nil
		}
	}
	return nil, nil
}

// CreateVcn creates a VCN with the given CIDR block.
func (c *RealClient) CreateVcn(ctx context.Context, compartmentID, name, cidr string, tags map[string]string) (*NetworkResource, error) {
	resp, err := c.vnet.CreateVcn(ctx, core.CreateVcnRequest{
		CreateVcnDetails: core.CreateVcnDetails{
			CompartmentId: common.String(compartmentID),
			DisplayName:   common.String(name),
			CidrBlock:     common.String(cidr),
			FreeformTags:  tags,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create VCN: %w", err)
	}
	return &NetworkResource{ID: deref(resp.Id), DisplayName: deref(resp.DisplayName), LifecycleState: string(resp.LifecycleState)}, nil
}

// FindInternetGateway returns the internet gateway with the given display
// name in the VCN, or nil.
func (c *RealClient) FindInternetGateway(ctx context.Context, compartmentID, vcnID, name string) (*NetworkResource, error) {
	resp, err := c.vnet.ListInternetGateways(ctx, core.ListInternetGatewaysRequest{
		CompartmentId: common.String(compartmentID),
		VcnId:         common.String(vcnID),
		DisplayName:   common.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list internet gateways: %w", err)
	}
	for _, g := range resp.Items {
		if state := string(g.LifecycleState); live(state) {
			return &NetworkResource{ID: deref(g.Id), DisplayName: deref(g.DisplayName), LifecycleState: state}, nil
		}
	}
	return nil, nil
}

// CreateInternetGateway creates an enabled internet gateway in the VCN.
func (c *RealClient) CreateInternetGateway(ctx context.Context, compartmentID, vcnID, name string, tags map[string]string) (*NetworkResource, error) {
	resp, err := c.vnet.CreateInternetGateway(ctx, core.CreateInternetGatewayRequest{
		CreateInternetGatewayDetails: core.CreateInternetGatewayDetails{
			CompartmentId: common.String(compartmentID),
			VcnId:         common.String(vcnID),
			DisplayName:   common.String(name),
			IsEnabled:     common.Bool(true),
			FreeformTags:  tags,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create internet gateway: %w", err)
	}
	return &NetworkResource{ID: deref(resp.Id), DisplayName: deref(resp.DisplayName), LifecycleState: string(resp.LifecycleState)}, nil
}

// FindRouteTable returns the route table with the given display name in the
// VCN, or nil.
func (c *RealClient) FindRouteTable(ctx context.Context, compartmentID, vcnID, name string) (*NetworkResource, error) {
	resp, err := c.vnet.ListRouteTables(ctx, core.ListRouteTablesRequest{
		CompartmentId: common.String(compartmentID),
		VcnId:         common.String(vcnID),
		DisplayName:   common.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list route tables: %w", err)
	}
	for _, rt := range resp.Items {
		if state := string(rt.LifecycleState); live(state) {
			return &NetworkResource{ID: deref(rt.Id), DisplayName: deref(rt.DisplayName), LifecycleState: state}, nil
		}
	}
	return nil, nil
}

// CreateRouteTable creates a route table with a default route through the
// given internet gateway.
func (c *RealClient) CreateRouteTable(ctx context.Context, compartmentID, vcnID, name, gatewayID string, tags map[string]string) (*NetworkResource, error) {
	resp, err := c.vnet.CreateRouteTable(ctx, core.CreateRouteTableRequest{
		CreateRouteTableDetails: core.CreateRouteTableDetails{
			CompartmentId: common.String(compartmentID),
			VcnId:         common.String(vcnID),
			DisplayName:   common.String(name),
			RouteRules: []core.RouteRule{{
				Destination:     common.String("0.0.0.0/0"),
				DestinationType: core.RouteRuleDestinationTypeCidrBlock,
				NetworkEntityId: common.String(gatewayID),
			}},
			FreeformTags: tags,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create route table: %w", err)
	}
	return &NetworkResource{ID: deref(resp.Id), DisplayName: deref(resp.DisplayName), LifecycleState: string(resp.LifecycleState)}, nil
}

// FindSecurityList returns the security list with the given display name in
// the VCN, or nil.
func (c *RealClient) FindSecurityList(ctx context.Context, compartmentID, vcnID, name string) (*NetworkResource, error) {
	resp, err := c.vnet.ListSecurityLists(ctx, core.ListSecurityListsRequest{
		CompartmentId: common.String(compartmentID),
		VcnId:         common.String(vcnID),
		DisplayName:   common.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list security lists: %w", err)
	}
	for _, sl := range resp.Items {
		if state := string(sl.LifecycleState); live(state) {
			return &NetworkResource{ID: deref(sl.Id), DisplayName: deref(sl.DisplayName), LifecycleState: state}, nil
		}
	}
	return nil, nil
}

// CreateSecurityList creates a security list allowing SSH ingress from
// anywhere and all egress.
func (c *RealClient) CreateSecurityList(ctx context.Context, compartmentID, vcnID, name string, tags map[string]string) (*NetworkResource, error) {
	resp, err := c.vnet.CreateSecurityList(ctx, core.CreateSecurityListRequest{
		CreateSecurityListDetails: core.CreateSecurityListDetails{
			CompartmentId: common.String(compartmentID),
			VcnId:         common.String(vcnID),
			DisplayName:   common.String(name),
			IngressSecurityRules: []core.IngressSecurityRule{{
				Protocol: common.String("6"), // TCP
				Source:   common.String("0.0.0.0/0"),
				TcpOptions: &core.TcpOptions{
					DestinationPortRange: &core.PortRange{
						Min: common.Int(22),
						Max: common.Int(22),
					},
				},
			}},
			EgressSecurityRules: []core.EgressSecurityRule{{
				Protocol:    common.String("all"),
				Destination: common.String("0.0.0.0/0"),
			}},
			FreeformTags: tags,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create security list: %w", err)
	}
	return &NetworkResource{ID: deref(resp.Id), DisplayName: deref(resp.DisplayName), LifecycleState: string(resp.LifecycleState)}, nil
}

// FindSubnet returns the subnet with the given display name in the VCN, or
// nil.
func (c *RealClient) FindSubnet(ctx context.Context, compartmentID, vcnID, name string) (*NetworkResource, error) {
	resp, err := c.vnet.ListSubnets(ctx, core.ListSubnetsRequest{
		CompartmentId: common.String(compartmentID),
		VcnId:         common.String(vcnID),
		DisplayName:   common.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list subnets: %w", err)
	}
	for _, s := range resp.Items {
		if state := string(s.LifecycleState); live(state) {
			return &NetworkResource{ID: deref(s.Id), DisplayName: deref(s.DisplayName), LifecycleState: state}, nil
		}
	}
	return nil, nil
}

// CreateSubnet creates a subnet bound to the given route table and security
// lists.
func (c *RealClient) CreateSubnet(ctx context.Context, compartmentID, vcnID, name, cidr, routeTableID string, securityListIDs []string, tags map[string]string) (*NetworkResource, error) {
	resp, err := c.vnet.CreateSubnet(ctx, core.CreateSubnetRequest{
		CreateSubnetDetails: core.CreateSubnetDetails{
			CompartmentId:   common.String(compartmentID),
			VcnId:           common.String(vcnID),
			DisplayName:     common.String(name),
			CidrBlock:       common.String(cidr),
			RouteTableId:    common.String(routeTableID),
			SecurityListIds: securityListIDs,
			FreeformTags:    tags,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create subnet: %w", err)
	}
	return &NetworkResource{ID: deref(resp.Id), DisplayName: deref(resp.DisplayName), LifecycleState: string(resp.LifecycleState)}, nil
}

// InstanceAddresses returns the IPs of the instance's first VNIC, or nil
// when the instance has no VNIC attached yet.
func (c *RealClient) InstanceAddresses(ctx context.Context, compartmentID, instanceID string) (*InstanceAddresses, error) {
	attachments, err := c.compute.ListVnicAttachments(ctx, core.ListVnicAttachmentsRequest{
		CompartmentId: common.String(compartmentID),
		InstanceId:    common.String(instanceID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list VNIC attachments: %w", err)
	}
	if len(attachments.Items) == 0 {
		return nil, nil
	}

	vnic, err := c.vnet.GetVnic(ctx, core.GetVnicRequest{
		VnicId: attachments.Items[0].VnicId,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get VNIC: %w", err)
	}
	return &InstanceAddresses{
		PrivateIP: deref(vnic.PrivateIp),
		PublicIP:  deref(vnic.PublicIp),
	}, nil
}
