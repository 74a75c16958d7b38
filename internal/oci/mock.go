package oci

import (
	"context"
)

// MockGateway is a function-field mock of Gateway. Tests set only the
// functions their scenario exercises; unset functions return zero values.
type MockGateway struct {
	CheckAuthFunc               func(ctx context.Context) (string, error)
	CheckCompartmentFunc        func(ctx context.Context, compartmentID string) error
	ListAvailabilityDomainsFunc func(ctx context.Context, compartmentID string) ([]string, error)

	FindVcnFunc               func(ctx context.Context, compartmentID, name string) (*NetworkResource, error)
	CreateVcnFunc             func(ctx context.Context, compartmentID, name, cidr string, tags map[string]string) (*NetworkResource, error)
	FindInternetGatewayFunc   func(ctx context.Context, compartmentID, vcnID, name string) (*NetworkResource, error)
	CreateInternetGatewayFunc func(ctx context.Context, compartmentID, vcnID, name string, tags map[string]string) (*NetworkResource, error)
	FindRouteTableFunc        func(ctx context.Context, compartmentID, vcnID, name string) (*NetworkResource, error)
	CreateRouteTableFunc      func(ctx context.Context, compartmentID, vcnID, name, gatewayID string, tags map[string]string) (*NetworkResource, error)
	FindSecurityListFunc      func(ctx context.Context, compartmentID, vcnID, name string) (*NetworkResource, error)
	CreateSecurityListFunc    func(ctx context.Context, compartmentID, vcnID, name string, tags map[string]string) (*NetworkResource, error)
	FindSubnetFunc            func(ctx context.Context, compartmentID, vcnID, name string) (*NetworkResource, error)
	CreateSubnetFunc          func(ctx context.Context, compartmentID, vcnID, name, cidr, routeTableID string, securityListIDs []string, tags map[string]string) (*NetworkResource, error)
	InstanceAddressesFunc     func(ctx context.Context, compartmentID, instanceID string) (*InstanceAddresses, error)

	LaunchInstanceFunc func(ctx context.Context, spec LaunchSpec) (string, error)
	ListInstancesFunc  func(ctx context.Context, compartmentID string) ([]Instance, error)
	GetInstanceFunc    func(ctx context.Context, id string) (*Instance, error)
	LatestImageFunc    func(ctx context.Context, compartmentID, operatingSystem, osVersion, shape string) (string, error)
}

var _ Gateway = (*MockGateway)(nil)

func (m *MockGateway) CheckAuth(ctx context.Context) (string, error) {
	if m.CheckAuthFunc == nil {
		return "", nil
	}
	return m.CheckAuthFunc(ctx)
}

func (m *MockGateway) CheckCompartment(ctx context.Context, compartmentID string) error {
	if m.CheckCompartmentFunc == nil {
		return nil
	}
	return m.CheckCompartmentFunc(ctx, compartmentID)
}

func (m *MockGateway) ListAvailabilityDomains(ctx context.Context, compartmentID string) ([]string, error) {
	if m.ListAvailabilityDomainsFunc == nil {
		return nil, nil
	}
	return m.ListAvailabilityDomainsFunc(ctx, compartmentID)
}

func (m *MockGateway) FindVcn(ctx context.Context, compartmentID, name string) (*NetworkResource, error) {
	if m.FindVcnFunc == nil {
		return nil, nil
	}
	return m.FindVcnFunc(ctx, compartmentID, name)
}

func (m *MockGateway) CreateVcn(ctx context.Context, compartmentID, name, cidr string, tags map[string]string) (*NetworkResource, error) {
	if m.CreateVcnFunc == nil {
		return nil, nil
	}
	return m.CreateVcnFunc(ctx, compartmentID, name, cidr, tags)
}

func (m *MockGateway) FindInternetGateway(ctx context.Context, compartmentID, vcnID, name string) (*NetworkResource, error) {
	if m.FindInternetGatewayFunc == nil {
		return nil, nil
	}
	return m.FindInternetGatewayFunc(ctx, compartmentID, vcnID, name)
}

func (m *MockGateway) CreateInternetGateway(ctx context.Context, compartmentID, vcnID, name string, tags map[string]string) (*NetworkResource, error) {
	if m.CreateInternetGatewayFunc == nil {
		return nil, nil
	}
	return m.CreateInternetGatewayFunc(ctx, compartmentID, vcnID, name, tags)
}

func (m *MockGateway) FindRouteTable(ctx context.Context, compartmentID, vcnID, name string) (*NetworkResource, error) {
	if m.FindRouteTableFunc == nil {
		return nil, nil
	}
	return m.FindRouteTableFunc(ctx, compartmentID, vcnID, name)
}

func (m *MockGateway) CreateRouteTable(ctx context.Context, compartmentID, vcnID, name, gatewayID string, tags map[string]string) (*NetworkResource, error) {
	if m.CreateRouteTableFunc == nil {
		return nil, nil
	}
	return m.CreateRouteTableFunc(ctx, compartmentID, vcnID, name, gatewayID, tags)
}

func (m *MockGateway) FindSecurityList(ctx context.Context, compartmentID, vcnID, name string) (*NetworkResource, error) {
	if m.FindSecurityListFunc == nil {
		return nil, nil
	}
	return m.FindSecurityListFunc(ctx, compartmentID, vcnID, name)
}

func (m *MockGateway) CreateSecurityList(ctx context.Context, compartmentID, vcnID, name string, tags map[string]string) (*NetworkResource, error) {
	if m.CreateSecurityListFunc == nil {
		return nil, nil
	}
	return m.CreateSecurityListFunc(ctx, compartmentID, vcnID, name, tags)
}

func (m *MockGateway) FindSubnet(ctx context.Context, compartmentID, vcnID, name string) (*NetworkResource, error) {
	if m.FindSubnetFunc == nil {
		return nil, nil
	}
	return m.FindSubnetFunc(ctx, compartmentID, vcnID, name)
}

func (m *MockGateway) CreateSubnet(ctx context.Context, compartmentID, vcnID, name, cidr, routeTableID string, securityListIDs []string, tags map[string]string) (*NetworkResource, error) {
	if m.CreateSubnetFunc == nil {
		return nil, nil
	}
	return m.CreateSubnetFunc(ctx, compartmentID, vcnID, name, cidr, routeTableID, securityListIDs, tags)
}

func (m *MockGateway) InstanceAddresses(ctx context.Context, compartmentID, instanceID string) (*InstanceAddresses, error) {
	if m.InstanceAddressesFunc == nil {
		return nil, nil
	}
	return m.InstanceAddressesFunc(ctx, compartmentID, instanceID)
}

func (m *MockGateway) LaunchInstance(ctx context.Context, spec LaunchSpec) (string, error) {
	if m.LaunchInstanceFunc == nil {
		return "", nil
	}
	return m.LaunchInstanceFunc(ctx, spec)
}

func (m *MockGateway) ListInstances(ctx context.Context, compartmentID string) ([]Instance, error) {
	if m.ListInstancesFunc == nil {
		return nil, nil
	}
	return m.ListInstancesFunc(ctx, compartmentID)
}

func (m *MockGateway) GetInstance(ctx context.Context, id string) (*Instance, error) {
	if m.GetInstanceFunc == nil {
		return nil, nil
	}
	return m.GetInstanceFunc(ctx, id)
}

func (m *MockGateway) LatestImage(ctx context.Context, compartmentID, operatingSystem, osVersion, shape string) (string, error) {
	if m.LatestImageFunc == nil {
		return "", nil
	}
	return m.LatestImageFunc(ctx, compartmentID, operatingSystem, osVersion, shape)
}
