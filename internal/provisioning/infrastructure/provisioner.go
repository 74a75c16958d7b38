// Package infrastructure resolves the network topology an instance launches
// into: one VCN, one internet gateway, one route table, one security list
// and one subnet, each found by display name or created with the fixed
// topology rules.
package infrastructure

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/imamik/a1grab/internal/config"
	"github.com/imamik/a1grab/internal/logging"
	"github.com/imamik/a1grab/internal/oci"
)

// Topology holds the resolved network object identifiers for one run.
type Topology struct {
	VcnID             string
	InternetGatewayID string
	RouteTableID      string
	SecurityListID    string
	SubnetID          string
}

// Provisioner performs idempotent find-or-create resolution of the network
// topology.
type Provisioner struct {
	net  oci.NetworkAPI
	cfg  *config.Config
	log  *zap.Logger
	wait oci.WaitConfig
}

// NewProvisioner builds an infrastructure provisioner.
func NewProvisioner(net oci.NetworkAPI, cfg *config.Config, log *zap.Logger) *Provisioner {
	return &Provisioner{net: net, cfg: cfg, log: log, wait: oci.DefaultWait}
}

// Provision resolves the topology in dependency order: VCN, internet
// gateway, route table (needs the gateway), security list, subnet (needs
// route table and security list). Any failure is fatal to the run; network
// setup errors indicate configuration or permission problems, not capacity.
func (p *Provisioner) Provision(ctx context.Context) (*Topology, error) {
	compartment := p.cfg.CompartmentID
	names := p.cfg.Network
	tags := p.cfg.ManagedTags()
	topo := &Topology{}

	var err error
	topo.VcnID, err = p.resolve(ctx, "vcn", names.VcnName, oci.ResolveFuncs[oci.NetworkResource]{
		Find: func(ctx context.Context) (*oci.NetworkResource, error) {
			return p.net.FindVcn(ctx, compartment, names.VcnName)
		},
		Create: func(ctx context.Context) (*oci.NetworkResource, error) {
			return p.net.CreateVcn(ctx, compartment, names.VcnName, names.VcnCIDR, tags)
		},
		Ready: ready,
	})
	if err != nil {
		return nil, err
	}

	topo.InternetGatewayID, err = p.resolve(ctx, "internet gateway", names.InternetGatewayName, oci.ResolveFuncs[oci.NetworkResource]{
		Find: func(ctx context.Context) (*oci.NetworkResource, error) {
			return p.net.FindInternetGateway(ctx, compartment, topo.VcnID, names.InternetGatewayName)
		},
		Create: func(ctx context.Context) (*oci.NetworkResource, error) {
			return p.net.CreateInternetGateway(ctx, compartment, topo.VcnID, names.InternetGatewayName, tags)
		},
		Ready: ready,
	})
	if err != nil {
		return nil, err
	}

	topo.RouteTableID, err = p.resolve(ctx, "route table", names.RouteTableName, oci.ResolveFuncs[oci.NetworkResource]{
		Find: func(ctx context.Context) (*oci.NetworkResource, error) {
			return p.net.FindRouteTable(ctx, compartment, topo.VcnID, names.RouteTableName)
		},
		Create: func(ctx context.Context) (*oci.NetworkResource, error) {
			return p.net.CreateRouteTable(ctx, compartment, topo.VcnID, names.RouteTableName, topo.InternetGatewayID, tags)
		},
		Ready: ready,
	})
	if err != nil {
		return nil, err
	}

	topo.SecurityListID, err = p.resolve(ctx, "security list", names.SecurityListName, oci.ResolveFuncs[oci.NetworkResource]{
		Find: func(ctx context.Context) (*oci.NetworkResource, error) {
			return p.net.FindSecurityList(ctx, compartment, topo.VcnID, names.SecurityListName)
		},
		Create: func(ctx context.Context) (*oci.NetworkResource, error) {
			return p.net.CreateSecurityList(ctx, compartment, topo.VcnID, names.SecurityListName, tags)
		},
		Ready: ready,
	})
	if err != nil {
		return nil, err
	}

	topo.SubnetID, err = p.resolve(ctx, "subnet", names.SubnetName, oci.ResolveFuncs[oci.NetworkResource]{
		Find: func(ctx context.Context) (*oci.NetworkResource, error) {
			return p.net.FindSubnet(ctx, compartment, topo.VcnID, names.SubnetName)
		},
		Create: func(ctx context.Context) (*oci.NetworkResource, error) {
			return p.net.CreateSubnet(ctx, compartment, topo.VcnID, names.SubnetName, names.SubnetCIDR, topo.RouteTableID, []string{topo.SecurityListID}, tags)
		},
		Ready: ready,
	})
	if err != nil {
		return nil, err
	}

	return topo, nil
}

func (p *Provisioner) resolve(ctx context.Context, kind, name string, funcs oci.ResolveFuncs[oci.NetworkResource]) (string, error) {
	resource, created, err := oci.Resolve(ctx, name, funcs, p.wait)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s %q: %w", kind, name, err)
	}

	event := logging.EventNetReuse
	if created {
		event = logging.EventNetCreate
	}
	p.log.Info("resolved network resource",
		logging.Event(event),
		zap.String("kind", kind),
		zap.String("name", name),
		zap.String("id", resource.ID))

	return resource.ID, nil
}

func ready(r *oci.NetworkResource) bool {
	return r.LifecycleState == oci.ResourceReady
}
