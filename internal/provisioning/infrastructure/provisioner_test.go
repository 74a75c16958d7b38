package infrastructure

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/imamik/a1grab/internal/config"
	"github.com/imamik/a1grab/internal/oci"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.CompartmentID = "ocid1.compartment.oc1..aaaa"
	return cfg
}

func available(id string) *oci.NetworkResource {
	return &oci.NetworkResource{ID: id, LifecycleState: oci.ResourceReady}
}

// fakeNetwork simulates a compartment where created objects become findable.
type fakeNetwork struct {
	oci.MockGateway
	creates []string
}

func newFakeNetwork() *fakeNetwork {
	f := &fakeNetwork{}
	existing := map[string]*oci.NetworkResource{}

	find := func(kind string) func(context.Context, string, string, string) (*oci.NetworkResource, error) {
		return func(_ context.Context, _, _, name string) (*oci.NetworkResource, error) {
			return existing[kind+"/"+name], nil
		}
	}
	create := func(kind, id string) func(name string) *oci.NetworkResource {
		return func(name string) *oci.NetworkResource {
			f.creates = append(f.creates, kind)
			r := available(id)
			existing[kind+"/"+name] = r
			return r
		}
	}

	vcnCreate := create("vcn", "ocid1.vcn.oc1..v")
	f.FindVcnFunc = func(_ context.Context, _, name string) (*oci.NetworkResource, error) {
		return existing["vcn/"+name], nil
	}
	f.CreateVcnFunc = func(_ context.Context, _, name, _ string, _ map[string]string) (*oci.NetworkResource, error) {
		return vcnCreate(name), nil
	}

	igwCreate := create("igw", "ocid1.internetgateway.oc1..g")
	f.FindInternetGatewayFunc = find("igw")
	f.CreateInternetGatewayFunc = func(_ context.Context, _, _, name string, _ map[string]string) (*oci.NetworkResource, error) {
		return igwCreate(name), nil
	}

	rtCreate := create("rt", "ocid1.routetable.oc1..r")
	f.FindRouteTableFunc = find("rt")
	f.CreateRouteTableFunc = func(_ context.Context, _, _, name, gatewayID string, _ map[string]string) (*oci.NetworkResource, error) {
		if gatewayID == "" {
			return nil, errors.New("route table created before gateway")
		}
		return rtCreate(name), nil
	}

	slCreate := create("sl", "ocid1.securitylist.oc1..s")
	f.FindSecurityListFunc = find("sl")
	f.CreateSecurityListFunc = func(_ context.Context, _, _, name string, _ map[string]string) (*oci.NetworkResource, error) {
		return slCreate(name), nil
	}

	subnetCreate := create("subnet", "ocid1.subnet.oc1..n")
	f.FindSubnetFunc = find("subnet")
	f.CreateSubnetFunc = func(_ context.Context, _, _, name, _, routeTableID string, securityListIDs []string, _ map[string]string) (*oci.NetworkResource, error) {
		if routeTableID == "" || len(securityListIDs) == 0 {
			return nil, errors.New("subnet created before its dependencies")
		}
		return subnetCreate(name), nil
	}

	return f
}

func newProvisioner(net oci.NetworkAPI) *Provisioner {
	p := NewProvisioner(net, testConfig(), zap.NewNop())
	p.wait = oci.WaitConfig{Interval: time.Millisecond, Timeout: time.Second}
	return p
}

func TestProvision_CreatesInDependencyOrder(t *testing.T) {
	t.Parallel()
	net := newFakeNetwork()

	topo, err := newProvisioner(net).Provision(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"vcn", "igw", "rt", "sl", "subnet"}, net.creates)
	assert.Equal(t, "ocid1.vcn.oc1..v", topo.VcnID)
	assert.Equal(t, "ocid1.subnet.oc1..n", topo.SubnetID)
}

func TestProvision_SecondRunReusesEverything(t *testing.T) {
	t.Parallel()
	net := newFakeNetwork()
	p := newProvisioner(net)

	_, err := p.Provision(context.Background())
	require.NoError(t, err)
	require.Len(t, net.creates, 5)

	topo, err := p.Provision(context.Background())
	require.NoError(t, err)
	assert.Len(t, net.creates, 5, "second run must not create anything")
	assert.Equal(t, "ocid1.vcn.oc1..v", topo.VcnID)
}

func TestProvision_CreateFailureIsFatal(t *testing.T) {
	t.Parallel()
	net := newFakeNetwork()
	net.CreateRouteTableFunc = func(context.Context, string, string, string, string, map[string]string) (*oci.NetworkResource, error) {
		return nil, errors.New("not authorized")
	}

	_, err := newProvisioner(net).Provision(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "route table")
}
