package compute

import (
	"context"

	"go.uber.org/zap"

	"github.com/imamik/a1grab/internal/config"
	"github.com/imamik/a1grab/internal/oci"
)

// unavailable is reported in place of an IP that cannot be determined.
const unavailable = "unavailable"

// activeStates are the lifecycle states counting toward the singleton set.
var activeStates = map[string]bool{
	"PROVISIONING": true,
	"STARTING":     true,
	"RUNNING":      true,
}

// Monitor answers "is a managed instance already active" and produces the
// terminal instance report.
type Monitor struct {
	compute oci.ComputeAPI
	network oci.NetworkAPI
	cfg     *config.Config
	log     *zap.Logger
}

// NewMonitor builds a monitor over the compute and network APIs.
func NewMonitor(computeAPI oci.ComputeAPI, networkAPI oci.NetworkAPI, cfg *config.Config, log *zap.Logger) *Monitor {
	return &Monitor{compute: computeAPI, network: networkAPI, cfg: cfg, log: log}
}

// Active returns the managed instance set: instances matching the configured
// shape, the managed tag and an active lifecycle state.
func (m *Monitor) Active(ctx context.Context) ([]oci.Instance, error) {
	instances, err := m.compute.ListInstances(ctx, m.cfg.CompartmentID)
	if err != nil {
		return nil, err
	}

	var active []oci.Instance
	for _, in := range instances {
		if m.managed(in) {
			active = append(active, in)
		}
	}
	return active, nil
}

// CountActive returns the size of the managed instance set.
func (m *Monitor) CountActive(ctx context.Context) (int, error) {
	active, err := m.Active(ctx)
	if err != nil {
		return 0, err
	}
	return len(active), nil
}

func (m *Monitor) managed(in oci.Instance) bool {
	if in.Shape != m.cfg.Instance.Shape {
		return false
	}
	if !activeStates[in.LifecycleState] {
		return false
	}
	return in.FreeformTags[m.cfg.Tag.Key] == m.cfg.Tag.Value
}

// Report is the terminal success report for one instance.
type Report struct {
	ID             string
	DisplayName    string
	LifecycleState string
	PrivateIP      string
	PublicIP       string
}

// Describe builds the report for the given instance. Lookups are
// best-effort: a failed detail or address query degrades the affected fields
// to "unavailable" instead of failing the run, which at this point has
// already succeeded.
func (m *Monitor) Describe(ctx context.Context, id string) *Report {
	report := &Report{
		ID:             id,
		DisplayName:    unavailable,
		LifecycleState: unavailable,
		PrivateIP:      unavailable,
		PublicIP:       unavailable,
	}

	in, err := m.compute.GetInstance(ctx, id)
	if err != nil {
		m.log.Warn("instance detail lookup failed", zap.String("instance_id", id), zap.Error(err))
		return report
	}
	report.DisplayName = in.DisplayName
	report.LifecycleState = in.LifecycleState

	addrs, err := m.network.InstanceAddresses(ctx, m.cfg.CompartmentID, id)
	if err != nil {
		m.log.Warn("instance address lookup failed", zap.String("instance_id", id), zap.Error(err))
		return report
	}
	if addrs == nil {
		// No VNIC attached yet; the instance is still coming up.
		return report
	}
	if addrs.PrivateIP != "" {
		report.PrivateIP = addrs.PrivateIP
	}
	if addrs.PublicIP != "" {
		report.PublicIP = addrs.PublicIP
	}
	return report
}
