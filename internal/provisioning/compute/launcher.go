// Package compute implements the instance-side provisioning pieces: the
// launch attempt classifier, the singleton monitor and display-name
// generation.
package compute

import (
	"context"

	"github.com/imamik/a1grab/internal/config"
	"github.com/imamik/a1grab/internal/oci"
)

// Result is the classified outcome of one launch attempt.
type Result struct {
	AvailabilityDomain string
	DisplayName        string
	Outcome            Outcome
	InstanceID         string
	Err                error
}

// Launcher issues single create-instance calls with the configured sizing.
type Launcher struct {
	api       oci.ComputeAPI
	cfg       *config.Config
	imageID   string
	subnetID  string
	publicKey string
}

// NewLauncher builds a launcher. imageID and subnetID are the resolved image
// and subnet for this run; publicKey is the SSH public key payload injected
// into instance metadata.
func NewLauncher(api oci.ComputeAPI, cfg *config.Config, imageID, subnetID, publicKey string) *Launcher {
	return &Launcher{
		api:       api,
		cfg:       cfg,
		imageID:   imageID,
		subnetID:  subnetID,
		publicKey: publicKey,
	}
}

// Attempt issues exactly one create-instance request in the given AD under
// the given display name and classifies the outcome. It never retries.
func (l *Launcher) Attempt(ctx context.Context, ad, displayName string) Result {
	id, err := l.api.LaunchInstance(ctx, oci.LaunchSpec{
		AvailabilityDomain: ad,
		CompartmentID:      l.cfg.CompartmentID,
		DisplayName:        displayName,
		Shape:              l.cfg.Instance.Shape,
		Ocpus:              l.cfg.Instance.Ocpus,
		MemoryGBs:          l.cfg.Instance.MemoryGBs,
		BootVolumeGBs:      l.cfg.Instance.BootVolumeGBs,
		ImageID:            l.imageID,
		SubnetID:           l.subnetID,
		AssignPublicIP:     l.cfg.AssignPublicIP(),
		SSHAuthorizedKeys:  l.publicKey,
		FreeformTags:       l.cfg.ManagedTags(),
	})
	if err != nil {
		return Result{
			AvailabilityDomain: ad,
			DisplayName:        displayName,
			Outcome:            Classify(err),
			Err:                err,
		}
	}
	return Result{
		AvailabilityDomain: ad,
		DisplayName:        displayName,
		Outcome:            OutcomeSuccess,
		InstanceID:         id,
	}
}
