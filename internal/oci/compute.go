package oci

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
)

// LaunchInstance issues one create-instance request. No retry happens at this
// layer; the caller owns outcome classification.
func (c *RealClient) LaunchInstance(ctx context.Context, spec LaunchSpec) (string, error) {
	resp, err := c.compute.LaunchInstance(ctx, core.LaunchInstanceRequest{
		LaunchInstanceDetails: core.LaunchInstanceDetails{
			AvailabilityDomain: common.String(spec.AvailabilityDomain),
			CompartmentId:      common.String(spec.CompartmentID),
			DisplayName:        common.String(spec.DisplayName),
			Shape:              common.String(spec.Shape),
			ShapeConfig: &core.LaunchInstanceShapeConfigDetails{
				Ocpus:       common.Float32(spec.Ocpus),
				MemoryInGBs: common.Float32(spec.MemoryGBs),
			},
			SourceDetails: core.InstanceSourceViaImageDetails{
				ImageId:             common.String(spec.ImageID),
				BootVolumeSizeInGBs: common.Int64(spec.BootVolumeGBs),
			},
			CreateVnicDetails: &core.CreateVnicDetails{
				SubnetId:       common.String(spec.SubnetID),
				AssignPublicIp: common.Bool(spec.AssignPublicIP),
			},
			Metadata: map[string]string{
				"ssh_authorized_keys": spec.SSHAuthorizedKeys,
			},
			FreeformTags: spec.FreeformTags,
		},
	})
	if err != nil {
		return "", err
	}
	return deref(resp.Id), nil
}

// ListInstances returns all instances of the compartment, following
// pagination. The listing includes terminated instances; callers filter.
func (c *RealClient) ListInstances(ctx context.Context, compartmentID string) ([]Instance, error) {
	var out []Instance
	req := core.ListInstancesRequest{CompartmentId: common.String(compartmentID)}
	for {
		resp, err := c.compute.ListInstances(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("failed to list instances: %w", err)
		}
		for _, it := range resp.Items {
			out = append(out, instanceView(it))
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return out, nil
}

// GetInstance returns one instance by OCID.
func (c *RealClient) GetInstance(ctx context.Context, id string) (*Instance, error) {
	resp, err := c.compute.GetInstance(ctx, core.GetInstanceRequest{
		InstanceId: common.String(id),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get instance %s: %w", id, err)
	}
	in := instanceView(resp.Instance)
	return &in, nil
}

// LatestImage returns the newest image matching OS, OS version and shape.
func (c *RealClient) LatestImage(ctx context.Context, compartmentID, operatingSystem, osVersion, shape string) (string, error) {
	resp, err := c.compute.ListImages(ctx, core.ListImagesRequest{
		CompartmentId:          common.String(compartmentID),
		OperatingSystem:        common.String(operatingSystem),
		OperatingSystemVersion: common.String(osVersion),
		Shape:                  common.String(shape),
		SortBy:                 core.ListImagesSortByTimecreated,
		SortOrder:              core.ListImagesSortOrderDesc,
	})
	if err != nil {
		return "", fmt.Errorf("failed to list images: %w", err)
	}
	if len(resp.Items) == 0 {
		return "", fmt.Errorf("no image found for %s %s on shape %s", operatingSystem, osVersion, shape)
	}
	return deref(resp.Items[0].Id), nil
}

func instanceView(in core.Instance) Instance {
	return Instance{
		ID:                 deref(in.Id),
		DisplayName:        deref(in.DisplayName),
		AvailabilityDomain: deref(in.AvailabilityDomain),
		Shape:              deref(in.Shape),
		LifecycleState:     string(in.LifecycleState),
		FreeformTags:       in.FreeformTags,
	}
}
