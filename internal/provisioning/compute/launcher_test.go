package compute

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/a1grab/internal/oci"
)

func TestLauncher_AttemptSuccess(t *testing.T) {
	t.Parallel()
	var got oci.LaunchSpec
	api := &oci.MockGateway{
		LaunchInstanceFunc: func(_ context.Context, spec oci.LaunchSpec) (string, error) {
			got = spec
			return "ocid1.instance.oc1..new", nil
		},
	}

	l := NewLauncher(api, testConfig(), "ocid1.image.oc1..img", "ocid1.subnet.oc1..sub", "ssh-rsa AAAA...")
	res := l.Attempt(context.Background(), "AD-1", "a1-4")

	assert.Equal(t, OutcomeSuccess, res.Outcome)
	assert.Equal(t, "ocid1.instance.oc1..new", res.InstanceID)
	require.NoError(t, res.Err)

	assert.Equal(t, "AD-1", got.AvailabilityDomain)
	assert.Equal(t, "a1-4", got.DisplayName)
	assert.Equal(t, "VM.Standard.A1.Flex", got.Shape)
	assert.Equal(t, float32(4), got.Ocpus)
	assert.Equal(t, float32(24), got.MemoryGBs)
	assert.Equal(t, int64(50), got.BootVolumeGBs)
	assert.Equal(t, "ocid1.image.oc1..img", got.ImageID)
	assert.Equal(t, "ocid1.subnet.oc1..sub", got.SubnetID)
	assert.Equal(t, "ssh-rsa AAAA...", got.SSHAuthorizedKeys)
	assert.True(t, got.AssignPublicIP)
	assert.Equal(t, map[string]string{"ManagedBy": "A1RetryScript"}, got.FreeformTags)
}

func TestLauncher_AttemptClassifiesFailures(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want Outcome
	}{
		{"capacity", errors.New("500: InternalError: Out of host capacity."), OutcomeRetryable},
		{"bad request", errors.New("400: InvalidParameter"), OutcomeFatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			api := &oci.MockGateway{
				LaunchInstanceFunc: func(context.Context, oci.LaunchSpec) (string, error) {
					return "", tt.err
				},
			}
			l := NewLauncher(api, testConfig(), "img", "sub", "key")
			res := l.Attempt(context.Background(), "AD-1", "a1-1")

			assert.Equal(t, tt.want, res.Outcome)
			assert.ErrorIs(t, res.Err, tt.err)
			assert.Empty(t, res.InstanceID)
		})
	}
}
