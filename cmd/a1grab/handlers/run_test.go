package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/imamik/a1grab/internal/config"
	"github.com/imamik/a1grab/internal/oci"
)

func quietLogger(t *testing.T) {
	t.Helper()
	newLogger = func(string, bool) (*zap.Logger, error) {
		return zap.NewNop(), nil
	}
}

func TestRun_MissingConfig(t *testing.T) {
	saveAndRestoreFactories(t)

	err := Run(context.Background(), "/does/not/exist.yaml", "", config.Overrides{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a1grab init")
}

func TestRun_MissingSSHKeyIsFatal(t *testing.T) {
	saveAndRestoreFactories(t)
	quietLogger(t)

	readFile = func(string) ([]byte, error) {
		return nil, errors.New("no such file")
	}

	err := Run(context.Background(), writeTestConfig(t), "", config.Overrides{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SSH public key")
	assert.Contains(t, err.Error(), "a1grab keygen")
}

func TestRun_LaunchSucceeds(t *testing.T) {
	saveAndRestoreFactories(t)
	quietLogger(t)

	gw := healthyGateway()
	var launched []oci.LaunchSpec
	gw.LaunchInstanceFunc = func(_ context.Context, spec oci.LaunchSpec) (string, error) {
		launched = append(launched, spec)
		return "ocid1.instance.oc1..new", nil
	}

	readFile = func(string) ([]byte, error) {
		return []byte("ssh-rsa AAAA test@host\n"), nil
	}
	newGateway = func(*config.Config) (oci.Gateway, error) {
		return gw, nil
	}

	err := Run(context.Background(), writeTestConfig(t), "", config.Overrides{})
	require.NoError(t, err)

	require.Len(t, launched, 1)
	spec := launched[0]
	assert.Equal(t, "xkcd:EU-FRANKFURT-1-AD-1", spec.AvailabilityDomain)
	assert.Equal(t, "ocid1.subnet.oc1..aaaa", spec.SubnetID)
	assert.Equal(t, "ocid1.image.oc1..ubuntu", spec.ImageID)
	assert.Equal(t, "ssh-rsa AAAA test@host", spec.SSHAuthorizedKeys, "key payload is trimmed")
	assert.Equal(t, "VM.Standard.A1.Flex", spec.Shape)
}

func TestRun_ExplicitImageSkipsLookup(t *testing.T) {
	saveAndRestoreFactories(t)
	quietLogger(t)

	gw := healthyGateway()
	gw.LatestImageFunc = func(context.Context, string, string, string, string) (string, error) {
		t.Fatal("image lookup must not run when an image OCID is configured")
		return "", nil
	}
	var imageUsed string
	gw.LaunchInstanceFunc = func(_ context.Context, spec oci.LaunchSpec) (string, error) {
		imageUsed = spec.ImageID
		return "ocid1.instance.oc1..new", nil
	}

	readFile = func(string) ([]byte, error) { return []byte("ssh-rsa AAAA"), nil }
	newGateway = func(*config.Config) (oci.Gateway, error) { return gw, nil }
	loadConfigFile = func(string) (*config.Config, error) {
		cfg := config.Default()
		cfg.CompartmentID = "ocid1.compartment.oc1..aaaa"
		cfg.AvailabilityDomains = []string{"AD-1"}
		cfg.Image.ID = "ocid1.image.oc1..pinned"
		return cfg, nil
	}

	require.NoError(t, Run(context.Background(), "", "", config.Overrides{}))
	assert.Equal(t, "ocid1.image.oc1..pinned", imageUsed)
}

func TestRun_AuthFailureIsFatal(t *testing.T) {
	saveAndRestoreFactories(t)
	quietLogger(t)

	gw := healthyGateway()
	gw.CheckAuthFunc = func(context.Context) (string, error) {
		return "", errors.New("NotAuthenticated")
	}

	readFile = func(string) ([]byte, error) { return []byte("ssh-rsa AAAA"), nil }
	newGateway = func(*config.Config) (oci.Gateway, error) { return gw, nil }

	err := Run(context.Background(), writeTestConfig(t), "", config.Overrides{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication failed")
}

func TestRun_OverridesReachScheduleValidation(t *testing.T) {
	saveAndRestoreFactories(t)
	quietLogger(t)

	bad := -1
	err := Run(context.Background(), writeTestConfig(t), "", config.Overrides{IntervalSeconds: &bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestBuildSchedule(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Retry.IntervalSeconds = 45
	cfg.Retry.JitterSeconds = 10
	cfg.Retry.Peak.Enabled = true
	cfg.Retry.Peak.StartHour = 22
	cfg.Retry.Peak.EndHour = 2

	s := buildSchedule(cfg)
	assert.Equal(t, "45s", s.Standard.Interval.String())
	assert.Equal(t, "10s", s.Standard.Jitter.String())
	assert.Equal(t, "30s", s.Peak.Interval.String())
	assert.True(t, s.PeakEnabled)
	assert.Equal(t, 22, s.PeakStartHour)
	assert.Equal(t, 2, s.PeakEndHour)
}
