package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/a1grab/internal/config"
	"github.com/imamik/a1grab/internal/oci"
)

func TestDoctor_AllChecksPass(t *testing.T) {
	saveAndRestoreFactories(t)

	gw := healthyGateway()
	readFile = func(string) ([]byte, error) { return []byte("ssh-rsa AAAA"), nil }
	newGateway = func(*config.Config) (oci.Gateway, error) { return gw, nil }

	require.NoError(t, Doctor(context.Background(), writeTestConfig(t)))
}

func TestDoctor_BadConfig(t *testing.T) {
	saveAndRestoreFactories(t)

	err := Doctor(context.Background(), "/does/not/exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "doctor found problems")
}

func TestDoctor_AuthFailureStillRunsRemainingChecks(t *testing.T) {
	saveAndRestoreFactories(t)

	var imageChecked bool
	gw := healthyGateway()
	gw.CheckAuthFunc = func(context.Context) (string, error) {
		return "", errors.New("NotAuthenticated")
	}
	gw.LatestImageFunc = func(context.Context, string, string, string, string) (string, error) {
		imageChecked = true
		return "ocid1.image.oc1..ubuntu", nil
	}

	readFile = func(string) ([]byte, error) { return []byte("ssh-rsa AAAA"), nil }
	newGateway = func(*config.Config) (oci.Gateway, error) { return gw, nil }

	err := Doctor(context.Background(), writeTestConfig(t))
	require.Error(t, err)
	assert.False(t, imageChecked, "checks depending on auth are skipped, not run blind")
}

func TestDoctor_ImageLookupFailure(t *testing.T) {
	saveAndRestoreFactories(t)

	gw := healthyGateway()
	gw.LatestImageFunc = func(context.Context, string, string, string, string) (string, error) {
		return "", errors.New("no matching image")
	}

	readFile = func(string) ([]byte, error) { return []byte("ssh-rsa AAAA"), nil }
	newGateway = func(*config.Config) (oci.Gateway, error) { return gw, nil }

	require.Error(t, Doctor(context.Background(), writeTestConfig(t)))
}

func TestShorten(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "short", shorten("short"))

	long := "ocid1.compartment.oc1..aaaaaaaabbbbbbbbccccccccdddddddd"
	got := shorten(long)
	assert.Contains(t, got, "...")
	assert.Less(t, len(got), len(long))
}
