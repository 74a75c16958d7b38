package placement

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/a1grab/internal/oci"
)

const compartment = "ocid1.compartment.oc1..aaaa"

func TestResolve_ConfiguredListUsedVerbatim(t *testing.T) {
	t.Parallel()
	api := &oci.MockGateway{
		ListAvailabilityDomainsFunc: func(context.Context, string) ([]string, error) {
			t.Fatal("provider must not be queried when an explicit list is configured")
			return nil, nil
		},
	}

	seq, err := Resolve(context.Background(), api, compartment, []string{"AD-3", "AD-1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"AD-3", "AD-1"}, seq.Domains())
}

func TestResolve_FallsBackToProvider(t *testing.T) {
	t.Parallel()
	api := &oci.MockGateway{
		ListAvailabilityDomainsFunc: func(context.Context, string) ([]string, error) {
			return []string{"Uocm:PHX-AD-1", "Uocm:PHX-AD-2"}, nil
		},
	}

	seq, err := Resolve(context.Background(), api, compartment, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, seq.Len())
	assert.Equal(t, "Uocm:PHX-AD-1", seq.Current())
}

func TestResolve_EmptyIsFatal(t *testing.T) {
	t.Parallel()
	api := &oci.MockGateway{
		ListAvailabilityDomainsFunc: func(context.Context, string) ([]string, error) {
			return nil, nil
		},
	}

	_, err := Resolve(context.Background(), api, compartment, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no availability domains")
}

func TestResolve_ProviderErrorIsFatal(t *testing.T) {
	t.Parallel()
	api := &oci.MockGateway{
		ListAvailabilityDomainsFunc: func(context.Context, string) ([]string, error) {
			return nil, errors.New("not authorized")
		},
	}

	_, err := Resolve(context.Background(), api, compartment, nil)
	require.Error(t, err)
}

func TestSequence_CircularCycling(t *testing.T) {
	t.Parallel()
	seq := &Sequence{ads: []string{"AD-1", "AD-2", "AD-3"}}

	// After k advances the AD used equals index k mod N, starting at 0.
	want := []string{"AD-1", "AD-2", "AD-3", "AD-1", "AD-2", "AD-3", "AD-1"}
	for k, expected := range want {
		assert.Equal(t, expected, seq.Current(), "advance %d", k)
		seq.Advance()
	}
}

func TestSequence_SingleDomain(t *testing.T) {
	t.Parallel()
	seq := &Sequence{ads: []string{"AD-1"}}
	for i := 0; i < 5; i++ {
		assert.Equal(t, "AD-1", seq.Current())
		seq.Advance()
	}
}
