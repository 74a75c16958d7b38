package oci

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWait = WaitConfig{Interval: time.Millisecond, Timeout: time.Second}

func TestResolve_ReusesExisting(t *testing.T) {
	t.Parallel()
	creates := 0
	existing := &NetworkResource{ID: "ocid1.vcn.oc1..existing", LifecycleState: ResourceReady}

	res, created, err := Resolve(context.Background(), "vcn-a", ResolveFuncs[NetworkResource]{
		Find: func(context.Context) (*NetworkResource, error) { return existing, nil },
		Create: func(context.Context) (*NetworkResource, error) {
			creates++
			return nil, errors.New("must not be called")
		},
	}, testWait)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, res.ID)
	assert.Zero(t, creates)
}

func TestResolve_CreatesOnceThenReuses(t *testing.T) {
	t.Parallel()
	creates := 0
	var stored *NetworkResource

	funcs := ResolveFuncs[NetworkResource]{
		Find: func(context.Context) (*NetworkResource, error) { return stored, nil },
		Create: func(context.Context) (*NetworkResource, error) {
			creates++
			stored = &NetworkResource{ID: "ocid1.subnet.oc1..new", LifecycleState: ResourceReady}
			return stored, nil
		},
		Ready: func(r *NetworkResource) bool { return r.LifecycleState == ResourceReady },
	}

	_, created, err := Resolve(context.Background(), "subnet-a", funcs, testWait)
	require.NoError(t, err)
	assert.True(t, created)

	// Second resolution with identical parameters must not create again.
	_, created, err = Resolve(context.Background(), "subnet-a", funcs, testWait)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 1, creates)
}

func TestResolve_WaitsForReadiness(t *testing.T) {
	t.Parallel()
	state := "PROVISIONING"
	finds := 0

	res, created, err := Resolve(context.Background(), "vcn-b", ResolveFuncs[NetworkResource]{
		Find: func(context.Context) (*NetworkResource, error) {
			finds++
			if finds == 1 {
				return nil, nil // pre-create lookup
			}
			if finds >= 3 {
				state = ResourceReady
			}
			return &NetworkResource{ID: "id", LifecycleState: state}, nil
		},
		Create: func(context.Context) (*NetworkResource, error) {
			return &NetworkResource{ID: "id", LifecycleState: state}, nil
		},
		Ready: func(r *NetworkResource) bool { return r.LifecycleState == ResourceReady },
	}, testWait)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, ResourceReady, res.LifecycleState)
}

func TestResolve_FindErrorIsFatal(t *testing.T) {
	t.Parallel()
	_, _, err := Resolve(context.Background(), "vcn-c", ResolveFuncs[NetworkResource]{
		Find: func(context.Context) (*NetworkResource, error) {
			return nil, errors.New("not authorized")
		},
		Create: func(context.Context) (*NetworkResource, error) { return nil, nil },
	}, testWait)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "vcn-c")
}

func TestResolve_TimesOutWhenNeverReady(t *testing.T) {
	t.Parallel()
	first := true
	_, _, err := Resolve(context.Background(), "subnet-b", ResolveFuncs[NetworkResource]{
		Find: func(context.Context) (*NetworkResource, error) {
			if first {
				first = false
				return nil, nil
			}
			return &NetworkResource{ID: "id", LifecycleState: "PROVISIONING"}, nil
		},
		Create: func(context.Context) (*NetworkResource, error) {
			return &NetworkResource{ID: "id", LifecycleState: "PROVISIONING"}, nil
		},
		Ready: func(r *NetworkResource) bool { return r.LifecycleState == ResourceReady },
	}, WaitConfig{Interval: time.Millisecond, Timeout: 20 * time.Millisecond})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}
