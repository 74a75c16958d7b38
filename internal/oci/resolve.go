package oci

import (
	"context"
	"fmt"
	"time"
)

// WaitConfig bounds the readiness poll after a create.
type WaitConfig struct {
	Interval time.Duration
	Timeout  time.Duration
}

// DefaultWait is the readiness poll used outside tests.
var DefaultWait = WaitConfig{
	Interval: 3 * time.Second,
	Timeout:  5 * time.Minute,
}

// ResolveFuncs defines the functions required for generic find-or-create
// resolution of one resource kind.
type ResolveFuncs[T any] struct {
	// Find looks the resource up by display name within its scope.
	// Returns nil when no live resource matches.
	Find func(ctx context.Context) (*T, error)
	// Create creates the resource.
	Create func(ctx context.Context) (*T, error)
	// Ready reports whether the resource has reached a usable state.
	// If nil, the created resource is returned without waiting.
	Ready func(resource *T) bool
}

// Resolve returns the existing resource with the given name, or creates it
// and waits until Ready reports true. The second return value is true when a
// create was issued. Resolution never creates a duplicate: Find runs first,
// and a non-nil result short-circuits the create.
func Resolve[T any](ctx context.Context, name string, funcs ResolveFuncs[T], wait WaitConfig) (*T, bool, error) {
	resource, err := funcs.Find(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up %s: %w", name, err)
	}
	if resource != nil {
		return resource, false, nil
	}

	resource, err = funcs.Create(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create %s: %w", name, err)
	}
	if funcs.Ready == nil || funcs.Ready(resource) {
		return resource, true, nil
	}

	resource, err = waitReady(ctx, name, funcs, wait)
	if err != nil {
		return nil, true, err
	}
	return resource, true, nil
}

func waitReady[T any](ctx context.Context, name string, funcs ResolveFuncs[T], wait WaitConfig) (*T, error) {
	if wait.Interval <= 0 {
		wait = DefaultWait
	}
	deadline := time.Now().Add(wait.Timeout)

	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for %s: %w", name, ctx.Err())
		case <-time.After(wait.Interval):
		}

		resource, err := funcs.Find(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to re-read %s while waiting: %w", name, err)
		}
		if resource != nil && funcs.Ready(resource) {
			return resource, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("timed out waiting for %s to become ready", name)
		}
	}
}
