// Package engine runs the provisioning reconciliation loop: check whether a
// managed instance is already active, pick the next availability domain,
// make one launch attempt, and on a retryable failure wait out the active
// retry profile and go around again. The loop is unbounded; a
// capacity-constrained shape may take arbitrarily long to land.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/imamik/a1grab/internal/logging"
	"github.com/imamik/a1grab/internal/oci"
	"github.com/imamik/a1grab/internal/provisioning/compute"
	"github.com/imamik/a1grab/internal/provisioning/placement"
	"github.com/imamik/a1grab/internal/retry"
)

// ErrInterrupted marks a run cut short by an external interrupt. The process
// maps it to a distinct exit status.
var ErrInterrupted = errors.New("run interrupted")

// Monitor answers singleton queries and produces instance reports.
type Monitor interface {
	Active(ctx context.Context) ([]oci.Instance, error)
	Describe(ctx context.Context, id string) *compute.Report
}

// Launcher makes exactly one classified launch attempt per call.
type Launcher interface {
	Attempt(ctx context.Context, ad, displayName string) compute.Result
}

// Namer computes the next collision-free display name.
type Namer interface {
	Next(ctx context.Context) (string, error)
	Fallback() string
}

// Scheduler selects retry profiles and performs the waits.
type Scheduler interface {
	CurrentProfile() retry.Profile
	Pick(p retry.Profile) time.Duration
	Sleep(ctx context.Context, d time.Duration) error
}

// Engine is the reconciliation loop. All loop state lives in the private
// state struct below; the sequence cursor lives in Placement.
type Engine struct {
	Monitor   Monitor
	Launcher  Launcher
	Namer     Namer
	Scheduler Scheduler
	Placement *placement.Sequence
	Singleton bool
	Log       *zap.Logger
}

// state is the mutable loop state, owned by a single Run invocation.
type state struct {
	attempts  int
	lastLabel retry.Label
}

// Run drives the loop to one of its three terminal states. It returns the
// instance report on success (either a fresh launch or an already-active
// instance), ErrInterrupted when the context is cancelled, and the fatal
// launch error otherwise.
func (e *Engine) Run(ctx context.Context) (*compute.Report, error) {
	st := &state{}

	for {
		if err := ctx.Err(); err != nil {
			return nil, e.interrupted(err)
		}

		if e.Singleton {
			if report, ok := e.checkSingleton(ctx); ok {
				return report, nil
			}
		}

		ad := e.Placement.Current()
		name := e.nextName(ctx)
		st.attempts++

		e.Log.Info("launching instance",
			logging.Event(logging.EventLaunchAttempt),
			zap.Int("attempt", st.attempts),
			zap.String("availability_domain", ad),
			zap.String("display_name", name))

		result := e.Launcher.Attempt(ctx, ad, name)

		// A cancel landing while the launch call was in flight surfaces as a
		// "context canceled" provider error. That is an interrupt, not a
		// launch verdict; it must not be classified as fatal.
		if result.Outcome != compute.OutcomeSuccess && ctx.Err() != nil {
			return nil, e.interrupted(result.Err)
		}

		switch result.Outcome {
		case compute.OutcomeSuccess:
			e.Log.Info("instance launched",
				logging.Event(logging.EventLaunchSuccess),
				zap.Int("attempts", st.attempts),
				zap.String("instance_id", result.InstanceID),
				zap.String("display_name", name))
			return e.Monitor.Describe(ctx, result.InstanceID), nil

		case compute.OutcomeFatal:
			return nil, fmt.Errorf("launch of %s in %s failed with a non-retryable error: %w", name, ad, result.Err)

		case compute.OutcomeRetryable:
			e.Log.Info("launch rejected, retrying",
				logging.Event(logging.EventLaunchRetryable),
				zap.String("availability_domain", ad),
				zap.Error(result.Err))
			e.Placement.Advance()
			if err := e.waitOut(ctx, st); err != nil {
				return nil, err
			}
		}
	}
}

// checkSingleton reports whether a managed instance is already active. A
// transient query failure must not block progress toward provisioning, so it
// degrades to "zero active" with a warning.
func (e *Engine) checkSingleton(ctx context.Context) (*compute.Report, bool) {
	active, err := e.Monitor.Active(ctx)
	if err != nil {
		e.Log.Warn("active instance query failed, assuming none", zap.Error(err))
		return nil, false
	}
	if len(active) == 0 {
		return nil, false
	}

	e.Log.Info("managed instance already active",
		logging.Event(logging.EventAlreadyActive),
		zap.Int("count", len(active)),
		zap.String("instance_id", active[0].ID))
	return e.Monitor.Describe(ctx, active[0].ID), true
}

func (e *Engine) nextName(ctx context.Context) string {
	name, err := e.Namer.Next(ctx)
	if err != nil {
		name = e.Namer.Fallback()
		e.Log.Warn("display name computation failed, using timestamp fallback",
			zap.String("display_name", name),
			zap.Error(err))
	}
	return name
}

// waitOut recomputes the active profile, logs it when the label changed from
// the previous iteration, and sleeps out the jittered interval.
func (e *Engine) waitOut(ctx context.Context, st *state) error {
	profile := e.Scheduler.CurrentProfile()
	if profile.Label != st.lastLabel {
		e.Log.Info("retry profile selected",
			logging.Event(logging.EventRetryProfile),
			zap.String("profile", string(profile.Label)),
			zap.Duration("interval", profile.Interval),
			zap.Duration("jitter", profile.Jitter))
		st.lastLabel = profile.Label
	}

	wait := e.Scheduler.Pick(profile)
	e.Log.Info("sleeping before next attempt",
		logging.Event(logging.EventRetrySleep),
		zap.Duration("duration", wait))

	if err := e.Scheduler.Sleep(ctx, wait); err != nil {
		return e.interrupted(err)
	}
	return nil
}

func (e *Engine) interrupted(cause error) error {
	e.Log.Warn("interrupted, aborting run",
		logging.Event(logging.EventInterrupted),
		zap.Error(cause))
	return ErrInterrupted
}
