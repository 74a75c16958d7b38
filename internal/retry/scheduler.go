package retry

import (
	"context"
	"math/rand"
	"time"
)

// Scheduler picks wait durations from the active profile and performs the
// waits. The clock, sleeper and random source are injectable so tests can
// simulate time without real waiting.
type Scheduler struct {
	schedule Schedule
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
	intn     func(n int) int
}

// Option is a functional option for scheduler construction.
type Option func(*Scheduler)

// WithNow replaces the clock.
func WithNow(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// WithSleep replaces the sleeper.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(s *Scheduler) { s.sleep = sleep }
}

// WithRand replaces the random source. The function must return a value in
// [0, n).
func WithRand(intn func(n int) int) Option {
	return func(s *Scheduler) { s.intn = intn }
}

// NewScheduler builds a scheduler over the given schedule.
func NewScheduler(schedule Schedule, opts ...Option) *Scheduler {
	s := &Scheduler{
		schedule: schedule,
		now:      time.Now,
		sleep:    defaultSleep,
		intn:     rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CurrentProfile returns the profile active right now.
func (s *Scheduler) CurrentProfile() Profile {
	return s.schedule.ProfileAt(s.now())
}

// Pick returns the next wait duration for the profile: the interval plus a
// uniformly random whole number of seconds in [0, jitter]. Jitter zero means
// no randomness.
func (s *Scheduler) Pick(p Profile) time.Duration {
	d := p.Interval
	if jitterSecs := int(p.Jitter / time.Second); jitterSecs > 0 {
		d += time.Duration(s.intn(jitterSecs+1)) * time.Second
	}
	return d
}

// Sleep blocks for the given duration or until the context is cancelled.
func (s *Scheduler) Sleep(ctx context.Context, d time.Duration) error {
	return s.sleep(ctx, d)
}

func defaultSleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
