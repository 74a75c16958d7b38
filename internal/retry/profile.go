// Package retry computes the retry cadence between launch attempts.
//
// Two profiles exist, standard and peak. The peak profile applies while the
// current local hour falls inside a configured window; the window is
// inclusive on both ends and may wrap past midnight. Profile selection is
// recomputed before every wait, never cached for the run.
package retry

import "time"

// Label identifies which retry profile is active.
type Label string

const (
	LabelStandard Label = "standard"
	LabelPeak     Label = "peak"
)

// Profile is one retry cadence: a fixed interval plus a uniformly random
// jitter on top.
type Profile struct {
	Interval time.Duration
	Jitter   time.Duration
	Label    Label
}

// Schedule holds both profiles and the peak window.
type Schedule struct {
	Standard      Profile
	Peak          Profile
	PeakEnabled   bool
	PeakStartHour int
	PeakEndHour   int
}

// ProfileAt returns the profile active at the given time.
func (s Schedule) ProfileAt(now time.Time) Profile {
	if s.PeakEnabled && hourInWindow(now.Hour(), s.PeakStartHour, s.PeakEndHour) {
		p := s.Peak
		p.Label = LabelPeak
		return p
	}
	p := s.Standard
	p.Label = LabelStandard
	return p
}

// hourInWindow reports whether hour lies in the inclusive range
// [start, end], treating start > end as a window wrapping past midnight
// (start=22, end=2 covers 22, 23, 0, 1, 2).
func hourInWindow(hour, start, end int) bool {
	if start <= end {
		return hour >= start && hour <= end
	}
	return hour >= start || hour <= end
}
