// Package placement resolves the ordered availability-domain sequence that
// launch attempts cycle through.
package placement

import (
	"context"
	"errors"
	"fmt"

	"github.com/imamik/a1grab/internal/oci"
)

// Sequence is an ordered, non-empty, circular list of AD names. It is
// resolved once per run and fixed for the run's lifetime; only the cursor
// moves.
type Sequence struct {
	ads   []string
	index int
}

// Resolve produces the AD sequence: the configured list verbatim when
// non-empty, otherwise the region's ADs in provider order. An empty result
// from both sources is fatal.
func Resolve(ctx context.Context, api oci.IdentityAPI, compartmentID string, configured []string) (*Sequence, error) {
	ads := configured
	if len(ads) == 0 {
		var err error
		ads, err = api.ListAvailabilityDomains(ctx, compartmentID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve availability domains: %w", err)
		}
	}
	if len(ads) == 0 {
		return nil, errors.New("no availability domains resolvable from configuration or provider")
	}
	return &Sequence{ads: ads}, nil
}

// Current returns the AD the next attempt should use.
func (s *Sequence) Current() string {
	return s.ads[s.index%len(s.ads)]
}

// Advance moves the cursor to the next AD. The cursor wraps modulo the
// sequence length.
func (s *Sequence) Advance() {
	s.index++
}

// Len returns the sequence length.
func (s *Sequence) Len() int {
	return len(s.ads)
}

// Domains returns the resolved AD names in cycle order.
func (s *Sequence) Domains() []string {
	return s.ads
}
