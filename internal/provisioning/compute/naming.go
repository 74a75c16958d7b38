package compute

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/imamik/a1grab/internal/oci"
)

// Namer derives instance display names from the highest numeric suffix
// already present under the configured prefix, so successive attempts never
// collide even across separate failed runs.
type Namer struct {
	api           oci.ComputeAPI
	compartmentID string
	prefix        string
	now           func() time.Time
}

// NewNamer builds a namer for the given prefix.
func NewNamer(api oci.ComputeAPI, compartmentID, prefix string) *Namer {
	return &Namer{api: api, compartmentID: compartmentID, prefix: prefix, now: time.Now}
}

// Next returns "<prefix>-<n+1>" where n is the highest numeric suffix among
// existing instances named "<prefix>-<number>". With no match it returns
// "<prefix>-1". Instances in any lifecycle state count: terminated instances
// keep their name and a reused name would be ambiguous in listings.
func (n *Namer) Next(ctx context.Context) (string, error) {
	instances, err := n.api.ListInstances(ctx, n.compartmentID)
	if err != nil {
		return "", fmt.Errorf("failed to list instances for naming: %w", err)
	}

	highest := 0
	for _, in := range instances {
		rest, ok := strings.CutPrefix(in.DisplayName, n.prefix+"-")
		if !ok {
			continue
		}
		v, err := strconv.Atoi(rest)
		if err != nil || v <= 0 {
			continue
		}
		if v > highest {
			highest = v
		}
	}
	return fmt.Sprintf("%s-%d", n.prefix, highest+1), nil
}

// Fallback returns a timestamp-derived name for when Next itself fails.
func (n *Namer) Fallback() string {
	return fmt.Sprintf("%s-%d", n.prefix, n.now().Unix())
}
