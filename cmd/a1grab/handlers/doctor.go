package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/imamik/a1grab/internal/oci"
)

// check is one diagnostic step. Detail carries the value the check resolved,
// shown next to the pass mark.
type check struct {
	name string
	run  func(ctx context.Context) (detail string, err error)
}

// Doctor validates the configuration and live OCI access. All checks run
// even after a failure so the user sees the full picture; the first error is
// returned.
func Doctor(ctx context.Context, configPath string) error {
	fmt.Println("a1grab doctor")
	fmt.Println()

	cfg, err := loadConfigFile(configPath)
	if err != nil {
		printCheck("configuration", "", err)
		return fmt.Errorf("doctor found problems")
	}
	printCheck("configuration", fmt.Sprintf("compartment %s", shorten(cfg.CompartmentID)), nil)

	var gw oci.Gateway
	checks := []check{
		{"ssh public key", func(context.Context) (string, error) {
			data, err := readFile(cfg.SSH.PublicKeyPath)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s (%d bytes)", cfg.SSH.PublicKeyPath, len(data)), nil
		}},
		{"authentication", func(ctx context.Context) (string, error) {
			candidate, err := newGateway(cfg)
			if err != nil {
				return "", err
			}
			tenancyID, err := candidate.CheckAuth(ctx)
			if err != nil {
				return "", err
			}
			// Later checks only use the gateway once auth has passed.
			gw = candidate
			return fmt.Sprintf("tenancy %s", shorten(tenancyID)), nil
		}},
		{"compartment access", func(ctx context.Context) (string, error) {
			if gw == nil {
				return "", fmt.Errorf("skipped, authentication failed")
			}
			return shorten(cfg.CompartmentID), gw.CheckCompartment(ctx, cfg.CompartmentID)
		}},
		{"availability domains", func(ctx context.Context) (string, error) {
			if len(cfg.AvailabilityDomains) > 0 {
				return strings.Join(cfg.AvailabilityDomains, ", "), nil
			}
			if gw == nil {
				return "", fmt.Errorf("skipped, authentication failed")
			}
			ads, err := gw.ListAvailabilityDomains(ctx, cfg.CompartmentID)
			if err != nil {
				return "", err
			}
			if len(ads) == 0 {
				return "", fmt.Errorf("region reports no availability domains")
			}
			return strings.Join(ads, ", "), nil
		}},
		{"launch image", func(ctx context.Context) (string, error) {
			if cfg.Image.ID != "" {
				return shorten(cfg.Image.ID), nil
			}
			if gw == nil {
				return "", fmt.Errorf("skipped, authentication failed")
			}
			id, err := gw.LatestImage(ctx, cfg.CompartmentID, cfg.Image.OperatingSystem, cfg.Image.OperatingSystemVersion, cfg.Instance.Shape)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s %s (%s)", cfg.Image.OperatingSystem, cfg.Image.OperatingSystemVersion, shorten(id)), nil
		}},
	}

	var failed bool
	for _, c := range checks {
		detail, err := c.run(ctx)
		printCheck(c.name, detail, err)
		if err != nil {
			failed = true
		}
	}

	fmt.Println()
	if failed {
		return fmt.Errorf("doctor found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func printCheck(name, detail string, err error) {
	if err != nil {
		fmt.Printf("  ✗ %-22s %v\n", name, err)
		return
	}
	if detail != "" {
		fmt.Printf("  ✓ %-22s %s\n", name, detail)
		return
	}
	fmt.Printf("  ✓ %s\n", name)
}

// shorten trims long OCIDs for display.
func shorten(id string) string {
	if len(id) <= 32 {
		return id
	}
	return id[:20] + "..." + id[len(id)-8:]
}
