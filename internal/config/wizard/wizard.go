// Package wizard implements the first-run interactive configuration builder.
//
// The wizard asks for the handful of values that have no sensible default
// (compartment, sizing, retry cadence) and writes a starter a1grab.yaml.
// Everything else keeps the defaults from the config package.
package wizard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/imamik/a1grab/internal/config"
)

// Result holds the answers from the interactive wizard.
type Result struct {
	Profile       string
	Region        string
	CompartmentID string

	Ocpus int

	IntervalSeconds int
	PeakEnabled     bool
	PeakStartHour   int
	PeakEndHour     int
}

// Run walks the user through the wizard groups. The context is used for
// cancellation support (Ctrl+C).
func Run(ctx context.Context) (*Result, error) {
	result := &Result{Profile: "DEFAULT", Ocpus: 4, IntervalSeconds: 60}

	if err := runIdentityGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("identity: %w", err)
	}
	if err := runSizingGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("sizing: %w", err)
	}
	if err := runRetryGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("retry: %w", err)
	}

	return result, nil
}

func runIdentityGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("OCI Profile").
				Description("Profile name inside ~/.oci/config").
				Placeholder("DEFAULT").
				Value(&result.Profile),
			huh.NewSelect[string]().
				Title("Region").
				Description("Region to hunt capacity in").
				Options(RegionOptions...).
				Value(&result.Region),
			huh.NewInput().
				Title("Compartment OCID").
				Description("The compartment all resources are created in").
				Placeholder("ocid1.compartment.oc1..").
				Value(&result.CompartmentID).
				Validate(validateOCID),
		).Title("OCI Identity"),
	).RunWithContext(ctx)
}

func runSizingGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Instance Size").
				Description("A1.Flex OCPU count; memory follows at 6 GB per OCPU").
				Options(OcpuOptions...).
				Value(&result.Ocpus),
		).Title("Instance Sizing"),
	).RunWithContext(ctx)
}

func runRetryGroup(ctx context.Context, result *Result) error {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Retry Interval").
				Description("Base wait between launch attempts").
				Options(IntervalOptions...).
				Value(&result.IntervalSeconds),
			huh.NewConfirm().
				Title("Peak-Hour Window").
				Description("Use a faster cadence during a daily window?").
				Value(&result.PeakEnabled),
		).Title("Retry Cadence"),
	).RunWithContext(ctx)
	if err != nil || !result.PeakEnabled {
		return err
	}

	var start, end string
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Peak Start Hour").
				Description("Local hour 0-23; a start after the end wraps past midnight").
				Placeholder("22").
				Value(&start).
				Validate(validateHour),
			huh.NewInput().
				Title("Peak End Hour").
				Placeholder("2").
				Value(&end).
				Validate(validateHour),
		).Title("Peak Window"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	result.PeakStartHour, _ = strconv.Atoi(strings.TrimSpace(start))
	result.PeakEndHour, _ = strconv.Atoi(strings.TrimSpace(end))
	return nil
}

func validateOCID(s string) error {
	if !strings.HasPrefix(s, "ocid1.") {
		return fmt.Errorf("must be an OCID (ocid1....)")
	}
	return nil
}

func validateHour(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 || v > 23 {
		return fmt.Errorf("must be an hour 0-23")
	}
	return nil
}

// ToConfig converts the answers into a full configuration with defaults
// applied.
func (r *Result) ToConfig() *config.Config {
	cfg := config.Default()
	cfg.Profile = r.Profile
	cfg.Region = r.Region
	cfg.CompartmentID = r.CompartmentID
	cfg.Instance.Ocpus = float32(r.Ocpus)
	cfg.Instance.MemoryGBs = float32(r.Ocpus * 6)
	cfg.Retry.IntervalSeconds = r.IntervalSeconds
	cfg.Retry.Peak.Enabled = r.PeakEnabled
	cfg.Retry.Peak.StartHour = r.PeakStartHour
	cfg.Retry.Peak.EndHour = r.PeakEndHour
	return cfg
}
