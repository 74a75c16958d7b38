// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/imamik/a1grab/internal/config"
	"github.com/imamik/a1grab/internal/logging"
	"github.com/imamik/a1grab/internal/oci"
	"github.com/imamik/a1grab/internal/provisioning/compute"
	"github.com/imamik/a1grab/internal/provisioning/engine"
	"github.com/imamik/a1grab/internal/provisioning/infrastructure"
	"github.com/imamik/a1grab/internal/provisioning/placement"
	"github.com/imamik/a1grab/internal/retry"
)

// Factory function variables - can be replaced in tests for dependency
// injection.
var (
	// newGateway builds the OCI API gateway from the configuration.
	newGateway = func(cfg *config.Config) (oci.Gateway, error) {
		return oci.NewRealClient(cfg.OCIConfigPath, cfg.Profile, cfg.Region)
	}

	// newLogger builds the application logger.
	newLogger = logging.New

	// loadConfigFile loads config from file.
	loadConfigFile = config.LoadFile

	// readFile reads a file from disk.
	readFile = os.ReadFile
)

// Run executes the capacity retry loop end to end.
//
//  1. Loads the configuration and applies command-line retry overrides
//  2. Verifies credentials and compartment access
//  3. Resolves the launch image and the network topology (find-or-create)
//  4. Resolves the availability domain rotation
//  5. Hands control to the reconciliation loop until it reaches a terminal
//     state: instance active, fatal API error, or interrupt
func Run(ctx context.Context, configPath, logFile string, overrides config.Overrides) error {
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w\nRun 'a1grab init' to create one", err)
	}
	cfg.Apply(overrides)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	log, err := newLogger(logFile, false)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	publicKey, err := readFile(cfg.SSH.PublicKeyPath)
	if err != nil {
		return fmt.Errorf("failed to read SSH public key %s: %w\nRun 'a1grab keygen' to create one", cfg.SSH.PublicKeyPath, err)
	}

	gw, err := newGateway(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize OCI client: %w", err)
	}

	tenancyID, err := gw.CheckAuth(ctx)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}
	log.Info("authenticated",
		logging.Event(logging.EventAuthCheck),
		zap.String("tenancy_id", tenancyID),
		zap.String("profile", cfg.Profile))

	if err := gw.CheckCompartment(ctx, cfg.CompartmentID); err != nil {
		return fmt.Errorf("compartment check failed: %w", err)
	}

	imageID, err := resolveImage(ctx, gw, cfg, log)
	if err != nil {
		return err
	}

	topo, err := infrastructure.NewProvisioner(gw, cfg, log).Provision(ctx)
	if err != nil {
		return err
	}

	seq, err := placement.Resolve(ctx, gw, cfg.CompartmentID, cfg.AvailabilityDomains)
	if err != nil {
		return err
	}
	log.Info("availability domain rotation resolved",
		logging.Event(logging.EventPlacement),
		zap.Strings("availability_domains", seq.Domains()))

	eng := &engine.Engine{
		Monitor:   compute.NewMonitor(gw, gw, cfg, log),
		Launcher:  compute.NewLauncher(gw, cfg, imageID, topo.SubnetID, strings.TrimSpace(string(publicKey))),
		Namer:     compute.NewNamer(gw, cfg.CompartmentID, cfg.Instance.DisplayNamePrefix),
		Scheduler: retry.NewScheduler(buildSchedule(cfg)),
		Placement: seq,
		Singleton: cfg.SingletonEnabled(),
		Log:       log,
	}

	report, err := eng.Run(ctx)
	if err != nil {
		return err
	}

	printReport(report)
	return nil
}

// resolveImage returns the configured image OCID, or looks up the newest
// image matching the configured OS and version.
func resolveImage(ctx context.Context, api oci.ComputeAPI, cfg *config.Config, log *zap.Logger) (string, error) {
	imageID := cfg.Image.ID
	if imageID == "" {
		var err error
		imageID, err = api.LatestImage(ctx, cfg.CompartmentID, cfg.Image.OperatingSystem, cfg.Image.OperatingSystemVersion, cfg.Instance.Shape)
		if err != nil {
			return "", fmt.Errorf("failed to resolve launch image: %w", err)
		}
	}
	log.Info("launch image resolved",
		logging.Event(logging.EventImageResolve),
		zap.String("image_id", imageID))
	return imageID, nil
}

// buildSchedule converts the configured retry cadence into the scheduler's
// duration-based form.
func buildSchedule(cfg *config.Config) retry.Schedule {
	return retry.Schedule{
		Standard: retry.Profile{
			Interval: time.Duration(cfg.Retry.IntervalSeconds) * time.Second,
			Jitter:   time.Duration(cfg.Retry.JitterSeconds) * time.Second,
		},
		Peak: retry.Profile{
			Interval: time.Duration(cfg.Retry.Peak.IntervalSeconds) * time.Second,
			Jitter:   time.Duration(cfg.Retry.Peak.JitterSeconds) * time.Second,
		},
		PeakEnabled:   cfg.Retry.Peak.Enabled,
		PeakStartHour: cfg.Retry.Peak.StartHour,
		PeakEndHour:   cfg.Retry.Peak.EndHour,
	}
}

// printReport outputs the terminal instance report for the user.
func printReport(report *compute.Report) {
	fmt.Printf("\nInstance active!\n")
	fmt.Printf("  ID:         %s\n", report.ID)
	fmt.Printf("  Name:       %s\n", report.DisplayName)
	fmt.Printf("  State:      %s\n", report.LifecycleState)
	fmt.Printf("  Private IP: %s\n", report.PrivateIP)
	fmt.Printf("  Public IP:  %s\n", report.PublicIP)
}
