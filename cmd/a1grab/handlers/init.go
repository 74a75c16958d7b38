package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/imamik/a1grab/internal/config"
	"github.com/imamik/a1grab/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive wizard.
	runWizard = wizard.Run

	// writeConfig writes the config to a file.
	writeConfig = wizard.WriteConfig

	// isTerminal reports whether stdout is a terminal.
	isTerminal = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd())
	}
)

// Init creates a configuration file, interactively when a terminal is
// attached and non-interactively otherwise.
func Init(ctx context.Context, outputPath string, nonInteractive bool) error {
	if fileExists(outputPath) {
		return fmt.Errorf("%s already exists; remove it first or pass --output", outputPath)
	}

	if nonInteractive || !isTerminal() {
		if err := writeConfig(config.Default(), outputPath); err != nil {
			return err
		}
		fmt.Printf("Wrote default configuration to %s\n", outputPath)
		fmt.Println("Fill in compartment_id before running 'a1grab run'.")
		return nil
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := result.ToConfig()
	if err := writeConfig(cfg, outputPath); err != nil {
		return err
	}

	printInitSuccess(outputPath, cfg)
	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("a1grab - Ampere A1 capacity hunter")
	fmt.Println("==================================")
	fmt.Println()
	fmt.Println("This wizard creates a configuration with sensible defaults.")
	fmt.Println("You only need your compartment OCID; everything else has a default.")
	fmt.Println()
}

// printInitSuccess prints the summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Instance Summary")
	fmt.Println("----------------")
	fmt.Printf("  Shape:  %s\n", cfg.Instance.Shape)
	fmt.Printf("  Size:   %.0f OCPUs / %.0f GB\n", cfg.Instance.Ocpus, cfg.Instance.MemoryGBs)
	fmt.Printf("  Retry:  every %ds (+0-%ds jitter)\n", cfg.Retry.IntervalSeconds, cfg.Retry.JitterSeconds)
	if cfg.Retry.Peak.Enabled {
		fmt.Printf("  Peak:   %02d:00-%02d:59 every %ds\n", cfg.Retry.Peak.StartHour, cfg.Retry.Peak.EndHour, cfg.Retry.Peak.IntervalSeconds)
	}
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Generate an SSH key pair (skip if you have one):")
	fmt.Println("     a1grab keygen")
	fmt.Println()
	fmt.Println("  2. Verify credentials and access:")
	fmt.Printf("     a1grab doctor -c %s\n", outputPath)
	fmt.Println()
	fmt.Println("  3. Start hunting capacity:")
	fmt.Printf("     a1grab run -c %s\n", outputPath)
	fmt.Println()
}
