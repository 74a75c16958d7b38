// Package logging builds the zap logger used across the application and
// defines the event codes attached to significant provisioning transitions.
//
// Every log line that marks a state change carries an "event" field with one
// of the codes below, so log consumers can follow the run without parsing
// message text.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Event codes for significant provisioning transitions.
const (
	EventAuthCheck       = "AUTH_CHECK"
	EventNetCreate       = "NET_CREATE"
	EventNetReuse        = "NET_REUSE"
	EventImageResolve    = "IMAGE_RESOLVE"
	EventPlacement       = "PLACEMENT"
	EventAlreadyActive   = "ALREADY_ACTIVE"
	EventLaunchAttempt   = "LAUNCH_ATTEMPT"
	EventLaunchRetryable = "LAUNCH_RETRYABLE"
	EventLaunchSuccess   = "LAUNCH_SUCCESS"
	EventRetryProfile    = "RETRY_PROFILE"
	EventRetrySleep      = "RETRY_SLEEP"
	EventInterrupted     = "INTERRUPTED"
)

// Event returns the field carrying an event code.
func Event(code string) zap.Field {
	return zap.String("event", code)
}

// New builds the application logger. Output always goes to stderr; when
// logFile is non-empty the same lines are appended to that file as well.
func New(logFile string, verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if logFile != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, logFile)
	}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return log, nil
}
