package main

import (
	"errors"
	"os"

	clippunct "github.com/alnah/go-clippunct"
	"github.com/alnah/go-clippunct/internal/clipboard"
	"github.com/alnah/go-clippunct/internal/config"
	"github.com/alnah/go-clippunct/internal/notify"
)

// Exit codes for the clippunct CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess     = 0 // Successful run
	ExitGeneral     = 1 // General/unexpected error
	ExitUsage       = 2 // Invalid flags, config, or validation
	ExitIO          = 3 // File not found, permission denied
	ExitEnvironment = 4 // No clipboard or notification backend
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Desktop environment errors (exit 4)
	if errors.Is(err, clipboard.ErrUnavailable) ||
		errors.Is(err, notify.ErrNotifierUnavailable) {
		return ExitEnvironment
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidInterval) ||
		errors.Is(err, config.ErrInvalidLogLevel) ||
		errors.Is(err, config.ErrInvalidLogFormat) ||
		errors.Is(err, config.ErrInvalidWorkers) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, clippunct.ErrUnknownFormat) ||
		errors.Is(err, clippunct.ErrInputTooLarge) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrOutputConflict) ||
		errors.Is(err, ErrNoOutput) ||
		errors.Is(err, ErrConfigExists) ||
		errors.Is(err, ErrUnknownSubcommand) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
