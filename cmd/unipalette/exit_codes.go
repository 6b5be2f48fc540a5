package main

import (
	"errors"
	"os"

	unipalette "github.com/alnah/go-unipalette"
	"github.com/alnah/go-unipalette/internal/config"
)

// Exit codes for the unipalette CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Palette written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, environment, or config
	ExitIO      = 3 // Output not writable, input not readable
	ExitUnicode = 4 // Character name lookup failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Unicode errors (exit 4)
	if errors.Is(err, unipalette.ErrUnnamedCodePoint) {
		return ExitUnicode
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrReadInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrTooManyItems) ||
		errors.Is(err, unipalette.ErrMalformedDataURL) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidEnv) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
