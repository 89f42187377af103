package main

import (
	"errors"
	"os"

	dl2md "github.com/alnah/go-dl2md"
)

// Exit codes for the dl2md CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags or missing argument
	ExitIO      = 3 // File not found, permission denied
	ExitInput   = 4 // Malformed datalog input
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Malformed input (exit 4)
	if errors.Is(err, dl2md.ErrMalformedDeclaration) ||
		errors.Is(err, dl2md.ErrCommentAfterCode) {
		return ExitInput
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, dl2md.ErrUnknownFenceLanguage) {
		return ExitUsage
	}

	return ExitGeneral
}
