// Package exitcode defines exit codes for the cxxcodes CLI.
package exitcode

import (
	"errors"

	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagnostic"
)

// Exit codes follow a standard convention:
// 0 = Success
// 1 = Unmapped rule ids under the fail policy
// 2 = Tool, config or malformed report error
const (
	// Success indicates every finding was normalized.
	Success = 0

	// Unmapped indicates the fail policy rejected unmapped rule ids.
	Unmapped = 1

	// Error indicates a tool, configuration or input error.
	Error = 2
)

// FromError converts a command error to an exit code.
func FromError(err error) int {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, diagnostic.ErrUnmappedRule):
		return Unmapped
	default:
		return Error
	}
}

// Description returns a human-readable description of the exit code.
func Description(code int) string {
	switch code {
	case Success:
		return "All findings normalized"
	case Unmapped:
		return "Unmapped rule ids rejected by policy"
	case Error:
		return "Tool, configuration or input error"
	default:
		return "Unknown exit code"
	}
}
