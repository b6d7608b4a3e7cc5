package organizer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput marks fatal root validation failures.
	ErrInvalidInput = errors.New("invalid input")
	// ErrLocked marks a root already claimed by another mutating run.
	ErrLocked = errors.New("run lock held")
	// ErrTimestampUnavailable marks candidates whose year could not be resolved.
	ErrTimestampUnavailable = errors.New("timestamp unavailable")
	// ErrDestinationExists marks actions refused because the destination is occupied.
	ErrDestinationExists = errors.New("destination exists")
	// ErrIO marks per-path filesystem failures with no more specific class.
	ErrIO = errors.New("filesystem error")
)

// Wrap builds an error message that includes pipeline context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, phase, operation, message string, err error) error {
	detail := buildDetail(phase, operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(phase, operation, message string) string {
	parts := make([]string, 0, 3)
	if phase = strings.TrimSpace(phase); phase != "" {
		parts = append(parts, phase)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
