// ABOUTME: Kind-tagged error sentinels for the Garmin Connect bridge.
// ABOUTME: Every failure surfaced to a caller wraps exactly one kind.
package garmin

import (
	"errors"
	"fmt"
)

// Error kinds. Callers match with errors.Is; messages never include
// credentials or raw provider internals.
var (
	// ErrValidation is malformed caller input, rejected before any
	// network call.
	ErrValidation = errors.New("validation error")

	// ErrAuthentication is missing, malformed, or rejected credentials.
	ErrAuthentication = errors.New("authentication error")

	// ErrConnectivity is a network-level failure reaching the provider.
	ErrConnectivity = errors.New("connectivity error")

	// ErrNotFound is a well-formed request the provider has no data for.
	ErrNotFound = errors.New("not found")

	// ErrProvider is an unexpected or malformed provider response.
	ErrProvider = errors.New("provider error")
)

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func authErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrAuthentication, fmt.Sprintf(format, args...))
}

func connectivityErr(err error) error {
	return fmt.Errorf("%w: %v", ErrConnectivity, err)
}

func notFoundErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func providerErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrProvider, fmt.Sprintf(format, args...))
}
