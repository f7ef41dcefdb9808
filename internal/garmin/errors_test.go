// ABOUTME: Tests for the kind-tagged error taxonomy.
// ABOUTME: Kinds must be distinct and survive wrapping.
package garmin

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindsAreDistinct(t *testing.T) {
	kinds := []error{ErrValidation, ErrAuthentication, ErrConnectivity, ErrNotFound, ErrProvider}

	for i, a := range kinds {
		for j, b := range kinds {
			if i != j && errors.Is(a, b) {
				t.Errorf("Kind %v should not match %v", a, b)
			}
		}
	}
}

func TestConstructorsWrapTheirKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"validation", validationErr("bad date %q", "x"), ErrValidation},
		{"authentication", authErr("rejected"), ErrAuthentication},
		{"connectivity", connectivityErr(errors.New("refused")), ErrConnectivity},
		{"not found", notFoundErr("no sleep data for %s", "2025-07-19"), ErrNotFound},
		{"provider", providerErr("status %d", 502), ErrProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("%v should match its kind %v", tt.err, tt.kind)
			}
			// A wrapped kind must still match.
			wrapped := fmt.Errorf("outer: %w", tt.err)
			if !errors.Is(wrapped, tt.kind) {
				t.Errorf("Wrapped %v should still match %v", wrapped, tt.kind)
			}
		})
	}
}

func TestNotFoundMessageIsUserReadable(t *testing.T) {
	err := notFoundErr("no sleep data for %s", "2025-07-19")
	want := "not found: no sleep data for 2025-07-19"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
