// ABOUTME: Tests for environment-based configuration loading.
// ABOUTME: Covers required credentials, defaults, and domain override.
package config

import (
	"errors"
	"testing"

	"github.com/harperreed/garmin/internal/garmin"
)

func TestLoad(t *testing.T) {
	t.Setenv("GARMIN_USERNAME", "test@example.com")
	t.Setenv("GARMIN_PASSWORD", "hunter2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Username != "test@example.com" {
		t.Errorf("Username = %q, want test@example.com", cfg.Username)
	}
	if cfg.Password != "hunter2" {
		t.Errorf("Password not loaded")
	}
	if cfg.Domain != "garmin.com" {
		t.Errorf("Domain = %q, want default garmin.com", cfg.Domain)
	}
}

func TestLoadDomainOverride(t *testing.T) {
	t.Setenv("GARMIN_USERNAME", "test@example.com")
	t.Setenv("GARMIN_PASSWORD", "hunter2")
	t.Setenv("GARMIN_DOMAIN", "garmin.cn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Domain != "garmin.cn" {
		t.Errorf("Domain = %q, want garmin.cn", cfg.Domain)
	}
}

func TestLoadMissingCredentials(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"both missing", "", ""},
		{"no password", "test@example.com", ""},
		{"no username", "", "hunter2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GARMIN_USERNAME", tt.username)
			t.Setenv("GARMIN_PASSWORD", tt.password)

			_, err := Load()
			if !errors.Is(err, garmin.ErrAuthentication) {
				t.Errorf("Expected ErrAuthentication, got %v", err)
			}
		})
	}
}
