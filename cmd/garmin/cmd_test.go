// ABOUTME: Tests for CLI helpers and command wiring.
// ABOUTME: Covers dateArg, registered subcommands, and startup credential check.
package main

import (
	"testing"
)

func TestDateArg(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no args defaults empty", nil, ""},
		{"date given", []string{"2025-07-19"}, "2025-07-19"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dateArg(tt.args); got != tt.want {
				t.Errorf("dateArg(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestAllQueryCommandsRegistered(t *testing.T) {
	want := []string{
		"mcp", "summary", "steps", "heartrate", "sleep", "sleepscore",
		"weight", "activities", "activity",
	}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("Expected %q command to be registered", name)
		}
	}
}

func TestPreRunFailsWithoutCredentials(t *testing.T) {
	t.Setenv("GARMIN_USERNAME", "")
	t.Setenv("GARMIN_PASSWORD", "")

	err := rootCmd.PersistentPreRunE(stepsCmd, nil)
	if err == nil {
		t.Fatal("Expected error when credentials are missing")
	}
}

func TestPreRunBuildsClient(t *testing.T) {
	t.Setenv("GARMIN_USERNAME", "test@example.com")
	t.Setenv("GARMIN_PASSWORD", "hunter2")

	if err := rootCmd.PersistentPreRunE(stepsCmd, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if client == nil {
		t.Error("Expected client to be initialized")
	}
}
