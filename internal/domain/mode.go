package domain

import "fmt"

// Mode selects which backend variants the engine is bound to.
type Mode string

const (
	// ModeMock uses deterministic fixture-backed providers, no network.
	ModeMock Mode = "mock"
	// ModeLive uses exchange test-network providers and requires credentials.
	ModeLive Mode = "live"
)

// ModeFromString parses a mode string.
func ModeFromString(s string) (Mode, error) {
	switch Mode(s) {
	case ModeMock, ModeLive:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode: %q", s)
	}
}

// Credentials holds an exchange API key pair for live mode. They live only
// inside the live provider instances and are never written to disk.
type Credentials struct {
	APIKey    string
	APISecret string
}

// Empty reports whether both parts are missing.
func (c Credentials) Empty() bool {
	return c.APIKey == "" && c.APISecret == ""
}
