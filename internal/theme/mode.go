package theme

import (
	"fmt"
	"strings"
)

// Mode selects how themes are switched. It is fixed when the registry is initialized.
type Mode int

const (
	// SingleNamespace keeps every theme inside the host's own resources
	SingleNamespace Mode = iota

	// MultiNamespace loads non-default themes from external bundles
	MultiNamespace
)

// String returns the configuration name of the mode
func (m Mode) String() string {
	switch m {
	case MultiNamespace:
		return "multi"
	default:
		return "single"
	}
}

// ParseMode converts a configuration value into a Mode. Empty means SingleNamespace.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single":
		return SingleNamespace, nil
	case "multi":
		return MultiNamespace, nil
	default:
		return SingleNamespace, fmt.Errorf("unsupported theme mode: %q", s)
	}
}
