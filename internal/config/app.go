package config

import (
	"fmt"
)

// AppConfig represents the build-time identity of the application
type AppConfig struct {
	Name    string
	Package string
	Version Version
}

// Version represents the version information for the application
type Version struct {
	Version string
	Commit  string
	Date    string
}

// VersionText returns the version information as a string
func (v *Version) VersionText() string {
	return fmt.Sprintf("v%s : %s (%s)", v.Version, v.Commit, v.Date)
}

// Option is a function that configures an AppConfig
type Option func(*AppConfig)

// WithVersion sets the version information
func WithVersion(v Version) Option {
	return func(c *AppConfig) {
		c.Version = v
	}
}

// WithName sets the application name, which also names the home directory
func WithName(name string) Option {
	return func(c *AppConfig) {
		c.Name = name
	}
}

// NewDefaultConfig returns the reskin identity with opts applied
func NewDefaultConfig(opts ...Option) *AppConfig {
	c := &AppConfig{
		Name:    "Reskin",
		Package: "io.reskin.cli",
		Version: Version{Version: "0.0.0", Commit: "none", Date: "unknown"},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
