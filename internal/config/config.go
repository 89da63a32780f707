package config

import (
	"errors"
	"fmt"

	"github.com/shaharia-lab/reskin/internal/logger"
	"github.com/shaharia-lab/reskin/internal/theme"
)

// DefaultServerPort is the port `reskin serve` listens on when none is configured
const DefaultServerPort = 8088

// ThemeConfig declares one theme to register at startup. A theme with a
// suffix is a variant of the host resources; otherwise it is a bundle read
// from Path, or from <bundles.directory>/<package>.pak when Path is empty.
type ThemeConfig struct {
	Name    string `yaml:"name"`
	Path    string `yaml:"path,omitempty"`
	Suffix  string `yaml:"suffix,omitempty"`
	Package string `yaml:"package,omitempty"`
}

// BundlesConfig controls where bundles are read from
type BundlesConfig struct {
	Directory string `yaml:"directory,omitempty"`
	Watch     bool   `yaml:"watch"`
}

// LogConfig controls the application logger
type LogConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

// ServerConfig controls `reskin serve`
type ServerConfig struct {
	Port int `yaml:"port"`
}

// Config represents the user configuration file
type Config struct {
	Mode    string        `yaml:"mode"`
	Themes  []ThemeConfig `yaml:"themes,omitempty"`
	Bundles BundlesConfig `yaml:"bundles"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
}

// Default returns the configuration written on first run
func (c Config) Default() Config {
	return Config{
		Mode:    theme.SingleNamespace.String(),
		Bundles: BundlesConfig{Watch: true},
		Log:     LogConfig{Level: string(logger.DefaultLogLevel)},
		Server:  ServerConfig{Port: DefaultServerPort},
	}
}

// ThemeMode returns the parsed switching mode
func (c Config) ThemeMode() (theme.Mode, error) {
	return theme.ParseMode(c.Mode)
}

// Validate reports every problem in the configuration
func (c Config) Validate() error {
	var errs []error

	if _, err := c.ThemeMode(); err != nil {
		errs = append(errs, err)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server port %d out of range", c.Server.Port))
	}

	seen := make(map[string]bool, len(c.Themes))
	for i, t := range c.Themes {
		switch {
		case t.Name == "":
			errs = append(errs, fmt.Errorf("themes[%d]: name is required", i))
			continue
		case t.Name == theme.DefaultName:
			errs = append(errs, fmt.Errorf("themes[%d]: %q is reserved", i, t.Name))
		case seen[t.Name]:
			errs = append(errs, fmt.Errorf("themes[%d]: duplicate theme %q", i, t.Name))
		}
		seen[t.Name] = true

		if t.Suffix != "" && t.Path != "" {
			errs = append(errs, fmt.Errorf("theme %q: suffix and path are mutually exclusive", t.Name))
		}
		if t.Suffix == "" && t.Path == "" && t.Package == "" {
			errs = append(errs, fmt.Errorf("theme %q: one of suffix, path or package is required", t.Name))
		}
	}

	return errors.Join(errs...)
}

// Descriptor builds the theme descriptor for t. Variants without a package
// live in hostPackage.
func (t ThemeConfig) Descriptor(hostPackage string) *theme.Descriptor {
	if t.Suffix != "" {
		pkg := t.Package
		if pkg == "" {
			pkg = hostPackage
		}
		return theme.NewVariantDescriptor(t.Name, t.Suffix, pkg)
	}

	d := theme.NewBundleDescriptor(t.Name, t.Path)
	if t.Package != "" {
		d.SetPackageName(t.Package)
	}
	return d
}
