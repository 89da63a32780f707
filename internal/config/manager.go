package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manager reads and writes the configuration file
type Manager struct {
	configFilePath string
}

// NewManager creates a manager for the file at path
func NewManager(path string) *Manager {
	return &Manager{configFilePath: path}
}

// Path returns the configuration file location
func (m *Manager) Path() string {
	return m.configFilePath
}

// LoadConfig loads the configuration file. A missing or empty file is
// replaced by the default configuration, which is returned.
func (m *Manager) LoadConfig() (Config, error) {
	defaultConfig := Config{}.Default()

	if m.configFilePath == "" {
		return defaultConfig, fmt.Errorf("config file path not set")
	}

	data, err := os.ReadFile(m.configFilePath)
	if errors.Is(err, os.ErrNotExist) || (err == nil && len(data) == 0) {
		if err := m.SaveConfig(defaultConfig); err != nil {
			return Config{}, fmt.Errorf("failed to save default config: %w", err)
		}
		return defaultConfig, nil
	}
	if err != nil {
		return defaultConfig, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := defaultConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaultConfig, fmt.Errorf("failed to parse config file %s: %w", m.configFilePath, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", m.configFilePath, err)
	}

	return cfg, nil
}

// SaveConfig writes cfg to the configuration file
func (m *Manager) SaveConfig(cfg Config) error {
	if m.configFilePath == "" {
		return fmt.Errorf("config file path not set")
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(m.configFilePath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return os.WriteFile(m.configFilePath, data, 0644)
}
