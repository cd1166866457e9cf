// Package config provides the .craft.yaml user defaults file and its
// precedence resolution against CLI flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the defaults file looked up in the working directory and
// the user's home directory, in that order.
const FileName = ".craft.yaml"

// Config represents the .craft.yaml defaults file. Every field is
// optional; CLI flags win over anything set here.
type Config struct {
	// Vendor is the default vendor segment offered when prompting for a
	// package identifier.
	Vendor string `yaml:"vendor,omitempty"`

	// License is the default license identifier.
	License string `yaml:"license,omitempty"`

	// SkipConfig skips the config stub by default.
	SkipConfig bool `yaml:"skip_config,omitempty"`

	// Output is the default destination root for new packages.
	Output string `yaml:"output,omitempty"`
}

// Load reads and parses a defaults file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// LoadDefault looks for .craft.yaml in the working directory, then in
// the user's home directory. A missing file yields an empty config, not
// an error.
func LoadDefault() (*Config, error) {
	if _, err := os.Stat(FileName); err == nil {
		return Load(FileName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return &Config{}, nil
	}

	path := filepath.Join(home, FileName)
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return &Config{}, nil
}

// Save writes the config to a file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
