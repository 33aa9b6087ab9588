package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFilename is the config file picked up from the working
// directory when --config is not given.
const DefaultConfigFilename = "cyberlab.yaml"

// LoadFile reads and parses the configuration from a YAML file. Fields the
// file leaves out keep their defaults. The result is not validated.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return parseConfig(data)
}

// parseConfig parses YAML data into a Config struct.
func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Load builds the effective configuration. An explicit path must exist;
// with an empty path, cyberlab.yaml in the working directory is used when
// present and built-in defaults otherwise. Environment overrides are applied
// last.
func Load(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)

	switch {
	case path != "":
		cfg, err = LoadFile(path)
	default:
		cfg, err = loadDefaultFile()
	}
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnv()
	return cfg, nil
}

func loadDefaultFile() (*Config, error) {
	path := DefaultConfigPath()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to check config file: %w", err)
	}
	return LoadFile(path)
}

// DefaultConfigPath returns the default path for the config file.
// It looks in the current working directory.
func DefaultConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return DefaultConfigFilename
	}
	return filepath.Join(cwd, DefaultConfigFilename)
}
