// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults for a setuptools-based project.
const (
	DefaultScript     = "setup.py"
	DefaultRepository = "pypi"
	DefaultLogLevel   = "info"
)

// DefaultProjectPath is the project location relative to the home directory.
var DefaultProjectPath = []string{"PyCharmProjects", "quantdsl"}

// DefaultCommands are the setup.py commands run by a release.
var DefaultCommands = []string{"sdist", "upload"}

// Config holds reldist configuration
type Config struct {
	ProjectPath []string `yaml:"project_path"`
	Python      string   `yaml:"python"`
	Script      string   `yaml:"script"`
	Commands    []string `yaml:"commands"`
	Repository  string   `yaml:"repository"`
	ExtraArgs   string   `yaml:"extra_args"`
	Env         []string `yaml:"env,omitempty"` // KEY=VALUE pairs added to the build environment
	Debug       bool     `yaml:"debug"`
	LogLevel    string   `yaml:"log_level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		ProjectPath: append([]string(nil), DefaultProjectPath...),
		Python:      "", // Auto-detect
		Script:      DefaultScript,
		Commands:    append([]string(nil), DefaultCommands...),
		Repository:  DefaultRepository,
		LogLevel:    DefaultLogLevel,
	}
}

// DefaultConfigPath returns $HOME/.config/reldist/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "reldist", "config.yaml"), nil
}

// LoadConfig loads configuration from file. A missing file yields the
// defaults, and keys absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.fill()

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// fill restores defaults for keys explicitly emptied in the file.
func (c *Config) fill() {
	if len(c.ProjectPath) == 0 {
		c.ProjectPath = append([]string(nil), DefaultProjectPath...)
	}
	if c.Script == "" {
		c.Script = DefaultScript
	}
	if len(c.Commands) == 0 {
		c.Commands = append([]string(nil), DefaultCommands...)
	}
	if c.Repository == "" {
		c.Repository = DefaultRepository
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}
