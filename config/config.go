// Package config provides configuration loading and management for reqtrace.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete reqtrace configuration
type Config struct {
	Project  ProjectConfig  `yaml:"project"`
	Log      LogConfig      `yaml:"log"`
	Export   ExportConfig   `yaml:"export"`
	Coverage CoverageConfig `yaml:"coverage"`
}

// ProjectConfig configures where documents live
type ProjectConfig struct {
	// Dir is the project directory holding requirement and specification
	// documents (default: current directory)
	Dir string `yaml:"dir"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `yaml:"level"`
}

// ExportConfig configures traceability matrix export
type ExportConfig struct {
	// Output is the default Excel output path
	Output string `yaml:"output"`
}

// CoverageConfig configures test coverage analysis
type CoverageConfig struct {
	// TestList is the default test-run log path
	TestList string `yaml:"test_list"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			Dir: ".",
		},
		Log: LogConfig{
			Level: "info",
		},
		Export: ExportConfig{
			Output: "traceability_matrix.xlsx",
		},
		Coverage: CoverageConfig{
			TestList: "",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Project.Dir == "" {
		return fmt.Errorf("project.dir is required")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error: %s", c.Log.Level)
	}
	if c.Export.Output == "" {
		return fmt.Errorf("export.output is required")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Project.Dir != "" {
		c.Project.Dir = other.Project.Dir
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Export.Output != "" {
		c.Export.Output = other.Export.Output
	}
	if other.Coverage.TestList != "" {
		c.Coverage.TestList = other.Coverage.TestList
	}
}
