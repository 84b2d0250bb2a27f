package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

// Supported transport types
const (
	TransportStdio = "stdio"
)

// Config holds the complete application configuration
type Config struct {
	// Server information reported during initialize
	Name        string `yaml:"name" json:"name"`
	Version     string `yaml:"version" json:"version"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Transport configuration
	Transport TransportConfig `yaml:"transport" json:"transport"`

	// Logging configuration
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// TransportConfig holds transport configuration for the MCP server
type TransportConfig struct {
	Type string `yaml:"type" json:"type"` // stdio
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Name:        "hello-server",
		Version:     "1.0.0",
		Description: "Minimal MCP server exposing a say_hello tool",
		Transport: TransportConfig{
			Type: TransportStdio,
		},
		LogLevel: "info",
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}

// LoadConfig loads configuration from a file.
// Fields missing from the file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse based on file extension
	config := DefaultConfig()
	ext := filepath.Ext(configPath)

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", ext)
	}

	return config, nil
}

// SaveConfig saves configuration to a file
func SaveConfig(config *Config, configPath string) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	ext := filepath.Ext(configPath)
	var data []byte
	var err error

	switch ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML config: %w", err)
		}
	case ".json":
		data, err = json.MarshalIndent(config, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON config: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config file format: %s", ext)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Name == "" {
		return &ConfigError{Field: "name", Message: "server name is required"}
	}

	if c.Version == "" {
		return &ConfigError{Field: "version", Message: "server version is required"}
	}

	switch c.Transport.Type {
	case TransportStdio:
	case "":
		c.Transport.Type = TransportStdio
	default:
		return &ConfigError{Field: "transport.type", Message: "unsupported transport type: " + c.Transport.Type}
	}

	c.LogLevel = strings.ToLower(c.LogLevel)
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	case "":
		c.LogLevel = "info"
	default:
		return &ConfigError{Field: "log_level", Message: "unsupported log level: " + c.LogLevel}
	}

	return nil
}
