package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Version int    `toml:"version"`
	LogFile string `toml:"log_file"`
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// service is the concrete implementation
type service struct {
	filePath string
}

// NewService creates a config service rooted at the user config directory
func NewService() Service {
	return &service{
		filePath: filepath.Join(configDir(), "config.toml"),
	}
}

// configDir returns the ytui config directory, creating it if needed
func configDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		base, err = os.UserHomeDir()
		if err != nil {
			base = "."
		}
		base = filepath.Join(base, ".config")
	}

	dir := filepath.Join(base, "ytui")
	os.MkdirAll(dir, 0755)
	return dir
}

// Load loads the configuration from the default path
func (s *service) Load() (*Config, error) {
	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return Default(), nil
	}
	return s.LoadFromPath(s.filePath)
}

// Save saves the configuration to the default path
func (s *service) Save(config *Config) error {
	return s.SaveToPath(config, s.filePath)
}

// LoadFromPath loads configuration from a specific path
func (s *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Fill in anything the file leaves out
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.LogFile == "" {
		cfg.LogFile = Default().LogFile
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (s *service) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Version: 1,
		LogFile: filepath.Join(configDir(), "ytui.log"),
	}
}
