package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the clipwatch configuration
type Config struct {
	MaxHistorySize      int      `yaml:"max_history_size"`
	ShowTimestamp       bool     `yaml:"show_timestamp"`
	EnableNotifications bool     `yaml:"enable_notifications"`
	AutoCleanupDays     int      `yaml:"auto_cleanup_days"`
	ExcludePatterns     []string `yaml:"exclude_patterns,omitempty"`
	MonitoringInterval  int      `yaml:"monitoring_interval_ms"`
	PreviewLength       int      `yaml:"preview_length"`
	StorageBackend      string   `yaml:"storage_backend"`
	HistoryLocation     string   `yaml:"history_location,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		MaxHistorySize:      100,
		ShowTimestamp:       true,
		EnableNotifications: false,
		AutoCleanupDays:     30,
		MonitoringInterval:  1000,
		PreviewLength:       50,
		StorageBackend:      "sqlite",
	}
}

// Manager manages configuration persistence
type Manager struct {
	configPath string
}

// NewManager creates a configuration manager using the default path
// (~/.config/clipwatch/config.yaml).
func NewManager() (*Manager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, ".config", "clipwatch", "config.yaml")
	return &Manager{configPath: configPath}, nil
}

// NewManagerWithPath creates a config manager with a custom config path
func NewManagerWithPath(configPath string) *Manager {
	return &Manager{configPath: configPath}
}

// Load reads the configuration from file, or returns default if file doesn't exist
func (m *Manager) Load() (*Config, error) {
	if _, err := os.Stat(m.configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Save writes the configuration to file
func (m *Manager) Save(config *Config) error {
	if err := validate(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// validate checks configuration bounds
func validate(config *Config) error {
	if config.MaxHistorySize <= 0 {
		return fmt.Errorf("max_history_size must be greater than 0")
	}
	if config.MaxHistorySize > 10000 {
		return fmt.Errorf("max_history_size cannot exceed 10000 entries")
	}
	if config.AutoCleanupDays < 0 {
		return fmt.Errorf("auto_cleanup_days cannot be negative")
	}
	if config.MonitoringInterval < 100 {
		return fmt.Errorf("monitoring_interval_ms must be at least 100")
	}
	if config.PreviewLength <= 0 {
		return fmt.Errorf("preview_length must be greater than 0")
	}
	switch config.StorageBackend {
	case "sqlite", "bolt":
	default:
		return fmt.Errorf("storage_backend must be 'sqlite' or 'bolt'")
	}
	return nil
}

// GetConfigPath returns the path to the config file
func (m *Manager) GetConfigPath() string {
	return m.configPath
}

// Update modifies a specific configuration value
func (m *Manager) Update(key, value string) error {
	config, err := m.Load()
	if err != nil {
		return err
	}

	switch key {
	case "max-history-size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %s", key, value)
		}
		config.MaxHistorySize = n
	case "show-timestamp":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		config.ShowTimestamp = b
	case "enable-notifications":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		config.EnableNotifications = b
	case "auto-cleanup-days":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %s", key, value)
		}
		config.AutoCleanupDays = n
	case "exclude-patterns":
		// Comma-separated list; empty clears all patterns.
		if value == "" {
			config.ExcludePatterns = nil
		} else {
			config.ExcludePatterns = strings.Split(value, ",")
		}
	case "monitoring-interval":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %s", key, value)
		}
		config.MonitoringInterval = n
	case "preview-length":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %s", key, value)
		}
		config.PreviewLength = n
	case "storage-backend":
		config.StorageBackend = value
	case "history-location":
		config.HistoryLocation = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	return m.Save(config)
}

// Get returns the value for a specific configuration key
func (m *Manager) Get(key string) (string, error) {
	config, err := m.Load()
	if err != nil {
		return "", err
	}

	values := asMap(config)
	value, ok := values[key]
	if !ok {
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
	return value, nil
}

// List returns all configuration keys and values
func (m *Manager) List() (map[string]string, error) {
	config, err := m.Load()
	if err != nil {
		return nil, err
	}
	return asMap(config), nil
}

// asMap renders the config as CLI-facing key/value strings
func asMap(config *Config) map[string]string {
	location := config.HistoryLocation
	if location == "" {
		location = "[default]"
	}

	return map[string]string{
		"max-history-size":     strconv.Itoa(config.MaxHistorySize),
		"show-timestamp":       strconv.FormatBool(config.ShowTimestamp),
		"enable-notifications": strconv.FormatBool(config.EnableNotifications),
		"auto-cleanup-days":    strconv.Itoa(config.AutoCleanupDays),
		"exclude-patterns":     strings.Join(config.ExcludePatterns, ","),
		"monitoring-interval":  strconv.Itoa(config.MonitoringInterval),
		"preview-length":       strconv.Itoa(config.PreviewLength),
		"storage-backend":      config.StorageBackend,
		"history-location":     location,
	}
}

// parseBool parses a strict true/false value
func parseBool(key, value string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value for %s: %s (must be 'true' or 'false')", key, value)
	}
}
