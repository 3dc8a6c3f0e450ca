package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.MaxHistorySize != 100 {
		t.Errorf("Expected default max history size 100, got %d", config.MaxHistorySize)
	}
	if !config.ShowTimestamp {
		t.Error("Expected show timestamp enabled by default")
	}
	if config.EnableNotifications {
		t.Error("Expected notifications disabled by default")
	}
	if config.AutoCleanupDays != 30 {
		t.Errorf("Expected default cleanup age 30 days, got %d", config.AutoCleanupDays)
	}
	if config.MonitoringInterval != 1000 {
		t.Errorf("Expected default interval 1000ms, got %d", config.MonitoringInterval)
	}
	if config.PreviewLength != 50 {
		t.Errorf("Expected default preview length 50, got %d", config.PreviewLength)
	}
	if config.StorageBackend != "sqlite" {
		t.Errorf("Expected default backend sqlite, got %s", config.StorageBackend)
	}
	if len(config.ExcludePatterns) != 0 {
		t.Errorf("Expected no default exclude patterns, got %v", config.ExcludePatterns)
	}
}

func TestManager_LoadNonExistent(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	m := NewManagerWithPath(configPath)

	config, err := m.Load()
	if err != nil {
		t.Fatalf("Expected no error loading non-existent config, got: %v", err)
	}

	if config.MaxHistorySize != DefaultConfig().MaxHistorySize {
		t.Errorf("Expected default config, got max history size %d", config.MaxHistorySize)
	}
}

func TestManager_SaveAndLoad(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	m := NewManagerWithPath(configPath)

	testConfig := &Config{
		MaxHistorySize:      42,
		ShowTimestamp:       false,
		EnableNotifications: true,
		AutoCleanupDays:     7,
		ExcludePatterns:     []string{"^secret", "password"},
		MonitoringInterval:  500,
		PreviewLength:       80,
		StorageBackend:      "bolt",
		HistoryLocation:     "/custom/path",
	}

	if err := m.Save(testConfig); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loaded, err := m.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.MaxHistorySize != 42 {
		t.Errorf("MaxHistorySize = %d, want 42", loaded.MaxHistorySize)
	}
	if loaded.ShowTimestamp {
		t.Error("ShowTimestamp = true, want false")
	}
	if !loaded.EnableNotifications {
		t.Error("EnableNotifications = false, want true")
	}
	if len(loaded.ExcludePatterns) != 2 || loaded.ExcludePatterns[0] != "^secret" {
		t.Errorf("ExcludePatterns = %v", loaded.ExcludePatterns)
	}
	if loaded.StorageBackend != "bolt" {
		t.Errorf("StorageBackend = %s, want bolt", loaded.StorageBackend)
	}
	if loaded.HistoryLocation != "/custom/path" {
		t.Errorf("HistoryLocation = %s, want /custom/path", loaded.HistoryLocation)
	}
}

func TestManager_PartialFileKeepsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("max_history_size: 7\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	m := NewManagerWithPath(configPath)
	config, err := m.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.MaxHistorySize != 7 {
		t.Errorf("MaxHistorySize = %d, want 7", config.MaxHistorySize)
	}
	if config.MonitoringInterval != 1000 {
		t.Errorf("Missing keys must keep defaults, interval = %d", config.MonitoringInterval)
	}
	if config.StorageBackend != "sqlite" {
		t.Errorf("Missing keys must keep defaults, backend = %s", config.StorageBackend)
	}
}

func TestManager_Validation(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	m := NewManagerWithPath(configPath)

	tests := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"zero history size", func(c *Config) { c.MaxHistorySize = 0 }, "max_history_size"},
		{"huge history size", func(c *Config) { c.MaxHistorySize = 20000 }, "max_history_size"},
		{"negative cleanup", func(c *Config) { c.AutoCleanupDays = -1 }, "auto_cleanup_days"},
		{"tiny interval", func(c *Config) { c.MonitoringInterval = 10 }, "monitoring_interval_ms"},
		{"zero preview", func(c *Config) { c.PreviewLength = 0 }, "preview_length"},
		{"unknown backend", func(c *Config) { c.StorageBackend = "etcd" }, "storage_backend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)

			err := m.Save(config)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errSub) {
				t.Errorf("Error %q does not mention %q", err.Error(), tt.errSub)
			}
		})
	}
}

func TestManager_UpdateAndGet(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	m := NewManagerWithPath(configPath)

	if err := m.Update("max-history-size", "25"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := m.Update("exclude-patterns", "^secret,token"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := m.Update("enable-notifications", "true"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	value, err := m.Get("max-history-size")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "25" {
		t.Errorf("max-history-size = %s, want 25", value)
	}

	value, err = m.Get("exclude-patterns")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "^secret,token" {
		t.Errorf("exclude-patterns = %s, want ^secret,token", value)
	}
}

func TestManager_UpdateInvalidValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	m := NewManagerWithPath(configPath)

	if err := m.Update("max-history-size", "not-a-number"); err == nil {
		t.Error("Expected error for non-integer value")
	}
	if err := m.Update("enable-notifications", "maybe"); err == nil {
		t.Error("Expected error for non-boolean value")
	}
	if err := m.Update("no-such-key", "x"); err == nil {
		t.Error("Expected error for unknown key")
	}
	if _, err := m.Get("no-such-key"); err == nil {
		t.Error("Expected error for unknown key")
	}
}

func TestManager_List(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	m := NewManagerWithPath(configPath)

	values, err := m.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if values["history-location"] != "[default]" {
		t.Errorf("history-location = %s, want [default]", values["history-location"])
	}
	if values["storage-backend"] != "sqlite" {
		t.Errorf("storage-backend = %s, want sqlite", values["storage-backend"])
	}
	if len(values) != 9 {
		t.Errorf("Expected 9 keys, got %d: %v", len(values), values)
	}
}
