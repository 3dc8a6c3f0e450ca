package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestArgs_Validate(t *testing.T) {
	negative := -1
	zero := 0

	tests := []struct {
		name    string
		args    Args
		wantErr bool
	}{
		{"empty", Args{}, false},
		{"watch", Args{Watch: &WatchCmd{Verbose: true}}, false},
		{"list", Args{List: &ListCmd{Limit: 5}}, false},
		{"negative list limit", Args{List: &ListCmd{Limit: -1}}, true},
		{"get without index", Args{Get: &GetCmd{}}, false},
		{"get index zero", Args{Get: &GetCmd{Index: &zero}}, false},
		{"get negative index", Args{Get: &GetCmd{Index: &negative}}, true},
		{"pin negative index", Args{Pin: &PinCmd{Index: -2}}, true},
		{"delete negative index", Args{Delete: &DeleteCmd{Index: -2}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.args.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}

func TestNewWithArgs_ConfigPathOverride(t *testing.T) {
	tempDir := t.TempDir()

	// Point both config and history at the temp dir so the test leaves
	// no state behind.
	configPath := filepath.Join(tempDir, "config.yaml")
	historyPath := filepath.Join(tempDir, "history.db")
	if err := os.WriteFile(configPath, []byte("history_location: "+historyPath+"\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	args := &Args{ConfigPath: &configPath}
	c, err := NewWithArgs(args)
	if err != nil {
		t.Fatalf("NewWithArgs failed: %v", err)
	}
	defer c.Close()

	if c.cfgManager.GetConfigPath() != configPath {
		t.Errorf("Expected config path %s, got %s", configPath, c.cfgManager.GetConfigPath())
	}
	if _, err := os.Stat(historyPath); err != nil {
		t.Errorf("Expected history database at %s: %v", historyPath, err)
	}
}

func TestNewWithArgs_BoltBackend(t *testing.T) {
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, "config.yaml")
	historyPath := filepath.Join(tempDir, "history.bolt")
	yaml := "storage_backend: bolt\nhistory_location: " + historyPath + "\n"
	if err := os.WriteFile(configPath, []byte(yaml), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	args := &Args{ConfigPath: &configPath}
	c, err := NewWithArgs(args)
	if err != nil {
		t.Fatalf("NewWithArgs failed: %v", err)
	}
	defer c.Close()

	if _, err := os.Stat(historyPath); err != nil {
		t.Errorf("Expected bolt database at %s: %v", historyPath, err)
	}
}
