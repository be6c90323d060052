package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_ValidConfig(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `exclude:
  - "*.tmp"
  - "*.log"
  - ".git/"
  - "node_modules/"
default_file_size: 4096
largest_count: 3
log:
  level: debug
  file: catalog.log
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	expectedExclude := []string{"*.tmp", "*.log", ".git/", "node_modules/"}
	if len(cfg.Exclude) != len(expectedExclude) {
		t.Fatalf("Expected %d exclude patterns, got %d", len(expectedExclude), len(cfg.Exclude))
	}

	for i, expected := range expectedExclude {
		if cfg.Exclude[i] != expected {
			t.Errorf("Exclude[%d]: expected %q, got %q", i, expected, cfg.Exclude[i])
		}
	}

	if cfg.DefaultFileSize != 4096 {
		t.Errorf("Expected default_file_size 4096, got %d", cfg.DefaultFileSize)
	}
	if cfg.LargestCount != 3 {
		t.Errorf("Expected largest_count 3, got %d", cfg.LargestCount)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "catalog.log" {
		t.Errorf("Unexpected log config: %+v", cfg.Log)
	}

	// Keys left out keep their defaults
	if cfg.ListLimit != 10 {
		t.Errorf("Expected default list_limit 10, got %d", cfg.ListLimit)
	}
	if cfg.Log.Format != "console" {
		t.Errorf("Expected default log format %q, got %q", "console", cfg.Log.Format)
	}
}

func TestLoadConfig_NonExistentFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/config.yaml")
	if err != nil {
		t.Fatalf("LoadConfig should return default config for nonexistent file, got error: %v", err)
	}

	// Should return default config with common exclusions
	if len(cfg.Exclude) == 0 {
		t.Error("Default config should have some exclude patterns")
	}

	if cfg.DefaultFileSize != 1024 {
		t.Errorf("Expected default file size 1024, got %d", cfg.DefaultFileSize)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `exclude:
  - "*.tmp"
 bad indentation: [
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Error("LoadConfig should return error for invalid YAML")
	}
}

func TestLoadConfig_NegativeValues(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "negative.yaml")

	if err := os.WriteFile(configPath, []byte("largest_count: -1\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("LoadConfig should reject a negative largest_count")
	}
}

func TestLoadConfig_EmptyConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "empty.yaml")

	if err := os.WriteFile(configPath, []byte(""), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed for empty config: %v", err)
	}

	// Empty config should result in empty exclude patterns (not nil)
	if cfg.Exclude == nil {
		t.Error("Exclude should not be nil")
	}
	if len(cfg.Exclude) != 0 {
		t.Errorf("Expected no exclude patterns, got %v", cfg.Exclude)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Exclude == nil {
		t.Error("Default config Exclude should not be nil")
	}

	// Check that common patterns are included
	expectedPatterns := []string{".git/", "node_modules/", "__pycache__/"}
	for _, pattern := range expectedPatterns {
		found := false
		for _, exclude := range cfg.Exclude {
			if exclude == pattern {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Default config should include pattern %q", pattern)
		}
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}
