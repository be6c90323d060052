package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type LogConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type Config struct {
	// Exclude holds glob patterns skipped while crawling a directory
	Exclude []string `yaml:"exclude"`

	// DefaultFileSize is used when a file is added without a size
	DefaultFileSize uint64 `yaml:"default_file_size"`

	// LargestCount is how many files the largest query returns by default
	LargestCount int `yaml:"largest_count"`

	// ListLimit caps the rows printed for a result list (0 = no limit)
	ListLimit int `yaml:"list_limit"`

	Log LogConfig `yaml:"log"`
}

func DefaultConfig() *Config {
	return &Config{
		Exclude: []string{
			".git/",
			".svn/",
			"node_modules/",
			"vendor/",
			"__pycache__/",
			"*.o",
			"*.so",
			"*.exe",
			"bin/",
			"dist/",
			"*.tmp",
			"*.swp",
			"*.log",
			".DS_Store",
			"Thumbs.db",
		},
		DefaultFileSize: 1024,
		LargestCount:    5,
		ListLimit:       10,
		Log: LogConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from the defaults so omitted keys keep their values
	cfg := DefaultConfig()
	cfg.Exclude = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	// Initialize Exclude slice if nil (for empty configs)
	if cfg.Exclude == nil {
		cfg.Exclude = []string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values no command can work with.
func (c *Config) Validate() error {
	if c.LargestCount < 0 {
		return fmt.Errorf("largest_count must not be negative, got %d", c.LargestCount)
	}
	if c.ListLimit < 0 {
		return fmt.Errorf("list_limit must not be negative, got %d", c.ListLimit)
	}
	return nil
}
