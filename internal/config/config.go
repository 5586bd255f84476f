// Package config loads tool configuration for the benfetch/benstats
// commands. Fields are pointers so a partial JSON file only overrides what
// it names; getters fall back to the documented defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ToolConfig is the JSON schema shared by the dataset commands. Command-line
// flags take precedence over file values.
type ToolConfig struct {
	Root       *string `json:"root,omitempty"`
	Split      *string `json:"split,omitempty"`
	Bands      *string `json:"bands,omitempty"`
	NumClasses *int    `json:"num_classes,omitempty"`
	Checksum   *bool   `json:"checksum,omitempty"`

	// benstats options
	DBPath      *string `json:"db_path,omitempty"`
	ReportDir   *string `json:"report_dir,omitempty"`
	SampleLimit *int    `json:"sample_limit,omitempty"`
}

// Empty returns a ToolConfig with no overrides set.
func Empty() *ToolConfig {
	return &ToolConfig{}
}

// Load reads a ToolConfig from a JSON file. The path must carry a .json
// extension and stay under the size cap; omitted fields keep their defaults,
// so partial configs are safe.
func Load(path string) (*ToolConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := &ToolConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// GetRoot returns the dataset root, defaulting to "data".
func (c *ToolConfig) GetRoot() string {
	if c.Root != nil {
		return *c.Root
	}
	return "data"
}

// GetSplit returns the split name, defaulting to "train".
func (c *ToolConfig) GetSplit() string {
	if c.Split != nil {
		return *c.Split
	}
	return "train"
}

// GetBands returns the band selection, defaulting to "all".
func (c *ToolConfig) GetBands() string {
	if c.Bands != nil {
		return *c.Bands
	}
	return "all"
}

// GetNumClasses returns the class count, defaulting to 19.
func (c *ToolConfig) GetNumClasses() int {
	if c.NumClasses != nil {
		return *c.NumClasses
	}
	return 19
}

// GetChecksum reports whether downloads should be MD5-verified.
func (c *ToolConfig) GetChecksum() bool {
	if c.Checksum != nil {
		return *c.Checksum
	}
	return false
}

// GetDBPath returns the stats database path, defaulting to
// "bigearthnet-stats.db".
func (c *ToolConfig) GetDBPath() string {
	if c.DBPath != nil {
		return *c.DBPath
	}
	return "bigearthnet-stats.db"
}

// GetReportDir returns where benstats writes its charts, defaulting to the
// working directory.
func (c *ToolConfig) GetReportDir() string {
	if c.ReportDir != nil {
		return *c.ReportDir
	}
	return "."
}

// GetSampleLimit returns how many samples benstats decodes for band
// statistics, defaulting to 32.
func (c *ToolConfig) GetSampleLimit() int {
	if c.SampleLimit != nil {
		return *c.SampleLimit
	}
	return 32
}
