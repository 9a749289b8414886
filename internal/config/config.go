// Package config loads gochibi settings: the figurine configuration, export
// options and logging, from defaults, a YAML file and command-line flags.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gochibi/internal/logger"
	"github.com/philipparndt/gochibi/pkg/chibi"
	"github.com/philipparndt/gochibi/pkg/export"
)

// Config holds all gochibi settings
type Config struct {
	Model   chibi.Configuration `yaml:"model"`
	Export  ExportConfig        `yaml:"export"`
	Logging LoggingConfig       `yaml:"logging"`
}

// ExportConfig controls where and how parts are written
type ExportConfig struct {
	Dir      string `yaml:"dir"`
	Format   string `yaml:"format"`
	ASCIISTL bool   `yaml:"ascii_stl"`
	Zip      bool   `yaml:"zip"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the settings used when no file or flag overrides them
func Default() *Config {
	return &Config{
		Model: chibi.Default(),
		Export: ExportConfig{
			Dir:    "chibi_parts",
			Format: string(export.FormatSTL),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// ZipPath is the archive written next to the export directory
func (e ExportConfig) ZipPath() string {
	dir := filepath.Clean(e.Dir)
	return strings.TrimSuffix(dir, string(filepath.Separator)) + ".zip"
}

// Validate checks every section before any work starts
func (c *Config) Validate() error {
	if err := c.Model.Validate(); err != nil {
		return fmt.Errorf("model: %w", err)
	}
	if _, err := export.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if strings.TrimSpace(c.Export.Dir) == "" {
		return fmt.Errorf("export: output directory is empty")
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}
