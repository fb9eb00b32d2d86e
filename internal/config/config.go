// Package config handles converter configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/ddm-converter/internal/converter"
	"github.com/Faultbox/ddm-converter/pkg/formats"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all converter settings.
type Config struct {
	Import  ImportConfig  `yaml:"import"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// ImportConfig holds OBJ parsing settings.
type ImportConfig struct {
	GroupMarker  string `yaml:"group_marker"`   // Two-byte line tag that starts a sub-mesh
	MaxLineBytes int    `yaml:"max_line_bytes"` // Longest accepted OBJ line
}

// ExportConfig holds DDM output settings.
type ExportConfig struct {
	OutputDir string              `yaml:"output_dir"`
	Precision int                 `yaml:"precision"` // Decimal places for floats
	Material  formats.DDMMaterial `yaml:"material"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	ddm := formats.DefaultDDMOptions()
	imp := converter.DefaultOptions()
	return &Config{
		Import: ImportConfig{
			GroupMarker:  imp.GroupMarker,
			MaxLineBytes: imp.MaxLineBytes,
		},
		Export: ExportConfig{
			OutputDir: ".",
			Precision: ddm.Precision,
			Material:  ddm.Material,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// reservedTags are OBJ line tags the group marker must not shadow.
var reservedTags = []string{"v ", "vn", "vt", "f "}

// Validate checks settings that would make a conversion misbehave.
func (c *Config) Validate() error {
	if len(c.Import.GroupMarker) != 2 {
		return fmt.Errorf("%w: group_marker %q must be exactly 2 bytes", ErrInvalidConfig, c.Import.GroupMarker)
	}
	for _, tag := range reservedTags {
		if c.Import.GroupMarker == tag {
			return fmt.Errorf("%w: group_marker %q is an OBJ record tag", ErrInvalidConfig, tag)
		}
	}
	if c.Import.MaxLineBytes <= 0 {
		return fmt.Errorf("%w: max_line_bytes must be positive", ErrInvalidConfig)
	}
	if c.Export.Precision < 0 || c.Export.Precision > 9 {
		return fmt.Errorf("%w: precision %d out of range 0-9", ErrInvalidConfig, c.Export.Precision)
	}
	if c.Export.Material.Name == "" {
		return fmt.Errorf("%w: material name is empty", ErrInvalidConfig)
	}
	if strings.ContainsAny(c.Export.Material.Name, "\r\n") {
		return fmt.Errorf("%w: material name %q spans lines", ErrInvalidConfig, c.Export.Material.Name)
	}
	return nil
}

// ImportOptions returns the converter options for this config.
func (c *Config) ImportOptions() converter.Options {
	return converter.Options{
		GroupMarker:  c.Import.GroupMarker,
		MaxLineBytes: c.Import.MaxLineBytes,
	}
}

// DDMOptions returns the exporter options for this config.
func (c *Config) DDMOptions() formats.DDMOptions {
	return formats.DDMOptions{
		Precision: c.Export.Precision,
		Material:  c.Export.Material,
	}
}
