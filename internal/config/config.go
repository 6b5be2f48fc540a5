package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-unipalette/internal/fileutil"
	"github.com/alnah/go-unipalette/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrTooManyItems    = errors.New("too many items")
)

// configDirName is the directory searched under os.UserConfigDir.
const configDirName = "go-unipalette"

// Field length limits.
const (
	MaxCategories         = 64   // Labels in palette.categories
	MaxCategoryLength     = 32   // Real labels are two letters; unknown ones are allowed
	MaxNameFontSizeLength = 32   // "0.75rem", "calc(1em - 2px)"
	MaxTitleLength        = 200  // HTML <title>
	MaxPathLength         = 4096 // PATH_MAX on Linux
)

// Config holds all configuration for palette generation.
// Booleans are pointers so an absent key is distinguishable from false.
type Config struct {
	Palette PaletteConfig `yaml:"palette"`
	Output  OutputConfig  `yaml:"output"`
}

// PaletteConfig defines which characters are emitted and how.
type PaletteConfig struct {
	Categories   []string `yaml:"categories"`   // General category labels (default: [So])
	AddName      *bool    `yaml:"addName"`      // Append character names
	AddHover     *bool    `yaml:"addHover"`     // Hover tooltips (HTML only)
	HTML         *bool    `yaml:"html"`         // HTML document instead of plain text
	Base64       *bool    `yaml:"base64"`       // base64 payload (default: true)
	NameFontSize string   `yaml:"nameFontSize"` // CSS length, quote numbers: "6"
	Title        string   `yaml:"title"`        // HTML <title>
}

// OutputConfig defines the output destination.
type OutputConfig struct {
	Path string `yaml:"path"` // Empty = standard output
}

// Validate checks list sizes and field lengths. Category labels are not
// checked against Unicode; unknown labels simply match nothing.
func (c *Config) Validate() error {
	if len(c.Palette.Categories) > MaxCategories {
		return fmt.Errorf("%w: palette.categories (%d items, max %d)", ErrTooManyItems, len(c.Palette.Categories), MaxCategories)
	}
	for i, label := range c.Palette.Categories {
		if err := validateFieldLength(fmt.Sprintf("palette.categories[%d]", i), label, MaxCategoryLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("palette.nameFontSize", c.Palette.NameFontSize, MaxNameFontSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("palette.title", c.Palette.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.path", c.Output.Path, MaxPathLength); err != nil {
		return err
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns an empty configuration; every value falls through
// to the library defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the candidate paths for a config name, in lookup order.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-unipalette/
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
