// Package config loads and validates CLI configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-chatprep/internal/fileutil"
	"github.com/alnah/go-chatprep/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidCapacity = errors.New("invalid cache capacity")
	ErrInvalidCount    = errors.New("invalid citation count")
)

// Bounds for numeric settings. Generous, but keep a hostile config file
// from sizing unbounded structures.
const (
	MaxCacheCapacity = 10000
	MaxCitationCount = 10000
)

// configDirName is the subdirectory searched under the user config dir.
const configDirName = "go-chatprep"

// Config holds all configuration for content preprocessing.
type Config struct {
	Render    RenderConfig    `yaml:"render"`
	Citations CitationsConfig `yaml:"citations"`
	Cache     CacheConfig     `yaml:"cache"`
	Output    OutputConfig    `yaml:"output"`
}

// RenderConfig selects transformation stages and renderer behavior.
type RenderConfig struct {
	AllowHTML bool `yaml:"allowHtml"` // raw HTML passes the renderer, then sanitized
	Animated  bool `yaml:"animated"`  // entrance animation on preview output
	ChatMode  bool `yaml:"chatMode"`  // newlines render as hard breaks
	LaTeX     bool `yaml:"latex"`     // delimiter/mhchem/currency stages
	Footnotes bool `yaml:"footnotes"` // footnote parsing and citation rewrite
}

// CitationsConfig defines the resolvable citation range.
type CitationsConfig struct {
	Count int `yaml:"count"` // markers [1]..[count] rewrite; 0 disables
}

// CacheConfig sizes the preprocessing cache.
type CacheConfig struct {
	Capacity int `yaml:"capacity"` // 0 = library default
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	HTML       bool   `yaml:"html"`       // emit preview HTML instead of text
	Style      string `yaml:"style"`      // preview style name or .css path (empty = built-in default)
	DefaultDir string `yaml:"defaultDir"` // default output directory (empty = stdout)
}

// Validate checks numeric bounds. Called automatically by LoadConfig,
// but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if c.Cache.Capacity < 0 || c.Cache.Capacity > MaxCacheCapacity {
		return fmt.Errorf("%w: %d (must be 0..%d)", ErrInvalidCapacity, c.Cache.Capacity, MaxCacheCapacity)
	}
	if c.Citations.Count < 0 || c.Citations.Count > MaxCitationCount {
		return fmt.Errorf("%w: %d (must be 0..%d)", ErrInvalidCount, c.Citations.Count, MaxCitationCount)
	}
	return nil
}

// DefaultConfig returns the chat-oriented defaults: normalization on,
// decoration off.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			ChatMode:  true,
			LaTeX:     true,
			Footnotes: true,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
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

// WriteConfig serializes cfg to path, for seeding an editable config.
func WriteConfig(path string, cfg *Config) error {
	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// UserConfigDir returns the directory searched for named configs under
// the platform config root, or "" when the platform has none.
func UserConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, configDirName)
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-chatprep/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userDir := UserConfigDir(); userDir != "" {
		for _, ext := range extensions {
			userPath := filepath.Join(userDir, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
