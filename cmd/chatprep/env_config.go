package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-chatprep/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath    string // CHATPREP_CONFIG: config file path
	OutputDir     string // CHATPREP_OUTPUT_DIR: default output directory
	Style         string // CHATPREP_STYLE: preview style name or .css path
	Workers       int    // CHATPREP_WORKERS: parallel workers
	Citations     int    // CHATPREP_CITATIONS: resolvable citation count
	CacheCapacity int    // CHATPREP_CACHE_CAPACITY: result cache capacity
}

// knownEnvVars lists valid CHATPREP_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"CHATPREP_CONFIG":         true,
	"CHATPREP_OUTPUT_DIR":     true,
	"CHATPREP_STYLE":          true,
	"CHATPREP_WORKERS":        true,
	"CHATPREP_CITATIONS":      true,
	"CHATPREP_CACHE_CAPACITY": true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized CHATPREP_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("CHATPREP_CONFIG"),
		OutputDir:  os.Getenv("CHATPREP_OUTPUT_DIR"),
		Style:      os.Getenv("CHATPREP_STYLE"),
	}

	cfg.Workers = parseEnvInt("CHATPREP_WORKERS")
	cfg.Citations = parseEnvInt("CHATPREP_CITATIONS")
	cfg.CacheCapacity = parseEnvInt("CHATPREP_CACHE_CAPACITY")

	return cfg
}

// parseEnvInt reads a positive integer env var, 0 when unset or invalid.
func parseEnvInt(name string) int {
	s := os.Getenv(name)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// warnUnknownEnvVars logs warnings for unrecognized CHATPREP_* variables.
// Helps catch typos like CHATPREP_CITATION instead of CHATPREP_CITATIONS.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "CHATPREP_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > config file > env vars > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Style != "" && cfg.Output.Style == "" {
		cfg.Output.Style = env.Style
	}
	if env.Citations > 0 && cfg.Citations.Count == 0 {
		cfg.Citations.Count = env.Citations
	}
	if env.CacheCapacity > 0 && cfg.Cache.Capacity == 0 {
		cfg.Cache.Capacity = env.CacheCapacity
	}
}
