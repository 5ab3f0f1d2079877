package main

// Notes:
// - loadEnvConfig: invalid/negative numeric values are tested to verify
//   graceful handling (ignored, not errors).
// - warnUnknownEnvVars: we test typo detection and that known vars don't warn.
// - applyEnvConfig: we test priority behavior (env doesn't override config).
// - Tests use t.Setenv() which prevents t.Parallel() at parent level.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-chatprep/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		t.Setenv("CHATPREP_CONFIG", "/path/to/config.yaml")
		t.Setenv("CHATPREP_OUTPUT_DIR", "/output")
		t.Setenv("CHATPREP_WORKERS", "4")
		t.Setenv("CHATPREP_CITATIONS", "7")
		t.Setenv("CHATPREP_CACHE_CAPACITY", "100")
		t.Setenv("CHATPREP_STYLE", "plain")

		cfg := loadEnvConfig()

		if cfg.ConfigPath != "/path/to/config.yaml" {
			t.Errorf("ConfigPath = %q, want /path/to/config.yaml", cfg.ConfigPath)
		}
		if cfg.OutputDir != "/output" {
			t.Errorf("OutputDir = %q, want /output", cfg.OutputDir)
		}
		if cfg.Workers != 4 {
			t.Errorf("Workers = %d, want 4", cfg.Workers)
		}
		if cfg.Citations != 7 {
			t.Errorf("Citations = %d, want 7", cfg.Citations)
		}
		if cfg.CacheCapacity != 100 {
			t.Errorf("CacheCapacity = %d, want 100", cfg.CacheCapacity)
		}
		if cfg.Style != "plain" {
			t.Errorf("Style = %q, want plain", cfg.Style)
		}
	})

	t.Run("invalid workers ignored", func(t *testing.T) {
		t.Setenv("CHATPREP_WORKERS", "abc")

		cfg := loadEnvConfig()

		if cfg.Workers != 0 {
			t.Errorf("Workers = %d, want 0 (invalid value ignored)", cfg.Workers)
		}
	})

	t.Run("negative citations ignored", func(t *testing.T) {
		t.Setenv("CHATPREP_CITATIONS", "-3")

		cfg := loadEnvConfig()

		if cfg.Citations != 0 {
			t.Errorf("Citations = %d, want 0 (negative value ignored)", cfg.Citations)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Run("unknown variable warns", func(t *testing.T) {
		t.Setenv("CHATPREP_CITATION", "5")

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		if !strings.Contains(buf.String(), "CHATPREP_CITATION") {
			t.Errorf("warning output = %q, want mention of CHATPREP_CITATION", buf.String())
		}
	})

	t.Run("known variables don't warn", func(t *testing.T) {
		t.Setenv("CHATPREP_CONFIG", "x")
		t.Setenv("CHATPREP_WORKERS", "2")

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		if strings.Contains(buf.String(), "CHATPREP_CONFIG") || strings.Contains(buf.String(), "CHATPREP_WORKERS") {
			t.Errorf("warning output = %q, want no warnings for known vars", buf.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Priority behavior
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("fills empty config values", func(t *testing.T) {
		t.Parallel()

		env := &envConfig{OutputDir: "/out", Citations: 5, CacheCapacity: 20, Style: "plain"}
		cfg := config.DefaultConfig()

		applyEnvConfig(env, cfg)

		if cfg.Output.DefaultDir != "/out" {
			t.Errorf("Output.DefaultDir = %q, want /out", cfg.Output.DefaultDir)
		}
		if cfg.Citations.Count != 5 {
			t.Errorf("Citations.Count = %d, want 5", cfg.Citations.Count)
		}
		if cfg.Cache.Capacity != 20 {
			t.Errorf("Cache.Capacity = %d, want 20", cfg.Cache.Capacity)
		}
		if cfg.Output.Style != "plain" {
			t.Errorf("Output.Style = %q, want plain", cfg.Output.Style)
		}
	})

	t.Run("does not override config values", func(t *testing.T) {
		t.Parallel()

		env := &envConfig{OutputDir: "/env", Citations: 5, CacheCapacity: 20, Style: "plain"}
		cfg := config.DefaultConfig()
		cfg.Output.DefaultDir = "/file"
		cfg.Citations.Count = 9
		cfg.Cache.Capacity = 77
		cfg.Output.Style = "chat"

		applyEnvConfig(env, cfg)

		if cfg.Output.DefaultDir != "/file" {
			t.Errorf("Output.DefaultDir = %q, want /file (config wins)", cfg.Output.DefaultDir)
		}
		if cfg.Citations.Count != 9 {
			t.Errorf("Citations.Count = %d, want 9 (config wins)", cfg.Citations.Count)
		}
		if cfg.Cache.Capacity != 77 {
			t.Errorf("Cache.Capacity = %d, want 77 (config wins)", cfg.Cache.Capacity)
		}
		if cfg.Output.Style != "chat" {
			t.Errorf("Output.Style = %q, want chat (config wins)", cfg.Output.Style)
		}
	})

	t.Run("unset env leaves config alone", func(t *testing.T) {
		t.Parallel()

		env := &envConfig{}
		cfg := config.DefaultConfig()

		applyEnvConfig(env, cfg)

		if cfg.Output.DefaultDir != "" || cfg.Citations.Count != 0 || cfg.Cache.Capacity != 0 || cfg.Output.Style != "" {
			t.Errorf("config modified by empty env: %+v", cfg)
		}
	})
}
