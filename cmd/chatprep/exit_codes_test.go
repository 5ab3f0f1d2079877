package main

// Notes:
// - exitCodeFor: we test all sentinel errors from chatprep and config packages,
//   plus wrapped errors to verify errors.Is() chain works correctly.
// - Exit code constants: we verify Unix conventions (0=success, 1=general, 2=usage)
//   and custom codes are below 126.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	chatprep "github.com/alnah/go-chatprep"
	"github.com/alnah/go-chatprep/internal/assets"
	"github.com/alnah/go-chatprep/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read input", ErrReadInput, ExitIO},
		{"read stdin", ErrReadStdin, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"invalid capacity", config.ErrInvalidCapacity, ExitUsage},
		{"invalid count", config.ErrInvalidCount, ExitUsage},
		{"empty content", chatprep.ErrEmptyContent, ExitUsage},
		{"invalid extension", ErrInvalidExtension, ExitUsage},
		{"invalid worker count", ErrInvalidWorkerCount, ExitUsage},
		{"style not found", assets.ErrStyleNotFound, ExitUsage},
		{"invalid style name", assets.ErrInvalidAssetName, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading: %w", config.ErrConfigParse), ExitUsage},
		{"wrapped style not found", fmt.Errorf("style: %w", assets.ErrStyleNotFound), ExitUsage},

		// General errors (exit 1)
		{"render failed", chatprep.ErrRenderFailed, ExitGeneral},
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
		{"wrapped unknown", fmt.Errorf("context: %w", errors.New("unknown")), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := exitCodeFor(tt.err)
			if got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix convention compliance
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()
	// Verify exit codes follow Unix conventions
	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}

	// Verify custom codes are below 126 (Unix convention)
	if ExitIO >= 126 {
		t.Errorf("ExitIO = %d, should be < 126", ExitIO)
	}
}
