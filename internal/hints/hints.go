// Package hints provides actionable error hints for common failure
// scenarios. Hints are formatted as "\n  hint: <text>" so callers can
// append them directly to error output.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --init-config and names the user config directory when the
// platform has one.
func ForConfigNotFound(userDir string) string {
	hints := []string{"run with --init-config <path> to create a starter config"}
	if userDir != "" {
		hints = append(hints, "named configs are searched in "+userDir)
	}
	return formatHints(hints)
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available styles: " + strings.Join(available, ", ") + "; or pass a .css file path")
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForInputExtension returns hints for rejected input files.
func ForInputExtension() string {
	return format("supported extensions: .md, .markdown, .txt")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
