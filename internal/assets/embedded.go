package assets

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed styles/*
var styles embed.FS

// EmbeddedLoader loads styles from the embedded filesystem.
// Implements StyleLoader.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a CSS style from embedded assets by name.
// The name should not include the .css extension.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}

// ListStyles returns the names of all embedded styles, sorted.
func (e *EmbeddedLoader) ListStyles() []string {
	entries, err := styles.ReadDir("styles")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".css") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".css"))
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ StyleLoader = (*EmbeddedLoader)(nil)
