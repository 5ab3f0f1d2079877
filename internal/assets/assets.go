// Package assets provides CSS styles for standalone preview pages.
// Styles can be loaded from embedded files or supplied by the caller.
package assets

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a CSS file by name using the default embedded loader.
// The name should not include the .css extension or path components.
// Returns ErrStyleNotFound if the style does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// ListStyles returns the names of all embedded styles, sorted.
func ListStyles() []string {
	return defaultLoader.ListStyles()
}
