package chatprep

import "strconv"

// Options selects which transformations run and how the renderer plugin
// set is assembled. The zero value disables everything: Preprocess
// returns its input unchanged.
type Options struct {
	// AllowHTML lets raw HTML pass through the renderer. Preview output
	// is sanitized afterwards, so scripts never survive.
	AllowHTML bool

	// Animated wraps preview output in an entrance-animation block.
	Animated bool

	// EnableCustomFootnotes turns on footnote parsing and the citation
	// marker rewrite.
	EnableCustomFootnotes bool

	// EnableLaTeX runs delimiter normalization, mhchem escaping, and
	// currency escaping.
	EnableLaTeX bool

	// IsChatMode renders newlines as hard line breaks.
	IsChatMode bool

	// CitationsLength is the number of resolvable citations; markers
	// above it stay verbatim. Zero disables the rewrite.
	CitationsLength int

	// CacheKey identifies the content for caching, typically a message
	// id. Empty derives a key from the content itself.
	CacheKey string
}

// fingerprint encodes the option fields that change Preprocess output.
// It is mixed into cache keys so the same content under different
// options cannot collide.
func (o Options) fingerprint() string {
	var mask int
	if o.EnableLaTeX {
		mask |= 1
	}
	if o.EnableCustomFootnotes {
		mask |= 2
	}
	return strconv.Itoa(mask) + ":" + strconv.Itoa(o.CitationsLength)
}
