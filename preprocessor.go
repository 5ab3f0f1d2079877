package chatprep

import (
	"context"

	"github.com/alnah/go-chatprep/internal/mathcheck"
	"github.com/alnah/go-chatprep/internal/pipeline"
)

// MathValidator reports whether a formula is structurally fit to hand to
// a math renderer. Implementations attempt a trial parse and return the
// first problem found.
type MathValidator interface {
	Validate(expr string) error
}

// Compile-time interface implementation check.
var _ MathValidator = (*mathcheck.Checker)(nil)

// Preprocessor prepares chat/markdown content for safe rendering.
// Create with NewPreprocessor, call Preprocess per message. Safe for
// concurrent use; the cache is the only shared state.
type Preprocessor struct {
	cfg       preprocessorConfig
	cache     *Cache
	validator MathValidator
}

// preprocessorConfig holds internal configuration for Preprocessor.
type preprocessorConfig struct {
	cacheCapacity int
}

// NewPreprocessor creates a Preprocessor with default configuration:
// a DefaultCacheCapacity-sized cache and the built-in formula validator.
func NewPreprocessor(opts ...Option) *Preprocessor {
	p := &Preprocessor{
		validator: mathcheck.NewChecker(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.cache == nil {
		p.cache = NewCache(p.cfg.cacheCapacity)
	}
	return p
}

// Preprocess runs the enabled transformation stages over content and
// returns the result. Empty content short-circuits to empty output
// before any stage or cache access. Results are memoized under
// Options.CacheKey (or a content-derived key) combined with an option
// fingerprint.
//
// The function is total: any input string in, a string out, no error.
// A canceled context returns the content as transformed so far, without
// caching the partial result.
func (p *Preprocessor) Preprocess(ctx context.Context, content string, o Options) string {
	if content == "" {
		return ""
	}

	key := o.CacheKey
	if key == "" {
		key = ContentKey(content)
	}
	key += "|" + o.fingerprint()
	if cached, ok := p.cache.Get(key); ok {
		return cached
	}

	result := content
	if o.EnableLaTeX {
		if ctx.Err() != nil {
			return result
		}
		result = pipeline.ConvertDelimiters(result)
		result = pipeline.EscapeMhchem(result)
		result = pipeline.EscapeDollarDigits(result)
	}
	if o.EnableCustomFootnotes {
		if ctx.Err() != nil {
			return result
		}
		result = pipeline.TransformCitations(result, o.CitationsLength)
	}

	p.cache.Add(key, result)
	return result
}

// IsRenderable reports whether streamed content is safe to hand to a
// math renderer: either no display formula is dangling, or the dangling
// tail validates. A panicking validator counts as not renderable; a
// streaming render loop must never die on a malformed partial formula.
func (p *Preprocessor) IsRenderable(content string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	tail := pipeline.ExtractIncompleteFormula(content)
	if tail == "" {
		return true
	}
	return p.validator.Validate(tail) == nil
}

// ExtractIncompleteFormula returns the trailing unterminated display
// formula of streamed content, or "" when the content is balanced. It is
// exposed for streaming callers that track the dangling tail themselves.
func ExtractIncompleteFormula(content string) string {
	return pipeline.ExtractIncompleteFormula(content)
}
