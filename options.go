package chatprep

// Option configures a Preprocessor.
type Option func(*Preprocessor)

// WithCache shares an existing cache between preprocessors.
func WithCache(c *Cache) Option {
	return func(p *Preprocessor) {
		p.cache = c
	}
}

// WithCacheCapacity sizes the internally created cache. Ignored when
// WithCache supplies one.
func WithCacheCapacity(n int) Option {
	return func(p *Preprocessor) {
		p.cfg.cacheCapacity = n
	}
}

// WithMathValidator replaces the structural formula validator used by
// IsRenderable.
func WithMathValidator(v MathValidator) Option {
	return func(p *Preprocessor) {
		p.validator = v
	}
}
