package chatprep

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// animationStyle fades rendered fragments in, the way streamed chat
// messages appear. Scoped by class so host pages are unaffected.
const animationStyle = `<style>
@keyframes chatprep-fade-in {
  from { opacity: 0; transform: translateY(4px); }
  to { opacity: 1; transform: none; }
}
.chatprep-fade { animation: chatprep-fade-in 0.25s ease-out; }
</style>`

// PreviewRenderer turns raw content into a sanitized HTML fragment for
// local preview: preprocess, render with the assembled plugin set, then
// sanitize and decorate per the options. The goldmark instance is built
// once and is safe for concurrent Render calls.
type PreviewRenderer struct {
	opts   Options
	pre    *Preprocessor
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewPreviewRenderer creates a renderer for one option profile.
// Preprocessor options (cache sharing, validator) apply to the embedded
// preprocessing stage.
func NewPreviewRenderer(o Options, opts ...Option) *PreviewRenderer {
	set := AssemblePlugins(o)
	r := &PreviewRenderer{
		opts: o,
		pre:  NewPreprocessor(opts...),
		md: goldmark.New(
			goldmark.WithExtensions(set.Extenders...),
			goldmark.WithParserOptions(set.ParserOptions...),
			goldmark.WithRendererOptions(set.RendererOptions...),
		),
	}
	if o.AllowHTML {
		// WithUnsafe is in the plugin set, so raw HTML reaches the
		// output; UGC policy strips scripts and event handlers.
		r.policy = bluemonday.UGCPolicy()
	}
	return r
}

// Render runs the full pipeline over content and returns an HTML
// fragment. Returns ErrEmptyContent for blank input and ErrRenderFailed
// when conversion fails.
func (r *PreviewRenderer) Render(ctx context.Context, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyContent
	}

	prepared := r.pre.Preprocess(ctx, content, r.opts)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fragment, err := r.convert(ctx, prepared)
	if err != nil {
		return "", err
	}

	if r.policy != nil {
		fragment = r.policy.Sanitize(fragment)
	}
	if r.opts.Animated {
		fragment = injectAnimationStyle(fragment)
	}
	return fragment, nil
}

// convert runs goldmark under context control. Goldmark has no native
// cancellation, so conversion runs in a goroutine raced against ctx.
func (r *PreviewRenderer) convert(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		fragment string
		err      error
	}

	resultCh := make(chan result, 1)
	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			resultCh <- result{err: fmt.Errorf("%w: %v", ErrRenderFailed, err)}
			return
		}
		resultCh <- result{fragment: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-resultCh:
		return res.fragment, res.err
	}
}

// injectAnimationStyle wraps a fragment in the entrance-animation block.
// Runs after sanitization so the style tag survives under AllowHTML.
func injectAnimationStyle(fragment string) string {
	return animationStyle + "\n<div class=\"chatprep-fade\">\n" + fragment + "</div>\n"
}
