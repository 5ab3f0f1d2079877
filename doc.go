// Package chatprep prepares chat/markdown content for safe rendering.
//
// Streamed chat messages mix prose with LaTeX, code, currency amounts,
// and citation markers. Rendering them naively corrupts code spans,
// breaks half-received formulas, and turns "$5" into math. This package
// normalizes content so a downstream markdown renderer can display it
// safely.
//
// # Quick Start
//
// Create a preprocessor and run it per message:
//
//	pre := chatprep.NewPreprocessor()
//	out := pre.Preprocess(ctx, content, chatprep.Options{
//	    EnableLaTeX:           true,
//	    EnableCustomFootnotes: true,
//	    CitationsLength:       len(citations),
//	})
//
// The pipeline stages, in order:
//
//  1. LaTeX delimiter normalization (\[...\] and \(...\) to dollar form)
//  2. Mhchem escaping (\ce, \pu survive markdown escaping)
//  3. Currency escaping ($ before a digit outside math)
//  4. Citation rewriting ([n] to [#citation-n](citation-n))
//
// Every stage respects protected ranges: fenced code, inline code, and
// existing math spans pass through byte-identical. Results are memoized
// in a bounded insertion-order cache.
//
// # Streaming
//
// While a message streams, IsRenderable decides whether the current
// chunk is safe to hand to a math renderer:
//
//	if pre.IsRenderable(partial) {
//	    // render partial content, dangling formula included
//	}
//
// # Rendering
//
// AssemblePlugins maps Options to the goldmark extension and renderer
// option lists, for callers that own their renderer. PreviewRenderer
// bundles the whole path for local previews:
//
//	prev := chatprep.NewPreviewRenderer(chatprep.Options{IsChatMode: true})
//	fragment, err := prev.Render(ctx, content)
//
// Preview output is a sanitized HTML fragment; with AllowHTML set, raw
// HTML passes goldmark and bluemonday strips anything executable.
package chatprep
