package chatprep

import (
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// PluginSet holds the ordered plugin descriptors handed to the markdown
// renderer. Extenders and ParserOptions configure the parse side,
// RendererOptions the output side. Order is preserved because extension
// registration is order sensitive.
type PluginSet struct {
	Extenders       []goldmark.Extender
	ParserOptions   []parser.Option
	RendererOptions []renderer.Option
}

// AssemblePlugins maps option flags to renderer plugin descriptors.
// Pure configuration assembly: same Options in, same PluginSet out,
// no I/O, no shared state.
//
// EnableLaTeX and Animated add no descriptor here: dollar-delimited
// math flows through as literal text for a client-side math renderer,
// and animation is applied by the preview stage after rendering.
func AssemblePlugins(o Options) PluginSet {
	set := PluginSet{
		Extenders: []goldmark.Extender{
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes over inline styles
				),
			),
		},
		ParserOptions: []parser.Option{
			parser.WithAutoHeadingID(),
		},
		RendererOptions: []renderer.Option{
			html.WithXHTML(),
		},
	}
	if o.EnableCustomFootnotes {
		set.Extenders = append(set.Extenders, extension.Footnote)
	}
	if o.IsChatMode {
		set.RendererOptions = append(set.RendererOptions, html.WithHardWraps())
	}
	if o.AllowHTML {
		// Raw HTML passes through; the preview renderer sanitizes after.
		set.RendererOptions = append(set.RendererOptions, html.WithUnsafe())
	}
	return set
}
