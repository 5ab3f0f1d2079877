package chatprep

import "testing"

func TestAssemblePlugins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		opts          Options
		wantExtenders int
		wantParser    int
		wantRenderer  int
	}{
		{
			name:          "zero options keep the base set",
			opts:          Options{},
			wantExtenders: 2, // GFM + highlighting
			wantParser:    1, // auto heading IDs
			wantRenderer:  1, // XHTML
		},
		{
			name:          "footnotes add an extender",
			opts:          Options{EnableCustomFootnotes: true},
			wantExtenders: 3,
			wantParser:    1,
			wantRenderer:  1,
		},
		{
			name:          "chat mode adds hard wraps",
			opts:          Options{IsChatMode: true},
			wantExtenders: 2,
			wantParser:    1,
			wantRenderer:  2,
		},
		{
			name:          "allow html adds unsafe rendering",
			opts:          Options{AllowHTML: true},
			wantExtenders: 2,
			wantParser:    1,
			wantRenderer:  2,
		},
		{
			name: "latex and animated add no descriptors",
			opts: Options{EnableLaTeX: true, Animated: true},

			wantExtenders: 2,
			wantParser:    1,
			wantRenderer:  1,
		},
		{
			name: "all options stack",
			opts: Options{
				AllowHTML:             true,
				EnableCustomFootnotes: true,
				IsChatMode:            true,
			},
			wantExtenders: 3,
			wantParser:    1,
			wantRenderer:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			set := AssemblePlugins(tt.opts)
			if len(set.Extenders) != tt.wantExtenders {
				t.Errorf("len(Extenders) = %d, want %d", len(set.Extenders), tt.wantExtenders)
			}
			if len(set.ParserOptions) != tt.wantParser {
				t.Errorf("len(ParserOptions) = %d, want %d", len(set.ParserOptions), tt.wantParser)
			}
			if len(set.RendererOptions) != tt.wantRenderer {
				t.Errorf("len(RendererOptions) = %d, want %d", len(set.RendererOptions), tt.wantRenderer)
			}
		})
	}
}

func TestAssemblePluginsDeterministic(t *testing.T) {
	t.Parallel()

	opts := Options{EnableCustomFootnotes: true, IsChatMode: true}
	a := AssemblePlugins(opts)
	b := AssemblePlugins(opts)

	if len(a.Extenders) != len(b.Extenders) ||
		len(a.ParserOptions) != len(b.ParserOptions) ||
		len(a.RendererOptions) != len(b.RendererOptions) {
		t.Errorf("repeated assembly differs: %d/%d/%d vs %d/%d/%d",
			len(a.Extenders), len(a.ParserOptions), len(a.RendererOptions),
			len(b.Extenders), len(b.ParserOptions), len(b.RendererOptions))
	}
}
