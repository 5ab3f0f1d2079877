package segment

import "testing"

func TestScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Spans
	}{
		{
			name:     "empty content",
			input:    "",
			expected: nil,
		},
		{
			name:     "plain text",
			input:    "no markers here",
			expected: nil,
		},
		{
			name:     "closed fence",
			input:    "```go\ncode\n```",
			expected: Spans{{Start: 0, End: 14, Kind: KindFence}},
		},
		{
			name:     "unclosed fence protects to end",
			input:    "```\npartial",
			expected: Spans{{Start: 0, End: 11, Kind: KindFence}},
		},
		{
			name:     "longer closing run closes fence",
			input:    "````\nx\n`````",
			expected: Spans{{Start: 0, End: 12, Kind: KindFence}},
		},
		{
			name:     "closing run with trailing text does not close",
			input:    "```\nx\n``` tail\nmore",
			expected: Spans{{Start: 0, End: 19, Kind: KindFence}},
		},
		{
			name:     "inline code",
			input:    "a `b` c",
			expected: Spans{{Start: 2, End: 5, Kind: KindInlineCode}},
		},
		{
			name:     "double backtick span with literal backtick inside",
			input:    "a ``b`c`` d",
			expected: Spans{{Start: 2, End: 9, Kind: KindInlineCode}},
		},
		{
			name:     "unclosed backtick is not protected",
			input:    "a `b",
			expected: nil,
		},
		{
			name:     "inline code does not cross lines",
			input:    "`a\nb`",
			expected: nil,
		},
		{
			name:     "triple backticks mid line close as inline code",
			input:    "a ``` b ```",
			expected: Spans{{Start: 2, End: 11, Kind: KindInlineCode}},
		},
		{
			name:     "fence wins over inline code at line start",
			input:    "```\n`x`\n```",
			expected: Spans{{Start: 0, End: 11, Kind: KindFence}},
		},
		{
			name:     "backticks in info string open inline code not a fence",
			input:    "```\\[x\\]``` and \\[y\\]",
			expected: Spans{{Start: 0, End: 11, Kind: KindInlineCode}},
		},
		{
			name:     "inline math",
			input:    "$x$",
			expected: Spans{{Start: 0, End: 3, Kind: KindMathInline}},
		},
		{
			name:     "display math",
			input:    "$$x$$",
			expected: Spans{{Start: 0, End: 5, Kind: KindMathBlock}},
		},
		{
			name:     "display math spans lines",
			input:    "$$\nx\n$$",
			expected: Spans{{Start: 0, End: 7, Kind: KindMathBlock}},
		},
		{
			name:     "dangling display math is not protected",
			input:    "$$x",
			expected: nil,
		},
		{
			name:     "dangling inline math is not protected",
			input:    "$x",
			expected: nil,
		},
		{
			name:     "escaped dollar never opens math",
			input:    "\\$5 and \\$10",
			expected: nil,
		},
		{
			name:     "dollar digits pair up as inline math",
			input:    "$5 and $10",
			expected: Spans{{Start: 0, End: 8, Kind: KindMathInline}},
		},
		{
			name:     "inline math does not cross lines",
			input:    "$a\nb$",
			expected: nil,
		},
		{
			name:  "mixed code and math",
			input: "a `b` $x$",
			expected: Spans{
				{Start: 2, End: 5, Kind: KindInlineCode},
				{Start: 6, End: 9, Kind: KindMathInline},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Scan(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("Scan(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Scan(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestScanOrdered(t *testing.T) {
	t.Parallel()

	input := "$a$ text `code` more $$b$$ and ```\nfence"
	spans := Scan(input)
	for i := 1; i < len(spans); i++ {
		if spans[i].Start < spans[i-1].End {
			t.Errorf("spans overlap or are unordered: %v before %v", spans[i-1], spans[i])
		}
	}
}

func TestSpansContains(t *testing.T) {
	t.Parallel()

	spans := Scan("a `b` $x$")

	tests := []struct {
		name     string
		pos      int
		expected bool
	}{
		{name: "before first span", pos: 1, expected: false},
		{name: "start of code span", pos: 2, expected: true},
		{name: "inside code span", pos: 4, expected: true},
		{name: "end is exclusive", pos: 5, expected: false},
		{name: "inside math span", pos: 7, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := spans.Contains(tt.pos); got != tt.expected {
				t.Errorf("Contains(%d) = %v, want %v", tt.pos, got, tt.expected)
			}
		})
	}
}

func TestSpansOverlaps(t *testing.T) {
	t.Parallel()

	spans := Scan("a `b` $x$")

	tests := []struct {
		name       string
		start, end int
		expected   bool
	}{
		{name: "strictly before", start: 0, end: 2, expected: false},
		{name: "touching start", start: 0, end: 3, expected: true},
		{name: "straddling spans", start: 4, end: 7, expected: true},
		{name: "between spans", start: 5, end: 6, expected: false},
		{name: "after all spans", start: 9, end: 12, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := spans.Overlaps(tt.start, tt.end); got != tt.expected {
				t.Errorf("Overlaps(%d, %d) = %v, want %v", tt.start, tt.end, got, tt.expected)
			}
		})
	}
}
