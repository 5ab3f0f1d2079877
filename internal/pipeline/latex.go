package pipeline

import (
	"regexp"
	"strings"

	"github.com/alnah/go-chatprep/internal/segment"
)

// Precompiled regex patterns for performance.
var (
	// Alternate LaTeX delimiters. One alternation so mixed forms convert
	// left to right in a single non-overlapping pass. (?s) lets a formula
	// span lines.
	delimiterPattern = regexp.MustCompile(`(?s)\\\[(.*?)\\\]|\\\((.*?)\\\)`)
)

// Mhchem commands whose leading backslash must be doubled to survive
// downstream markdown escaping.
var mhchemCommands = []string{`\ce{`, `\pu{`}

// ConvertDelimiters rewrites \[...\] to $$...$$ and \(...\) to $...$,
// leaving the inner content byte-identical. Candidates overlapping a
// protected range stay verbatim, including their original backslash
// form. Output contains no convertible pairs outside protected ranges,
// so applying it twice equals applying it once.
func ConvertDelimiters(content string) string {
	if content == "" {
		return content
	}
	matches := delimiterPattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content
	}

	spans := segment.Scan(content)
	var b strings.Builder
	b.Grow(len(content))
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if spans.Overlaps(start, end) {
			continue
		}
		b.WriteString(content[last:start])
		if m[2] >= 0 {
			// \[...\] group
			b.WriteString("$$")
			b.WriteString(content[m[2]:m[3]])
			b.WriteString("$$")
		} else {
			// \(...\) group
			b.WriteString("$")
			b.WriteString(content[m[4]:m[5]])
			b.WriteString("$")
		}
		last = end
	}
	b.WriteString(content[last:])
	return b.String()
}

// EscapeMhchem doubles the backslash of \ce{ and \pu{ inside math spans
// so the commands survive further escaping layers. Text outside math
// spans is returned unchanged even when it contains those tokens.
func EscapeMhchem(content string) string {
	if content == "" || !strings.Contains(content, `\ce{`) && !strings.Contains(content, `\pu{`) {
		return content
	}

	spans := segment.Scan(content)
	var b strings.Builder
	b.Grow(len(content) + 8)
	last := 0
	for _, s := range spans {
		if s.Kind != segment.KindMathInline && s.Kind != segment.KindMathBlock {
			continue
		}
		b.WriteString(content[last:s.Start])
		inner := content[s.Start:s.End]
		for _, cmd := range mhchemCommands {
			inner = strings.ReplaceAll(inner, cmd, `\`+cmd)
		}
		b.WriteString(inner)
		last = s.End
	}
	if last == 0 {
		return content
	}
	b.WriteString(content[last:])
	return b.String()
}

// EscapeDollarDigits escapes a $ immediately followed by a digit to \$
// outside protected ranges, so currency amounts stop opening accidental
// math spans. A $ already preceded by a backslash is left alone.
func EscapeDollarDigits(content string) string {
	if !strings.Contains(content, "$") {
		return content
	}

	spans := segment.Scan(content)
	var b strings.Builder
	b.Grow(len(content) + 4)
	for i := 0; i < len(content); i++ {
		c := content[i]
		if c == '$' && i+1 < len(content) &&
			content[i+1] >= '0' && content[i+1] <= '9' &&
			(i == 0 || content[i-1] != '\\') &&
			!spans.Contains(i) {
			b.WriteString(`\$`)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
