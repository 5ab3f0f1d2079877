// Package segment scans content for ranges that transformations must not
// rewrite: fenced code blocks, inline code spans, and already-delimited
// math. It is a single forward pass over the bytes; all delimiters are
// ASCII, so byte indexing is UTF-8 safe.
package segment

import (
	"sort"
	"strings"
)

// Kind classifies a protected range.
type Kind int

const (
	KindFence      Kind = iota // ``` fenced code block
	KindInlineCode             // `...` inline code span
	KindMathBlock              // $$...$$ display math
	KindMathInline             // $...$ inline math
)

// Span is a half-open byte interval [Start, End) of protected content.
type Span struct {
	Start int
	End   int
	Kind  Kind
}

// Spans is an ordered, non-overlapping set of spans as produced by Scan.
type Spans []Span

// Scan walks content once and returns every protected range in ascending
// order. Matching precedence at each position: fence (only at line start),
// inline code, $$ math, $ math. A fence that never closes protects through
// end of content, so trailing partial fences are never rewritable. A lone
// $ or $$ with no closer protects nothing; that tail is the
// incomplete-formula case handled elsewhere.
func Scan(content string) Spans {
	var spans Spans
	n := len(content)
	i := 0
	atLineStart := true
	for i < n {
		switch content[i] {
		case '\n':
			i++
			atLineStart = true
			continue
		case '\\':
			// Escaped dollar never opens or closes math.
			if i+1 < n && content[i+1] == '$' {
				i += 2
			} else {
				i++
			}
		case '`':
			run := backtickRun(content, i)
			if atLineStart && run >= 3 && fenceInfoOK(content, i+run) {
				end := scanFence(content, i, run)
				spans = append(spans, Span{Start: i, End: end, Kind: KindFence})
				i = end
			} else if end, ok := scanInlineCode(content, i, run); ok {
				spans = append(spans, Span{Start: i, End: end, Kind: KindInlineCode})
				i = end
			} else {
				i += run
			}
		case '$':
			if i+1 < n && content[i+1] == '$' {
				if end, ok := scanMathBlock(content, i); ok {
					spans = append(spans, Span{Start: i, End: end, Kind: KindMathBlock})
					i = end
				} else {
					i += 2
				}
			} else if end, ok := scanMathInline(content, i); ok {
				spans = append(spans, Span{Start: i, End: end, Kind: KindMathInline})
				i = end
			} else {
				i++
			}
		default:
			i++
		}
		atLineStart = false
	}
	return spans
}

// Contains reports whether pos falls inside any span.
func (s Spans) Contains(pos int) bool {
	idx := sort.Search(len(s), func(i int) bool { return s[i].End > pos })
	return idx < len(s) && s[idx].Start <= pos
}

// Overlaps reports whether the half-open interval [start, end) intersects
// any span.
func (s Spans) Overlaps(start, end int) bool {
	idx := sort.Search(len(s), func(i int) bool { return s[i].End > start })
	return idx < len(s) && s[idx].Start < end
}

// fenceInfoOK reports whether the rest of the line starting at i is a
// valid fence info string. Info strings cannot contain backticks; a line
// like "```code``` text" opens an inline span, not a fence.
func fenceInfoOK(content string, i int) bool {
	for ; i < len(content) && content[i] != '\n'; i++ {
		if content[i] == '`' {
			return false
		}
	}
	return true
}

// backtickRun returns the length of the backtick run starting at i.
func backtickRun(content string, i int) int {
	j := i
	for j < len(content) && content[j] == '`' {
		j++
	}
	return j - i
}

// scanFence returns the end of a fenced block opened at start by a run of
// openLen backticks. The rest of the opening line is an info string. The
// block closes at the next line holding a run of at least openLen backticks
// followed by only spaces or tabs; an unclosed fence runs to end of content.
func scanFence(content string, start, openLen int) int {
	n := len(content)
	i := start + openLen
	for i < n && content[i] != '\n' {
		i++
	}
	for i < n {
		i++ // consume the newline, i is now a line start
		run := backtickRun(content, i)
		if run >= openLen {
			j := i + run
			k := j
			for k < n && (content[k] == ' ' || content[k] == '\t') {
				k++
			}
			if k >= n || content[k] == '\n' {
				return j
			}
		}
		for i < n && content[i] != '\n' {
			i++
		}
	}
	return n
}

// scanInlineCode looks for a closing run of exactly openLen backticks on
// the same line. Runs of a different length are literal inside the span.
func scanInlineCode(content string, start, openLen int) (int, bool) {
	n := len(content)
	i := start + openLen
	for i < n && content[i] != '\n' {
		if content[i] == '`' {
			run := backtickRun(content, i)
			if run == openLen {
				return i + run, true
			}
			i += run
			continue
		}
		i++
	}
	return 0, false
}

// scanMathBlock closes $$ at the next $$ anywhere in the content.
func scanMathBlock(content string, start int) (int, bool) {
	idx := strings.Index(content[start+2:], "$$")
	if idx < 0 {
		return 0, false
	}
	return start + 2 + idx + 2, true
}

// scanMathInline closes $ at the next unescaped $ on the same line.
func scanMathInline(content string, start int) (int, bool) {
	n := len(content)
	i := start + 1
	for i < n && content[i] != '\n' {
		switch content[i] {
		case '\\':
			if i+1 < n && content[i+1] != '\n' {
				i += 2
			} else {
				i++
			}
		case '$':
			return i + 1, true
		default:
			i++
		}
	}
	return 0, false
}
