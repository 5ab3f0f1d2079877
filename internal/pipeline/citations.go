package pipeline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alnah/go-chatprep/internal/segment"
)

// Bracketed integer reference like [3].
var citationPattern = regexp.MustCompile(`\[(\d+)\]`)

// TransformCitations rewrites every [n] with 1 <= n <= citationsLength
// into [#citation-n](citation-n), skipping markers inside protected
// ranges. A citationsLength of zero or less returns the content
// unchanged without scanning. Consecutive markers transform
// independently.
func TransformCitations(content string, citationsLength int) string {
	if citationsLength <= 0 || content == "" {
		return content
	}
	matches := citationPattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content
	}

	spans := segment.Scan(content)
	var b strings.Builder
	b.Grow(len(content) + len(matches)*24)
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if spans.Overlaps(start, end) {
			continue
		}
		num, err := strconv.Atoi(content[m[2]:m[3]])
		if err != nil || num < 1 || num > citationsLength {
			continue
		}
		b.WriteString(content[last:start])
		fmt.Fprintf(&b, "[#citation-%d](citation-%d)", num, num)
		last = end
	}
	if last == 0 {
		return content
	}
	b.WriteString(content[last:])
	return b.String()
}
