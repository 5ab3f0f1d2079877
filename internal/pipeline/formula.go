package pipeline

// ExtractIncompleteFormula returns the trailing unterminated display
// formula of streamed content, or "" when the content is balanced.
//
// Occurrences of the literal token $$ are counted left to right,
// non-overlapping. An even count is balanced. An odd count means the
// final $$ opened a block that never closed: the returned substring
// starts right after the opening marker of the preceding balanced pair,
// or right after the lone marker when it is the only one. An odd count
// with no content after the final marker yields "".
func ExtractIncompleteFormula(content string) string {
	var occ []int
	for i := 0; i+1 < len(content); {
		if content[i] == '$' && content[i+1] == '$' {
			occ = append(occ, i)
			i += 2
			continue
		}
		i++
	}

	n := len(occ)
	if n == 0 || n%2 == 0 {
		return ""
	}
	if occ[n-1]+2 >= len(content) {
		return ""
	}
	if n == 1 {
		return content[occ[0]+2:]
	}
	return content[occ[n-3]+2:]
}
