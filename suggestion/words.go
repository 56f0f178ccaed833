package suggestion

// NextWord returns the next word-sized chunk of s, for hosts that accept
// a suggestion word by word rather than all at once. Leading whitespace
// is returned as its own chunk so indentation is inserted verbatim before
// the word that follows it. Returns "" when s is empty.
func NextWord(s string) string {
	if len(s) == 0 {
		return ""
	}

	i := 0
	for i < len(s) && isWordSpace(s[i]) {
		i++
	}
	if i > 0 {
		return s[:i]
	}

	for i < len(s) && !isWordSpace(s[i]) {
		i++
	}
	return s[:i]
}

func isWordSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n'
}
