package schema

// ParseOrZero converts a raw cell value to an integer, never failing.
// Contract: surrounding whitespace is ignored, an optional leading sign is
// honored, and parsing stops at the first non-digit character ("12 pts"
// yields 12). Anything without leading digits yields 0. This mirrors how
// the source sheets mix numbers with stray annotations; a malformed cell
// is noise, not an error.
func ParseOrZero(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	seen := false
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		seen = true
		i++
	}
	if !seen {
		return 0
	}
	if neg {
		return -n
	}
	return n
}
