package backend

import "regexp"

// stdlibMatcher adds match counting to *regexp.Regexp.
type stdlibMatcher struct {
	*regexp.Regexp
}

// Count returns the number of non-overlapping matches in b.
// If n > 0, at most n matches are counted; if n <= 0, all are.
func (m stdlibMatcher) Count(b []byte, n int) int {
	if n <= 0 {
		n = -1
	}
	return len(m.FindAllIndex(b, n))
}

// CountString is like Count but searches s.
func (m stdlibMatcher) CountString(s string, n int) int {
	if n <= 0 {
		n = -1
	}
	return len(m.FindAllStringIndex(s, n))
}
