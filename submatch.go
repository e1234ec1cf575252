package lazyregex

import "github.com/coregx/lazyregex/backend"

// An engine's FindAll*SubmatchIndex may walk a subject differently from its
// FindAll*Index: coregex reports ^ at every offset, an empty a* match right
// after a non-empty one, and duplicate \b positions there, while FindAll,
// Count, Split and ReplaceAll agree with each other. Composed operations
// take match boundaries from FindAll*Index and borrow capture groups from
// the submatch enumeration only where the boundaries line up.

// stringMatches returns a fetch function for the first n matches of m in s,
// each with its submatch indices. n < 0 means all matches.
func stringMatches(m backend.Matcher, s string) func(n int) [][]int {
	return func(n int) [][]int {
		return alignSubmatches(m.FindAllStringIndex(s, n), func(k int) [][]int {
			return m.FindAllStringSubmatchIndex(s, k)
		}, len(s)+1)
	}
}

// byteMatches is like stringMatches but searches b.
func byteMatches(m backend.Matcher, b []byte) func(n int) [][]int {
	return func(n int) [][]int {
		return alignSubmatches(m.FindAllIndex(b, n), func(k int) [][]int {
			return m.FindAllSubmatchIndex(b, k)
		}, len(b)+1)
	}
}

// alignSubmatches returns one submatch index slice per boundary in bounds.
//
// fetch(k) returns the first k submatch entries (k < 0: all). Extra entries
// can push wanted ones past the first len(bounds), so the request doubles
// until every boundary is found or the subject's maxMatches is reached. A
// boundary with no submatch entry is returned as the bare [start, end] pair.
func alignSubmatches(bounds [][]int, fetch func(k int) [][]int, maxMatches int) [][]int {
	if len(bounds) == 0 {
		return nil
	}
	k := len(bounds)
	for {
		if k >= maxMatches {
			k = -1
		}
		subs := fetch(k)
		out, complete := align(bounds, subs)
		if complete || k < 0 || len(subs) < k {
			return out
		}
		k *= 2
	}
}

// align pairs each boundary with the next submatch entry whose overall
// match spans the same bytes. Entries matching no boundary are skipped.
func align(bounds, subs [][]int) ([][]int, bool) {
	out := make([][]int, len(bounds))
	complete := true
	j := 0
	for i, b := range bounds {
		k := j
		for k < len(subs) && (subs[k][0] != b[0] || subs[k][1] != b[1]) {
			k++
		}
		if k < len(subs) {
			out[i] = subs[k]
			j = k + 1
			continue
		}
		out[i] = []int{b[0], b[1]}
		complete = false
	}
	return out, complete
}
