package lazyregex

import "github.com/coregx/lazyregex/internal/conv"

// Match reports whether b contains any match of the pattern.
func (r *Regex) Match(b []byte) (bool, error) {
	m, err := r.compiled()
	if err != nil {
		return false, err
	}
	return m.Match(b), nil
}

// MatchString reports whether s contains any match of the pattern.
func (r *Regex) MatchString(s string) (bool, error) {
	m, err := r.compiled()
	if err != nil {
		return false, err
	}
	return m.MatchString(s), nil
}

// Find returns the text of the leftmost match in b, or nil.
func (r *Regex) Find(b []byte) ([]byte, error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	return m.Find(b), nil
}

// FindString returns the text of the leftmost match in s, or "".
func (r *Regex) FindString(s string) (string, error) {
	m, err := r.compiled()
	if err != nil {
		return "", err
	}
	return m.FindString(s), nil
}

// FindIndex returns the location of the leftmost match in b, or nil.
func (r *Regex) FindIndex(b []byte) ([]int, error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	return m.FindIndex(b), nil
}

// FindStringIndex returns the location of the leftmost match in s, or nil.
func (r *Regex) FindStringIndex(s string) ([]int, error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	return m.FindStringIndex(s), nil
}

// FindSubmatch returns the text of the leftmost match in b and of its
// capture groups, or nil.
func (r *Regex) FindSubmatch(b []byte) ([][]byte, error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	return m.FindSubmatch(b), nil
}

// FindStringSubmatch returns the text of the leftmost match in s and of its
// capture groups, or nil.
//
// Example:
//
//	re := lazyregex.New(`(\d+)-(\d+)`)
//	groups, _ := re.FindStringSubmatch("range 10-20 end")
//	// groups = ["10-20", "10", "20"]
func (r *Regex) FindStringSubmatch(s string) ([]string, error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	return m.FindStringSubmatch(s), nil
}

// FindSubmatchIndex returns the index pairs of the leftmost match in b and
// of its capture groups, or nil.
func (r *Regex) FindSubmatchIndex(b []byte) ([]int, error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	return m.FindSubmatchIndex(b), nil
}

// FindStringSubmatchIndex returns the index pairs of the leftmost match in s
// and of its capture groups, or nil.
func (r *Regex) FindStringSubmatchIndex(s string) ([]int, error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	return m.FindStringSubmatchIndex(s), nil
}

// SearchAt returns the index pairs of the leftmost match that starts at or
// after pos in s, or nil. Indices are relative to s.
//
// pos is clamped to [0, len(s)]. The engine sees s[pos:] as the whole
// input, so ^ and \b treat pos as the start of text: ^a finds "a" in
// "ba" at pos 1, returning [1 2], although no match of ^a exists in "ba".
//
// Example:
//
//	re := lazyregex.New(`^a`)
//	loc, _ := re.SearchAt("ba", 1)
//	// loc = [1 2]
func (r *Regex) SearchAt(s string, pos int) ([]int, error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	pos = conv.ClampOffset(pos, len(s))
	return conv.Rebase(m.FindStringSubmatchIndex(s[pos:]), pos), nil
}

// MatchPrefix returns the index pairs of a match that begins at the start
// of s, or nil if no match begins there.
//
// Matches are leftmost, so if any match begins at offset 0 the leftmost one
// does; the result is therefore the match the engine reports, kept only when
// it starts at 0.
func (r *Regex) MatchPrefix(s string) ([]int, error) {
	return r.MatchPrefixAt(s, 0)
}

// MatchPrefixAt is like MatchPrefix but the match must begin at pos.
// pos is clamped and treated as in SearchAt, so ^ matches at pos:
// New(`^b`).MatchPrefixAt("ab", 1) returns [1 2].
func (r *Regex) MatchPrefixAt(s string, pos int) ([]int, error) {
	loc, err := r.SearchAt(s, pos)
	if err != nil {
		return nil, err
	}
	if loc == nil || loc[0] != conv.ClampOffset(pos, len(s)) {
		return nil, nil
	}
	return loc, nil
}

// FindAll returns successive non-overlapping matches in b.
// If n >= 0, at most n matches are returned; the exact treatment of n is
// the engine's.
func (r *Regex) FindAll(b []byte, n int) ([][]byte, error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	return m.FindAll(b, n), nil
}

// FindAllString returns successive non-overlapping matches in s.
//
// Example:
//
//	re := lazyregex.New(`a+`)
//	runs, _ := re.FindAllString("aaabaa", -1)
//	// runs = ["aaa", "aa"]
func (r *Regex) FindAllString(s string, n int) ([]string, error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	return m.FindAllString(s, n), nil
}

// FindAllIndex returns the locations of successive matches in b.
func (r *Regex) FindAllIndex(b []byte, n int) ([][]int, error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	return m.FindAllIndex(b, n), nil
}

// FindAllStringIndex returns the locations of successive matches in s.
func (r *Regex) FindAllStringIndex(s string, n int) ([][]int, error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	return m.FindAllStringIndex(s, n), nil
}

// FindAllSubmatch returns successive matches in b with their capture groups.
func (r *Regex) FindAllSubmatch(b []byte, n int) ([][][]byte, error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	return m.FindAllSubmatch(b, n), nil
}

// FindAllStringSubmatch returns successive matches in s with their capture
// groups.
func (r *Regex) FindAllStringSubmatch(s string, n int) ([][]string, error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	return m.FindAllStringSubmatch(s, n), nil
}

// FindAllSubmatchIndex returns the index pairs of successive matches in b
// and their capture groups.
func (r *Regex) FindAllSubmatchIndex(b []byte, n int) ([][]int, error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	return m.FindAllSubmatchIndex(b, n), nil
}

// FindAllStringSubmatchIndex returns the index pairs of successive matches
// in s and their capture groups.
func (r *Regex) FindAllStringSubmatchIndex(s string, n int) ([][]int, error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	return m.FindAllStringSubmatchIndex(s, n), nil
}

// Count returns the number of non-overlapping matches in b.
// If n > 0, at most n matches are counted.
func (r *Regex) Count(b []byte, n int) (int, error) {
	m, err := r.compiled()
	if err != nil {
		return 0, err
	}
	return m.Count(b, n), nil
}

// CountString returns the number of non-overlapping matches in s.
func (r *Regex) CountString(s string, n int) (int, error) {
	m, err := r.compiled()
	if err != nil {
		return 0, err
	}
	return m.CountString(s, n), nil
}

// Split slices s into the substrings between matches.
// n follows regexp.Regexp.Split: n > 0 returns at most n substrings, n == 0
// returns nil, n < 0 returns all substrings.
//
// Example:
//
//	re := lazyregex.New(`b`)
//	parts, _ := re.Split("ababa", -1)
//	// parts = ["a", "a", "a"]
func (r *Regex) Split(s string, n int) ([]string, error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	return m.Split(s, n), nil
}
