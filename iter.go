package lazyregex

import "iter"

// firstBatch is the number of matches requested from the engine before the
// consumer has asked for more. Each refill doubles the request.
const firstBatch = 8

// cursor walks the successive matches of a subject on demand.
//
// Engines only enumerate matches from the start of the subject, so the
// cursor asks for the first k matches, hands them out, and when they run
// out asks again for 2k, skipping the ones already seen. The prefix of a
// longer enumeration equals the shorter one, so the sequence is exactly the
// engine's FindAllIndex result; the doubling bounds the repeated work to about
// twice a single full enumeration.
type cursor struct {
	fetch func(n int) [][]int
	limit int // no subject has more than limit matches

	buf  [][]int
	next int
	want int
	done bool
}

func newCursor(fetch func(n int) [][]int, subjectLen int) *cursor {
	return &cursor{fetch: fetch, limit: subjectLen + 1, want: firstBatch}
}

// advance returns the next match's submatch indices, or false when the
// subject is exhausted.
func (c *cursor) advance() ([]int, bool) {
	for c.next >= len(c.buf) {
		if c.done {
			return nil, false
		}
		n := c.want
		if n >= c.limit {
			n = -1
		}
		all := c.fetch(n)
		if n < 0 || len(all) < n {
			c.done = true
		}
		if len(all) <= len(c.buf) {
			c.done = true
			return nil, false
		}
		c.buf = all
		c.want *= 2
	}
	loc := c.buf[c.next]
	c.next++
	return loc, true
}

func (c *cursor) seq(yield func([]int) bool) {
	for {
		loc, ok := c.advance()
		if !ok || !yield(loc) {
			return
		}
	}
}

// Matches compiles the pattern if needed and returns an iterator over the
// submatch indices of successive matches in b, left to right.
//
// The iterator walks the matches FindAllIndex(b, -1) reports, each with its
// capture groups, but searches only as far as the consumer reads. Each range
// over the iterator starts again from the beginning of b.
func (r *Regex) Matches(b []byte) (iter.Seq[[]int], error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	return func(yield func([]int) bool) {
		newCursor(byteMatches(m, b), len(b)).seq(yield)
	}, nil
}

// MatchesString is like Matches but searches s.
//
// Example:
//
//	re := lazyregex.New(`\d+`)
//	seq, _ := re.MatchesString("1 22 333")
//	for loc := range seq {
//	    fmt.Println(loc) // [0 1], [2 4], [5 8]
//	}
func (r *Regex) MatchesString(s string) (iter.Seq[[]int], error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	return func(yield func([]int) bool) {
		newCursor(stringMatches(m, s), len(s)).seq(yield)
	}, nil
}

// Scanner steps through the matches of a pattern in one subject.
//
//	sc, err := re.Scanner(input)
//	if err != nil {
//	    return err
//	}
//	for sc.Next() {
//	    fmt.Println(sc.Text(), sc.Group(1))
//	}
type Scanner struct {
	subject string
	cur     *cursor
	loc     []int
}

// Scanner compiles the pattern if needed and returns a Scanner over s.
func (r *Regex) Scanner(s string) (*Scanner, error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	return &Scanner{
		subject: s,
		cur:     newCursor(stringMatches(m, s), len(s)),
	}, nil
}

// Next advances to the next match and reports whether there is one.
func (sc *Scanner) Next() bool {
	loc, ok := sc.cur.advance()
	if !ok {
		sc.loc = nil
		return false
	}
	sc.loc = loc
	return true
}

// Index returns the submatch index pairs of the current match.
// It returns nil before the first call to Next and after Next returns false.
func (sc *Scanner) Index() []int {
	return sc.loc
}

// Text returns the text of the current match.
func (sc *Scanner) Text() string {
	return sc.Group(0)
}

// Group returns the text of capture group i of the current match, or "" if
// the group did not participate or does not exist.
func (sc *Scanner) Group(i int) string {
	if i < 0 || 2*i+1 >= len(sc.loc) || sc.loc[2*i] < 0 {
		return ""
	}
	return sc.subject[sc.loc[2*i]:sc.loc[2*i+1]]
}
