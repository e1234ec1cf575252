// Package literal provides literal needle sets whose multi-pattern matcher
// is built on first use.
//
// A Set is the literal counterpart of lazyregex.Regex: a list of fixed byte
// strings, searched simultaneously with an Aho-Corasick automaton. The
// automaton is built the first time a search method is called, not when the
// Set is declared, and the built automaton is reused afterwards. A build
// failure is returned to the caller and attempted again on the next call.
//
// Example:
//
//	var keywords = literal.NewSet("select", "insert", "update", "delete")
//
//	func hasKeyword(q []byte) (bool, error) {
//	    return keywords.IsMatch(q)
//	}
package literal

import (
	"errors"
	"fmt"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/lazyregex/internal/cell"
	"github.com/coregx/lazyregex/internal/conv"
)

var (
	// ErrEmptySet is returned when a Set with no needles is searched.
	ErrEmptySet = errors.New("literal: empty needle set")

	// ErrEmptyNeedle is returned when a Set containing "" is searched.
	ErrEmptyNeedle = errors.New("literal: empty needle")
)

// Set is a set of literal needles searched with an automaton built on
// first use. A Set is safe for concurrent use.
type Set struct {
	needles   []string
	automaton cell.Cell[*ahocorasick.Automaton]
}

// NewSet returns a Set of needles. Nothing is built or checked here.
func NewSet(needles ...string) *Set {
	return &Set{needles: append([]string(nil), needles...)}
}

// Len returns the number of needles. It does not build the automaton.
func (s *Set) Len() int {
	return len(s.needles)
}

// Needles returns a copy of the needles in declaration order.
func (s *Set) Needles() []string {
	return append([]string(nil), s.needles...)
}

// Built reports whether the automaton has been built.
func (s *Set) Built() bool {
	return s.automaton.Filled()
}

// Builds returns the number of build attempts, including failed ones.
func (s *Set) Builds() uint64 {
	return s.automaton.Attempts()
}

func (s *Set) built() (*ahocorasick.Automaton, error) {
	return s.automaton.Get(s.build)
}

func (s *Set) build() (*ahocorasick.Automaton, error) {
	if len(s.needles) == 0 {
		return nil, ErrEmptySet
	}

	builder := ahocorasick.NewBuilder()
	for i, needle := range s.needles {
		if needle == "" {
			return nil, fmt.Errorf("%w at index %d", ErrEmptyNeedle, i)
		}
		builder.AddPattern([]byte(needle))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("literal: build automaton: %w", err)
	}
	return auto, nil
}

// IsMatch reports whether haystack contains any needle.
func (s *Set) IsMatch(haystack []byte) (bool, error) {
	auto, err := s.built()
	if err != nil {
		return false, err
	}
	return auto.IsMatch(haystack), nil
}

// IsMatchString reports whether haystack contains any needle.
func (s *Set) IsMatchString(haystack string) (bool, error) {
	return s.IsMatch([]byte(haystack))
}

// Find returns the [start, end) location of the first needle occurrence at
// or after at, or nil. at is clamped to [0, len(haystack)].
func (s *Set) Find(haystack []byte, at int) ([]int, error) {
	auto, err := s.built()
	if err != nil {
		return nil, err
	}
	return find(auto, haystack, at), nil
}

func find(auto *ahocorasick.Automaton, haystack []byte, at int) []int {
	at = conv.ClampOffset(at, len(haystack))
	if at >= len(haystack) {
		return nil
	}
	m := auto.Find(haystack, at)
	if m == nil {
		return nil
	}
	return []int{m.Start, m.End}
}

// FindAll returns the locations of successive non-overlapping needle
// occurrences in haystack. If n > 0, at most n are returned.
func (s *Set) FindAll(haystack []byte, n int) ([][]int, error) {
	auto, err := s.built()
	if err != nil {
		return nil, err
	}

	var locs [][]int
	at := 0
	for n <= 0 || len(locs) < n {
		loc := find(auto, haystack, at)
		if loc == nil {
			break
		}
		locs = append(locs, loc)
		at = loc[1]
	}
	return locs, nil
}

// FindAllString is like FindAll but returns the matched text.
func (s *Set) FindAllString(haystack string, n int) ([]string, error) {
	locs, err := s.FindAll([]byte(haystack), n)
	if err != nil {
		return nil, err
	}
	if locs == nil {
		return nil, nil
	}
	out := make([]string, len(locs))
	for i, loc := range locs {
		out[i] = haystack[loc[0]:loc[1]]
	}
	return out, nil
}
