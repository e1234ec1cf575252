// Package conv provides offset and index conversion helpers shared by the
// deferred matchers.
//
// Engines only search whole subjects, so positional searches run on a suffix
// of the subject. These helpers clamp the starting offset and convert the
// suffix-relative indices the engine reports back into subject-relative ones.
package conv

// ClampOffset clamps pos into [0, n].
//
//go:inline
func ClampOffset(pos, n int) int {
	if pos < 0 {
		return 0
	}
	if pos > n {
		return n
	}
	return pos
}

// Rebase adds base to every non-negative index in loc, in place, and
// returns loc. Negative entries mark unmatched groups and are left alone.
// A nil loc stays nil.
func Rebase(loc []int, base int) []int {
	if base == 0 {
		return loc
	}
	for i, v := range loc {
		if v >= 0 {
			loc[i] = v + base
		}
	}
	return loc
}
