package lazyregex

import "github.com/coregx/lazyregex/backend"

// ReplaceAll returns a copy of src with every match replaced by repl.
// $ sequences in repl are expanded by the engine.
func (r *Regex) ReplaceAll(src, repl []byte) ([]byte, error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	return m.ReplaceAll(src, repl), nil
}

// ReplaceAllString returns a copy of src with every match replaced by repl.
// $ sequences in repl are expanded by the engine.
func (r *Regex) ReplaceAllString(src, repl string) (string, error) {
	m, err := r.compiled()
	if err != nil {
		return "", err
	}
	return m.ReplaceAllString(src, repl), nil
}

// ReplaceAllLiteral returns a copy of src with every match replaced by repl,
// without expansion.
func (r *Regex) ReplaceAllLiteral(src, repl []byte) ([]byte, error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	return m.ReplaceAllLiteral(src, repl), nil
}

// ReplaceAllLiteralString returns a copy of src with every match replaced
// by repl, without expansion.
func (r *Regex) ReplaceAllLiteralString(src, repl string) (string, error) {
	m, err := r.compiled()
	if err != nil {
		return "", err
	}
	return m.ReplaceAllLiteralString(src, repl), nil
}

// ReplaceAllFunc returns a copy of src with every match replaced by the
// result of repl applied to it.
func (r *Regex) ReplaceAllFunc(src []byte, repl func([]byte) []byte) ([]byte, error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	return m.ReplaceAllFunc(src, repl), nil
}

// ReplaceAllStringFunc returns a copy of src with every match replaced by
// the result of repl applied to it.
func (r *Regex) ReplaceAllStringFunc(src string, repl func(string) string) (string, error) {
	m, err := r.compiled()
	if err != nil {
		return "", err
	}
	return m.ReplaceAllStringFunc(src, repl), nil
}

// Expand appends template to dst, expanding $ sequences with the submatches
// of src described by match, as the engine does in ReplaceAll.
func (r *Regex) Expand(dst []byte, template []byte, src []byte, match []int) ([]byte, error) {
	m, err := r.compiled()
	if err != nil {
		return dst, err
	}
	return m.Expand(dst, template, src, match), nil
}

// ExpandString is like Expand but the template and source are strings.
func (r *Regex) ExpandString(dst []byte, template string, src string, match []int) ([]byte, error) {
	m, err := r.compiled()
	if err != nil {
		return dst, err
	}
	return m.ExpandString(dst, template, src, match), nil
}

// ReplaceStringN returns a copy of src with the first n matches replaced by
// repl. If n <= 0, every match is replaced.
func (r *Regex) ReplaceStringN(src, repl string, n int) (string, error) {
	out, _, err := r.ReplaceStringCount(src, repl, n)
	return out, err
}

// ReplaceStringCount is like ReplaceStringN and also returns the number of
// replacements made.
//
// Example:
//
//	re := lazyregex.New(`\d+`)
//	out, count, _ := re.ReplaceStringCount("1 22 333", "#", 2)
//	// out = "# # 333", count = 2
func (r *Regex) ReplaceStringCount(src, repl string, n int) (string, int, error) {
	m, err := r.compiled()
	if err != nil {
		return "", 0, err
	}
	total := m.CountString(src, -1)
	if n <= 0 || n >= total {
		return m.ReplaceAllString(src, repl), total, nil
	}
	out, count := replaceFirst(m, src, repl, n)
	return out, count, nil
}

// replaceFirst replaces the first n matches of m in src, expanding repl for
// each with the engine's own rules. The matches are the ones ReplaceAll
// would replace.
func replaceFirst(m backend.Matcher, src, repl string, n int) (string, int) {
	locs := stringMatches(m, src)(n)
	if len(locs) == 0 {
		return src, 0
	}

	dst := make([]byte, 0, len(src))
	last := 0
	for _, loc := range locs {
		dst = append(dst, src[last:loc[0]]...)
		dst = m.ExpandString(dst, repl, src, loc)
		last = loc[1]
	}
	dst = append(dst, src[last:]...)
	return string(dst), len(locs)
}
