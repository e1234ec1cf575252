// Package lazyregex provides regular expressions that compile on first use.
//
// Declaring patterns as package-level variables with regexp.MustCompile pays
// the compile cost at start-up for every pattern, including the ones a given
// run never touches. A lazyregex.Regex stores only the pattern text until a
// matching method is called, compiles then, and reuses the compiled matcher
// for every later call.
//
// Basic usage:
//
//	var dateRe = lazyregex.New(`(\d{4})-(\d{2})-(\d{2})`)
//
//	func parse(s string) ([]string, error) {
//	    return dateRe.FindStringSubmatch(s) // compiles on the first call
//	}
//
// Every matching method forwards its arguments to the compiled matcher and
// returns the matcher's result unchanged, plus an error that is non-nil only
// when the pattern fails to compile. Construction never fails: an invalid
// pattern is reported by the first method call, and by every call after it,
// since a failed compilation is not remembered and is simply attempted again.
//
// Engines:
//   - coregex (default): github.com/coregx/coregex
//   - Go's regexp package, via NewWithCompiler and backend.Stdlib
//
// A Regex is safe for concurrent use. Concurrent first calls block until one
// of them has compiled the pattern; the pattern is compiled once.
package lazyregex

import (
	"github.com/coregx/coregex/meta"
	"github.com/coregx/lazyregex/backend"
	"github.com/coregx/lazyregex/internal/cell"
)

// Regex is a regular expression compiled on first use.
//
// The zero Regex holds the empty pattern and compiles with coregex.
// A Regex must not be copied after first use.
//
// Example:
//
//	re := lazyregex.New(`a+`)
//	re.Compiled()                     // false
//	words, _ := re.FindAllString("aaabaa", -1)
//	// words = ["aaa", "aa"]
//	re.Compiled()                     // true
type Regex struct {
	pattern  string
	compiler backend.Compiler
	matcher  cell.Cell[backend.Matcher]
}

// Stats reports compilation activity of a Regex.
type Stats struct {
	// Compiles counts calls made to the compiler, successful or not.
	Compiles uint64

	// CompileErrors counts compiler calls that returned an error.
	CompileErrors uint64
}

// New returns a Regex for pattern that will compile with coregex on first
// use. The pattern is not checked.
func New(pattern string) *Regex {
	return &Regex{pattern: pattern}
}

// NewWithCompiler returns a Regex for pattern that will compile with
// compile on first use. A nil compile selects backend.Coregex.
//
// Example:
//
//	re := lazyregex.NewWithCompiler(`[[:alpha:]]+`, backend.StdlibPOSIX)
func NewWithCompiler(pattern string, compile backend.Compiler) *Regex {
	return &Regex{pattern: pattern, compiler: compile}
}

// NewWithConfig returns a Regex for pattern that will compile with coregex
// using config on first use. The config is validated together with the
// pattern, at first use.
func NewWithConfig(pattern string, config meta.Config) *Regex {
	return NewWithCompiler(pattern, backend.CoregexWithConfig(config))
}

// compiled returns the compiled matcher, compiling the pattern first if no
// earlier call has succeeded.
func (r *Regex) compiled() (backend.Matcher, error) {
	return r.matcher.Get(r.compile)
}

func (r *Regex) compile() (backend.Matcher, error) {
	compile := r.compiler
	if compile == nil {
		compile = backend.Coregex
	}
	return compile(r.pattern)
}

// String returns the pattern text. It does not compile.
func (r *Regex) String() string {
	return r.pattern
}

// Pattern returns the pattern text. It does not compile.
func (r *Regex) Pattern() string {
	return r.pattern
}

// Compiled reports whether the pattern has been compiled successfully.
// It never triggers compilation.
func (r *Regex) Compiled() bool {
	return r.matcher.Filled()
}

// Stats returns the compilation counters of r.
func (r *Regex) Stats() Stats {
	return Stats{
		Compiles:      r.matcher.Attempts(),
		CompileErrors: r.matcher.Failures(),
	}
}

// Copy compiles the pattern if needed and returns the compiled matcher.
//
// Compiled matchers are immutable and safe for concurrent use, so the
// engine's duplicate of a matcher is the matcher itself. The returned
// Matcher does not defer anything; it is the handle r forwards to.
func (r *Regex) Copy() (backend.Matcher, error) {
	return r.compiled()
}

// NumSubexp returns the number of parenthesized subexpressions as reported
// by the engine.
func (r *Regex) NumSubexp() (int, error) {
	m, err := r.compiled()
	if err != nil {
		return 0, err
	}
	return m.NumSubexp(), nil
}

// SubexpNames returns the names of the parenthesized subexpressions.
// The slice is owned by the engine and must not be modified.
func (r *Regex) SubexpNames() ([]string, error) {
	m, err := r.compiled()
	if err != nil {
		return nil, err
	}
	return m.SubexpNames(), nil
}
