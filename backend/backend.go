// Package backend adapts regular expression engines to a common Matcher
// interface so a deferred Regex can compile with any of them.
//
// Two engines are provided:
//   - coregex (default): github.com/coregx/coregex, multi-engine with
//     SIMD prefilters on x86-64
//   - stdlib: Go's regexp package, Perl or POSIX flavour
//
// Both parse patterns with regexp/syntax, so invalid patterns fail with the
// same *syntax.Error regardless of the engine chosen.
//
// Basic usage:
//
//	m, err := backend.Coregex(`\d+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.FindString("age 42")) // "42"
package backend

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/coregx/coregex"
	"github.com/coregx/coregex/meta"
)

// Matcher is the method set shared by compiled expressions of every engine.
//
// Method semantics are those of the engine that produced the Matcher; this
// package does not interpret results.
type Matcher interface {
	Match(b []byte) bool
	MatchString(s string) bool

	Find(b []byte) []byte
	FindString(s string) string
	FindIndex(b []byte) []int
	FindStringIndex(s string) []int
	FindSubmatch(b []byte) [][]byte
	FindStringSubmatch(s string) []string
	FindSubmatchIndex(b []byte) []int
	FindStringSubmatchIndex(s string) []int

	FindAll(b []byte, n int) [][]byte
	FindAllString(s string, n int) []string
	FindAllIndex(b []byte, n int) [][]int
	FindAllStringIndex(s string, n int) [][]int
	FindAllSubmatch(b []byte, n int) [][][]byte
	FindAllStringSubmatch(s string, n int) [][]string
	FindAllSubmatchIndex(b []byte, n int) [][]int
	FindAllStringSubmatchIndex(s string, n int) [][]int

	ReplaceAll(src, repl []byte) []byte
	ReplaceAllString(src, repl string) string
	ReplaceAllLiteral(src, repl []byte) []byte
	ReplaceAllLiteralString(src, repl string) string
	ReplaceAllFunc(src []byte, repl func([]byte) []byte) []byte
	ReplaceAllStringFunc(src string, repl func(string) string) string

	Expand(dst []byte, template []byte, src []byte, match []int) []byte
	ExpandString(dst []byte, template string, src string, match []int) []byte

	Split(s string, n int) []string
	Count(b []byte, n int) int
	CountString(s string, n int) int

	NumSubexp() int
	SubexpNames() []string
	String() string
}

// Compiler turns a pattern into a Matcher.
//
// A Compiler must return the engine's syntax error unchanged for invalid
// patterns and must be safe to call repeatedly with the same pattern.
type Compiler func(pattern string) (Matcher, error)

// ErrUnknownBackend is returned by Lookup for unrecognized backend names.
var ErrUnknownBackend = errors.New("unknown regex backend")

// Backend names accepted by Lookup.
const (
	NameCoregex = "coregex"
	NameStdlib  = "stdlib"
	NamePOSIX   = "posix"
	NameAuto    = "auto"
)

// Coregex compiles pattern with coregex using its default configuration.
func Coregex(pattern string) (Matcher, error) {
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return coregexMatcher{re}, nil
}

// CoregexWithConfig returns a Compiler that compiles with coregex using
// config. The configuration is validated by coregex at compile time, so an
// invalid config surfaces on first use like a syntax error does.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnableDFA = false
//	re := lazyregex.NewWithCompiler(`\w+`, backend.CoregexWithConfig(config))
func CoregexWithConfig(config meta.Config) Compiler {
	return func(pattern string) (Matcher, error) {
		re, err := coregex.CompileWithConfig(pattern, config)
		if err != nil {
			return nil, err
		}
		return coregexMatcher{re}, nil
	}
}

// Stdlib compiles pattern with regexp.Compile.
func Stdlib(pattern string) (Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return stdlibMatcher{re}, nil
}

// StdlibPOSIX compiles pattern with regexp.CompilePOSIX, which restricts the
// syntax to POSIX ERE and uses leftmost-longest matching.
func StdlibPOSIX(pattern string) (Matcher, error) {
	re, err := regexp.CompilePOSIX(pattern)
	if err != nil {
		return nil, err
	}
	return stdlibMatcher{re}, nil
}

// Lookup returns the Compiler registered under name.
// The empty name selects the default engine, coregex.
func Lookup(name string) (Compiler, error) {
	switch name {
	case "", NameCoregex:
		return Coregex, nil
	case NameStdlib:
		return Stdlib, nil
	case NamePOSIX:
		return StdlibPOSIX, nil
	case NameAuto:
		return Auto(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// AsCoregex returns the *coregex.Regex behind m, if m came from coregex.
func AsCoregex(m Matcher) (*coregex.Regex, bool) {
	c, ok := m.(coregexMatcher)
	if !ok {
		return nil, false
	}
	return c.Regex, true
}

// AsStdlib returns the *regexp.Regexp behind m, if m came from the
// standard library.
func AsStdlib(m Matcher) (*regexp.Regexp, bool) {
	s, ok := m.(stdlibMatcher)
	if !ok {
		return nil, false
	}
	return s.Regexp, true
}

var (
	_ Matcher = coregexMatcher{}
	_ Matcher = stdlibMatcher{}
)
