// Package capglob matches file paths against shell-style glob patterns,
// including the recursive wildcard **, and reports the text each wildcard
// matched.
//
// Patterns support * (any run of characters within a segment), ? (any single
// character), [seq] and [!seq] character classes, and a ** segment matching
// this directory and everything below it. There is no brace or tilde
// expansion and no way to escape a meta-character; an unclosed [ is simply a
// literal.
//
// A ** at the start of the pattern includes the starting directory itself,
// so "**/*.py" finds files directly in the current directory as well as in
// subdirectories. To search subdirectories only, push the first level onto a
// separate wildcard: "*/**/*.py". A pattern ending in a separator matches
// directories only.
//
// Example:
//
//	matches, err := capglob.GlobMatches("src/**/*_test.go")
//	// matches[0].Path   e.g. "src/parser/parse_test.go"
//	// matches[0].Groups e.g. ["parser", "parse"]
package capglob

import "iter"

// Match is one resolved path. Groups holds the text each wildcard in the
// pattern matched, in order, directory parts before the basename; it is nil
// unless capture reporting is on (see WithMatches - Filter and GlobMatches
// always report).
type Match struct {
	Path   string
	Groups []string
}

// Glob returns all paths matching the pattern. Zero matches is not an error;
// the only errors are configuration errors.
func Glob(pattern string, opts ...Option) ([]string, error) {
	g, err := New(opts...)
	if err != nil {
		return nil, err
	}
	var paths []string
	for m := range g.IterGlob(pattern) {
		paths = append(paths, m.Path)
	}
	return paths, nil
}

// GlobMatches is Glob with capture reporting: each matching path is paired
// with the text its wildcards matched.
func GlobMatches(pattern string, opts ...Option) ([]Match, error) {
	g, err := New(append(append([]Option{}, opts...), WithMatches(true))...)
	if err != nil {
		return nil, err
	}
	return g.Glob(pattern), nil
}

// IterGlob returns a lazy sequence of the paths matching the pattern; see
// Globber.IterGlob.
func IterGlob(pattern string, opts ...Option) (iter.Seq[Match], error) {
	g, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return g.IterGlob(pattern), nil
}
