package capglob

import (
	"fmt"
	"iter"
	"strings"
)

// Globber resolves glob patterns against a filesystem. The zero value is not
// usable; construct with New. A Globber is immutable after construction, so
// it may be reused and shared freely (subject to the matcher cache note on
// MatcherCache).
type Globber struct {
	cfg config
}

// New creates a Globber, validating the configuration before any I/O.
func New(opts ...Option) (*Globber, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid glob configuration: %w", err)
	}
	if cfg.cacheSize > 0 {
		mc, err := NewMatcherCache(cfg.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("invalid glob configuration: %w", err)
		}
		cfg.cache = mc
	}
	return &Globber{cfg: cfg}, nil
}

// Glob returns every path matching the pattern. Groups are populated only
// when WithMatches is enabled. A pattern that matches nothing returns nil -
// that is not an error.
func (g *Globber) Glob(pattern string) []Match {
	var out []Match
	for m := range g.IterGlob(pattern) {
		out = append(out, m)
	}
	return out
}

// IterGlob returns a lazy sequence of the paths matching the pattern.
// Directory listing happens as the sequence is consumed, so breaking early
// stops the walk; result order follows filesystem enumeration order, with **
// expanding depth-first, a directory before its contents. Each range over the
// sequence resolves afresh against the current filesystem state.
func (g *Globber) IterGlob(pattern string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		g.iglob(pattern, true, func(path string, groups []string) bool {
			m := Match{Path: path}
			if g.cfg.withMatches {
				m.Groups = groups
			}
			return yield(m)
		})
	}
}

// Filter returns the subset of names matching the segment pattern, each with
// the text its wildcards matched. The pattern must not contain separators;
// names are matched in full.
func (g *Globber) Filter(names []string, pattern string) []Match {
	m := g.compile(g.normPath(pattern))
	var out []Match
	for _, name := range names {
		if groups, ok := m.match(g.normPath(name)); ok {
			out = append(out, Match{Path: name, Groups: groups})
		}
	}
	return out
}

// Match reports whether the name matches the segment pattern, after both are
// normalized per the configured NormMode.
func (g *Globber) Match(name, pattern string) bool {
	return g.MatchCase(g.normPath(name), g.normPath(pattern))
}

// MatchCase is Match without normalization: name and pattern are compared
// verbatim (still subject to the CaseSensitive option).
func (g *Globber) MatchCase(name, pattern string) bool {
	_, ok := g.compile(pattern).match(name)
	return ok
}

func (g *Globber) compile(pat string) *matcher {
	return g.cfg.cache.compile(pat, g.cfg.caseSensitive)
}

func (g *Globber) normPath(p string) string {
	switch g.cfg.norm {
	case NormCase:
		return normCase(p)
	case NormNone:
		return p
	}
	return replaceSeps(p, g.cfg.sep)
}

func (g *Globber) logf(f string, v ...any) {
	if g.cfg.traceLogger == nil {
		return
	}
	fmt.Fprintf(g.cfg.traceLogger, f, v...)
}

// iglob is the recursive resolver. rootCall distinguishes the caller's
// original pattern from recursive resolution of a directory prefix: ** is
// supposed to stand in for the current directory while never itself being
// returned as a match, so a trailing ** (seen by the root call) must skip the
// directory itself, while a ** being resolved as a prefix (a recursed call)
// must offer it as a candidate. yield reports whether to continue; iglob
// passes that through so an abandoned iteration stops all listing.
func (g *Globber) iglob(pathname string, rootCall bool, yield func(string, []string) bool) bool {
	// No wildcards anywhere: only an existence check.
	if !hasMagic(pathname) {
		if g.cfg.fsys.Exists(pathname) {
			return yield(pathname, nil)
		}
		return true
	}

	dirname, basename := splitPath(pathname, g.cfg.sep)

	emit := func(dir string, dirGroups []string) bool {
		return g.resolvePattern(dir, basename, !rootCall, func(name string, groups []string) bool {
			return yield(joinPath(dir, name, g.cfg.sep), concatGroups(dirGroups, groups))
		})
	}

	// A magic directory prefix is resolved recursively; each hit becomes a
	// candidate directory for the basename. The dirname != pathname guard
	// stops recursion on path roots that split into themselves.
	if dirname != pathname && hasMagic(dirname) {
		return g.iglob(dirname, false, emit)
	}
	return emit(dirname, nil)
}

// resolvePattern applies a single-segment pattern to the literal directory
// dirname, yielding (name, groups) pairs. An empty pattern filters for
// directories - the trailing-slash case. globstarWithRoot controls whether a
// ** pattern offers dirname itself (as the empty name) as a candidate.
func (g *Globber) resolvePattern(dirname, pattern string, globstarWithRoot bool, yield func(string, []string) bool) bool {
	// No wildcards: only existence checks, no listing.
	if !hasMagic(pattern) {
		if pattern == "" {
			if g.cfg.fsys.IsDir(dirname) {
				return yield("", nil)
			}
			return true
		}
		if g.cfg.fsys.Exists(joinPath(dirname, pattern, g.cfg.sep)) {
			return yield(pattern, nil)
		}
		return true
	}

	listDir := dirname
	if listDir == "" {
		listDir = "."
	}

	if pattern == "**" {
		// ** means this directory and everything under it. Candidates are
		// matched against a plain * so that the whole relative name lands in
		// a single capture group; ** itself means nothing to the translator.
		m := g.compile("*")
		match := func(name string) bool {
			groups, ok := m.match(g.normPath(name))
			if !ok {
				return true
			}
			return yield(name, groups)
		}
		if globstarWithRoot {
			// The directory itself, as the empty name rather than ".", which
			// saves the caller from cleaning the joined path.
			if !match("") {
				return false
			}
		}
		return g.walk(listDir, func(top string, entries []string) bool {
			rel := strings.TrimPrefix(top, listDir)
			rel = strings.TrimPrefix(rel, string(g.cfg.sep))
			for _, entry := range entries {
				name := joinPath(rel, entry, g.cfg.sep)
				if !g.cfg.includeHidden && isHidden(name) {
					continue
				}
				if !match(name) {
					return false
				}
			}
			return true
		})
	}

	names, err := g.cfg.fsys.ListDir(listDir)
	if err != nil {
		// Can't read it, so it contributes nothing.
		g.logf("skipping unreadable directory %q: %v\n", listDir, err)
		return true
	}
	m := g.compile(g.normPath(pattern))
	includeHidden := g.cfg.includeHidden || isHidden(pattern)
	for _, name := range names {
		if !includeHidden && isHidden(name) {
			continue
		}
		if groups, ok := m.match(g.normPath(name)); ok {
			if !yield(name, groups) {
				return false
			}
		}
	}
	return true
}

// walk yields top and each readable descendant directory with its entries,
// depth-first, a directory before its children. Whether an entry is a file
// or a directory doesn't matter here: listing a file fails and contributes
// nothing, same as an unreadable directory.
func (g *Globber) walk(top string, yield func(string, []string) bool) bool {
	entries, err := g.cfg.fsys.ListDir(top)
	if err != nil {
		g.logf("skipping unreadable directory %q: %v\n", top, err)
		return true
	}
	if !yield(top, entries) {
		return false
	}
	for _, entry := range entries {
		p := joinPath(top, entry, g.cfg.sep)
		if !g.cfg.traverseSymlinks && g.cfg.fsys.IsLink(p) {
			continue
		}
		if !g.walk(p, yield) {
			return false
		}
	}
	return true
}

func concatGroups(a, b []string) []string {
	if len(a)+len(b) == 0 {
		return nil
	}
	out := make([]string, 0, len(a)+len(b))
	return append(append(out, a...), b...)
}
