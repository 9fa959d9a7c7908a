package capglob

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
)

// NormMode selects how paths and patterns are normalized before matching.
type NormMode int

const (
	// NormSeparators rewrites slashes and backslashes to the configured
	// separator, and nothing else. The default.
	NormSeparators NormMode = iota

	// NormCase applies full platform case-normalization. On Windows this
	// lowercases paths (so every match comes back lowercased) as well as
	// fixing separators; elsewhere it is the identity.
	NormCase

	// NormNone leaves paths exactly as given.
	NormNone
)

func (m NormMode) String() string {
	switch m {
	case NormSeparators:
		return "NormSeparators"
	case NormCase:
		return "NormCase"
	case NormNone:
		return "NormNone"
	}
	return fmt.Sprintf("NormMode(%d)", int(m))
}

type config struct {
	withMatches      bool
	includeHidden    bool
	traverseSymlinks bool
	caseSensitive    bool
	norm             NormMode
	sep              rune
	fsys             FileSystem
	cache            *MatcherCache
	cacheSize        int
	traceLogger      io.Writer
}

func defaultConfig() config {
	return config{
		caseSensitive: runtime.GOOS != "windows",
		norm:          NormSeparators,
		sep:           filepath.Separator,
		fsys:          osFS{},
		cache:         defaultCache,
	}
}

// validate fails fast on nonsense configuration, before any I/O happens.
func (cfg *config) validate() error {
	switch cfg.sep {
	case 0:
		return fmt.Errorf("separator cannot be NUL")
	case '*', '?', '[':
		return fmt.Errorf("separator %q is a wildcard character", cfg.sep)
	}
	if cfg.norm < NormSeparators || cfg.norm > NormNone {
		return fmt.Errorf("unknown normalization mode %v", cfg.norm)
	}
	if cfg.fsys == nil {
		return fmt.Errorf("nil FileSystem")
	}
	if cfg.cache == nil {
		return fmt.Errorf("nil MatcherCache")
	}
	if cfg.cacheSize < 0 {
		return fmt.Errorf("matcher cache size %d is not positive", cfg.cacheSize)
	}
	if cfg.cacheSize > 0 && cfg.cache != defaultCache {
		return fmt.Errorf("WithCacheSize and WithMatcherCache are mutually exclusive")
	}
	return nil
}

// Option functions optionally alter how a Globber operates.
type Option = func(*config)

// WithMatches enables returning capture groups alongside each matched path:
// the text each individual wildcard matched, in order, directory parts first.
// Disabled by default.
func WithMatches(enable bool) Option {
	return func(cfg *config) {
		cfg.withMatches = enable
	}
}

// IncludeHidden makes * and ? match names starting with a dot. Disabled by
// default; a pattern segment that itself starts with a dot always matches
// hidden names.
func IncludeHidden(enable bool) Option {
	return func(cfg *config) {
		cfg.includeHidden = enable
	}
}

// TraverseSymlinks enables following symlinked directories during **
// expansion. Disabled by default.
func TraverseSymlinks(enable bool) Option {
	return func(cfg *config) {
		cfg.traverseSymlinks = enable
	}
}

// CaseSensitive sets whether matching distinguishes case. The default is
// true everywhere except Windows.
func CaseSensitive(enable bool) Option {
	return func(cfg *config) {
		cfg.caseSensitive = enable
	}
}

// WithSeparator overrides the path separator used when joining and
// normalizing result paths. The default is filepath.Separator. Setting '/'
// keeps results slash-separated on every platform.
func WithSeparator(sep rune) Option {
	return func(cfg *config) {
		cfg.sep = sep
	}
}

// WithNormMode sets how paths are normalized before matching. The default is
// NormSeparators.
func WithNormMode(m NormMode) Option {
	return func(cfg *config) {
		cfg.norm = m
	}
}

// WithFileSystem overrides the filesystem the Globber resolves against. The
// default uses the os package.
func WithFileSystem(fsys FileSystem) Option {
	return func(cfg *config) {
		cfg.fsys = fsys
	}
}

// WithMatcherCache supplies a private compiled-matcher cache instead of the
// process-wide one.
func WithMatcherCache(mc *MatcherCache) Option {
	return func(cfg *config) {
		cfg.cache = mc
	}
}

// WithCacheSize gives the Globber its own matcher cache with the given
// capacity instead of the process-wide one.
func WithCacheSize(size int) Option {
	return func(cfg *config) {
		cfg.cacheSize = size
	}
}

// WithTraceLogs logs debugging information about the resolution to the
// provided writer. Disabled by default.
func WithTraceLogs(out io.Writer) Option {
	return func(cfg *config) {
		cfg.traceLogger = out
	}
}
