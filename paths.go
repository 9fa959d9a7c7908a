package capglob

import (
	"runtime"
	"strings"
)

var onWindows = runtime.GOOS == "windows"

// normCase applies full platform case-normalization: the identity everywhere
// except Windows, where paths are lowercased and slashes become backslashes.
func normCase(p string) string {
	if !onWindows {
		return p
	}
	return strings.ToLower(replaceSeps(p, '\\'))
}

// isSep reports whether r separates path segments. Forward slash always
// does; sep is the configured platform separator.
func isSep(r rune, sep rune) bool {
	return r == '/' || r == '\\' || r == sep
}

// replaceSeps rewrites every slash and backslash in p to sep.
func replaceSeps(p string, sep rune) string {
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return sep
		}
		return r
	}, p)
}

// splitPath splits p at its final separator into (head, tail). Trailing
// separators are stripped from head, unless head is nothing but separators
// (the filesystem root). A p with no separator splits into ("", p).
func splitPath(p string, sep rune) (head, tail string) {
	i := strings.LastIndexAny(p, "/"+string(sep))
	if i < 0 {
		return "", p
	}
	head, tail = p[:i+1], p[i+1:]
	if t := strings.TrimRightFunc(head, func(r rune) bool { return isSep(r, sep) }); t != "" {
		head = t
	}
	return head, tail
}

// joinPath joins dir and name with sep, rewriting any existing slashes to
// sep. Unlike filepath.Join it does not clean the result: joining a name of
// "" keeps the trailing separator, which is how a directory-only match is
// spelled.
func joinPath(dir, name string, sep rune) string {
	var p string
	switch {
	case dir == "":
		p = name
	case hasTrailingSep(dir, sep):
		p = dir + name
	case name == "":
		p = dir + string(sep)
	default:
		p = dir + string(sep) + name
	}
	return replaceSeps(p, sep)
}

func hasTrailingSep(p string, sep rune) bool {
	if p == "" {
		return false
	}
	rs := []rune(p)
	return isSep(rs[len(rs)-1], sep)
}

// isHidden reports whether the name starts with a dot.
func isHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
