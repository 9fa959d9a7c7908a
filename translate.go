package capglob

import (
	"regexp"
	"strings"
)

// hasMagic reports whether s contains any glob wildcard character.
func hasMagic(s string) bool {
	return strings.ContainsAny(s, "*?[")
}

// translate converts one shell glob segment (no path separators) into a
// regexp source fragment. Each wildcard becomes a capture group, so a match
// reports the literal text each wildcard consumed:
//
//	*      (.*)
//	?      (.)
//	[seq]  ([seq])
//	[!seq] ([^seq])
//
// There is no way to quote meta-characters. An unclosed [ is not an error -
// it matches itself as a literal, without a capture group.
func translate(pat string) string {
	var b strings.Builder
	rs := []rune(pat)
	i, n := 0, len(rs)
	for i < n {
		c := rs[i]
		i++
		switch c {
		case '*':
			b.WriteString("(.*)")

		case '?':
			b.WriteString("(.)")

		case '[':
			// Scan for the closing bracket. A leading ! negates, and a ]
			// right after the (possibly negated) opening is a literal.
			j := i
			if j < n && rs[j] == '!' {
				j++
			}
			if j < n && rs[j] == ']' {
				j++
			}
			for j < n && rs[j] != ']' {
				j++
			}
			if j >= n {
				b.WriteString(`\[`)
				break
			}
			stuff := strings.ReplaceAll(string(rs[i:j]), `\`, `\\`)
			i = j + 1
			switch stuff[0] {
			case '!':
				stuff = "^" + stuff[1:]
			case '^':
				stuff = `\` + stuff
			}
			// RE2, unlike POSIX classes, rejects a bare ] even in the
			// leading position.
			if rest, ok := strings.CutPrefix(stuff, "]"); ok {
				stuff = `\]` + rest
			} else if rest, ok := strings.CutPrefix(stuff, "^]"); ok {
				stuff = `^\]` + rest
			}
			b.WriteString("([" + stuff + "])")

		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	return b.String()
}

// matcher tests one name against one compiled segment pattern.
// Segments without wildcards skip regexp entirely and compare for equality,
// yielding no capture groups.
type matcher struct {
	re   *regexp.Regexp // nil for literal segments
	lit  string
	fold bool // case-insensitive literal comparison
}

// newMatcher compiles a segment pattern. It never fails: a class body that
// the regexp engine rejects (such as a reversed range) degrades to literal
// comparison, like an unclosed class does.
func newMatcher(pat string, caseSensitive bool) *matcher {
	if !hasMagic(pat) {
		return &matcher{lit: pat, fold: !caseSensitive}
	}
	flags := "(?s)"
	if !caseSensitive {
		flags = "(?is)"
	}
	re, err := regexp.Compile(flags + `\A` + translate(pat) + `\z`)
	if err != nil {
		return &matcher{lit: pat, fold: !caseSensitive}
	}
	return &matcher{re: re}
}

// match reports whether name matches the whole segment, and the text each
// wildcard consumed, in source order.
func (m *matcher) match(name string) ([]string, bool) {
	if m.re == nil {
		if m.fold {
			return nil, strings.EqualFold(name, m.lit)
		}
		return nil, name == m.lit
	}
	sm := m.re.FindStringSubmatch(name)
	if sm == nil {
		return nil, false
	}
	return sm[1:], true
}
