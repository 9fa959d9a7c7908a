package capglob

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilterStar(t *testing.T) {
	g := newTestGlobber(t, WithSeparator('/'))
	names := []string{"fooABC", "barABC", "foo"}

	got := g.Filter(names, "foo*")
	want := []Match{
		{Path: "fooABC", Groups: []string{"ABC"}},
		{Path: "foo", Groups: []string{""}},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Filter(%v, \"foo*\") diff (-got +want):\n%s", names, diff)
	}

	got = g.Filter(names, "*AB*")
	want = []Match{
		{Path: "fooABC", Groups: []string{"foo", "C"}},
		{Path: "barABC", Groups: []string{"bar", "C"}},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Filter(%v, \"*AB*\") diff (-got +want):\n%s", names, diff)
	}
}

func TestFilterQuestion(t *testing.T) {
	g := newTestGlobber(t, WithSeparator('/'))
	names := []string{"fooA", "barA", "foo"}

	got := g.Filter(names, "foo?")
	want := []Match{
		{Path: "fooA", Groups: []string{"A"}},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Filter(%v, \"foo?\") diff (-got +want):\n%s", names, diff)
	}

	got = g.Filter(names, "???A")
	want = []Match{
		{Path: "fooA", Groups: []string{"f", "o", "o"}},
		{Path: "barA", Groups: []string{"b", "a", "r"}},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Filter(%v, \"???A\") diff (-got +want):\n%s", names, diff)
	}
}

func TestFilterSequence(t *testing.T) {
	g := newTestGlobber(t, WithSeparator('/'))
	names := []string{"fooA", "fooB", "fooC", "foo"}

	got := g.Filter(names, "foo[AB]")
	want := []Match{
		{Path: "fooA", Groups: []string{"A"}},
		{Path: "fooB", Groups: []string{"B"}},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Filter(%v, \"foo[AB]\") diff (-got +want):\n%s", names, diff)
	}

	got = g.Filter(names, "foo[!AB]")
	want = []Match{
		{Path: "fooC", Groups: []string{"C"}},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Filter(%v, \"foo[!AB]\") diff (-got +want):\n%s", names, diff)
	}
}

func TestFilterLiteralPattern(t *testing.T) {
	g := newTestGlobber(t, WithSeparator('/'))
	got := g.Filter([]string{"foo", "bar"}, "foo")
	want := []Match{{Path: "foo"}}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Filter with literal pattern diff (-got +want):\n%s", diff)
	}
}

func TestMatchCaseSensitivity(t *testing.T) {
	g := newTestGlobber(t, CaseSensitive(true))
	if g.Match("FOO.py", "*.py") {
		t.Errorf("case-sensitive Match(%q, %q) = true, want false", "FOO.py", "*.py")
	}

	g = newTestGlobber(t, CaseSensitive(false))
	if !g.Match("FOO.PY", "*.py") {
		t.Errorf("case-insensitive Match(%q, %q) = false, want true", "FOO.PY", "*.py")
	}
}

func TestMatchNormalizesSeparators(t *testing.T) {
	g := newTestGlobber(t, WithSeparator('/'))
	if !g.Match(`a\b`, "a/b") {
		t.Errorf(`Match(a\b, a/b) = false, want true under separator normalization`)
	}
	if g.MatchCase(`a\b`, "a/b") {
		t.Errorf(`MatchCase(a\b, a/b) = true, want false (no normalization)`)
	}
}
