package capglob

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGlob(t *testing.T) {
	recursiveTree(t)

	got, err := Glob("**/bar.py", WithSeparator('/'))
	if err != nil {
		t.Fatalf("Glob(**/bar.py) error = %v", err)
	}
	slices.Sort(got)
	want := []string{"a/bar.py", "b/bar.py"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Glob(**/bar.py) diff (-got +want):\n%s", diff)
	}
}

func TestGlobMatches(t *testing.T) {
	recursiveTree(t)

	got, err := GlobMatches("**/bar.py", WithSeparator('/'))
	if err != nil {
		t.Fatalf("GlobMatches(**/bar.py) error = %v", err)
	}
	want := []Match{
		{Path: "a/bar.py", Groups: []string{"a"}},
		{Path: "b/bar.py", Groups: []string{"b"}},
	}
	if diff := cmp.Diff(sortedMatches(got), want); diff != "" {
		t.Errorf("GlobMatches(**/bar.py) diff (-got +want):\n%s", diff)
	}
}

func TestIterGlob(t *testing.T) {
	recursiveTree(t)

	seq, err := IterGlob("b/*", WithSeparator('/'))
	if err != nil {
		t.Fatalf("IterGlob(b/*) error = %v", err)
	}
	var got []string
	for m := range seq {
		got = append(got, m.Path)
	}
	slices.Sort(got)
	want := []string{"b/bar.py", "b/py"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("IterGlob(b/*) diff (-got +want):\n%s", diff)
	}
}

func TestGlobConfigErrors(t *testing.T) {
	if _, err := Glob("*", WithFileSystem(nil)); err == nil {
		t.Errorf("Glob with nil FileSystem: error = nil, want error")
	}
	if _, err := IterGlob("*", WithSeparator('?')); err == nil {
		t.Errorf("IterGlob with wildcard separator: error = nil, want error")
	}
}
