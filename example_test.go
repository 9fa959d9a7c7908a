package capglob_test

import (
	"fmt"

	"github.com/capglob/capglob"
)

func ExampleGlobber_Filter() {
	g, err := capglob.New(capglob.WithSeparator('/'))
	if err != nil {
		panic(err)
	}
	names := []string{"main.go", "main_test.go", "README"}
	for _, m := range g.Filter(names, "*.go") {
		fmt.Println(m.Path, m.Groups)
	}
	// Output:
	// main.go [main]
	// main_test.go [main_test]
}

func ExampleGlobber_Match() {
	g, err := capglob.New(capglob.CaseSensitive(false))
	if err != nil {
		panic(err)
	}
	fmt.Println(g.Match("NOTES.md", "*.md"))
	fmt.Println(g.Match("notes.txt", "*.md"))
	// Output:
	// true
	// false
}
