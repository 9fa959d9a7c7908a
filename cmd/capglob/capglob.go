// The capglob command searches for files with paths matching glob patterns.
//
// Example:
//
//	$ capglob '**/*_test.go'
//	cache_test.go
//	capglob_test.go
//	filter_test.go
//	globber_test.go
//	translate_test.go
package main

import (
	"fmt"
	"os"

	"github.com/capglob/capglob"
	"github.com/spf13/cobra"
)

var (
	flagHidden     bool
	flagSymlinks   bool
	flagIgnoreCase bool
	flagMatches    bool
	flagSep        string
)

var rootCmd = &cobra.Command{
	Use:   "capglob <pattern> [pattern ...]",
	Short: "Search for files matching glob patterns",
	Long: `Search for files with paths matching shell-style glob patterns, including
the recursive wildcard **. Results stream as the filesystem is walked.

Examples:
  # Every Go test file, here and below
  capglob '**/*_test.go'

  # What did each wildcard match?
  capglob --matches 'cmd/*/[a-z]*.go'

  # Include dotfiles, follow symlinked directories
  capglob --hidden --follow-symlinks '**/*.yaml'`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().BoolVar(&flagHidden, "hidden", false, "Match names starting with a dot")
	rootCmd.Flags().BoolVar(&flagSymlinks, "follow-symlinks", false, "Follow symlinked directories during ** expansion")
	rootCmd.Flags().BoolVarP(&flagIgnoreCase, "ignore-case", "i", false, "Match case-insensitively")
	rootCmd.Flags().BoolVarP(&flagMatches, "matches", "m", false, "Print the text each wildcard matched alongside the path")
	rootCmd.Flags().StringVar(&flagSep, "separator", "", "Path separator for results (default: the platform separator)")
}

func run(cmd *cobra.Command, args []string) error {
	opts := []capglob.Option{
		capglob.IncludeHidden(flagHidden),
		capglob.TraverseSymlinks(flagSymlinks),
		capglob.WithMatches(flagMatches),
	}
	if flagIgnoreCase {
		opts = append(opts, capglob.CaseSensitive(false))
	}
	if flagSep != "" {
		rs := []rune(flagSep)
		if len(rs) != 1 {
			return fmt.Errorf("--separator must be a single character, got %q", flagSep)
		}
		opts = append(opts, capglob.WithSeparator(rs[0]))
	}

	for _, pattern := range args {
		seq, err := capglob.IterGlob(pattern, opts...)
		if err != nil {
			return err
		}
		for m := range seq {
			if flagMatches {
				fmt.Printf("%s\t%q\n", m.Path, m.Groups)
			} else {
				fmt.Println(m.Path)
			}
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
