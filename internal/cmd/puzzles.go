package cmd

import (
	"fmt"
	"strings"

	"github.com/hybridanalysis/challenge/puzzle"
	"github.com/spf13/cobra"
)

// NewShortcutCmd creates and returns the shortcut subcommand for the challenge CLI.
func NewShortcutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shortcut TEXT...",
		Short: "Build a three letter shortcut from a phrase",
		Long: `Build a three letter shortcut from the capital letters of a phrase.

When the phrase has fewer than three capitals, its first small letters are
upper-cased to fill the gap.`,
		Example: `  challenge shortcut "Test Me Please"`,
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), puzzle.BigLetterShortcut(strings.Join(args, " ")))
		},
	}
}

// NewSortWordsCmd creates and returns the sortwords subcommand for the challenge CLI.
func NewSortWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sortwords SENTENCE...",
		Short: "Order words by the number each one contains",
		Long: `Order the words of a sentence by the number embedded in each word.

Words without a number are placed first. When two words carry the same
number, only the last one is kept.`,
		Example: `  challenge sortwords "is2 Thi1s T7est 4a"`,
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), puzzle.SortWords(strings.Join(args, " ")))
		},
	}
}

// NewUniqueCmd creates and returns the unique subcommand for the challenge CLI.
func NewUniqueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unique STRING...",
		Short: "Find the string made of different letters",
		Long: `Find the one string whose set of letters differs from the others.

Case, repeated letters, spaces and punctuation are ignored when comparing.`,
		Example: `  challenge unique abc acb bac foo bca`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unique, err := puzzle.FindUnique(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), unique)
			return nil
		},
	}
}
