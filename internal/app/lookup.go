package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readingctl/internal/lookup"
)

func newLookupCmd() *cobra.Command {
	var byISBN bool

	cmd := &cobra.Command{
		Use:   "lookup <query>",
		Short: "Look up book metadata in the public catalog",
		Long: `Query the public book lookup for titles the tracker catalog does not
carry. Useful before 'readingctl add --lookup'.

Examples:
  readingctl lookup "the way of kings"
  readingctl lookup 9780765311788 --isbn`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			lc := lookup.New(cfg.Lookup.BaseURL)

			if byISBN {
				book, err := lc.ByISBN(ctx, args[0])
				if err != nil {
					return fmt.Errorf("looking up %s: %w", args[0], err)
				}
				if book == nil {
					warn("No book found for ISBN %s.", args[0])
					return nil
				}
				header("%s", book.Title)
				fmt.Printf("  Author: %s\n", book.Author)
				fmt.Printf("  ISBN:   %s\n", book.ISBN)
				if book.Genre != "" {
					fmt.Printf("  Genre:  %s\n", book.Genre)
				}
				if book.TotalPages > 0 {
					fmt.Printf("  Pages:  %d\n", book.TotalPages)
				}
				if book.Description != "" {
					fmt.Printf("  %s\n", firstSentence(book.Description))
				}
				return nil
			}

			books, err := lc.Search(ctx, args[0])
			if err != nil {
				return fmt.Errorf("searching for %q: %w", args[0], err)
			}
			if len(books) == 0 {
				warn("No books matched.")
				return nil
			}
			for _, b := range books {
				line := fmt.Sprintf("%-16s %s — %s", b.ISBN, color.New(color.Bold).Sprint(b.Title), b.Author)
				if b.Year > 0 {
					line += fmt.Sprintf(" (%d)", b.Year)
				}
				fmt.Println(line)
			}
			fmt.Printf("\n%d result(s)\n", len(books))
			return nil
		},
	}

	cmd.Flags().BoolVar(&byISBN, "isbn", false, "Treat the query as an ISBN")
	return cmd
}

// firstSentence trims a long description to its first sentence.
func firstSentence(s string) string {
	if i := strings.Index(s, ". "); i > 0 {
		return s[:i+1]
	}
	return s
}
