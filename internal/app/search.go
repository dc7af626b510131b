package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readingctl/internal/search"
)

func newSearchCmd() *cobra.Command {
	var (
		genre      string
		jsonOut    bool
		listGenres bool
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the book catalog",
		Long: `Search the tracker catalog by title or author, optionally narrowed
to a genre. Matching is case-insensitive substring matching.

Examples:
  readingctl search gatsby
  readingctl search sanderson --genre Fantasy
  readingctl search --genre Sci-Fi --json
  readingctl search --genres`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			books, err := loadCatalog(context.Background())
			if err != nil {
				return err
			}

			s := search.NewSession()
			s.SetCandidates(books)

			if listGenres {
				header("Genres")
				for _, g := range s.Genres() {
					fmt.Println("  " + g)
				}
				return nil
			}

			if query == "" && genre == "" {
				return fmt.Errorf("provide a search query or use --genre/--genres")
			}

			s.SetQuery(query)
			if genre != "" {
				s.SetGenre(genre)
			}
			matched := s.Apply()

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(matched)
			}

			if len(matched) == 0 {
				warn("No books matched.")
				return nil
			}
			for _, b := range matched {
				line := fmt.Sprintf("%-14s %s — %s", b.ISBN, color.New(color.Bold).Sprint(b.Title), b.Author)
				if b.Genre != "" {
					line += " " + color.CyanString("["+b.Genre+"]")
				}
				if b.TotalPages > 0 {
					line += fmt.Sprintf(" · %d pages", b.TotalPages)
				}
				fmt.Println(line)
			}
			fmt.Printf("\n%d result(s)", len(matched))
			if filters := describeFilters(query, genre); filters != "" {
				fmt.Printf(" for %s", filters)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&genre, "genre", "", "Restrict results to one genre")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output machine-readable JSON")
	cmd.Flags().BoolVar(&listGenres, "genres", false, "List the catalog's genres and exit")
	return cmd
}

func describeFilters(query, genre string) string {
	var parts []string
	if query != "" {
		parts = append(parts, fmt.Sprintf("%q", query))
	}
	if genre != "" {
		parts = append(parts, "genre "+genre)
	}
	return strings.Join(parts, ", ")
}
