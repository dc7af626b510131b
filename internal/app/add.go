package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readingctl/internal/lookup"
	"github.com/blackwell-systems/readingctl/internal/model"
	"github.com/blackwell-systems/readingctl/internal/store"
)

func newAddCmd() *cobra.Command {
	var fromLookup bool

	cmd := &cobra.Command{
		Use:   "add <isbn>",
		Short: "Add a book to your library",
		Long: `Add a catalog book to your library as to-read.

By default the book is resolved against the tracker's own catalog.
With --lookup the metadata comes from the public book lookup instead,
which covers books the catalog has never seen.

Examples:
  readingctl add 9780765311788
  readingctl add 9780765311788 --lookup`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireLogin()
			if err != nil {
				return err
			}
			isbn := strings.TrimSpace(args[0])
			ctx := context.Background()

			book, err := resolveBook(ctx, isbn, fromLookup)
			if err != nil {
				return err
			}

			lib := store.New(client, userID)
			if err := lib.Load(ctx); err != nil {
				return fmt.Errorf("loading library: %w", err)
			}
			created, err := lib.Add(ctx, model.NewRecord(*book, userID))
			if err != nil {
				return fmt.Errorf("adding %q: %w", book.Title, err)
			}

			ok("Added %q by %s to your library", created.Title, created.Author)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromLookup, "lookup", false, "Resolve metadata via the public book lookup")
	return cmd
}

// resolveBook finds catalog metadata for an ISBN, either from the
// tracker catalog or the public lookup.
func resolveBook(ctx context.Context, isbn string, fromLookup bool) (*model.Book, error) {
	if fromLookup {
		book, err := lookup.New(cfg.Lookup.BaseURL).ByISBN(ctx, isbn)
		if err != nil {
			return nil, fmt.Errorf("looking up %s: %w", isbn, err)
		}
		if book == nil {
			return nil, fmt.Errorf("no book found for ISBN %s", isbn)
		}
		return book, nil
	}

	books, err := loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	for i := range books {
		if books[i].ISBN == isbn {
			return &books[i], nil
		}
	}
	return nil, fmt.Errorf("ISBN %s is not in the catalog (try --lookup)", isbn)
}
