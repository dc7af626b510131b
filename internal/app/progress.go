package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readingctl/internal/store"
)

func newProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <isbn> <page>",
		Short: "Update reading progress for a book",
		Long: `Record the page you are on. The reading status follows the page:
reaching the last page finishes the book, any page past zero marks it
in progress, and a book that was started never drops back to to-read.

Examples:
  readingctl progress 9780765311788 120
  readingctl progress 9780765311788 541   # finishes a 541-page book`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireLogin()
			if err != nil {
				return err
			}
			page, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%q is not a page number", args[1])
			}

			ctx := context.Background()
			lib := store.New(client, userID)
			if err := lib.Load(ctx); err != nil {
				return fmt.Errorf("loading library: %w", err)
			}

			updated, err := lib.UpdateProgress(ctx, args[0], page)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("no book with ISBN %s in your library", args[0])
				}
				return fmt.Errorf("updating progress: %w", err)
			}

			ok("%q is now %s at page %d", updated.Title, updated.Status, updated.CurrentPage)
			return nil
		},
	}
}
