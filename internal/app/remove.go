package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readingctl/internal/store"
)

func newRemoveCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:     "remove <isbn>",
		Aliases: []string{"rm"},
		Short:   "Remove a book from your library",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireLogin()
			if err != nil {
				return err
			}

			ctx := context.Background()
			lib := store.New(client, userID)
			if err := lib.Load(ctx); err != nil {
				return fmt.Errorf("loading library: %w", err)
			}

			rec, err := lib.Get(args[0])
			if err != nil {
				return fmt.Errorf("no book with ISBN %s in your library", args[0])
			}

			if !skipConfirm {
				confirmation, err := prompt(fmt.Sprintf("Remove %q from your library? [y/N] ", rec.Title))
				if err != nil {
					return err
				}
				if confirmation != "y" && confirmation != "Y" {
					warn("Aborted.")
					return nil
				}
			}

			if err := lib.Remove(ctx, rec.ISBN); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("no book with ISBN %s in your library", args[0])
				}
				return fmt.Errorf("removing %q: %w", rec.Title, err)
			}

			ok("Removed %q", rec.Title)
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipConfirm, "yes", false, "Skip confirmation prompt")
	return cmd
}
