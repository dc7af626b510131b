package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readingctl/internal/api"
	"github.com/blackwell-systems/readingctl/internal/session"
)

func newRegisterCmd() *cobra.Command {
	var (
		username string
		password string
		genres   []string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a reading tracker account",
		Long: `Create a new account and sign in.

Favourite genres seed the recommendation assistant; they can be any
genre names the catalog uses.

Examples:
  readingctl register -u ada -p secret
  readingctl register -u ada -p secret --genre Fantasy --genre Sci-Fi`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if username == "" {
				if username, err = prompt("Username: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = prompt("Password: "); err != nil {
					return err
				}
			}

			user, err := client.Register(context.Background(), username, password, genres)
			switch {
			case errors.Is(err, api.ErrConflict):
				return fmt.Errorf("username %q is already taken", username)
			case errors.Is(err, api.ErrBadRequest):
				return fmt.Errorf("username and password are required")
			case err != nil:
				return fmt.Errorf("registering: %w", err)
			}

			current = session.State{UserID: user.ID.String(), LoggedIn: true}
			if err := sessions.Save(current); err != nil {
				return fmt.Errorf("saving session: %w", err)
			}

			ok("Account created — logged in as %s", user.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	cmd.Flags().StringArrayVar(&genres, "genre", nil, "Favourite genre (repeatable)")
	return cmd
}
