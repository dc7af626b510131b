package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readingctl/internal/api"
	"github.com/blackwell-systems/readingctl/internal/session"
)

func newLoginCmd() *cobra.Command {
	var (
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the reading tracker",
		Args:  cobra.NoArgs,
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

			user, err := client.Login(context.Background(), username, password)
			switch {
			case errors.Is(err, api.ErrBadRequest):
				return fmt.Errorf("username and password are required")
			case errors.Is(err, api.ErrNotFound):
				return fmt.Errorf("no account named %q — run 'readingctl register' to create one", username)
			case errors.Is(err, api.ErrUnauthorized):
				return fmt.Errorf("incorrect password for %q", username)
			case err != nil:
				return fmt.Errorf("logging in: %w", err)
			}

			current = session.State{UserID: user.ID.String(), LoggedIn: true}
			if err := sessions.Save(current); err != nil {
				return fmt.Errorf("saving session: %w", err)
			}

			ok("Logged in as %s", user.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	return cmd
}

// prompt reads one line from stdin.
func prompt(label string) (string, error) {
	fmt.Print(label)
	r := bufio.NewReader(os.Stdin)
	line, err := r.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
