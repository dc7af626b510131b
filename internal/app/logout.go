package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readingctl/internal/session"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the local session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !current.LoggedIn {
				warn("Not logged in.")
				return nil
			}
			if err := sessions.Clear(); err != nil {
				return fmt.Errorf("clearing session: %w", err)
			}
			current = session.State{}
			ok("Logged out")
			return nil
		},
	}
}
