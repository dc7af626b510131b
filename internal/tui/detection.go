package tui

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readingctl/internal/util"
)

// ShouldUseTUI returns true if the command should run interactively:
// stdout is a terminal and the user has not asked for plain output.
func ShouldUseTUI(cmd *cobra.Command) bool {
	if !util.IsTTY() {
		return false
	}
	noInteractive, _ := cmd.Flags().GetBool("no-interactive")
	return !noInteractive
}
