package app

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readingctl/internal/chat"
	"github.com/blackwell-systems/readingctl/internal/model"
	"github.com/blackwell-systems/readingctl/internal/store"
	"github.com/blackwell-systems/readingctl/internal/tui"
)

func newChatCmd() *cobra.Command {
	var noStream bool

	cmd := &cobra.Command{
		Use:   "chat [query]",
		Short: "Talk to the BookBot recommendation assistant",
		Long: `Chat with the recommendation assistant.

With no arguments this opens the interactive chat view. With a query
it asks once and prints the reply, which suits piping and scripting.

Examples:
  readingctl chat
  readingctl chat "recommend fantasy books like Mistborn"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireLogin()
			if err != nil {
				return err
			}
			streaming := cfg.Assistant.Streaming && !noStream

			if len(args) == 0 {
				if !tui.ShouldUseTUI(cmd) {
					return fmt.Errorf("provide a query when running without a terminal")
				}
				lib := store.New(client, userID)
				if err := lib.Load(context.Background()); err != nil {
					return fmt.Errorf("loading library: %w", err)
				}
				return tui.RunChat(tui.ChatOptions{
					Assistant: assistant,
					Library:   lib,
					UserID:    userID,
					Streaming: streaming,
					Styles:    tui.NewStyles(cfg.Theme()),
				})
			}

			// One-shot mode.
			s := chat.NewSession(assistant, userID, streaming)
			before := len(s.Messages())
			if err := s.Send(context.Background(), args[0]); err != nil {
				return err
			}
			for _, msg := range s.Messages()[before:] {
				printChatMessage(msg)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noStream, "no-stream", false, "Disable streamed replies")
	return cmd
}

func printChatMessage(msg model.ChatMessage) {
	switch msg.Role {
	case model.RoleUser:
		fmt.Println(color.New(color.Bold).Sprint("You: ") + msg.Content)
	default:
		fmt.Println(color.CyanString("BookBot: ") + msg.Content)
	}
	for i, rec := range msg.Recommendations {
		line := fmt.Sprintf("  %d. %s by %s", i+1, rec.Title, rec.Author)
		if rec.TotalPages > 0 {
			line += fmt.Sprintf(" (%d pages)", rec.TotalPages)
		}
		if rec.ISBN != "" {
			line += " · " + rec.ISBN
		}
		fmt.Println(line)
	}
}
