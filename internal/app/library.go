package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readingctl/internal/model"
	"github.com/blackwell-systems/readingctl/internal/store"
	"github.com/blackwell-systems/readingctl/internal/tui"
)

func newLibraryCmd() *cobra.Command {
	var statusFlag string

	cmd := &cobra.Command{
		Use:     "library",
		Aliases: []string{"ls"},
		Short:   "Browse your library (interactive TUI or text output)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireLogin()
			if err != nil {
				return err
			}

			var statusFilter model.Status
			if statusFlag != "" {
				statusFilter, err = model.ParseStatus(statusFlag)
				if err != nil {
					return err
				}
			}

			ctx := context.Background()
			lib := store.New(client, userID)
			if err := lib.Load(ctx); err != nil {
				return fmt.Errorf("loading library: %w", err)
			}

			records := lib.FilteredSorted(statusFilter)
			if len(records) == 0 {
				warn("Your library is empty. Add books with 'readingctl add'.")
				return nil
			}

			if tui.ShouldUseTUI(cmd) {
				result, err := tui.RunLibraryBrowser(records, tui.NewStyles(cfg.Theme()))
				if err != nil {
					return err
				}
				return handleBrowserAction(ctx, lib, result)
			}

			printRecords(records)
			return nil
		},
	}

	cmd.Flags().StringVar(&statusFlag, "status", "", "Filter by status (to-read, in-progress, finished)")
	return cmd
}

// handleBrowserAction finishes whatever the user picked in the browser.
func handleBrowserAction(ctx context.Context, lib *store.Library, result *tui.BrowserResult) error {
	if result == nil || result.Action == tui.ActionNone || result.Record == nil {
		return nil
	}
	rec := *result.Record

	switch result.Action {
	case tui.ActionShowDetails:
		printDetails(rec)
		return nil

	case tui.ActionProgress:
		input, err := prompt(fmt.Sprintf("Current page for %q (of %d): ", rec.Title, rec.TotalPages))
		if err != nil {
			return err
		}
		page, err := strconv.Atoi(input)
		if err != nil {
			return fmt.Errorf("%q is not a page number", input)
		}
		updated, err := lib.UpdateProgress(ctx, rec.ISBN, page)
		if err != nil {
			return fmt.Errorf("updating progress: %w", err)
		}
		ok("%q is now %s at page %d", updated.Title, updated.Status, updated.CurrentPage)
		return nil

	case tui.ActionRemove:
		confirmation, err := prompt(fmt.Sprintf("Remove %q from your library? [y/N] ", rec.Title))
		if err != nil {
			return err
		}
		if confirmation != "y" && confirmation != "Y" {
			warn("Aborted.")
			return nil
		}
		if err := lib.Remove(ctx, rec.ISBN); err != nil {
			return fmt.Errorf("removing %q: %w", rec.Title, err)
		}
		ok("Removed %q", rec.Title)
		return nil
	}
	return nil
}

// printRecords renders the plain-text library listing.
func printRecords(records []model.BookRecord) {
	for _, r := range records {
		statusStr := statusColor(r.Status)
		progress := ""
		if r.TotalPages > 0 {
			progress = fmt.Sprintf(" · %d/%d pages", r.CurrentPage, r.TotalPages)
		}
		fmt.Printf("%-14s %s — %s [%s]%s\n", r.ISBN, color.New(color.Bold).Sprint(r.Title), r.Author, statusStr, progress)
	}
	fmt.Printf("\n%d book(s)\n", len(records))
}

func printDetails(r model.BookRecord) {
	header("%s", r.Title)
	fmt.Printf("  Author:   %s\n", r.Author)
	fmt.Printf("  ISBN:     %s\n", r.ISBN)
	if r.Genre != "" {
		fmt.Printf("  Genre:    %s\n", r.Genre)
	}
	if r.Year > 0 {
		fmt.Printf("  Year:     %d\n", r.Year)
	}
	if r.Rating > 0 {
		fmt.Printf("  Rating:   %.1f\n", r.Rating)
	}
	fmt.Printf("  Status:   %s\n", statusColor(r.Status))
	if r.TotalPages > 0 {
		fmt.Printf("  Progress: %d/%d pages (%.0f%%)\n", r.CurrentPage, r.TotalPages, r.ProgressFraction()*100)
	}
	if r.Description != "" {
		fmt.Printf("  %s\n", r.Description)
	}
}

func statusColor(s model.Status) string {
	switch s {
	case model.StatusFinished:
		return color.GreenString(string(s))
	case model.StatusInProgress:
		return color.YellowString(string(s))
	default:
		return color.CyanString(string(s))
	}
}
