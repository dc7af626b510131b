package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/readingctl/internal/model"
	"github.com/blackwell-systems/readingctl/internal/stats"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show your reading statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireLogin()
			if err != nil {
				return err
			}

			// The record list and the catalog size come from separate
			// endpoints; fetch them together.
			var (
				records []model.BookRecord
				catalog []model.Book
			)
			g, ctx := errgroup.WithContext(context.Background())
			g.Go(func() error {
				var err error
				records, err = client.Records(ctx, userID)
				return err
			})
			g.Go(func() error {
				var err error
				catalog, err = client.Books(ctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return fmt.Errorf("loading statistics: %w", err)
			}

			now := time.Now().UTC()
			s := stats.Compute(records, now)

			header("Reading Statistics")
			fmt.Printf("  Library:     %d book(s) (catalog has %d)\n", s.TotalBooks, len(catalog))
			fmt.Printf("  To read:     %d\n", s.StatusCounts.ToRead)
			fmt.Printf("  In progress: %d\n", s.StatusCounts.InProgress)
			fmt.Printf("  Finished:    %d\n", s.StatusCounts.Finished)
			fmt.Printf("  Pages read:  %d\n", s.PagesRead)
			if s.AverageRating > 0 {
				fmt.Printf("  Avg rating:  %.1f\n", s.AverageRating)
			}

			fmt.Println()
			header("Finished per month")
			printMonthly(s.MonthlyFinished, now)

			if len(s.GenreDistribution) > 0 {
				fmt.Println()
				header("Genres")
				for _, g := range s.GenreDistribution {
					fmt.Printf("  %-18s %s %d\n", g.Genre, bar(g.Count), g.Count)
				}
			}

			if activity := stats.RecentActivity(records, 5); len(activity) > 0 {
				fmt.Println()
				header("Recent activity")
				for _, line := range activity {
					fmt.Println("  " + line)
				}
			}
			return nil
		},
	}
}

// printMonthly renders the trailing six-month finished counts, oldest
// month first.
func printMonthly(counts [6]int, now time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -5, 0)
	for i, n := range counts {
		month := start.AddDate(0, i, 0)
		fmt.Printf("  %s %s %d\n", month.Format("Jan 2006"), bar(n), n)
	}
}

func bar(n int) string {
	if n > 30 {
		n = 30
	}
	return color.CyanString(strings.Repeat("▇", n))
}
