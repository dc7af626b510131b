// Package stats computes aggregate reading statistics over a user's
// record list. All functions are pure; the caller supplies the records
// and a reference time.
package stats

import (
	"sort"
	"time"

	"github.com/blackwell-systems/readingctl/internal/model"
)

// StatusCounts is the number of records per reading status.
type StatusCounts struct {
	ToRead     int
	InProgress int
	Finished   int
}

// GenreCount is one slice of the genre distribution.
type GenreCount struct {
	Genre string
	Count int
}

// Summary is the aggregate view rendered by the stats command.
type Summary struct {
	StatusCounts  StatusCounts
	TotalBooks    int
	PagesRead     int
	AverageRating float64 // mean catalog rating of finished books, 0 if none rated

	// MonthlyFinished counts finished books per month for the trailing
	// six months, oldest first. Ordering relies on DateAdded since the
	// service records no completion timestamp.
	MonthlyFinished [6]int

	GenreDistribution []GenreCount
}

// Compute builds a Summary from records, using now to anchor the
// trailing six-month window.
func Compute(records []model.BookRecord, now time.Time) Summary {
	var s Summary
	s.TotalBooks = len(records)

	genreCounts := map[string]int{}
	var ratingSum float64
	var rated int

	windowStart := monthStart(now).AddDate(0, -5, 0)

	for _, r := range records {
		switch r.Status {
		case model.StatusToRead:
			s.StatusCounts.ToRead++
		case model.StatusInProgress:
			s.StatusCounts.InProgress++
		case model.StatusFinished:
			s.StatusCounts.Finished++
			if r.Rating > 0 {
				ratingSum += r.Rating
				rated++
			}
			if t := r.ParseDateAdded(); !t.Before(windowStart) && !t.After(now) {
				idx := monthsBetween(windowStart, monthStart(t))
				if idx >= 0 && idx < len(s.MonthlyFinished) {
					s.MonthlyFinished[idx]++
				}
			}
		}
		s.PagesRead += r.CurrentPage

		genre := r.Genre
		if genre == "" {
			genre = "Other"
		}
		genreCounts[genre]++
	}

	if rated > 0 {
		s.AverageRating = ratingSum / float64(rated)
	}

	s.GenreDistribution = make([]GenreCount, 0, len(genreCounts))
	for g, n := range genreCounts {
		s.GenreDistribution = append(s.GenreDistribution, GenreCount{Genre: g, Count: n})
	}
	// Largest slice first; ties broken by name so output is stable.
	sort.Slice(s.GenreDistribution, func(a, b int) bool {
		if s.GenreDistribution[a].Count != s.GenreDistribution[b].Count {
			return s.GenreDistribution[a].Count > s.GenreDistribution[b].Count
		}
		return s.GenreDistribution[a].Genre < s.GenreDistribution[b].Genre
	})

	return s
}

// RecentActivity returns up to limit human-readable activity lines,
// newest record first.
func RecentActivity(records []model.BookRecord, limit int) []string {
	sorted := make([]model.BookRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].ParseDateAdded().After(sorted[b].ParseDateAdded())
	})

	var out []string
	for _, r := range sorted {
		if len(out) >= limit {
			break
		}
		switch r.Status {
		case model.StatusFinished:
			out = append(out, "Finished \""+r.Title+"\"")
		case model.StatusInProgress:
			out = append(out, "Reading \""+r.Title+"\"")
		default:
			out = append(out, "Added \""+r.Title+"\" to library")
		}
	}
	return out
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// monthsBetween returns the number of calendar months from a to b,
// both taken as month starts.
func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
