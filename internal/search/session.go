// Package search composes a free-text query with a genre filter over a
// catalog candidate set.
package search

import (
	"strings"

	"github.com/blackwell-systems/readingctl/internal/model"
)

// AllGenres is the filter value that imposes no genre restriction.
const AllGenres = "All"

// Session holds the current search inputs and the candidate set they
// run against. Apply is pure: the same inputs over the same candidates
// always produce the same ordered output.
type Session struct {
	candidates []model.Book
	genres     []string
	query      string
	genre      string
}

// NewSession creates a session with no restriction.
func NewSession() *Session {
	return &Session{genre: AllGenres}
}

// SetCandidates replaces the candidate set and recomputes the genre
// list from it.
func (s *Session) SetCandidates(books []model.Book) {
	s.candidates = books
	s.genres = extractGenres(books)
	if !contains(s.genres, s.genre) {
		s.genre = AllGenres
	}
}

// SetQuery sets the free-text query.
func (s *Session) SetQuery(q string) { s.query = q }

// Query returns the current free-text query.
func (s *Session) Query() string { return s.query }

// SetGenre sets the single active genre filter. Empty means AllGenres.
func (s *Session) SetGenre(g string) {
	if g == "" {
		g = AllGenres
	}
	s.genre = g
}

// Genre returns the active genre filter.
func (s *Session) Genre() string { return s.genre }

// Genres returns the selectable genres: AllGenres first, then each
// distinct genre in candidate order.
func (s *Session) Genres() []string {
	out := make([]string, len(s.genres))
	copy(out, s.genres)
	return out
}

// Apply returns the candidates matching both the query and the genre,
// preserving candidate order.
func (s *Session) Apply() []model.Book {
	out := make([]model.Book, 0, len(s.candidates))
	for _, b := range s.candidates {
		if s.genre != AllGenres && b.Genre != s.genre {
			continue
		}
		if s.query != "" && !matchesQuery(b, s.query) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// matchesQuery reports a case-insensitive substring match on title or
// author.
func matchesQuery(b model.Book, q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.Title), q) ||
		strings.Contains(strings.ToLower(b.Author), q)
}

// extractGenres returns AllGenres followed by the distinct genres in
// first-seen order. Empty genre labels are skipped.
func extractGenres(books []model.Book) []string {
	out := []string{AllGenres}
	seen := map[string]struct{}{}
	for _, b := range books {
		if b.Genre == "" {
			continue
		}
		if _, ok := seen[b.Genre]; ok {
			continue
		}
		seen[b.Genre] = struct{}{}
		out = append(out, b.Genre)
	}
	return out
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
