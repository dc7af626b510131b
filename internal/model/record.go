package model

import "time"

// BookRecord is a user's ownership and progress state for one catalog
// book. The Book fields are copied at creation time, not referenced —
// later catalog edits never change a record.
type BookRecord struct {
	ISBN        string  `json:"isbn"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Cover       string  `json:"cover,omitempty"`
	Genre       string  `json:"genre,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	Year        int     `json:"year,omitempty"`
	TotalPages  int     `json:"totalPages"`
	Description string  `json:"description,omitempty"`

	UserID      string `json:"userID"`
	Status      Status `json:"status"`
	CurrentPage int    `json:"currentPage"`
	DateAdded   string `json:"dateAdded"` // ISO 8601
}

// NewRecord builds a fresh to-read record for userID from a catalog book.
func NewRecord(b Book, userID string) BookRecord {
	return BookRecord{
		ISBN:        b.ISBN,
		Title:       b.Title,
		Author:      b.Author,
		Cover:       b.Cover,
		Genre:       b.Genre,
		Rating:      b.Rating,
		Year:        b.Year,
		TotalPages:  b.TotalPages,
		Description: b.Description,
		UserID:      userID,
		Status:      StatusToRead,
		CurrentPage: 0,
		DateAdded:   time.Now().UTC().Format(time.RFC3339),
	}
}

// Book returns the catalog-shaped view of the record.
func (r BookRecord) Book() Book {
	return Book{
		ISBN:        r.ISBN,
		Title:       r.Title,
		Author:      r.Author,
		Cover:       r.Cover,
		Genre:       r.Genre,
		Rating:      r.Rating,
		Year:        r.Year,
		TotalPages:  r.TotalPages,
		Description: r.Description,
	}
}

// ProgressFraction returns CurrentPage/TotalPages clamped to [0,1].
// A record with no known page count reads as zero progress.
func (r BookRecord) ProgressFraction() float64 {
	if r.TotalPages <= 0 {
		return 0
	}
	f := float64(r.CurrentPage) / float64(r.TotalPages)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// DeriveStatus returns the page and status a progress update to newPage
// should produce. newPage is clamped to [0, TotalPages]. A record never
// silently returns to to-read: page 0 keeps to-read only if the record
// never left it, otherwise the record stays in-progress.
func (r BookRecord) DeriveStatus(newPage int) (page int, status Status) {
	if newPage < 0 {
		newPage = 0
	}
	if r.TotalPages > 0 && newPage >= r.TotalPages {
		return r.TotalPages, StatusFinished
	}
	if newPage > 0 {
		return newPage, StatusInProgress
	}
	if r.Status == StatusToRead {
		return 0, StatusToRead
	}
	return 0, StatusInProgress
}

// ParseDateAdded parses the record's DateAdded timestamp. Records carry
// either full RFC 3339 or a bare date; both are accepted.
func (r BookRecord) ParseDateAdded() time.Time {
	if t, err := time.Parse(time.RFC3339, r.DateAdded); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", r.DateAdded); err == nil {
		return t
	}
	return time.Time{}
}
