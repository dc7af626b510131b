package model

// Book is one immutable catalog entry. The catalog service owns it; the
// client never mutates it.
type Book struct {
	ISBN        string  `json:"isbn"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Cover       string  `json:"cover,omitempty"`
	Genre       string  `json:"genre,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	Year        int     `json:"year,omitempty"` // 0 = unknown
	TotalPages  int     `json:"totalPages"`
	Description string  `json:"description,omitempty"`
}
