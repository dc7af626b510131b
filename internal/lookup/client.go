// Package lookup queries the Google Books volumes API for book
// metadata. It is the read-only counterpart to the tracking service:
// search by free text or ISBN, map each volume to a model.Book, and
// hand the result to whichever command wanted it. An empty result set
// is a normal outcome, not an error.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/blackwell-systems/readingctl/internal/model"
)

const defaultAPIBase = "https://www.googleapis.com/books/v1"

// defaultMaxResults caps a free-text search.
const defaultMaxResults = 20

// Client queries the volumes API.
type Client struct {
	apiBase string
	http    *http.Client
}

// New creates a Client against apiBase. An empty apiBase uses the
// public Google Books API.
func New(apiBase string) *Client {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	return &Client{
		apiBase: strings.TrimRight(apiBase, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Search returns up to defaultMaxResults books matching the free-text
// query. A blank query or an empty result set returns an empty slice.
func (c *Client) Search(ctx context.Context, query string) ([]model.Book, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	return c.volumes(ctx, query, defaultMaxResults)
}

// ByISBN looks up a single book by ISBN. A miss returns (nil, nil).
func (c *Client) ByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return nil, nil
	}
	books, err := c.volumes(ctx, "isbn:"+isbn, 1)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, nil
	}
	return &books[0], nil
}

// ByGenre returns books in the given category. "All" or an empty genre
// falls back to a general fiction search.
func (c *Client) ByGenre(ctx context.Context, genre string) ([]model.Book, error) {
	if genre == "" || genre == "All" {
		return c.volumes(ctx, "subject:fiction", defaultMaxResults)
	}
	return c.volumes(ctx, "subject:"+genre, defaultMaxResults)
}

func (c *Client) volumes(ctx context.Context, query string, maxResults int) ([]model.Book, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("maxResults", strconv.Itoa(maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBase+"/volumes?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("looking up books: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("book lookup returned status %d", resp.StatusCode)
	}

	var result volumeList
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("parsing lookup response: %w", err)
	}

	books := make([]model.Book, 0, len(result.Items))
	for _, item := range result.Items {
		books = append(books, item.book())
	}
	return books, nil
}

// volumeList is the subset of the volumes API response we care about.
type volumeList struct {
	Items []volume `json:"items"`
}

type volume struct {
	ID         string `json:"id"`
	VolumeInfo struct {
		Title               string   `json:"title"`
		Authors             []string `json:"authors"`
		Description         string   `json:"description"`
		PublishedDate       string   `json:"publishedDate"`
		PageCount           int      `json:"pageCount"`
		Categories          []string `json:"categories"`
		AverageRating       float64  `json:"averageRating"`
		IndustryIdentifiers []struct {
			Type       string `json:"type"`
			Identifier string `json:"identifier"`
		} `json:"industryIdentifiers"`
		ImageLinks struct {
			Thumbnail      string `json:"thumbnail"`
			SmallThumbnail string `json:"smallThumbnail"`
		} `json:"imageLinks"`
	} `json:"volumeInfo"`
}

// book maps a volume to the catalog shape. ISBN-13 wins over ISBN-10;
// a volume with neither falls back to the API volume id so it can
// still key a record.
func (v volume) book() model.Book {
	info := v.VolumeInfo

	var isbn10, isbn13 string
	for _, id := range info.IndustryIdentifiers {
		switch id.Type {
		case "ISBN_13":
			isbn13 = id.Identifier
		case "ISBN_10":
			isbn10 = id.Identifier
		}
	}
	isbn := isbn13
	if isbn == "" {
		isbn = isbn10
	}
	if isbn == "" {
		isbn = v.ID
	}

	author := "Unknown Author"
	if len(info.Authors) > 0 {
		author = strings.Join(info.Authors, ", ")
	}

	// Categories come back as slash-separated paths ("Fiction / Fantasy");
	// the leading segment is the genre.
	genre := "Unknown"
	if len(info.Categories) > 0 {
		genre = strings.SplitN(info.Categories[0], " / ", 2)[0]
	}

	title := info.Title
	if title == "" {
		title = "Unknown Title"
	}

	cover := info.ImageLinks.Thumbnail
	if cover == "" {
		cover = info.ImageLinks.SmallThumbnail
	}

	var year int
	if len(info.PublishedDate) >= 4 {
		year, _ = strconv.Atoi(info.PublishedDate[:4])
	}

	return model.Book{
		ISBN:        isbn,
		Title:       title,
		Author:      author,
		Cover:       cover,
		Genre:       genre,
		Rating:      info.AverageRating,
		Year:        year,
		TotalPages:  info.PageCount,
		Description: info.Description,
	}
}
