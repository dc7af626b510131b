package lookup_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blackwell-systems/readingctl/internal/lookup"
)

const sampleVolumes = `{
  "items": [
    {
      "id": "vol-1",
      "volumeInfo": {
        "title": "Mistborn",
        "authors": ["Brandon Sanderson"],
        "publishedDate": "2006-07-17",
        "pageCount": 541,
        "categories": ["Fiction / Fantasy / Epic"],
        "averageRating": 4.5,
        "industryIdentifiers": [
          {"type": "ISBN_10", "identifier": "076531178X"},
          {"type": "ISBN_13", "identifier": "9780765311788"}
        ],
        "imageLinks": {"thumbnail": "http://example.com/mistborn.jpg"}
      }
    },
    {
      "id": "vol-2",
      "volumeInfo": {
        "title": "Untitled Draft"
      }
    }
  ]
}`

func TestSearch_MapsVolumes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/volumes" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "mistborn" {
			t.Errorf("q = %q", got)
		}
		_, _ = io.WriteString(w, sampleVolumes)
	}))
	defer srv.Close()

	books, err := lookup.New(srv.URL).Search(context.Background(), "mistborn")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("got %d books, want 2", len(books))
	}

	b := books[0]
	if b.ISBN != "9780765311788" {
		t.Errorf("ISBN = %q, want the ISBN-13", b.ISBN)
	}
	if b.Author != "Brandon Sanderson" || b.Title != "Mistborn" {
		t.Errorf("book = %+v", b)
	}
	if b.Genre != "Fiction" {
		t.Errorf("Genre = %q, want leading category segment", b.Genre)
	}
	if b.Year != 2006 || b.TotalPages != 541 || b.Rating != 4.5 {
		t.Errorf("book = %+v", b)
	}

	// Sparse volume: falls back to the volume id and placeholder author.
	if books[1].ISBN != "vol-2" || books[1].Author != "Unknown Author" {
		t.Errorf("sparse book = %+v", books[1])
	}
}

func TestSearch_BlankQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("blank query must not hit the API")
	}))
	defer srv.Close()

	books, err := lookup.New(srv.URL).Search(context.Background(), "   ")
	if err != nil || len(books) != 0 {
		t.Errorf("got %v, %v; want empty, nil", books, err)
	}
}

func TestSearch_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	books, err := lookup.New(srv.URL).Search(context.Background(), "no such book")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("got %d books, want 0", len(books))
	}
}

func TestByISBN(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "isbn:9780765311788" {
			t.Errorf("q = %q", got)
		}
		_, _ = io.WriteString(w, sampleVolumes)
	}))
	defer srv.Close()

	b, err := lookup.New(srv.URL).ByISBN(context.Background(), "9780765311788")
	if err != nil {
		t.Fatalf("ByISBN: %v", err)
	}
	if b == nil || b.Title != "Mistborn" {
		t.Errorf("book = %+v", b)
	}
}

func TestByISBN_Miss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	b, err := lookup.New(srv.URL).ByISBN(context.Background(), "0000000000")
	if err != nil {
		t.Fatalf("ByISBN: %v", err)
	}
	if b != nil {
		t.Errorf("book = %+v, want nil for a miss", b)
	}
}

func TestVolumes_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := lookup.New(srv.URL).Search(context.Background(), "q")
	if err == nil {
		t.Fatal("expected error for 429")
	}
	if want := fmt.Sprintf("status %d", http.StatusTooManyRequests); !strings.Contains(err.Error(), want) {
		t.Errorf("err = %v, want it to mention %q", err, want)
	}
}
