package cache_test

import (
	"os"
	"testing"
	"time"

	"github.com/blackwell-systems/readingctl/internal/cache"
	"github.com/blackwell-systems/readingctl/internal/model"
)

func TestLoadCatalog_Miss(t *testing.T) {
	m := cache.New(t.TempDir())
	books, fetched, err := m.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if books != nil || !fetched.IsZero() {
		t.Errorf("got %v at %v, want empty miss", books, fetched)
	}
}

func TestStoreLoad_RoundTrip(t *testing.T) {
	m := cache.New(t.TempDir())
	in := []model.Book{
		{ISBN: "111", Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi", TotalPages: 412},
		{ISBN: "222", Title: "Mistborn", Author: "Brandon Sanderson", Genre: "Fantasy", TotalPages: 541},
	}
	before := time.Now().Add(-time.Second)

	if err := m.StoreCatalog(in); err != nil {
		t.Fatalf("StoreCatalog: %v", err)
	}
	books, fetched, err := m.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(books) != 2 || books[0].Title != "Dune" || books[1].TotalPages != 541 {
		t.Errorf("books = %+v", books)
	}
	if fetched.Before(before) {
		t.Errorf("fetched_at = %v, want recent", fetched)
	}
}

func TestStoreCatalog_LeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	m := cache.New(dir)
	if err := m.StoreCatalog([]model.Book{{ISBN: "111", Title: "Dune"}}); err != nil {
		t.Fatalf("StoreCatalog: %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("dir has %d entries, want just catalog.yml", len(entries))
	}
}

func TestClear(t *testing.T) {
	m := cache.New(t.TempDir())
	if err := m.StoreCatalog([]model.Book{{ISBN: "111"}}); err != nil {
		t.Fatalf("StoreCatalog: %v", err)
	}
	if err := m.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	books, _, err := m.LoadCatalog()
	if err != nil || books != nil {
		t.Errorf("after Clear: %v, %v", books, err)
	}
	// Clearing twice is fine.
	if err := m.Clear(); err != nil {
		t.Errorf("second Clear: %v", err)
	}
}
