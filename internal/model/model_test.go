package model_test

import (
	"errors"
	"testing"

	"github.com/blackwell-systems/readingctl/internal/model"
)

func record(status model.Status, current, total int) model.BookRecord {
	return model.BookRecord{
		ISBN:        "9780743273565",
		Title:       "The Great Gatsby",
		Author:      "F. Scott Fitzgerald",
		TotalPages:  total,
		Status:      status,
		CurrentPage: current,
		UserID:      "7",
		DateAdded:   "2026-01-15T10:00:00Z",
	}
}

// --- ProgressFraction ---

func TestProgressFraction(t *testing.T) {
	cases := []struct {
		name           string
		current, total int
		want           float64
	}{
		{"halfway", 150, 300, 0.5},
		{"done", 300, 300, 1},
		{"fresh", 0, 300, 0},
		{"zero total pages", 50, 0, 0},
		{"over total clamps to one", 400, 300, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := record(model.StatusInProgress, c.current, c.total)
			if got := r.ProgressFraction(); got != c.want {
				t.Errorf("ProgressFraction() = %v, want %v", got, c.want)
			}
		})
	}
}

// --- DeriveStatus ---

func TestDeriveStatus_Transitions(t *testing.T) {
	cases := []struct {
		name       string
		prior      model.Status
		current    int
		newPage    int
		wantPage   int
		wantStatus model.Status
	}{
		{"to-read starts reading", model.StatusToRead, 0, 1, 1, model.StatusInProgress},
		{"in-progress advances", model.StatusInProgress, 100, 150, 150, model.StatusInProgress},
		{"in-progress finishes", model.StatusInProgress, 290, 300, 300, model.StatusFinished},
		{"overshoot clamps and finishes", model.StatusInProgress, 290, 350, 300, model.StatusFinished},
		{"to-read jumps straight to finished", model.StatusToRead, 0, 300, 300, model.StatusFinished},
		{"finished re-read drops to in-progress", model.StatusFinished, 300, 120, 120, model.StatusInProgress},
		{"fresh record stays to-read at zero", model.StatusToRead, 0, 0, 0, model.StatusToRead},
		{"in-progress at zero does not resurrect to-read", model.StatusInProgress, 50, 0, 0, model.StatusInProgress},
		{"finished at zero does not resurrect to-read", model.StatusFinished, 300, 0, 0, model.StatusInProgress},
		{"negative page clamps to zero", model.StatusInProgress, 50, -10, 0, model.StatusInProgress},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := record(c.prior, c.current, 300)
			page, status := r.DeriveStatus(c.newPage)
			if page != c.wantPage || status != c.wantStatus {
				t.Errorf("DeriveStatus(%d) = (%d, %q), want (%d, %q)",
					c.newPage, page, status, c.wantPage, c.wantStatus)
			}
		})
	}
}

func TestDeriveStatus_ZeroTotalPagesNeverFinishes(t *testing.T) {
	r := record(model.StatusToRead, 0, 0)
	page, status := r.DeriveStatus(25)
	if status != model.StatusInProgress || page != 25 {
		t.Errorf("DeriveStatus(25) = (%d, %q), want (25, %q)", page, status, model.StatusInProgress)
	}
}

// --- Validate ---

func TestValidate_OK(t *testing.T) {
	if err := record(model.StatusInProgress, 10, 300).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*model.BookRecord)
		wantField string
	}{
		{"page beyond total", func(r *model.BookRecord) { r.CurrentPage = 400 }, "currentPage"},
		{"negative page", func(r *model.BookRecord) { r.CurrentPage = -1 }, "currentPage"},
		{"negative total", func(r *model.BookRecord) { r.TotalPages = -5; r.CurrentPage = -6 }, "totalPages"},
		{"empty isbn", func(r *model.BookRecord) { r.ISBN = "" }, "isbn"},
		{"rating out of range", func(r *model.BookRecord) { r.Rating = 5.5 }, "rating"},
		{"bad status", func(r *model.BookRecord) { r.Status = "abandoned" }, "status"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := record(model.StatusInProgress, 10, 300)
			c.mutate(&r)
			err := r.Validate()
			var verr *model.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if verr.Field != c.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, c.wantField)
			}
		})
	}
}

// --- Invariants (finished ⇔ full, to-read ⇒ page 0) ---

func TestDeriveStatus_InvariantsHold(t *testing.T) {
	for prior := range map[model.Status]struct{}{
		model.StatusToRead: {}, model.StatusInProgress: {}, model.StatusFinished: {},
	} {
		for _, newPage := range []int{-3, 0, 1, 150, 299, 300, 400} {
			r := record(prior, 150, 300)
			page, status := r.DeriveStatus(newPage)
			if status == model.StatusFinished && page != 300 {
				t.Errorf("prior=%q newPage=%d: finished with page %d", prior, newPage, page)
			}
			if status == model.StatusToRead && page != 0 {
				t.Errorf("prior=%q newPage=%d: to-read with page %d", prior, newPage, page)
			}
			if page == 300 && status != model.StatusFinished {
				t.Errorf("prior=%q newPage=%d: full page but status %q", prior, newPage, status)
			}
		}
	}
}

// --- ParseStatus ---

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in      string
		want    model.Status
		wantErr bool
	}{
		{"to-read", model.StatusToRead, false},
		{"to read", model.StatusToRead, false},
		{"In-Progress", model.StatusInProgress, false},
		{"finished", model.StatusFinished, false},
		{"  finished  ", model.StatusFinished, false},
		{"abandoned", "", true},
		{"", "", true},
	}
	for _, c := range cases {
		got, err := model.ParseStatus(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseStatus(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStatus(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// --- NewRecord ---

func TestNewRecord_Defaults(t *testing.T) {
	b := model.Book{ISBN: "9780441013593", Title: "Dune", Author: "Frank Herbert", TotalPages: 412}
	r := model.NewRecord(b, "42")
	if r.Status != model.StatusToRead {
		t.Errorf("Status = %q, want %q", r.Status, model.StatusToRead)
	}
	if r.CurrentPage != 0 {
		t.Errorf("CurrentPage = %d, want 0", r.CurrentPage)
	}
	if r.UserID != "42" {
		t.Errorf("UserID = %q, want %q", r.UserID, "42")
	}
	if r.DateAdded == "" {
		t.Error("DateAdded not set")
	}
	if r.ParseDateAdded().IsZero() {
		t.Errorf("DateAdded %q does not parse", r.DateAdded)
	}
}
