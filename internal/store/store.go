// Package store owns the in-memory record list for the signed-in user
// and mediates every mutation with the record service. Local state only
// changes after the service confirms a write, so a failed round trip
// never leaves a half-applied record behind.
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/blackwell-systems/readingctl/internal/model"
)

// ErrNotFound is returned when an operation targets an ISBN that is not
// in the store.
var ErrNotFound = errors.New("record not found in library")

// RecordService is the remote collaborator the store persists through.
// *api.Client satisfies it.
type RecordService interface {
	Records(ctx context.Context, userID string) ([]model.BookRecord, error)
	CreateRecord(ctx context.Context, rec model.BookRecord) (model.BookRecord, error)
	UpdateRecord(ctx context.Context, userID, isbn string, currentPage int, status model.Status) error
	DeleteRecord(ctx context.Context, userID, isbn string) error
}

// Library holds the authoritative in-memory record list for one user
// session. It is not safe for concurrent use; callers serialize access
// through the command / event loop.
type Library struct {
	svc     RecordService
	userID  string
	records []model.BookRecord
	loaded  bool
}

// New creates an empty library for userID backed by svc.
func New(svc RecordService, userID string) *Library {
	return &Library{svc: svc, userID: userID}
}

// UserID returns the owning user's identifier.
func (l *Library) UserID() string { return l.userID }

// Loaded reports whether a Load has succeeded this session.
func (l *Library) Loaded() bool { return l.loaded }

// Len returns the number of records held.
func (l *Library) Len() int { return len(l.records) }

// Load replaces the record set with the server's. On failure the prior
// contents are preserved unchanged.
func (l *Library) Load(ctx context.Context) error {
	records, err := l.svc.Records(ctx, l.userID)
	if err != nil {
		return fmt.Errorf("fetching library: %w", err)
	}
	l.records = records
	l.loaded = true
	return nil
}

// Get returns a copy of the record with the given ISBN.
func (l *Library) Get(isbn string) (model.BookRecord, error) {
	if i := l.index(isbn); i >= 0 {
		return l.records[i], nil
	}
	return model.BookRecord{}, ErrNotFound
}

// Add validates a candidate record, persists it, and inserts the
// server's canonical copy at the head of the list. The store is
// unchanged on failure.
func (l *Library) Add(ctx context.Context, candidate model.BookRecord) (model.BookRecord, error) {
	candidate.UserID = l.userID
	if err := candidate.Validate(); err != nil {
		return model.BookRecord{}, err
	}
	created, err := l.svc.CreateRecord(ctx, candidate)
	if err != nil {
		return model.BookRecord{}, fmt.Errorf("adding %q to library: %w", candidate.Title, err)
	}
	l.records = append([]model.BookRecord{created}, l.records...)
	return created, nil
}

// UpdateProgress derives the new status for newPage, pushes the partial
// update, and replaces the in-memory record only once the service
// confirms. A later confirmed update to the same record wins over an
// earlier one.
func (l *Library) UpdateProgress(ctx context.Context, isbn string, newPage int) (model.BookRecord, error) {
	i := l.index(isbn)
	if i < 0 {
		return model.BookRecord{}, ErrNotFound
	}
	rec := l.records[i]
	page, status := rec.DeriveStatus(newPage)

	if err := l.svc.UpdateRecord(ctx, l.userID, isbn, page, status); err != nil {
		return model.BookRecord{}, fmt.Errorf("updating progress for %q: %w", rec.Title, err)
	}

	// Re-resolve the index: a confirmed mutation may have moved the
	// record while this call was in flight.
	i = l.index(isbn)
	if i < 0 {
		return model.BookRecord{}, ErrNotFound
	}
	l.records[i].CurrentPage = page
	l.records[i].Status = status
	return l.records[i], nil
}

// Remove deletes the record from the service, then from memory. The
// caller is responsible for any user confirmation beforehand.
func (l *Library) Remove(ctx context.Context, isbn string) error {
	i := l.index(isbn)
	if i < 0 {
		return ErrNotFound
	}
	rec := l.records[i]
	if err := l.svc.DeleteRecord(ctx, l.userID, isbn); err != nil {
		return fmt.Errorf("removing %q from library: %w", rec.Title, err)
	}
	if i = l.index(isbn); i >= 0 {
		l.records = append(l.records[:i], l.records[i+1:]...)
	}
	return nil
}

// FilteredSorted returns the records matching statusFilter (empty =
// all), ordered by status priority (to-read, in-progress, finished)
// then date added, newest first. The sort is stable, so equal keys keep
// their stored order and repeated calls agree.
func (l *Library) FilteredSorted(statusFilter model.Status) []model.BookRecord {
	out := make([]model.BookRecord, 0, len(l.records))
	for _, r := range l.records {
		if statusFilter != "" && r.Status != statusFilter {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(a, b int) bool {
		ra, rb := out[a].Status.Rank(), out[b].Status.Rank()
		if ra != rb {
			return ra < rb
		}
		return out[a].ParseDateAdded().After(out[b].ParseDateAdded())
	})
	return out
}

// Reset clears all records. Called on logout so nothing leaks into the
// next session.
func (l *Library) Reset() {
	l.records = nil
	l.loaded = false
}

func (l *Library) index(isbn string) int {
	for i := range l.records {
		if l.records[i].ISBN == isbn {
			return i
		}
	}
	return -1
}
