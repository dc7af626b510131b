package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/blackwell-systems/readingctl/internal/model"
)

// Records fetches the full record list for a user.
func (c *Client) Records(ctx context.Context, userID string) ([]model.BookRecord, error) {
	q := url.Values{"userId": {userID}}
	var records []model.BookRecord
	if err := c.doJSON(ctx, http.MethodGet, "/records", q, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreateRecord persists a new record and returns the server's canonical copy.
func (c *Client) CreateRecord(ctx context.Context, rec model.BookRecord) (model.BookRecord, error) {
	var created model.BookRecord
	if err := c.doJSON(ctx, http.MethodPost, "/records", nil, rec, &created); err != nil {
		return model.BookRecord{}, err
	}
	return created, nil
}

// progressPatch is the partial-update body for a progress change. Only
// these two fields ever travel on a PUT.
type progressPatch struct {
	CurrentPage int          `json:"currentPage"`
	Status      model.Status `json:"status"`
}

// UpdateRecord pushes a progress/status change for one record.
func (c *Client) UpdateRecord(ctx context.Context, userID, isbn string, currentPage int, status model.Status) error {
	q := url.Values{"userId": {userID}, "isbn": {isbn}}
	body := progressPatch{CurrentPage: currentPage, Status: status}
	return c.doJSON(ctx, http.MethodPut, "/records", q, body, nil)
}

// DeleteRecord removes a record from the user's library.
func (c *Client) DeleteRecord(ctx context.Context, userID, isbn string) error {
	q := url.Values{"userId": {userID}, "isbn": {isbn}}
	return c.doJSON(ctx, http.MethodDelete, "/records", q, nil, nil)
}
