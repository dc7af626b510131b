package api

import (
	"context"
	"net/http"

	"github.com/blackwell-systems/readingctl/internal/model"
)

// Books fetches the full catalog.
func (c *Client) Books(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := c.doJSON(ctx, http.MethodGet, "/books", nil, nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}
