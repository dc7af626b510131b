package app

import (
	"context"
	"fmt"

	"github.com/blackwell-systems/readingctl/internal/model"
)

// loadCatalog fetches the catalog from the service, falling back to
// the local cache when the service is unreachable. A fresh fetch
// refreshes the cache best-effort.
func loadCatalog(ctx context.Context) ([]model.Book, error) {
	books, err := client.Books(ctx)
	if err == nil {
		if cacheErr := cacheMgr.StoreCatalog(books); cacheErr != nil {
			warn("Could not refresh catalog cache: %v", cacheErr)
		}
		return books, nil
	}

	cached, fetchedAt, cacheErr := cacheMgr.LoadCatalog()
	if cacheErr != nil || len(cached) == 0 {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	warn("Service unreachable, using catalog cached %s.", fetchedAt.Format("2006-01-02 15:04"))
	return cached, nil
}
