package app

import (
	"context"
	"fmt"

	"vinylvault/internal/domain"
)

const bulkFetchPageSize = 100

type collectionProvider interface {
	GetCollectionPage(ctx context.Context, page, perPage int) (domain.CollectionPage, error)
}

// fetchAllItems pages through the whole collection. maxPages of 0 means
// no cap.
func fetchAllItems(ctx context.Context, provider collectionProvider, maxPages int) ([]domain.CollectionItem, error) {
	var items []domain.CollectionItem

	for page := 1; ; page++ {
		if maxPages > 0 && page > maxPages {
			break
		}

		result, err := provider.GetCollectionPage(ctx, page, bulkFetchPageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch collection page %d: %w", page, err)
		}

		items = append(items, result.Items...)

		if page >= result.Pagination.Pages {
			break
		}
	}

	return items, nil
}
