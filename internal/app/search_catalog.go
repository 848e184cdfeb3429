package app

import (
	"context"
	"fmt"
	"strings"

	"vinylvault/internal/adapters/cache"
	"vinylvault/internal/domain"
)

type SearchCatalog func(ctx context.Context, query string, page, perPage int) (domain.SearchPage, error)

type catalogSearcher interface {
	SearchReleases(ctx context.Context, query string, page, perPage int) (domain.SearchPage, error)
}

func BuildSearchCatalog(
	searcher catalogSearcher,
	pageCache cache.Cache[domain.SearchPage],
) SearchCatalog {
	return func(ctx context.Context, query string, page, perPage int) (domain.SearchPage, error) {
		query = strings.TrimSpace(query)
		if query == "" {
			return domain.SearchPage{}, nil
		}

		key := fmt.Sprintf("search-%s-%d-%d", strings.ToLower(query), page, perPage)
		result, err := cache.GetOrCreate(ctx, pageCache, key, func() (domain.SearchPage, error) {
			return searcher.SearchReleases(ctx, query, page, perPage)
		})
		if err != nil {
			return domain.SearchPage{}, fmt.Errorf("failed to search catalog: %w", err)
		}
		return result, nil
	}
}
