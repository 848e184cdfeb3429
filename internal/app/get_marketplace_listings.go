package app

import (
	"context"
	"fmt"

	"vinylvault/internal/adapters/cache"
	"vinylvault/internal/domain"
)

type GetMarketplaceListings func(ctx context.Context, page, perPage int) (domain.ListingsPage, error)

type listingsProvider interface {
	GetMarketplaceListings(ctx context.Context, page, perPage int) (domain.ListingsPage, error)
}

func BuildGetMarketplaceListings(
	provider listingsProvider,
	pageCache cache.Cache[domain.ListingsPage],
) GetMarketplaceListings {
	return func(ctx context.Context, page, perPage int) (domain.ListingsPage, error) {
		key := fmt.Sprintf("listings-%d-%d", page, perPage)
		result, err := cache.GetOrCreate(ctx, pageCache, key, func() (domain.ListingsPage, error) {
			return provider.GetMarketplaceListings(ctx, page, perPage)
		})
		if err != nil {
			return domain.ListingsPage{}, fmt.Errorf("failed to get marketplace listings: %w", err)
		}
		return result, nil
	}
}
