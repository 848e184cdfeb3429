package app

import (
	"context"
	"fmt"

	"vinylvault/internal/adapters/cache"
	"vinylvault/internal/domain"
)

type GetCollection func(ctx context.Context, page, perPage int) (domain.CollectionPage, error)

// BuildGetCollection serves collection pages through a short-lived
// response cache so repeated renders don't hit Discogs.
func BuildGetCollection(
	provider collectionProvider,
	pageCache cache.Cache[domain.CollectionPage],
) GetCollection {
	return func(ctx context.Context, page, perPage int) (domain.CollectionPage, error) {
		key := fmt.Sprintf("collection-%d-%d", page, perPage)
		result, err := cache.GetOrCreate(ctx, pageCache, key, func() (domain.CollectionPage, error) {
			return provider.GetCollectionPage(ctx, page, perPage)
		})
		if err != nil {
			return domain.CollectionPage{}, fmt.Errorf("failed to get collection: %w", err)
		}
		return result, nil
	}
}
