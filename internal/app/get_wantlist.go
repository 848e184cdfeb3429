package app

import (
	"context"
	"fmt"

	"vinylvault/internal/adapters/cache"
	"vinylvault/internal/domain"
)

type GetWantlist func(ctx context.Context, page, perPage int) (domain.WantlistPage, error)

type wantlistProvider interface {
	GetWantlistPage(ctx context.Context, page, perPage int) (domain.WantlistPage, error)
}

func BuildGetWantlist(
	provider wantlistProvider,
	pageCache cache.Cache[domain.WantlistPage],
) GetWantlist {
	return func(ctx context.Context, page, perPage int) (domain.WantlistPage, error) {
		key := fmt.Sprintf("wantlist-%d-%d", page, perPage)
		result, err := cache.GetOrCreate(ctx, pageCache, key, func() (domain.WantlistPage, error) {
			return provider.GetWantlistPage(ctx, page, perPage)
		})
		if err != nil {
			return domain.WantlistPage{}, fmt.Errorf("failed to get wantlist: %w", err)
		}
		return result, nil
	}
}
