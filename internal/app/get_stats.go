package app

import (
	"context"
	"fmt"

	"vinylvault/internal/domain"
)

type GetCollectionStats func(ctx context.Context) (domain.CollectionStats, error)

func BuildGetCollectionStats(provider collectionProvider) GetCollectionStats {
	return func(ctx context.Context) (domain.CollectionStats, error) {
		items, err := fetchAllItems(ctx, provider, 0)
		if err != nil {
			return domain.CollectionStats{}, fmt.Errorf("failed to get collection stats: %w", err)
		}
		return domain.ComputeCollectionStats(items), nil
	}
}
