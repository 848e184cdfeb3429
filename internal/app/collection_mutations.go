package app

import (
	"context"
	"fmt"

	"vinylvault/internal/domain"
)

type AddToCollection func(ctx context.Context, releaseID int64) (instanceID int64, err error)

type RemoveFromCollection func(ctx context.Context, releaseID, instanceID int64) error

type collectionMutator interface {
	AddToCollection(ctx context.Context, releaseID int64) (int64, error)
	RemoveFromCollection(ctx context.Context, releaseID, instanceID int64) error
}

func BuildAddToCollection(mutator collectionMutator) AddToCollection {
	return func(ctx context.Context, releaseID int64) (int64, error) {
		if releaseID <= 0 {
			return 0, fmt.Errorf("%w: invalid release id %d", domain.ErrReleaseNotFound, releaseID)
		}
		return mutator.AddToCollection(ctx, releaseID)
	}
}

func BuildRemoveFromCollection(mutator collectionMutator) RemoveFromCollection {
	return func(ctx context.Context, releaseID, instanceID int64) error {
		if releaseID <= 0 || instanceID <= 0 {
			return fmt.Errorf("%w: invalid release id %d / instance id %d", domain.ErrReleaseNotFound, releaseID, instanceID)
		}
		return mutator.RemoveFromCollection(ctx, releaseID, instanceID)
	}
}
