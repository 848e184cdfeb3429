package app

import (
	"context"
	"fmt"

	"vinylvault/internal/domain"
)

type AddToWantlist func(ctx context.Context, releaseID int64) error

type RemoveFromWantlist func(ctx context.Context, releaseID int64) error

type wantlistMutator interface {
	AddToWantlist(ctx context.Context, releaseID int64) error
	RemoveFromWantlist(ctx context.Context, releaseID int64) error
}

func BuildAddToWantlist(mutator wantlistMutator) AddToWantlist {
	return func(ctx context.Context, releaseID int64) error {
		if releaseID <= 0 {
			return fmt.Errorf("%w: invalid release id %d", domain.ErrReleaseNotFound, releaseID)
		}
		return mutator.AddToWantlist(ctx, releaseID)
	}
}

func BuildRemoveFromWantlist(mutator wantlistMutator) RemoveFromWantlist {
	return func(ctx context.Context, releaseID int64) error {
		if releaseID <= 0 {
			return fmt.Errorf("%w: invalid release id %d", domain.ErrReleaseNotFound, releaseID)
		}
		return mutator.RemoveFromWantlist(ctx, releaseID)
	}
}
