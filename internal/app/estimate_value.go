package app

import (
	"context"
	"fmt"

	"vinylvault/internal/domain"
	"vinylvault/internal/logging"
	"vinylvault/internal/ratelimiting"
)

type priceLookup interface {
	GetPriceStats(ctx context.Context, releaseID int64) (domain.PriceStats, error)
}

// ProgressFunc is called after every sampled item. It must be fast; it
// runs on the estimator's loop.
type ProgressFunc func(processed, total int)

type EstimateCollectionValue func(ctx context.Context, sampleSize int, progress ProgressFunc) (domain.ValueEstimate, error)

// BuildEstimateCollectionValue prices a sample of the collection, one
// paced marketplace lookup at a time, and extrapolates the average over
// the full collection size. A sampleSize of 0 prices everything.
//
// Items without marketplace price data count against the sample but not
// the average. The whole sample failing yields ErrNoPriceData.
func BuildEstimateCollectionValue(
	provider collectionProvider,
	prices priceLookup,
	pacer ratelimiting.Pacer,
) EstimateCollectionValue {
	return func(ctx context.Context, sampleSize int, progress ProgressFunc) (domain.ValueEstimate, error) {
		logger := logging.FromContext(ctx)

		items, err := fetchAllItems(ctx, provider, 0)
		if err != nil {
			return domain.ValueEstimate{}, fmt.Errorf("failed to estimate collection value: %w", err)
		}
		if len(items) == 0 {
			return domain.ValueEstimate{}, domain.ErrNoPriceData
		}

		sample := items
		if sampleSize > 0 && sampleSize < len(items) {
			sample = items[:sampleSize]
		}

		var totalLow float64
		pricedItems := 0

		for processed, item := range sample {
			if err := pacer.Wait(ctx); err != nil {
				return domain.ValueEstimate{}, fmt.Errorf("estimate cancelled: %w", err)
			}

			stats, err := prices.GetPriceStats(ctx, item.BasicInformation.ID)
			if err != nil {
				if ctx.Err() != nil {
					return domain.ValueEstimate{}, fmt.Errorf("estimate cancelled: %w", ctx.Err())
				}
				logger.WarnContext(ctx, "price lookup failed, skipping item", "releaseID", item.BasicInformation.ID, "error", err.Error())
			} else if stats.LowestPrice != nil {
				totalLow += stats.LowestPrice.Value
				pricedItems++
			}

			if progress != nil {
				progress(processed+1, len(sample))
			}
		}

		if pricedItems == 0 {
			return domain.ValueEstimate{}, domain.ErrNoPriceData
		}

		return domain.ExtrapolateValue(totalLow, pricedItems, len(sample), len(items)), nil
	}
}
