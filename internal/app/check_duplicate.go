package app

import (
	"context"
	"fmt"
	"strings"

	"vinylvault/internal/domain"
	"vinylvault/internal/records"
)

// Large collections are checked best-effort: anything past this many
// pages is not considered.
const maxDuplicateCheckPages = 10

type DuplicateResult struct {
	IsDuplicate bool                    `json:"is_duplicate"`
	Matches     []domain.CollectionItem `json:"matches"`
}

type CheckDuplicate func(ctx context.Context, artist, title string) (DuplicateResult, error)

// BuildCheckDuplicate reports whether a release is already in the
// collection, comparing normalized artist and title so that pressing
// variants still count as duplicates.
func BuildCheckDuplicate(provider collectionProvider) CheckDuplicate {
	return func(ctx context.Context, artist, title string) (DuplicateResult, error) {
		normalizedTitle := records.Normalize(title)
		normalizedArtist := records.Normalize(artist)
		if normalizedTitle == "" {
			return DuplicateResult{}, fmt.Errorf("missing title")
		}

		items, err := fetchAllItems(ctx, provider, maxDuplicateCheckPages)
		if err != nil {
			return DuplicateResult{}, fmt.Errorf("failed to check for duplicates: %w", err)
		}

		var matches []domain.CollectionItem
		for _, item := range items {
			info := item.BasicInformation
			if records.Normalize(info.Title) != normalizedTitle {
				continue
			}
			if normalizedArtist != "" && !artistMatches(info, normalizedArtist) {
				continue
			}
			matches = append(matches, item)
		}

		return DuplicateResult{
			IsDuplicate: len(matches) > 0,
			Matches:     matches,
		}, nil
	}
}

func artistMatches(info domain.ReleaseInfo, normalizedArtist string) bool {
	for _, artist := range info.Artists {
		normalized := records.Normalize(artist.Name)
		if normalized == normalizedArtist ||
			strings.Contains(normalized, normalizedArtist) ||
			strings.Contains(normalizedArtist, normalized) {
			return true
		}
	}
	return false
}
