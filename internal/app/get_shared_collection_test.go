package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vinylvault/internal/domain"
)

func TestGetSharedCollectionStripsPrivateFields(t *testing.T) {
	t.Parallel()

	provider := &mockCollectionProvider{
		items: []domain.CollectionItem{
			{
				ID:         1,
				InstanceID: 77,
				Rating:     5,
				BasicInformation: domain.ReleaseInfo{
					ID:         1,
					Title:      "Abbey Road",
					Year:       1969,
					Thumb:      "thumb.jpg",
					CoverImage: "cover.jpg",
					Artists:    []domain.Artist{{ID: 10, Name: "The Beatles"}},
					Formats:    []domain.Format{{Name: "Vinyl", Qty: "1"}},
					Genres:     []string{"Rock"},
				},
			},
		},
	}

	getShared := BuildGetSharedCollection(provider, "vinyl_nerd")

	shared, err := getShared(t.Context())
	require.NoError(t, err)

	require.Equal(t, "vinyl_nerd", shared.Username)
	require.Equal(t, 1, shared.Count)
	require.Len(t, shared.Items, 1)
	require.Equal(t, SharedItem{
		ID:         1,
		Title:      "Abbey Road",
		Artists:    []string{"The Beatles"},
		Year:       1969,
		Thumb:      "thumb.jpg",
		CoverImage: "cover.jpg",
		Genres:     []string{"Rock"},
		Formats:    []string{"Vinyl"},
	}, shared.Items[0])
}

func TestGetCollectionStats(t *testing.T) {
	t.Parallel()

	provider := &mockCollectionProvider{items: makeItems(250)}
	getStats := BuildGetCollectionStats(provider)

	stats, err := getStats(t.Context())
	require.NoError(t, err)
	require.Equal(t, 250, stats.TotalItems)
	require.Equal(t, 3, provider.calls, "paged through the whole collection")
}
