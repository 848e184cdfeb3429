package app

import (
	"context"
	"fmt"

	"vinylvault/internal/domain"
)

// SharedItem is the public view of a collection entry. Ratings, notes
// and instance ids stay private.
type SharedItem struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Artists    []string `json:"artists"`
	Year       int      `json:"year,omitempty"`
	Thumb      string   `json:"thumb,omitempty"`
	CoverImage string   `json:"cover_image,omitempty"`
	Genres     []string `json:"genres,omitempty"`
	Formats    []string `json:"formats,omitempty"`
}

type SharedCollection struct {
	Username string       `json:"username"`
	Count    int          `json:"count"`
	Items    []SharedItem `json:"items"`
}

type GetSharedCollection func(ctx context.Context) (SharedCollection, error)

func BuildGetSharedCollection(provider collectionProvider, username string) GetSharedCollection {
	return func(ctx context.Context) (SharedCollection, error) {
		items, err := fetchAllItems(ctx, provider, 0)
		if err != nil {
			return SharedCollection{}, fmt.Errorf("failed to get shared collection: %w", err)
		}

		shared := make([]SharedItem, 0, len(items))
		for _, item := range items {
			shared = append(shared, stripItem(item))
		}

		return SharedCollection{
			Username: username,
			Count:    len(shared),
			Items:    shared,
		}, nil
	}
}

func stripItem(item domain.CollectionItem) SharedItem {
	info := item.BasicInformation

	artists := make([]string, 0, len(info.Artists))
	for _, artist := range info.Artists {
		artists = append(artists, artist.Name)
	}

	var formats []string
	for _, format := range info.Formats {
		formats = append(formats, format.Name)
	}

	return SharedItem{
		ID:         info.ID,
		Title:      info.Title,
		Artists:    artists,
		Year:       info.Year,
		Thumb:      info.Thumb,
		CoverImage: info.CoverImage,
		Genres:     info.Genres,
		Formats:    formats,
	}
}
