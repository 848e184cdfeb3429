package discogs

import (
	"context"
	"time"

	"vinylvault/internal/domain"
)

// mockedDiscogsAPI serves canned data for local development without a
// Discogs token.
type mockedDiscogsAPI struct{}

var mockItems = []domain.CollectionItem{
	{
		ID:         249504,
		InstanceID: 1,
		DateAdded:  time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC),
		Rating:     5,
		BasicInformation: domain.ReleaseInfo{
			ID:       249504,
			MasterID: 23934,
			Title:    "The Stone Roses",
			Year:     1989,
			Artists:  []domain.Artist{{ID: 196248, Name: "The Stone Roses"}},
			Formats:  []domain.Format{{Name: "Vinyl", Qty: "1", Descriptions: []string{"LP", "Album"}}},
			Labels:   []domain.Label{{ID: 1866, Name: "Silvertone Records", CatNo: "ORE LP 502"}},
			Genres:   []string{"Rock"},
			Styles:   []string{"Indie Rock"},
		},
	},
	{
		ID:         1031110,
		InstanceID: 2,
		DateAdded:  time.Date(2024, 6, 2, 9, 30, 0, 0, time.UTC),
		Rating:     4,
		BasicInformation: domain.ReleaseInfo{
			ID:       1031110,
			MasterID: 24434,
			Title:    "Face Value",
			Year:     1981,
			Artists:  []domain.Artist{{ID: 71681, Name: "Phil Collins"}},
			Formats:  []domain.Format{{Name: "Vinyl", Qty: "1", Descriptions: []string{"LP", "Album"}}},
			Labels:   []domain.Label{{ID: 857, Name: "Virgin", CatNo: "V 2185"}},
			Genres:   []string{"Rock", "Pop"},
			Styles:   []string{"Pop Rock"},
		},
	},
}

func (api *mockedDiscogsAPI) GetCollectionPage(ctx context.Context, page, perPage int) (domain.CollectionPage, error) {
	items := mockItems
	if page > 1 {
		items = nil
	}
	return domain.CollectionPage{
		Items:      items,
		Pagination: domain.Pagination{Page: page, Pages: 1, PerPage: perPage, Items: len(mockItems)},
	}, nil
}

func (api *mockedDiscogsAPI) GetWantlistPage(ctx context.Context, page, perPage int) (domain.WantlistPage, error) {
	return domain.WantlistPage{
		Pagination: domain.Pagination{Page: page, Pages: 1, PerPage: perPage},
	}, nil
}

func (api *mockedDiscogsAPI) SearchReleases(ctx context.Context, query string, page, perPage int) (domain.SearchPage, error) {
	return domain.SearchPage{
		Results: []domain.SearchResult{
			{
				ID:       249504,
				MasterID: 23934,
				Title:    "The Stone Roses - The Stone Roses",
				Year:     "1989",
				Country:  "UK",
				Genres:   []string{"Rock"},
				Formats:  []string{"Vinyl", "LP"},
				Labels:   []string{"Silvertone Records"},
			},
		},
		Pagination: domain.Pagination{Page: page, Pages: 1, PerPage: perPage, Items: 1},
	}, nil
}

func (api *mockedDiscogsAPI) GetMarketplaceListings(ctx context.Context, page, perPage int) (domain.ListingsPage, error) {
	return domain.ListingsPage{
		Pagination: domain.Pagination{Page: page, Pages: 1, PerPage: perPage},
	}, nil
}

func (api *mockedDiscogsAPI) GetArtist(ctx context.Context, artistID int64) (domain.ArtistProfile, error) {
	if artistID == 71681 {
		return domain.ArtistProfile{ID: artistID, Name: "Phil Collins", Realname: "Philip David Charles Collins", Groups: []string{"Genesis"}}, nil
	}
	return domain.ArtistProfile{ID: artistID, Name: "The Stone Roses", Members: []string{"Ian Brown", "John Squire", "Mani", "Reni"}}, nil
}

func (api *mockedDiscogsAPI) GetMasterYear(ctx context.Context, masterID int64) (domain.MasterYear, error) {
	return domain.KnownMasterYear(1989), nil
}

func (api *mockedDiscogsAPI) GetReleaseExtras(ctx context.Context, releaseID int64) (domain.ReleaseExtras, error) {
	price := 24.99
	return domain.ReleaseExtras{Country: "UK", LowestPrice: &price}, nil
}

func (api *mockedDiscogsAPI) GetPriceStats(ctx context.Context, releaseID int64) (domain.PriceStats, error) {
	return domain.PriceStats{
		LowestPrice: &domain.Money{Value: 24.99, Currency: "USD"},
		NumForSale:  12,
	}, nil
}

func (api *mockedDiscogsAPI) AddToCollection(ctx context.Context, releaseID int64) (int64, error) {
	return 1000 + releaseID, nil
}

func (api *mockedDiscogsAPI) RemoveFromCollection(ctx context.Context, releaseID, instanceID int64) error {
	return nil
}

func (api *mockedDiscogsAPI) AddToWantlist(ctx context.Context, releaseID int64) error {
	return nil
}

func (api *mockedDiscogsAPI) RemoveFromWantlist(ctx context.Context, releaseID int64) error {
	return nil
}
