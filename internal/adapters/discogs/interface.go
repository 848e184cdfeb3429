package discogs

import (
	"context"
	"net/http"

	"vinylvault/internal/domain"
)

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// DiscogsAPI is the authenticated upstream client. All list operations
// are paged the way Discogs pages them.
type DiscogsAPI interface {
	GetCollectionPage(ctx context.Context, page, perPage int) (domain.CollectionPage, error)
	GetWantlistPage(ctx context.Context, page, perPage int) (domain.WantlistPage, error)
	SearchReleases(ctx context.Context, query string, page, perPage int) (domain.SearchPage, error)
	GetMarketplaceListings(ctx context.Context, page, perPage int) (domain.ListingsPage, error)

	GetArtist(ctx context.Context, artistID int64) (domain.ArtistProfile, error)
	GetMasterYear(ctx context.Context, masterID int64) (domain.MasterYear, error)
	GetReleaseExtras(ctx context.Context, releaseID int64) (domain.ReleaseExtras, error)
	GetPriceStats(ctx context.Context, releaseID int64) (domain.PriceStats, error)

	AddToCollection(ctx context.Context, releaseID int64) (instanceID int64, err error)
	RemoveFromCollection(ctx context.Context, releaseID, instanceID int64) error
	AddToWantlist(ctx context.Context, releaseID int64) error
	RemoveFromWantlist(ctx context.Context, releaseID int64) error
}
