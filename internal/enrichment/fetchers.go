package enrichment

import (
	"context"
	"time"

	"vinylvault/internal/adapters/cachestore"
	"vinylvault/internal/adapters/discogs"
	"vinylvault/internal/domain"
	"vinylvault/internal/ratelimiting"
)

// LookupDelay is the pause before every upstream lookup. Discogs allows
// 60 authenticated requests per minute, and enrichment has to leave
// headroom for interactive requests.
const LookupDelay = 1 * time.Second

const (
	artistTypesNamespace   = "artist-types"
	masterYearsNamespace   = "master-years"
	releaseExtrasNamespace = "release-extras"
)

// NewArtistTypeFetcher classifies artists as person or band. An artist
// that can't be looked up is cached as a band, which leaves its name
// untransformed when sorting.
func NewArtistTypeFetcher(store cachestore.Store, api discogs.DiscogsAPI, pacer ratelimiting.Pacer) *Fetcher[domain.ArtistType] {
	cache := NewCache[domain.ArtistType](store, artistTypesNamespace)
	lookup := func(ctx context.Context, id int64) (domain.ArtistType, error) {
		profile, err := api.GetArtist(ctx, id)
		if err != nil {
			return domain.ArtistType{}, err
		}
		return domain.ClassifyArtist(profile), nil
	}
	return NewFetcher("artist-types", cache, lookup, domain.ArtistType{Kind: domain.ArtistKindBand}, pacer)
}

// NewMasterYearFetcher resolves original release years from master
// releases. A failed lookup is cached as unknown so it isn't retried
// for the lifetime of the cache.
func NewMasterYearFetcher(store cachestore.Store, api discogs.DiscogsAPI, pacer ratelimiting.Pacer) *Fetcher[domain.MasterYear] {
	cache := NewCache[domain.MasterYear](store, masterYearsNamespace)
	return NewFetcher("master-years", cache, api.GetMasterYear, domain.MasterYear{Known: false}, pacer)
}

// NewReleaseExtrasFetcher resolves country and lowest marketplace price
// for single releases.
func NewReleaseExtrasFetcher(store cachestore.Store, api discogs.DiscogsAPI, pacer ratelimiting.Pacer) *Fetcher[domain.ReleaseExtras] {
	cache := NewCache[domain.ReleaseExtras](store, releaseExtrasNamespace)
	return NewFetcher("release-extras", cache, api.GetReleaseExtras, domain.ReleaseExtras{}, pacer)
}
