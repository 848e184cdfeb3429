package ports

import (
	"context"
	"net/http"

	"vinylvault/internal/domain"
	"vinylvault/internal/ratelimiting"
)

// The lookup endpoints proxy single-entity reads through the enrichment
// caches: a cached id costs nothing, an uncached one costs one upstream
// request and is cached for everyone after.

type resolver[V any] interface {
	Resolve(ctx context.Context, id int64) (V, error)
}

func makeLookupHandler[V any](handlerName string, resolve resolver[V], deps HandlerDeps) http.HandlerFunc {
	middleware := deps.middleware(handlerName, ratelimiting.RefillPerSecond(1), ratelimiting.BurstSize(30))

	handler := func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r, "id")
		if err != nil {
			writeBadRequest(w, r, err.Error())
			return
		}

		value, err := resolve.Resolve(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, value)
	}

	return middleware(handler)
}

func MakeArtistTypeHandler(resolve resolver[domain.ArtistType], deps HandlerDeps) http.HandlerFunc {
	return makeLookupHandler("artist_type", resolve, deps)
}

func MakeMasterYearHandler(resolve resolver[domain.MasterYear], deps HandlerDeps) http.HandlerFunc {
	return makeLookupHandler("master_year", resolve, deps)
}

func MakeReleaseExtrasHandler(resolve resolver[domain.ReleaseExtras], deps HandlerDeps) http.HandlerFunc {
	return makeLookupHandler("release_extras", resolve, deps)
}

type priceStatsProvider interface {
	GetPriceStats(ctx context.Context, releaseID int64) (domain.PriceStats, error)
}

// MakePriceStatsHandler proxies the marketplace price summary. Prices
// move, so this one is deliberately not cached.
func MakePriceStatsHandler(prices priceStatsProvider, deps HandlerDeps) http.HandlerFunc {
	middleware := deps.middleware("price_stats", ratelimiting.RefillPerSecond(1), ratelimiting.BurstSize(30))

	handler := func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r, "id")
		if err != nil {
			writeBadRequest(w, r, err.Error())
			return
		}

		stats, err := prices.GetPriceStats(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if stats.LowestPrice == nil {
			writeError(w, r, domain.ErrNoPriceData)
			return
		}

		writeJSON(w, r, http.StatusOK, stats)
	}

	return middleware(handler)
}
