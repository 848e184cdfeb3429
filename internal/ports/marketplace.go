package ports

import (
	"net/http"

	"vinylvault/internal/app"
	"vinylvault/internal/ratelimiting"
)

func MakeMarketplaceListingsHandler(getListings app.GetMarketplaceListings, deps HandlerDeps) http.HandlerFunc {
	middleware := deps.middleware("marketplace_listings", ratelimiting.RefillPerSecond(1), ratelimiting.BurstSize(30))

	handler := func(w http.ResponseWriter, r *http.Request) {
		page, perPage := parsePaging(r)

		result, err := getListings(r.Context(), page, perPage)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}

	return middleware(handler)
}
