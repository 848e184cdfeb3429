package ports

import (
	"net/http"

	"vinylvault/internal/app"
	"vinylvault/internal/ratelimiting"
)

// MakeSharedCollectionHandler serves the public, stripped-down view of
// the collection.
func MakeSharedCollectionHandler(getShared app.GetSharedCollection, deps HandlerDeps) http.HandlerFunc {
	middleware := deps.middleware("shared_collection", ratelimiting.RefillPerSecond(1), ratelimiting.BurstSize(10))

	handler := func(w http.ResponseWriter, r *http.Request) {
		shared, err := getShared(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, shared)
	}

	return middleware(handler)
}
