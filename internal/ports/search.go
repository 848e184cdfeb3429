package ports

import (
	"net/http"

	"vinylvault/internal/app"
	"vinylvault/internal/ratelimiting"
)

func MakeSearchCatalogHandler(searchCatalog app.SearchCatalog, deps HandlerDeps) http.HandlerFunc {
	middleware := deps.middleware("search_catalog", ratelimiting.RefillPerSecond(1), ratelimiting.BurstSize(30))

	handler := func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query == "" {
			writeBadRequest(w, r, "missing query")
			return
		}
		page, perPage := parsePaging(r)

		result, err := searchCatalog(r.Context(), query, page, perPage)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}

	return middleware(handler)
}
