package ports

import (
	"net/http"

	"vinylvault/internal/app"
	"vinylvault/internal/ratelimiting"
)

func MakeGetWantlistHandler(getWantlist app.GetWantlist, deps HandlerDeps) http.HandlerFunc {
	middleware := deps.middleware("get_wantlist", ratelimiting.RefillPerSecond(2), ratelimiting.BurstSize(60))

	handler := func(w http.ResponseWriter, r *http.Request) {
		page, perPage := parsePaging(r)

		result, err := getWantlist(r.Context(), page, perPage)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}

	return middleware(handler)
}
