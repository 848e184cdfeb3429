package ports

import (
	"encoding/json"
	"net/http"

	"vinylvault/internal/app"
	"vinylvault/internal/ratelimiting"
)

func MakeAddToWantlistHandler(addToWantlist app.AddToWantlist, deps HandlerDeps) http.HandlerFunc {
	middleware := deps.middleware("add_to_wantlist", ratelimiting.RefillPerSecond(1), ratelimiting.BurstSize(10))

	handler := func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		request := struct {
			ReleaseID int64 `json:"release_id"`
		}{}
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeBadRequest(w, r, "failed to parse request body")
			return
		}
		if request.ReleaseID <= 0 {
			writeBadRequest(w, r, "invalid release_id")
			return
		}

		if err := addToWantlist(r.Context(), request.ReleaseID); err != nil {
			writeError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
	}

	return middleware(handler)
}

func MakeRemoveFromWantlistHandler(removeFromWantlist app.RemoveFromWantlist, deps HandlerDeps) http.HandlerFunc {
	middleware := deps.middleware("remove_from_wantlist", ratelimiting.RefillPerSecond(1), ratelimiting.BurstSize(10))

	handler := func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		request := struct {
			ReleaseID int64 `json:"release_id"`
		}{}
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeBadRequest(w, r, "failed to parse request body")
			return
		}
		if request.ReleaseID <= 0 {
			writeBadRequest(w, r, "invalid release_id")
			return
		}

		if err := removeFromWantlist(r.Context(), request.ReleaseID); err != nil {
			writeError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}

	return middleware(handler)
}
