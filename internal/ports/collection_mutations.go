package ports

import (
	"encoding/json"
	"net/http"

	"vinylvault/internal/app"
	"vinylvault/internal/ratelimiting"
)

func MakeAddToCollectionHandler(addToCollection app.AddToCollection, deps HandlerDeps) http.HandlerFunc {
	middleware := deps.middleware("add_to_collection", ratelimiting.RefillPerSecond(1), ratelimiting.BurstSize(10))

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

		instanceID, err := addToCollection(r.Context(), request.ReleaseID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, struct {
			InstanceID int64 `json:"instance_id"`
		}{InstanceID: instanceID})
	}

	return middleware(handler)
}

func MakeRemoveFromCollectionHandler(removeFromCollection app.RemoveFromCollection, deps HandlerDeps) http.HandlerFunc {
	middleware := deps.middleware("remove_from_collection", ratelimiting.RefillPerSecond(1), ratelimiting.BurstSize(10))

	handler := func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		request := struct {
			ReleaseID  int64 `json:"release_id"`
			InstanceID int64 `json:"instance_id"`
		}{}
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeBadRequest(w, r, "failed to parse request body")
			return
		}
		if request.ReleaseID <= 0 || request.InstanceID <= 0 {
			writeBadRequest(w, r, "invalid release_id or instance_id")
			return
		}

		if err := removeFromCollection(r.Context(), request.ReleaseID, request.InstanceID); err != nil {
			writeError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}

	return middleware(handler)
}
