package ports

import (
	"encoding/json"
	"net/http"

	"vinylvault/internal/app"
	"vinylvault/internal/ratelimiting"
)

func MakeCheckDuplicateHandler(checkDuplicate app.CheckDuplicate, deps HandlerDeps) http.HandlerFunc {
	middleware := deps.middleware("check_duplicate", ratelimiting.RefillPerSecond(1), ratelimiting.BurstSize(10))

	handler := func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		request := struct {
			Artist string `json:"artist"`
			Title  string `json:"title"`
		}{}
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeBadRequest(w, r, "failed to parse request body")
			return
		}
		if request.Title == "" {
			writeBadRequest(w, r, "missing title")
			return
		}

		result, err := checkDuplicate(r.Context(), request.Artist, request.Title)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}

	return middleware(handler)
}
