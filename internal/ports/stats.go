package ports

import (
	"log/slog"
	"net/http"
	"strconv"

	"vinylvault/internal/app"
	"vinylvault/internal/logging"
	"vinylvault/internal/ratelimiting"
)

func MakeGetStatsHandler(getStats app.GetCollectionStats, deps HandlerDeps) http.HandlerFunc {
	middleware := deps.middleware("get_stats", ratelimiting.RefillPerSecond(1), ratelimiting.BurstSize(10))

	handler := func(w http.ResponseWriter, r *http.Request) {
		stats, err := getStats(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, stats)
	}

	return middleware(handler)
}

// MakeEstimateValueHandler runs the sampled value estimate. The request
// blocks for roughly one second per sampled item because of upstream
// pacing, so keep sample sizes moderate over HTTP.
func MakeEstimateValueHandler(estimateValue app.EstimateCollectionValue, deps HandlerDeps) http.HandlerFunc {
	middleware := deps.middleware("estimate_value", ratelimiting.RefillPerSecond(1), ratelimiting.BurstSize(2))

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sampleSize := 0
		if raw := r.URL.Query().Get("sample"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				writeBadRequest(w, r, "invalid sample")
				return
			}
			sampleSize = parsed
		}

		logger := logging.FromContext(ctx)
		progress := func(processed, total int) {
			logger.InfoContext(ctx, "estimate progress", slog.Int("processed", processed), slog.Int("total", total))
		}

		estimate, err := estimateValue(ctx, sampleSize, progress)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, estimate)
	}

	return middleware(handler)
}
