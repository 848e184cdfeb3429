package ports

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"vinylvault/internal/domain"
	e "vinylvault/internal/errors"
	"vinylvault/internal/reporting"
)

func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		reporting.Report(r.Context(), fmt.Errorf("failed to marshal response: %w", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrReleaseNotFound):
		writeJSON(w, r, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, domain.ErrNoPriceData):
		writeJSON(w, r, http.StatusNotFound, errorResponse{Error: "no price data"})
	case errors.Is(err, domain.ErrTemporarilyUnavailable):
		writeJSON(w, r, http.StatusServiceUnavailable, errorResponse{Error: "temporarily unavailable"})
	case errors.Is(err, e.RatelimitExceededError):
		writeJSON(w, r, http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
	case errors.Is(err, e.APIClientError):
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "bad request"})
	default:
		writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: message})
}

const defaultPageSize = 50
const maxPageSize = 100

func parsePaging(r *http.Request) (page, perPage int) {
	page = 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}

	perPage = defaultPageSize
	if raw := r.URL.Query().Get("per_page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= maxPageSize {
			perPage = parsed
		}
	}

	return page, perPage
}

func parsePathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}
