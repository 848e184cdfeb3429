package ports

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"vinylvault/internal/domain"
)

func TestArtistTypeHandler(t *testing.T) {
	t.Parallel()

	fetchers := testFetchers(t)
	handler := MakeArtistTypeHandler(fetchers.ArtistTypes, testDeps(t))

	t.Run("resolves and returns the type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/v1/artist-type/2", nil)
		req.SetPathValue("id", "2")
		recorder := httptest.NewRecorder()
		handler(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var response domain.ArtistType
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		require.Equal(t, domain.ArtistKindPerson, response.Kind)
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/v1/artist-type/abc", nil)
		req.SetPathValue("id", "abc")
		recorder := httptest.NewRecorder()
		handler(recorder, req)

		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

type stubPriceStats struct {
	stats domain.PriceStats
	err   error
}

func (s stubPriceStats) GetPriceStats(ctx context.Context, releaseID int64) (domain.PriceStats, error) {
	return s.stats, s.err
}

func TestPriceStatsHandler(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		handler := MakePriceStatsHandler(stubPriceStats{
			stats: domain.PriceStats{
				LowestPrice: &domain.Money{Value: 24.99, Currency: "USD"},
				NumForSale:  3,
			},
		}, testDeps(t))

		req := httptest.NewRequest(http.MethodGet, "/v1/release/249504/price", nil)
		req.SetPathValue("id", "249504")
		recorder := httptest.NewRecorder()
		handler(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var response domain.PriceStats
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		require.NotNil(t, response.LowestPrice)
		require.Equal(t, 3, response.NumForSale)
	})

	t.Run("no price data", func(t *testing.T) {
		t.Parallel()
		handler := MakePriceStatsHandler(stubPriceStats{}, testDeps(t))

		req := httptest.NewRequest(http.MethodGet, "/v1/release/99/price", nil)
		req.SetPathValue("id", "99")
		recorder := httptest.NewRecorder()
		handler(recorder, req)

		require.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("upstream not found", func(t *testing.T) {
		t.Parallel()
		handler := MakePriceStatsHandler(stubPriceStats{err: domain.ErrReleaseNotFound}, testDeps(t))

		req := httptest.NewRequest(http.MethodGet, "/v1/release/1/price", nil)
		req.SetPathValue("id", "1")
		recorder := httptest.NewRecorder()
		handler(recorder, req)

		require.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
