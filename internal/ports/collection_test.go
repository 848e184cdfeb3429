package ports

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vinylvault/internal/adapters/cachestore"
	"vinylvault/internal/domain"
	"vinylvault/internal/enrichment"
	"vinylvault/internal/ratelimiting"
)

func immediateAfter(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

func testFetchers(t *testing.T) Fetchers {
	t.Helper()
	store := cachestore.NewMemoryStore()
	pacer := ratelimiting.NewFixedDelayPacer(time.Second, immediateAfter)

	artistTypes := enrichment.NewFetcher(
		"artist-types",
		enrichment.NewCache[domain.ArtistType](store, "artist-types"),
		func(ctx context.Context, id int64) (domain.ArtistType, error) {
			if id == 2 {
				return domain.ArtistType{Kind: domain.ArtistKindPerson}, nil
			}
			return domain.ArtistType{Kind: domain.ArtistKindBand}, nil
		},
		domain.ArtistType{Kind: domain.ArtistKindBand},
		pacer,
	)
	masterYears := enrichment.NewFetcher(
		"master-years",
		enrichment.NewCache[domain.MasterYear](store, "master-years"),
		func(ctx context.Context, id int64) (domain.MasterYear, error) {
			return domain.KnownMasterYear(1969), nil
		},
		domain.MasterYear{Known: false},
		pacer,
	)
	releaseExtras := enrichment.NewFetcher(
		"release-extras",
		enrichment.NewCache[domain.ReleaseExtras](store, "release-extras"),
		func(ctx context.Context, id int64) (domain.ReleaseExtras, error) {
			return domain.ReleaseExtras{Country: "UK"}, nil
		},
		domain.ReleaseExtras{},
		pacer,
	)

	return Fetchers{
		ArtistTypes:   artistTypes,
		MasterYears:   masterYears,
		ReleaseExtras: releaseExtras,
	}
}

func testCollectionPage() domain.CollectionPage {
	return domain.CollectionPage{
		Items: []domain.CollectionItem{
			{
				ID:        1,
				DateAdded: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				BasicInformation: domain.ReleaseInfo{
					ID:       1,
					MasterID: 100,
					Title:    "Abbey Road",
					Year:     2019,
					Artists:  []domain.Artist{{ID: 2, Name: "The Beatles"}},
					Genres:   []string{"Rock"},
				},
			},
			{
				ID:        2,
				DateAdded: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
				BasicInformation: domain.ReleaseInfo{
					ID:      2,
					Title:   "Moon Safari",
					Year:    1998,
					Artists: []domain.Artist{{ID: 3, Name: "Air"}},
					Genres:  []string{"Electronic"},
				},
			},
		},
		Pagination: domain.Pagination{Page: 1, Pages: 1, PerPage: 50, Items: 2},
	}
}

func TestGetCollectionHandler(t *testing.T) {
	t.Parallel()

	getCollection := func(ctx context.Context, page, perPage int) (domain.CollectionPage, error) {
		return testCollectionPage(), nil
	}

	t.Run("returns items with enrichment block", func(t *testing.T) {
		t.Parallel()
		fetchers := testFetchers(t)

		// Resolve ahead of time so the response doesn't depend on
		// background timing
		_, err := fetchers.ArtistTypes.Resolve(t.Context(), 2)
		require.NoError(t, err)
		_, err = fetchers.MasterYears.Resolve(t.Context(), 100)
		require.NoError(t, err)

		handler := MakeGetCollectionHandler(getCollection, fetchers, testDeps(t))

		req := httptest.NewRequest(http.MethodGet, "/v1/collection", nil)
		recorder := httptest.NewRecorder()
		handler(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var response struct {
			Items      []domain.CollectionItem `json:"items"`
			Pagination domain.Pagination       `json:"pagination"`
			Enrichment struct {
				ArtistTypes map[string]domain.ArtistType `json:"artist_types"`
				MasterYears map[string]domain.MasterYear `json:"master_years"`
			} `json:"enrichment"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

		require.Len(t, response.Items, 2)
		assert.Equal(t, 2, response.Pagination.Items)
		assert.Equal(t, domain.ArtistKindPerson, response.Enrichment.ArtistTypes["2"].Kind)
		assert.Equal(t, 1969, response.Enrichment.MasterYears["100"].Year)
	})

	t.Run("applies filters", func(t *testing.T) {
		t.Parallel()
		handler := MakeGetCollectionHandler(getCollection, testFetchers(t), testDeps(t))

		req := httptest.NewRequest(http.MethodGet, "/v1/collection?genre=Electronic", nil)
		recorder := httptest.NewRecorder()
		handler(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var response struct {
			Items []domain.CollectionItem `json:"items"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		require.Len(t, response.Items, 1)
		assert.Equal(t, "Moon Safari", response.Items[0].BasicInformation.Title)
	})

	t.Run("applies sort", func(t *testing.T) {
		t.Parallel()
		handler := MakeGetCollectionHandler(getCollection, testFetchers(t), testDeps(t))

		req := httptest.NewRequest(http.MethodGet, "/v1/collection?sort=title", nil)
		recorder := httptest.NewRecorder()
		handler(recorder, req)

		var response struct {
			Items []domain.CollectionItem `json:"items"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		require.Len(t, response.Items, 2)
		assert.Equal(t, "Abbey Road", response.Items[0].BasicInformation.Title)
	})

	t.Run("upstream error maps to status code", func(t *testing.T) {
		t.Parallel()
		failing := func(ctx context.Context, page, perPage int) (domain.CollectionPage, error) {
			return domain.CollectionPage{}, domain.ErrTemporarilyUnavailable
		}
		handler := MakeGetCollectionHandler(failing, testFetchers(t), testDeps(t))

		req := httptest.NewRequest(http.MethodGet, "/v1/collection", nil)
		recorder := httptest.NewRecorder()
		handler(recorder, req)

		require.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})
}
