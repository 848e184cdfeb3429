package ports

import (
	"context"
	"net/http"
	"strconv"

	"vinylvault/internal/app"
	"vinylvault/internal/domain"
	"vinylvault/internal/enrichment"
	"vinylvault/internal/ratelimiting"
	"vinylvault/internal/records"
)

// Enrichment is the resolved-so-far portion of the per-item caches,
// restricted to the ids on the returned page. Loading means a
// background run is still resolving; poll again for more.
type Enrichment struct {
	ArtistTypes   map[int64]domain.ArtistType   `json:"artist_types"`
	MasterYears   map[int64]domain.MasterYear   `json:"master_years"`
	ReleaseExtras map[int64]domain.ReleaseExtras `json:"release_extras"`
	Loading       bool                           `json:"loading"`
}

type collectionResponse struct {
	Items      []domain.CollectionItem `json:"items"`
	Pagination domain.Pagination       `json:"pagination"`
	Enrichment Enrichment              `json:"enrichment"`
}

type Fetchers struct {
	ArtistTypes   *enrichment.Fetcher[domain.ArtistType]
	MasterYears   *enrichment.Fetcher[domain.MasterYear]
	ReleaseExtras *enrichment.Fetcher[domain.ReleaseExtras]
}

func MakeGetCollectionHandler(
	getCollection app.GetCollection,
	fetchers Fetchers,
	deps HandlerDeps,
) http.HandlerFunc {
	middleware := deps.middleware("get_collection", ratelimiting.RefillPerSecond(2), ratelimiting.BurstSize(60))

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		page, perPage := parsePaging(r)

		result, err := getCollection(ctx, page, perPage)
		if err != nil {
			writeError(w, r, err)
			return
		}

		criteria := criteriaFromQuery(r)
		requestEnrichment(ctx, result.Items, fetchers)

		items := records.FilterAndSort(
			result.Items,
			criteria,
			fetchers.ArtistTypes.Resolved(ctx),
			fetchers.MasterYears.Resolved(ctx),
		)

		writeJSON(w, r, http.StatusOK, collectionResponse{
			Items:      items,
			Pagination: result.Pagination,
			Enrichment: enrichmentForItems(ctx, result.Items, fetchers),
		})
	}

	return middleware(handler)
}

func criteriaFromQuery(r *http.Request) records.Criteria {
	query := r.URL.Query()

	decade := 0
	if raw := query.Get("decade"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			decade = parsed
		}
	}

	return records.Criteria{
		Search: query.Get("search"),
		Genre:  query.Get("genre"),
		Decade: decade,
		Year:   query.Get("year"),
		Sort:   records.SortKey(query.Get("sort")),
	}
}

// requestEnrichment hands the ids visible on this page to the
// background fetchers. Stable id sets make this a no-op.
func requestEnrichment(ctx context.Context, items []domain.CollectionItem, fetchers Fetchers) {
	artistIDs := make([]int64, 0, len(items))
	masterIDs := make([]int64, 0, len(items))
	releaseIDs := make([]int64, 0, len(items))

	for _, item := range items {
		artistIDs = append(artistIDs, item.BasicInformation.PrimaryArtist().ID)
		masterIDs = append(masterIDs, item.BasicInformation.MasterID)
		releaseIDs = append(releaseIDs, item.BasicInformation.ID)
	}

	fetchers.ArtistTypes.Request(ctx, artistIDs)
	fetchers.MasterYears.Request(ctx, masterIDs)
	fetchers.ReleaseExtras.Request(ctx, releaseIDs)
}

// enrichmentForItems restricts the cache snapshots to the ids actually
// present on the page.
func enrichmentForItems(ctx context.Context, items []domain.CollectionItem, fetchers Fetchers) Enrichment {
	artistTypes := fetchers.ArtistTypes.Resolved(ctx)
	masterYears := fetchers.MasterYears.Resolved(ctx)
	releaseExtras := fetchers.ReleaseExtras.Resolved(ctx)

	result := Enrichment{
		ArtistTypes:   make(map[int64]domain.ArtistType),
		MasterYears:   make(map[int64]domain.MasterYear),
		ReleaseExtras: make(map[int64]domain.ReleaseExtras),
		Loading:       fetchers.ArtistTypes.Loading() || fetchers.MasterYears.Loading() || fetchers.ReleaseExtras.Loading(),
	}

	for _, item := range items {
		info := item.BasicInformation
		if artistType, ok := artistTypes[info.PrimaryArtist().ID]; ok {
			result.ArtistTypes[info.PrimaryArtist().ID] = artistType
		}
		if masterYear, ok := masterYears[info.MasterID]; ok {
			result.MasterYears[info.MasterID] = masterYear
		}
		if extras, ok := releaseExtras[info.ID]; ok {
			result.ReleaseExtras[info.ID] = extras
		}
	}

	return result
}
