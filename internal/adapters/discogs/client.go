package discogs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"vinylvault/internal/config"
	"vinylvault/internal/domain"
	e "vinylvault/internal/errors"
	"vinylvault/internal/logging"
	"vinylvault/internal/reporting"
)

const baseURL = "https://api.discogs.com"

const userAgent = "vinylvault/0.1.0"

// Releases added through the API land in the "Uncategorized" folder.
// Folder 0 ("All") is read-only and only valid for listing.
const allFolder = 0
const uncategorizedFolder = 1

type discogsAPIImpl struct {
	httpClient HttpClient
	token      string
	username   string
}

func NewDiscogsAPI(httpClient HttpClient, token, username string) DiscogsAPI {
	return discogsAPIImpl{
		httpClient: httpClient,
		token:      token,
		username:   username,
	}
}

func NewDiscogsAPIOrMock(conf config.Config, httpClient HttpClient) (DiscogsAPI, error) {
	if conf.DiscogsToken() != "" && conf.DiscogsUsername() != "" {
		return NewDiscogsAPI(httpClient, conf.DiscogsToken(), conf.DiscogsUsername()), nil
	}
	if conf.IsDevelopment() {
		return &mockedDiscogsAPI{}, nil
	}
	return nil, fmt.Errorf("missing Discogs token or username in non-development environment")
}

func errorFromStatusCode(statusCode int) error {
	switch {
	case statusCode == http.StatusNotFound:
		return domain.ErrReleaseNotFound
	case statusCode == http.StatusTooManyRequests || statusCode == http.StatusServiceUnavailable:
		return domain.ErrTemporarilyUnavailable
	case statusCode >= 500:
		return fmt.Errorf("%w: discogs returned status %d", e.APIServerError, statusCode)
	case statusCode >= 400:
		return fmt.Errorf("%w: discogs returned status %d", e.APIClientError, statusCode)
	}
	return nil
}

// do performs an authenticated request and decodes the JSON response
// into out. Pass a nil out for endpoints whose body we don't need.
func (api discogsAPIImpl) do(ctx context.Context, method, requestURL string, out any) error {
	logger := logging.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, method, requestURL, nil)
	if err != nil {
		err := fmt.Errorf("failed to create request: %w", err)
		logger.Error(err.Error())
		reporting.Report(ctx, err)
		return err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Authorization", fmt.Sprintf("Discogs token=%s", api.token))

	start := time.Now()
	resp, err := api.httpClient.Do(req)
	if err != nil {
		err := fmt.Errorf("failed to send request: %w", err)
		logger.Error(err.Error())
		reporting.Report(ctx, err)
		return err
	}

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		err := fmt.Errorf("failed to read response body: %w", err)
		logger.Error(err.Error())
		reporting.Report(ctx, err)
		return err
	}
	logger.Info("discogs request completed", "method", method, "url", requestURL, "status", resp.StatusCode, "duration", time.Since(start).String())

	if err := errorFromStatusCode(resp.StatusCode); err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		err := fmt.Errorf("failed to parse response (status %d): %w", resp.StatusCode, err)
		logger.Error(err.Error())
		reporting.Report(ctx, err, map[string]string{"data": string(data)})
		return err
	}

	return nil
}

func (api discogsAPIImpl) get(ctx context.Context, requestURL string, out any) error {
	return api.do(ctx, http.MethodGet, requestURL, out)
}

type collectionResponse struct {
	Pagination domain.Pagination       `json:"pagination"`
	Releases   []domain.CollectionItem `json:"releases"`
}

func (api discogsAPIImpl) GetCollectionPage(ctx context.Context, page, perPage int) (domain.CollectionPage, error) {
	requestURL := fmt.Sprintf(
		"%s/users/%s/collection/folders/%d/releases?sort=added&sort_order=desc&page=%d&per_page=%d",
		baseURL, url.PathEscape(api.username), allFolder, page, perPage,
	)

	var response collectionResponse
	if err := api.get(ctx, requestURL, &response); err != nil {
		return domain.CollectionPage{}, fmt.Errorf("failed to get collection page: %w", err)
	}

	return domain.CollectionPage{
		Items:      response.Releases,
		Pagination: response.Pagination,
	}, nil
}

type wantlistResponse struct {
	Pagination domain.Pagination     `json:"pagination"`
	Wants      []domain.WantlistItem `json:"wants"`
}

func (api discogsAPIImpl) GetWantlistPage(ctx context.Context, page, perPage int) (domain.WantlistPage, error) {
	requestURL := fmt.Sprintf(
		"%s/users/%s/wants?page=%d&per_page=%d",
		baseURL, url.PathEscape(api.username), page, perPage,
	)

	var response wantlistResponse
	if err := api.get(ctx, requestURL, &response); err != nil {
		return domain.WantlistPage{}, fmt.Errorf("failed to get wantlist page: %w", err)
	}

	return domain.WantlistPage{
		Items:      response.Wants,
		Pagination: response.Pagination,
	}, nil
}

func (api discogsAPIImpl) SearchReleases(ctx context.Context, query string, page, perPage int) (domain.SearchPage, error) {
	requestURL := fmt.Sprintf(
		"%s/database/search?q=%s&type=release&format=vinyl&page=%d&per_page=%d",
		baseURL, url.QueryEscape(query), page, perPage,
	)

	var response domain.SearchPage
	if err := api.get(ctx, requestURL, &response); err != nil {
		return domain.SearchPage{}, fmt.Errorf("failed to search releases: %w", err)
	}

	return response, nil
}

func (api discogsAPIImpl) GetMarketplaceListings(ctx context.Context, page, perPage int) (domain.ListingsPage, error) {
	requestURL := fmt.Sprintf(
		"%s/users/%s/inventory?status=%s&page=%d&per_page=%d",
		baseURL, url.PathEscape(api.username), url.QueryEscape("For Sale"), page, perPage,
	)

	var response domain.ListingsPage
	if err := api.get(ctx, requestURL, &response); err != nil {
		return domain.ListingsPage{}, fmt.Errorf("failed to get marketplace listings: %w", err)
	}

	for i := range response.Listings {
		response.Listings[i].Condition = domain.AbbreviateCondition(response.Listings[i].Condition)
		response.Listings[i].SleeveCondition = domain.AbbreviateCondition(response.Listings[i].SleeveCondition)
	}

	return response, nil
}

type artistResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Realname string `json:"realname"`
	Members  []struct {
		Name string `json:"name"`
	} `json:"members"`
	Groups []struct {
		Name string `json:"name"`
	} `json:"groups"`
}

func (api discogsAPIImpl) GetArtist(ctx context.Context, artistID int64) (domain.ArtistProfile, error) {
	requestURL := fmt.Sprintf("%s/artists/%d", baseURL, artistID)

	var response artistResponse
	if err := api.get(ctx, requestURL, &response); err != nil {
		return domain.ArtistProfile{}, fmt.Errorf("failed to get artist %d: %w", artistID, err)
	}

	profile := domain.ArtistProfile{
		ID:       response.ID,
		Name:     response.Name,
		Realname: response.Realname,
	}
	for _, member := range response.Members {
		profile.Members = append(profile.Members, member.Name)
	}
	for _, group := range response.Groups {
		profile.Groups = append(profile.Groups, group.Name)
	}
	return profile, nil
}

type masterResponse struct {
	Year int `json:"year"`
}

func (api discogsAPIImpl) GetMasterYear(ctx context.Context, masterID int64) (domain.MasterYear, error) {
	requestURL := fmt.Sprintf("%s/masters/%d", baseURL, masterID)

	var response masterResponse
	if err := api.get(ctx, requestURL, &response); err != nil {
		return domain.MasterYear{}, fmt.Errorf("failed to get master %d: %w", masterID, err)
	}

	if response.Year == 0 {
		// Master exists but has no year. Cache as resolved so we
		// don't look it up again.
		return domain.MasterYear{Known: false}, nil
	}
	return domain.KnownMasterYear(response.Year), nil
}

type releaseResponse struct {
	Country     string   `json:"country"`
	LowestPrice *float64 `json:"lowest_price"`
}

func (api discogsAPIImpl) GetReleaseExtras(ctx context.Context, releaseID int64) (domain.ReleaseExtras, error) {
	requestURL := fmt.Sprintf("%s/releases/%d", baseURL, releaseID)

	var response releaseResponse
	if err := api.get(ctx, requestURL, &response); err != nil {
		return domain.ReleaseExtras{}, fmt.Errorf("failed to get release %d: %w", releaseID, err)
	}

	return domain.ReleaseExtras{
		Country:     response.Country,
		LowestPrice: response.LowestPrice,
	}, nil
}

func (api discogsAPIImpl) GetPriceStats(ctx context.Context, releaseID int64) (domain.PriceStats, error) {
	requestURL := fmt.Sprintf("%s/marketplace/stats/%d?curr_abbr=USD", baseURL, releaseID)

	var response domain.PriceStats
	if err := api.get(ctx, requestURL, &response); err != nil {
		return domain.PriceStats{}, fmt.Errorf("failed to get price stats for release %d: %w", releaseID, err)
	}

	return response, nil
}

type addToCollectionResponse struct {
	InstanceID int64 `json:"instance_id"`
}

func (api discogsAPIImpl) AddToCollection(ctx context.Context, releaseID int64) (int64, error) {
	requestURL := fmt.Sprintf(
		"%s/users/%s/collection/folders/%d/releases/%d",
		baseURL, url.PathEscape(api.username), uncategorizedFolder, releaseID,
	)

	var response addToCollectionResponse
	if err := api.do(ctx, http.MethodPost, requestURL, &response); err != nil {
		return 0, fmt.Errorf("failed to add release %d to collection: %w", releaseID, err)
	}

	return response.InstanceID, nil
}

func (api discogsAPIImpl) RemoveFromCollection(ctx context.Context, releaseID, instanceID int64) error {
	requestURL := fmt.Sprintf(
		"%s/users/%s/collection/folders/%d/releases/%d/instances/%d",
		baseURL, url.PathEscape(api.username), uncategorizedFolder, releaseID, instanceID,
	)

	if err := api.do(ctx, http.MethodDelete, requestURL, nil); err != nil {
		return fmt.Errorf("failed to remove release %d from collection: %w", releaseID, err)
	}
	return nil
}

func (api discogsAPIImpl) AddToWantlist(ctx context.Context, releaseID int64) error {
	requestURL := fmt.Sprintf(
		"%s/users/%s/wants/%d",
		baseURL, url.PathEscape(api.username), releaseID,
	)

	if err := api.do(ctx, http.MethodPut, requestURL, nil); err != nil {
		return fmt.Errorf("failed to add release %d to wantlist: %w", releaseID, err)
	}
	return nil
}

func (api discogsAPIImpl) RemoveFromWantlist(ctx context.Context, releaseID int64) error {
	requestURL := fmt.Sprintf(
		"%s/users/%s/wants/%d",
		baseURL, url.PathEscape(api.username), releaseID,
	)

	if err := api.do(ctx, http.MethodDelete, requestURL, nil); err != nil {
		return fmt.Errorf("failed to remove release %d from wantlist: %w", releaseID, err)
	}
	return nil
}
