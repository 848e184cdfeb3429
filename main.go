package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "golang.org/x/crypto/x509roots/fallback"

	"vinylvault/internal/adapters/cache"
	"vinylvault/internal/adapters/cachestore"
	"vinylvault/internal/adapters/discogs"
	"vinylvault/internal/app"
	"vinylvault/internal/config"
	"vinylvault/internal/domain"
	"vinylvault/internal/enrichment"
	"vinylvault/internal/ports"
	"vinylvault/internal/ratelimiting"
	"vinylvault/internal/reporting"
	"vinylvault/internal/telemetry"
)

// TODO: Put in config
const PROD_DOMAIN_SUFFIX = "vinylvault.app"

func newStore(conf config.Config, logger *slog.Logger) (cachestore.Store, error) {
	switch conf.CacheBackend() {
	case config.CacheBackendFile:
		return cachestore.NewFileStore(conf.DataDir()), nil
	case config.CacheBackendSQLite:
		return cachestore.NewSQLiteStore(filepath.Join(conf.DataDir(), "cache.db"))
	case config.CacheBackendPostgres:
		db, err := cachestore.NewPostgresDatabase(conf)
		if err != nil {
			return nil, err
		}
		schema := cachestore.GetSchemaName(!conf.IsProduction())
		return cachestore.NewPostgresStore(context.Background(), db, schema, logger.With("component", "migrator"))
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", conf.CacheBackend())
	}
}

func main() {
	instanceID := uuid.New().String()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("instanceID", instanceID)

	fail := func(msg string, args ...any) {
		logger.Error(msg, args...)
		os.Exit(1)
	}

	conf, err := config.ConfigFromEnv()
	if err != nil {
		fail("Failed to load config", "error", err.Error())
	}
	logger.Info("Loaded config", "config", conf.NonSensitiveString())

	if conf.IsProduction() {
		shutdown, err := telemetry.SetupOTelSDK(context.Background(), "vinylvault")
		if err != nil {
			fail("Failed to initialize telemetry", "error", err.Error())
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Error("Failed to shut down telemetry", "error", err.Error())
			}
		}()
		logger.Info("Initialized telemetry")
	}

	sentryMiddleware, flush, err := reporting.NewSentryMiddlewareOrMock(conf)
	if err != nil {
		fail("Failed to initialize Sentry", "error", err.Error())
	}
	defer flush()
	logger.Info("Initialized Sentry middleware")

	store, err := newStore(conf, logger)
	if err != nil {
		fail("Failed to initialize cache store", "error", err.Error())
	}
	logger.Info("Initialized cache store", "backend", string(conf.CacheBackend()))

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}
	discogsAPI, err := discogs.NewDiscogsAPIOrMock(conf, httpClient)
	if err != nil {
		fail("Failed to initialize Discogs API", "error", err.Error())
	}
	logger.Info("Initialized Discogs API")

	pacer := ratelimiting.NewFixedDelayPacer(enrichment.LookupDelay, nil)

	artistTypes := enrichment.NewArtistTypeFetcher(store, discogsAPI, pacer)
	masterYears := enrichment.NewMasterYearFetcher(store, discogsAPI, pacer)
	releaseExtras := enrichment.NewReleaseExtrasFetcher(store, discogsAPI, pacer)
	defer artistTypes.Stop()
	defer masterYears.Stop()
	defer releaseExtras.Stop()

	fetchers := ports.Fetchers{
		ArtistTypes:   artistTypes,
		MasterYears:   masterYears,
		ReleaseExtras: releaseExtras,
	}

	collectionCache := cache.NewTTLCache[domain.CollectionPage](1 * time.Minute)
	wantlistCache := cache.NewTTLCache[domain.WantlistPage](1 * time.Minute)
	searchCache := cache.NewTTLCache[domain.SearchPage](1 * time.Hour)
	listingsCache := cache.NewTTLCache[domain.ListingsPage](1 * time.Minute)

	getCollection := app.BuildGetCollection(discogsAPI, collectionCache)
	getWantlist := app.BuildGetWantlist(discogsAPI, wantlistCache)
	searchCatalog := app.BuildSearchCatalog(discogsAPI, searchCache)
	getListings := app.BuildGetMarketplaceListings(discogsAPI, listingsCache)

	addToCollection := app.BuildAddToCollection(discogsAPI)
	removeFromCollection := app.BuildRemoveFromCollection(discogsAPI)
	addToWantlist := app.BuildAddToWantlist(discogsAPI)
	removeFromWantlist := app.BuildRemoveFromWantlist(discogsAPI)

	checkDuplicate := app.BuildCheckDuplicate(discogsAPI)
	getStats := app.BuildGetCollectionStats(discogsAPI)
	estimateValue := app.BuildEstimateCollectionValue(discogsAPI, discogsAPI, pacer)
	getShared := app.BuildGetSharedCollection(discogsAPI, conf.DiscogsUsername())

	allowedOrigins, err := ports.NewDomainSuffixes(PROD_DOMAIN_SUFFIX)
	if err != nil {
		fail("Failed to initialize allowed origins", "error", err.Error())
	}

	deps := ports.HandlerDeps{
		AllowedOrigins:   allowedOrigins,
		RootLogger:       logger,
		SentryMiddleware: sentryMiddleware,
	}

	corsHandler := ports.BuildCORSHandler(allowedOrigins)

	http.HandleFunc("OPTIONS /v1/collection", corsHandler)
	http.HandleFunc("GET /v1/collection", ports.MakeGetCollectionHandler(getCollection, fetchers, deps))
	http.HandleFunc("POST /v1/collection", ports.MakeAddToCollectionHandler(addToCollection, deps))

	http.HandleFunc("OPTIONS /v1/collection/remove", corsHandler)
	http.HandleFunc("POST /v1/collection/remove", ports.MakeRemoveFromCollectionHandler(removeFromCollection, deps))

	http.HandleFunc("OPTIONS /v1/collection/check-duplicate", corsHandler)
	http.HandleFunc("POST /v1/collection/check-duplicate", ports.MakeCheckDuplicateHandler(checkDuplicate, deps))

	http.HandleFunc("OPTIONS /v1/wantlist", corsHandler)
	http.HandleFunc("GET /v1/wantlist", ports.MakeGetWantlistHandler(getWantlist, deps))
	http.HandleFunc("POST /v1/wantlist", ports.MakeAddToWantlistHandler(addToWantlist, deps))

	http.HandleFunc("OPTIONS /v1/wantlist/remove", corsHandler)
	http.HandleFunc("POST /v1/wantlist/remove", ports.MakeRemoveFromWantlistHandler(removeFromWantlist, deps))

	http.HandleFunc("OPTIONS /v1/search", corsHandler)
	http.HandleFunc("GET /v1/search", ports.MakeSearchCatalogHandler(searchCatalog, deps))

	http.HandleFunc("OPTIONS /v1/stats", corsHandler)
	http.HandleFunc("GET /v1/stats", ports.MakeGetStatsHandler(getStats, deps))

	http.HandleFunc("OPTIONS /v1/stats/value", corsHandler)
	http.HandleFunc("GET /v1/stats/value", ports.MakeEstimateValueHandler(estimateValue, deps))

	http.HandleFunc("OPTIONS /v1/artist-type/{id}", corsHandler)
	http.HandleFunc("GET /v1/artist-type/{id}", ports.MakeArtistTypeHandler(artistTypes, deps))

	http.HandleFunc("OPTIONS /v1/master-year/{id}", corsHandler)
	http.HandleFunc("GET /v1/master-year/{id}", ports.MakeMasterYearHandler(masterYears, deps))

	http.HandleFunc("OPTIONS /v1/release/{id}", corsHandler)
	http.HandleFunc("GET /v1/release/{id}", ports.MakeReleaseExtrasHandler(releaseExtras, deps))

	http.HandleFunc("OPTIONS /v1/release/{id}/price", corsHandler)
	http.HandleFunc("GET /v1/release/{id}/price", ports.MakePriceStatsHandler(discogsAPI, deps))

	http.HandleFunc("OPTIONS /v1/share/collection", corsHandler)
	http.HandleFunc("GET /v1/share/collection", ports.MakeSharedCollectionHandler(getShared, deps))

	http.HandleFunc("OPTIONS /v1/marketplace", corsHandler)
	http.HandleFunc("GET /v1/marketplace", ports.MakeMarketplaceListingsHandler(getListings, deps))

	logger.Info("Init complete")
	err = http.ListenAndServe(fmt.Sprintf(":%s", conf.Port()), nil)
	if errors.Is(err, http.ErrServerClosed) {
		logger.Info("Server shutdown")
	} else {
		fail("Server error", "error", err.Error())
	}
}
