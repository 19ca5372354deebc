package app

import (
	"fmt"
	"log/slog"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/hieudt/matchday/external/matchapi"
	"github.com/hieudt/matchday/external/notify"
	"github.com/hieudt/matchday/internal/config"
	"github.com/hieudt/matchday/internal/infrastructure/account/clubauth"
	"github.com/hieudt/matchday/internal/infrastructure/repository/memory"
	"github.com/hieudt/matchday/internal/infrastructure/repository/postgres"
	"github.com/hieudt/matchday/internal/interfaces/httpapi"
	"github.com/hieudt/matchday/internal/platform/cache"
	"github.com/hieudt/matchday/internal/platform/logging"
	"github.com/hieudt/matchday/internal/platform/resilience"
	"github.com/hieudt/matchday/internal/usecase"
)

// NewHTTPServer wires the whole service together. The returned cleanup
// closes the database pool and must run after the server has shut down.
func NewHTTPServer(cfg config.Config, logger *slog.Logger, appLogger *logging.Logger) (*http.Server, func(), error) {
	db, err := otelsqlx.Connect(
		"postgres",
		normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	cleanup := func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("close database", "error", closeErr)
		}
	}

	matchClient := matchapi.NewClient(matchapi.ClientConfig{
		BaseURL:    cfg.MatchAPIBaseURL,
		APIKey:     cfg.MatchAPIKey,
		Timeout:    cfg.MatchAPITimeout,
		MaxRetries: cfg.MatchAPIMaxRetries,
		TimeZone:   cfg.MatchAPITimezone,
		Logger:     appLogger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.MatchAPICircuitEnabled,
			FailureThreshold: cfg.MatchAPICircuitFailureCount,
			OpenTimeout:      cfg.MatchAPICircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.MatchAPICircuitHalfOpenMaxReq,
		},
	})

	var publisher usecase.EventPublisher
	if cfg.NotifyEnabled {
		publisher = notify.NewPublisher(notify.PublisherConfig{
			BaseURL: cfg.NotifyBaseURL,
			Token:   cfg.NotifyToken,
			Timeout: cfg.NotifyTimeout,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.NotifyCircuitEnabled,
				FailureThreshold: cfg.NotifyCircuitFailureCount,
				OpenTimeout:      cfg.NotifyCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.NotifyCircuitHalfOpenMaxReq,
			},
		}, logger)
	}

	matchCache := memory.NewMatchCacheRepository()
	discoveryCache := memory.NewDiscoveryCacheRepository()
	selectionRepo := postgres.NewSelectionRepository(db)
	profileCache := cache.NewStore(cfg.ProfileCacheTTL)

	feedSvc := usecase.NewFeedService(
		matchClient,
		matchCache,
		appLogger,
		usecase.WithMatchDuration(cfg.MatchDuration),
		usecase.WithBucketLimit(cfg.BucketPageLimit),
	)
	actionSvc := usecase.NewActionService(matchClient, matchCache, publisher, appLogger)
	overviewSvc := usecase.NewOverviewService(feedSvc, appLogger)
	discoverySvc := usecase.NewDiscoveryService(matchClient, discoveryCache, matchCache, profileCache, appLogger)
	selectionSvc := usecase.NewSelectionService(selectionRepo)

	verifier := clubauth.NewClient(
		&http.Client{Timeout: cfg.ClubAuthTimeout},
		cfg.ClubAuthBaseURL,
		cfg.ClubAuthIntrospectPath,
		cfg.ClubAuthAdminKey,
		logger,
	)

	handler := httpapi.NewHandler(feedSvc, actionSvc, overviewSvc, discoverySvc, selectionSvc, cfg.MatchDuration, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}
