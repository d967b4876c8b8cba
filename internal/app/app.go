package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/fpl-annoyer/external/fpl"
	"github.com/riskibarqy/fpl-annoyer/internal/config"
	domainfpl "github.com/riskibarqy/fpl-annoyer/internal/domain/fpl"
	"github.com/riskibarqy/fpl-annoyer/internal/domain/item"
	cacherepo "github.com/riskibarqy/fpl-annoyer/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fpl-annoyer/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fpl-annoyer/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fpl-annoyer/internal/interfaces/httpapi"
	"github.com/riskibarqy/fpl-annoyer/internal/observability"
	"github.com/riskibarqy/fpl-annoyer/internal/platform/cache"
	"github.com/riskibarqy/fpl-annoyer/internal/platform/logging"
	"github.com/riskibarqy/fpl-annoyer/internal/platform/resilience"
	"github.com/riskibarqy/fpl-annoyer/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const dbPingTimeout = 5 * time.Second

// Server bundles the HTTP server with the resources it owns.
type Server struct {
	*http.Server
	closers []func() error
}

// Release frees pools and connections once the listener has stopped.
func (s *Server) Release() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	out := &Server{}

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics()
	}

	source := newFPLSource(cfg, logger, metrics)

	itemRepo, closeItems, err := newItemRepository(cfg, logger)
	if err != nil {
		return nil, err
	}
	out.closers = append(out.closers, closeItems)

	watchdogSvc := usecase.NewWatchdogService(source, logger)
	performanceSvc := usecase.NewPerformanceService(source, logger)
	chipSvc := usecase.NewChipService(source, logger)
	teamSvc := usecase.NewTeamService(source, logger)
	itemSvc := usecase.NewItemService(itemRepo, logger)
	digestSvc, err := usecase.NewDigestService(teamSvc, watchdogSvc, performanceSvc, chipSvc, cfg.DigestWorkers, logger)
	if err != nil {
		_ = out.Release()
		return nil, err
	}
	out.closers = append(out.closers, func() error {
		digestSvc.Close()
		return nil
	})

	handler := httpapi.NewHandler(watchdogSvc, performanceSvc, chipSvc, teamSvc, digestSvc, itemSvc, logger)
	routerCfg := httpapi.RouterConfig{CORSAllowedOrigins: cfg.CORSAllowedOrigins}
	if metrics != nil {
		routerCfg.Metrics = metrics.Handler()
		routerCfg.Observer = metrics
	}

	out.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, logger, routerCfg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return out, nil
}

func newFPLSource(cfg config.Config, logger *logging.Logger, metrics *observability.Metrics) domainfpl.Source {
	clientCfg := fpl.ClientConfig{
		BaseURL:    cfg.FPLBaseURL,
		UserAgent:  cfg.FPLUserAgent,
		Timeout:    cfg.FPLTimeout,
		MaxRetries: cfg.FPLMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Name:             "fpl",
			Enabled:          cfg.FPLCircuitEnabled,
			FailureThreshold: cfg.FPLCircuitFailureCount,
			OpenTimeout:      cfg.FPLCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FPLCircuitHalfOpenMaxReq,
			OnStateChange: func(name string, from, to resilience.CircuitState) {
				logger.Warn("circuit breaker state changed", "name", name, "from", from, "to", to)
				metrics.BreakerStateChanged(name, from, to)
			},
		},
	}
	var recorder cache.Recorder
	if metrics != nil {
		clientCfg.Observer = metrics
		recorder = metrics
	}

	var source domainfpl.Source = fpl.NewClient(clientCfg)
	if !cfg.CacheEnabled {
		logger.Info("fpl snapshot cache disabled", "reason", "CACHE_ENABLED=false")
		return source
	}

	logger.Info("fpl snapshot cache enabled", "ttl", cfg.CacheTTL)
	return cacherepo.NewSource(
		source,
		cache.NewStore[domainfpl.Bootstrap]("bootstrap", cfg.CacheTTL, recorder),
		cache.NewStore[[]domainfpl.Fixture]("fixtures", cfg.CacheTTL, recorder),
	)
}

func newItemRepository(cfg config.Config, logger *logging.Logger) (item.Repository, func() error, error) {
	if cfg.ItemStore != config.ItemStorePostgres {
		logger.Info("item store ready", "store", config.ItemStoreMemory)
		return memory.NewItemRepository(nil), func() error { return nil }, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("item store ready", "store", config.ItemStorePostgres, "db_name", dbNameFromURL(cfg.DBURL))
	return postgres.NewItemRepository(db), db.Close, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := NormalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}
