package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"exchangerates-service/internal/application"
	"exchangerates-service/internal/config"
	httpserver "exchangerates-service/internal/infrastructure/http"
	"exchangerates-service/internal/infrastructure/httpx"
	"exchangerates-service/internal/infrastructure/logx"
	"exchangerates-service/internal/infrastructure/metrics"
	"exchangerates-service/internal/infrastructure/pg"
	"exchangerates-service/internal/infrastructure/provider"
	redisstore "exchangerates-service/internal/infrastructure/redis"
	"exchangerates-service/internal/infrastructure/scheduler"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrMissingDBURL = errors.New("DATABASE_URL is required")

// App is everything cmd/api needs to serve traffic and run the refresh schedule.
type App struct {
	Service *application.CurrencyService
	Handler http.Handler
	// Scheduler is nil when scheduling is disabled.
	Scheduler application.Worker
}

func ProvideLogger(cfg config.Config) *zap.Logger {
	logx.SetLevel(cfg.LogLevel)
	return logx.L()
}

func ProvideDB(ctx context.Context, log *zap.Logger, cfg config.Config) (*pg.DB, func(), error) {
	if cfg.DatabaseURL == "" {
		return nil, func() {}, ErrMissingDBURL
	}
	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, func() {}, err
	}
	if err := pg.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, func() {}, err
	}
	cleanup := func() {
		log.Info("closing pg")
		db.Close()
	}
	return db, cleanup, nil
}

func ProvideStore(db *pg.DB) application.CurrencyStore { return pg.NewCurrencyStore(db) }

func ProvideUnitOfWork(db *pg.DB) application.UnitOfWork { return pg.NewUnitOfWork(db) }

// ProvideAddGuard returns the in-process guard, or a Redis backed one when ADD_GUARD_BACKEND=redis.
func ProvideAddGuard(ctx context.Context, log *zap.Logger, cfg config.Config) (application.AddGuard, func(), error) {
	if cfg.AddGuardBackend != "redis" {
		return &application.LocalAddGuard{}, func() {}, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, func() {}, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
	}
	cleanup := func() {
		log.Info("closing redis")
		_ = client.Close()
	}
	return redisstore.NewAddGuard(client, cfg.AddGuardTTL), cleanup, nil
}

func ProvideRateFetcher(cfg config.Config) application.RateFetcher {
	switch cfg.Provider {
	case "fake":
		return provider.NewFake(decimal.RequireFromString("1.2345"))
	default:
		return &provider.ExchangeRatesAPIProvider{
			BaseURL:    cfg.ExchangeAPIBase,
			LatestPath: cfg.ExchangeAPILatestPath,
			APIKey:     cfg.ExchangeAPIKey,
			Client: &httpx.Client{
				HTTP:   &http.Client{Timeout: cfg.RequestTimeout},
				Header: http.Header{"User-Agent": []string{"exchangerates-service/1.0"}},
			},
		}
	}
}

func ProvideMetrics() *metrics.Metrics { return metrics.NewMetrics() }

func ProvideRateCache() *application.RateCache { return application.NewRateCache() }

func ProvideCurrencyService(
	cache *application.RateCache,
	store application.CurrencyStore,
	fetcher application.RateFetcher,
	guard application.AddGuard,
	uow application.UnitOfWork,
	m *metrics.Metrics,
	log *zap.Logger,
	cfg config.Config,
) *application.CurrencyService {
	return application.NewCurrencyService(cache, store, fetcher,
		application.WithGuard(guard),
		application.WithUnitOfWork(uow),
		application.WithObserver(m),
		application.WithLogger(log.With(zap.String("service", "currency"))),
		application.WithPoolSize(cfg.RefreshWorkers),
		application.WithShutdownGrace(cfg.RefreshShutdownGrace),
	)
}

func ProvideScheduler(svc *application.CurrencyService, log *zap.Logger, cfg config.Config) (application.Worker, error) {
	if !cfg.SchedulingEnabled {
		log.Info("scheduling disabled")
		return nil, nil
	}
	s, err := scheduler.New(svc, cfg.RefreshSchedule, log)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func ProvideServer(svc *application.CurrencyService, db *pg.DB, m *metrics.Metrics) *httpserver.Server {
	s := httpserver.NewServer(svc)
	s.SetReadyCheck(db.Ping)
	s.SetMetrics(m)
	return s
}

func ProvideApp(svc *application.CurrencyService, srv *httpserver.Server, w application.Worker) *App {
	return &App{
		Service:   svc,
		Handler:   httpserver.NewRouter(srv),
		Scheduler: w,
	}
}
