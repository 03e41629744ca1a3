package application

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"exchangerates-service/internal/domain"

	"go.uber.org/zap"
)

const (
	DefaultPoolSize      = 5
	DefaultShutdownGrace = 60 * time.Second
)

// CurrencyService keeps the rate cache consistent with the store.
// Reads are served from the cache; every write goes to the store first.
type CurrencyService struct {
	cache    *RateCache
	store    CurrencyStore
	fetcher  RateFetcher
	guard    AddGuard
	uow      UnitOfWork
	observer RefreshObserver
	clock    Clock
	log      *zap.Logger

	poolSize int
	grace    time.Duration
	ready    atomic.Bool
}

type Option func(*CurrencyService)

func WithClock(c Clock) Option                 { return func(s *CurrencyService) { s.clock = c } }
func WithLogger(l *zap.Logger) Option          { return func(s *CurrencyService) { s.log = l } }
func WithGuard(g AddGuard) Option              { return func(s *CurrencyService) { s.guard = g } }
func WithUnitOfWork(u UnitOfWork) Option       { return func(s *CurrencyService) { s.uow = u } }
func WithObserver(o RefreshObserver) Option    { return func(s *CurrencyService) { s.observer = o } }
func WithPoolSize(n int) Option                { return func(s *CurrencyService) { s.poolSize = n } }
func WithShutdownGrace(d time.Duration) Option { return func(s *CurrencyService) { s.grace = d } }

func NewCurrencyService(cache *RateCache, store CurrencyStore, fetcher RateFetcher, opts ...Option) *CurrencyService {
	s := &CurrencyService{
		cache:   cache,
		store:   store,
		fetcher: fetcher,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache = NewRateCache()
	}
	if s.clock == nil {
		s.clock = realClock{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.guard == nil {
		s.guard = &LocalAddGuard{}
	}
	if s.uow == nil {
		s.uow = NoopUoW{}
	}
	if s.observer == nil {
		s.observer = noopObserver{}
	}
	if s.poolSize <= 0 {
		s.poolSize = DefaultPoolSize
	}
	if s.grace <= 0 {
		s.grace = DefaultShutdownGrace
	}
	return s
}

// Initialize loads every stored currency into the cache. No rates are fetched.
func (s *CurrencyService) Initialize(ctx context.Context) error {
	all, err := s.store.ListAll(ctx)
	if err != nil {
		s.log.Error("cache.init_failed", zap.Error(err))
		return fmt.Errorf("load currencies: %w", err)
	}
	for _, c := range all {
		s.cache.Put(c)
	}
	s.ready.Store(true)
	s.observer.CacheSize(s.cache.Len())
	s.log.Info("cache.initialized", zap.Int("currencies", len(all)))
	return nil
}

// Ready reports whether Initialize has completed.
func (s *CurrencyService) Ready() bool { return s.ready.Load() }

func (s *CurrencyService) ListKnown(context.Context) []string {
	return s.cache.Codes()
}

func (s *CurrencyService) GetDetails(_ context.Context, code string) (domain.Currency, error) {
	code = domain.NormalizeCode(code)
	c, ok := s.cache.Get(code)
	if !ok {
		return domain.Currency{}, fmt.Errorf("%w: currency with code %s not found", ErrNotFound, code)
	}
	return c, nil
}

// AddCurrency registers a new base currency: fetch, persist, then cache.
func (s *CurrencyService) AddCurrency(ctx context.Context, code string) (domain.Currency, error) {
	code = domain.NormalizeCode(code)
	if !domain.ValidCode(code) {
		return domain.Currency{}, fmt.Errorf("%w: %q: %w", ErrBadRequest, code, domain.ErrInvalidCode)
	}
	if s.cache.Has(code) {
		return domain.Currency{}, alreadyExists(code)
	}

	log := s.log.With(zap.String("operation", "AddCurrency"), zap.String("code", code))
	ok, err := s.guard.TryReserve(ctx, code)
	if err != nil {
		return domain.Currency{}, fmt.Errorf("reserve %s: %w", code, err)
	}
	if !ok {
		log.Info("currency.add_in_progress")
		return domain.Currency{}, alreadyExists(code)
	}
	defer func() {
		if err := s.guard.Release(context.WithoutCancel(ctx), code); err != nil {
			log.Warn("currency.release_failed", zap.Error(err))
		}
	}()
	// a concurrent add may have finished between the first check and the reservation
	if s.cache.Has(code) {
		return domain.Currency{}, alreadyExists(code)
	}

	rates, err := s.fetcher.FetchRates(ctx, code)
	if err != nil {
		log.Warn("currency.fetch_failed", zap.Error(err))
		return domain.Currency{}, fmt.Errorf("fetch %s: %w", code, asExternal(err))
	}
	if len(rates) == 0 {
		log.Warn("currency.fetch_empty")
		return domain.Currency{}, fmt.Errorf("%w: empty rates for %s", ErrExternalSource, code)
	}

	now := s.clock.Now().UTC()
	saved, err := s.store.Upsert(ctx, domain.Currency{
		Code:      code,
		Rates:     rates,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		log.Error("currency.persist_failed", zap.Error(err))
		return domain.Currency{}, fmt.Errorf("persist %s: %w", code, err)
	}
	s.cache.Put(saved)
	s.observer.CacheSize(s.cache.Len())
	log.Info("currency.added", zap.Int("rates", len(saved.Rates)))
	return saved.Clone(), nil
}
