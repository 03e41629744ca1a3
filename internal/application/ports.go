package application

//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks

import (
	"context"

	"exchangerates-service/internal/domain"
)

// CurrencyStore is the durable source of truth for known currencies.
type CurrencyStore interface {
	ListCodes(ctx context.Context) ([]string, error)
	FindByCode(ctx context.Context, code string) (domain.Currency, error)
	// Upsert inserts when c.ID is zero and updates the existing row otherwise.
	// Inserting a code that is already stored yields ErrAlreadyExists.
	Upsert(ctx context.Context, c domain.Currency) (domain.Currency, error)
	ListAll(ctx context.Context) ([]domain.Currency, error)
}

type RateFetcher interface {
	FetchRates(ctx context.Context, code string) (domain.Rates, error)
}

// RefreshObserver receives refresh outcomes and cache size changes.
type RefreshObserver interface {
	RefreshCompleted(r RefreshReport)
	CacheSize(n int)
}

type noopObserver struct{}

func (noopObserver) RefreshCompleted(RefreshReport) {}
func (noopObserver) CacheSize(int)                  {}

// UnitOfWork runs fn inside one store transaction carried by ctx.
// A refresh uses it so the read and the rewrite of a record commit together.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// NoopUoW calls fn directly. Used with stores that have no transactions.
type NoopUoW struct{}

func (NoopUoW) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

// Worker is a long-running background loop such as the refresh scheduler.
// Start returns once ctx is cancelled.
type Worker interface {
	Start(ctx context.Context)
}
