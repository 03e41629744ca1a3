//go:build wireinject

package bootstrap

import (
	"context"

	"exchangerates-service/internal/config"

	"github.com/google/wire"
)

var infraSet = wire.NewSet(
	ProvideLogger,
	ProvideDB,
	ProvideStore,
	ProvideUnitOfWork,
	ProvideAddGuard,
	ProvideRateFetcher,
	ProvideMetrics,
)

var appSet = wire.NewSet(
	infraSet,
	ProvideRateCache,
	ProvideCurrencyService,
	ProvideScheduler,
	ProvideServer,
	ProvideApp,
)

// InitApp builds the API process: cache, service, HTTP handler and scheduler.
func InitApp(ctx context.Context, cfg config.Config) (*App, func(), error) {
	wire.Build(appSet)
	return nil, nil, nil
}
