package provider

import (
	"context"

	"exchangerates-service/internal/application"
	"exchangerates-service/internal/domain"

	"github.com/shopspring/decimal"
)

// Ensure Fake implements application.RateFetcher.
var _ application.RateFetcher = (*Fake)(nil)

// Fake quotes every base against a fixed set of currencies at a constant rate. Used with PROVIDER=fake.
type Fake struct {
	rate    decimal.Decimal
	symbols []string
}

func NewFake(rate decimal.Decimal, symbols ...string) *Fake {
	if len(symbols) == 0 {
		symbols = []string{"USD", "EUR", "GBP", "JPY", "CHF"}
	}
	return &Fake{rate: rate, symbols: symbols}
}

func (f *Fake) FetchRates(_ context.Context, code string) (domain.Rates, error) {
	out := make(domain.Rates, len(f.symbols))
	for _, s := range f.symbols {
		if s == code {
			out[s] = decimal.NewFromInt(1)
			continue
		}
		out[s] = f.rate
	}
	return out, nil
}
