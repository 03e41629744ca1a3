package httpserver

import (
	"context"
	"errors"
	"sync"
	"time"

	"exchangerates-service/internal/application"
	"exchangerates-service/internal/domain"

	"github.com/shopspring/decimal"
)

var _ application.CurrencyStore = (*memStore)(nil)
var _ application.RateFetcher = (*stubFetcher)(nil)

type memStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[string]domain.Currency
}

func (m *memStore) ListCodes(context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for c := range m.rows {
		out = append(out, c)
	}
	return out, nil
}

func (m *memStore) FindByCode(_ context.Context, code string) (domain.Currency, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[code]
	if !ok {
		return domain.Currency{}, application.ErrNotFound
	}
	return c.Clone(), nil
}

func (m *memStore) Upsert(_ context.Context, c domain.Currency) (domain.Currency, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rows == nil {
		m.rows = map[string]domain.Currency{}
	}
	if c.ID == 0 {
		if _, ok := m.rows[c.Code]; ok {
			return domain.Currency{}, application.ErrAlreadyExists
		}
		m.nextID++
		c.ID = m.nextID
	}
	m.rows[c.Code] = c.Clone()
	return c, nil
}

func (m *memStore) ListAll(context.Context) ([]domain.Currency, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Currency
	for _, c := range m.rows {
		out = append(out, c.Clone())
	}
	return out, nil
}

type stubFetcher struct {
	rates domain.Rates
	err   error
}

func (f *stubFetcher) FetchRates(context.Context, string) (domain.Rates, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rates.Clone(), nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// brokenService fails every call with err.
type brokenService struct{ err error }

func (b brokenService) ListKnown(context.Context) []string { return nil }
func (b brokenService) GetDetails(context.Context, string) (domain.Currency, error) {
	return domain.Currency{}, b.err
}
func (b brokenService) AddCurrency(context.Context, string) (domain.Currency, error) {
	return domain.Currency{}, b.err
}
func (b brokenService) Ready() bool { return true }

var errBoom = errors.New("boom")

func gbpRates() domain.Rates {
	return domain.Rates{
		"USD": decimal.RequireFromString("1.25"),
		"EUR": decimal.RequireFromString("1.20"),
	}
}
