package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"exchangerates-service/internal/domain"

	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 1, 1, 0, 10, 0, 0, time.UTC)

func gbpRates() domain.Rates {
	return domain.Rates{"USD": d("1.25"), "EUR": d("1.20")}
}

func Test_GetDetails_NotFound(t *testing.T) {
	t.Parallel()
	// stored but never loaded into the cache
	store := newFakeStore(domain.Currency{Code: "USD", Rates: domain.Rates{"EUR": d("0.9")}, CreatedAt: t0, UpdatedAt: t0})
	svc := NewCurrencyService(NewRateCache(), store, &fakeFetcher{})

	_, err := svc.GetDetails(context.Background(), "USD")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetDetails(context.Background(), "XYZ")
	require.ErrorIs(t, err, ErrNotFound)
}

func Test_AddCurrency_GBP(t *testing.T) {
	t.Parallel()
	store := newFakeStore()
	fetcher := &fakeFetcher{rates: map[string]domain.Rates{"GBP": gbpRates()}}
	obs := &recordingObserver{}
	svc := NewCurrencyService(NewRateCache(), store, fetcher, WithClock(fakeClock{t: t0}), WithObserver(obs))

	got, err := svc.AddCurrency(context.Background(), "GBP")
	require.NoError(t, err)
	require.Equal(t, "GBP", got.Code)
	require.NotZero(t, got.ID)
	require.Equal(t, t0, got.CreatedAt)
	require.Equal(t, t0, got.UpdatedAt)
	require.True(t, got.Rates["USD"].Equal(d("1.25")))
	require.True(t, got.Rates["EUR"].Equal(d("1.20")))

	persisted := store.row("GBP")
	require.Equal(t, got.ID, persisted.ID)
	require.Equal(t, t0, persisted.CreatedAt)

	details, err := svc.GetDetails(context.Background(), "GBP")
	require.NoError(t, err)
	require.Equal(t, got, details)
	require.Equal(t, []string{"GBP"}, svc.ListKnown(context.Background()))
	require.Equal(t, 1, obs.size)
}

func Test_AddCurrency_RepeatedGBP(t *testing.T) {
	t.Parallel()
	store := newFakeStore()
	fetcher := &fakeFetcher{rates: map[string]domain.Rates{"GBP": gbpRates()}}
	svc := NewCurrencyService(NewRateCache(), store, fetcher, WithClock(fakeClock{t: t0}))

	first, err := svc.AddCurrency(context.Background(), "GBP")
	require.NoError(t, err)

	_, err = svc.AddCurrency(context.Background(), "GBP")
	require.ErrorIs(t, err, ErrAlreadyExists)
	require.Equal(t, 1, fetcher.totalCalls())
	require.Equal(t, int32(1), store.writes.Load())

	details, err := svc.GetDetails(context.Background(), "GBP")
	require.NoError(t, err)
	require.Equal(t, first, details)
}

func Test_AddCurrency_ConcurrentSameCode(t *testing.T) {
	t.Parallel()
	store := newFakeStore()
	fetcher := &fakeFetcher{rates: map[string]domain.Rates{"GBP": gbpRates()}, delay: 10 * time.Millisecond}
	svc := NewCurrencyService(NewRateCache(), store, fetcher)

	const n = 10
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.AddCurrency(context.Background(), "GBP")
		}(i)
	}
	wg.Wait()

	var ok, dup int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrAlreadyExists):
			dup++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, n-1, dup)
	require.Equal(t, 1, fetcher.totalCalls())
	require.Equal(t, int32(1), store.writes.Load())
}

// openGuard lets every caller through so only the store constraint arbitrates.
type openGuard struct{}

func (openGuard) TryReserve(context.Context, string) (bool, error) { return true, nil }
func (openGuard) Release(context.Context, string) error            { return nil }

// barrierFetcher holds every caller until parties callers have arrived.
type barrierFetcher struct {
	wg    sync.WaitGroup
	rates domain.Rates
}

func (b *barrierFetcher) FetchRates(context.Context, string) (domain.Rates, error) {
	b.wg.Done()
	b.wg.Wait()
	return b.rates.Clone(), nil
}

func Test_AddCurrency_StoreConstraintResolvesRace(t *testing.T) {
	t.Parallel()
	store := newFakeStore()
	fetcher := &barrierFetcher{rates: gbpRates()}
	fetcher.wg.Add(2)
	svc := NewCurrencyService(NewRateCache(), store, fetcher, WithGuard(openGuard{}))

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.AddCurrency(context.Background(), "GBP")
		}(i)
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.ErrorIs(t, err, ErrAlreadyExists)
	}
	require.Equal(t, 1, ok)
	require.Equal(t, int32(1), store.writes.Load())
	require.Equal(t, []string{"GBP"}, svc.ListKnown(context.Background()))
}

func Test_AddCurrency_FetchFailures(t *testing.T) {
	t.Parallel()
	cases := map[string]*fakeFetcher{
		"error": {errs: map[string]error{"GBP": errors.New("503 from upstream")}},
		"empty": {rates: map[string]domain.Rates{"GBP": {}}},
	}
	for name, fetcher := range cases {
		t.Run(name, func(t *testing.T) {
			store := newFakeStore()
			svc := NewCurrencyService(NewRateCache(), store, fetcher)

			_, err := svc.AddCurrency(context.Background(), "GBP")
			require.ErrorIs(t, err, ErrExternalSource)
			require.Zero(t, store.writes.Load())
			_, err = svc.GetDetails(context.Background(), "GBP")
			require.ErrorIs(t, err, ErrNotFound)

			// the reservation is released, so a later attempt may succeed
			fetcher.mu.Lock()
			fetcher.errs = nil
			fetcher.rates = map[string]domain.Rates{"GBP": gbpRates()}
			fetcher.mu.Unlock()
			_, err = svc.AddCurrency(context.Background(), "GBP")
			require.NoError(t, err)
		})
	}
}

func Test_AddCurrency_PersistFailureLeavesCacheUntouched(t *testing.T) {
	t.Parallel()
	store := newFakeStore()
	store.upsertErr = map[string]error{"GBP": ErrRepo}
	svc := NewCurrencyService(NewRateCache(), store, &fakeFetcher{rates: map[string]domain.Rates{"GBP": gbpRates()}})

	_, err := svc.AddCurrency(context.Background(), "GBP")
	require.ErrorIs(t, err, ErrRepo)
	require.Empty(t, svc.ListKnown(context.Background()))
}

func Test_AddCurrency_InvalidCode(t *testing.T) {
	t.Parallel()
	fetcher := &fakeFetcher{}
	svc := NewCurrencyService(NewRateCache(), newFakeStore(), fetcher)

	for _, code := range []string{"", "GB", "GBPX", "G8P"} {
		_, err := svc.AddCurrency(context.Background(), code)
		require.ErrorIs(t, err, ErrBadRequest, code)
		require.ErrorIs(t, err, domain.ErrInvalidCode, code)
	}
	require.Zero(t, fetcher.totalCalls())
}

func Test_AddCurrency_NormalizesCode(t *testing.T) {
	t.Parallel()
	svc := NewCurrencyService(NewRateCache(), newFakeStore(), &fakeFetcher{rates: map[string]domain.Rates{"GBP": gbpRates()}})
	got, err := svc.AddCurrency(context.Background(), " gbp ")
	require.NoError(t, err)
	require.Equal(t, "GBP", got.Code)
}

func Test_Initialize(t *testing.T) {
	t.Parallel()
	store := newFakeStore(
		domain.Currency{Code: "USD", Rates: domain.Rates{"EUR": d("0.9")}, CreatedAt: t0, UpdatedAt: t0},
		domain.Currency{Code: "EUR", Rates: domain.Rates{"USD": d("1.1")}, CreatedAt: t0, UpdatedAt: t0},
	)
	fetcher := &fakeFetcher{}
	svc := NewCurrencyService(NewRateCache(), store, fetcher)
	require.False(t, svc.Ready())

	require.NoError(t, svc.Initialize(context.Background()))
	require.True(t, svc.Ready())

	codes, err := store.ListCodes(context.Background())
	require.NoError(t, err)
	require.Equal(t, codes, svc.ListKnown(context.Background()))
	require.Zero(t, fetcher.totalCalls())
	require.Zero(t, store.writes.Load())

	usd, err := svc.GetDetails(context.Background(), "usd")
	require.NoError(t, err)
	require.True(t, usd.Rates["EUR"].Equal(d("0.9")))
}

func Test_Initialize_StoreError(t *testing.T) {
	t.Parallel()
	store := newFakeStore()
	store.listErr = ErrRepo
	svc := NewCurrencyService(NewRateCache(), store, &fakeFetcher{})

	err := svc.Initialize(context.Background())
	require.ErrorIs(t, err, ErrRepo)
	require.False(t, svc.Ready())
}

func Test_GetDetails_ReturnsCopy(t *testing.T) {
	t.Parallel()
	svc := NewCurrencyService(NewRateCache(), newFakeStore(), &fakeFetcher{rates: map[string]domain.Rates{"GBP": gbpRates()}})
	_, err := svc.AddCurrency(context.Background(), "GBP")
	require.NoError(t, err)

	c, err := svc.GetDetails(context.Background(), "GBP")
	require.NoError(t, err)
	c.Rates["USD"] = d("99")
	delete(c.Rates, "EUR")

	again, err := svc.GetDetails(context.Background(), "GBP")
	require.NoError(t, err)
	require.True(t, again.Rates["USD"].Equal(d("1.25")))
	require.Len(t, again.Rates, 2)
}
