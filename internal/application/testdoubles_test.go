package application

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"exchangerates-service/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	ErrRepo = errors.New("repo error")
)

type fakeClock struct{ t time.Time }

func (c fakeClock) Now() time.Time { return c.t }

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// fakeStore is an in-memory CurrencyStore that counts writes and can fail per operation.
type fakeStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[string]domain.Currency

	listErr   error
	upsertErr map[string]error
	writes    atomic.Int32
}

func newFakeStore(rows ...domain.Currency) *fakeStore {
	s := &fakeStore{rows: map[string]domain.Currency{}}
	for _, r := range rows {
		s.nextID++
		if r.ID == 0 {
			r.ID = s.nextID
		}
		s.rows[r.Code] = r.Clone()
	}
	return s
}

func (f *fakeStore) ListCodes(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]string, 0, len(f.rows))
	for c := range f.rows {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeStore) FindByCode(_ context.Context, code string) (domain.Currency, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.rows[code]
	if !ok {
		return domain.Currency{}, ErrNotFound
	}
	return c.Clone(), nil
}

func (f *fakeStore) Upsert(_ context.Context, c domain.Currency) (domain.Currency, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.upsertErr[c.Code]; err != nil {
		return domain.Currency{}, err
	}
	if c.ID == 0 {
		if _, ok := f.rows[c.Code]; ok {
			return domain.Currency{}, ErrAlreadyExists
		}
		f.nextID++
		c.ID = f.nextID
	}
	f.writes.Add(1)
	f.rows[c.Code] = c.Clone()
	return c.Clone(), nil
}

func (f *fakeStore) ListAll(context.Context) ([]domain.Currency, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.Currency, 0, len(f.rows))
	for _, c := range f.rows {
		out = append(out, c.Clone())
	}
	return out, nil
}

func (f *fakeStore) row(code string) domain.Currency {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[code].Clone()
}

// fakeFetcher answers per code; codes listed in errs fail, codes in panics panic.
type fakeFetcher struct {
	mu     sync.Mutex
	rates  map[string]domain.Rates
	errs   map[string]error
	panics map[string]bool
	calls  map[string]int
	delay  time.Duration

	inFlight atomic.Int32
	peak     atomic.Int32
}

func (f *fakeFetcher) FetchRates(ctx context.Context, code string) (domain.Rates, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		old := f.peak.Load()
		if n <= old || f.peak.CompareAndSwap(old, n) {
			break
		}
	}

	f.mu.Lock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[code]++
	rates, err, boom := f.rates[code], f.errs[code], f.panics[code]
	f.mu.Unlock()

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if boom {
		panic("upstream exploded for " + code)
	}
	if err != nil {
		return nil, err
	}
	return rates.Clone(), nil
}

func (f *fakeFetcher) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

type recordingObserver struct {
	mu      sync.Mutex
	reports []RefreshReport
	size    int
}

func (o *recordingObserver) RefreshCompleted(r RefreshReport) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.reports = append(o.reports, r)
}

func (o *recordingObserver) CacheSize(n int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.size = n
}

type countingUoW struct{ n atomic.Int32 }

func (u *countingUoW) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	u.n.Add(1)
	return fn(ctx)
}
