package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"exchangerates-service/internal/domain"
	"exchangerates-service/internal/infrastructure/worker"

	"go.uber.org/zap"
)

// RefreshReport summarizes one refresh cycle. It is informational only.
type RefreshReport struct {
	Total       int
	Refreshed   int
	Failed      int
	FailedCodes []string
	Took        time.Duration
}

func (r *RefreshReport) fail(code string) {
	r.Failed++
	r.FailedCodes = append(r.FailedCodes, code)
}

// fetchResult carries either the rates or the error of a single fetch task.
type fetchResult struct {
	code  string
	rates domain.Rates
	err   error
}

// RefreshAll refetches every stored currency and replaces the cached records.
// A failing code is logged and skipped; it keeps its previous rates until the next cycle.
func (s *CurrencyService) RefreshAll(ctx context.Context) (RefreshReport, error) {
	start := s.clock.Now()
	log := s.log.With(zap.String("operation", "RefreshAll"))

	codes, err := s.store.ListCodes(ctx)
	if err != nil {
		log.Error("refresh.list_codes_failed", zap.Error(err))
		return RefreshReport{}, fmt.Errorf("list codes: %w", err)
	}
	report := RefreshReport{Total: len(codes)}
	if len(codes) == 0 {
		log.Info("refresh.no_codes")
		s.observer.RefreshCompleted(report)
		return report, nil
	}
	log.Info("refresh.started", zap.Int("codes", len(codes)), zap.Int("workers", s.poolSize))

	for _, res := range s.fetchAll(ctx, codes) {
		if res.err != nil {
			log.Warn("refresh.fetch_failed", zap.String("code", res.code), zap.Error(res.err))
			report.fail(res.code)
			continue
		}
		if err := s.apply(ctx, res); err != nil {
			log.Error("refresh.persist_failed", zap.String("code", res.code), zap.Error(err))
			report.fail(res.code)
			continue
		}
		report.Refreshed++
	}
	report.Took = s.clock.Now().Sub(start)

	log.Info("refresh.finished",
		zap.Int("refreshed", report.Refreshed),
		zap.Int("failed", report.Failed),
		zap.Strings("failed_codes", report.FailedCodes),
		zap.Duration("took", report.Took),
	)
	s.observer.RefreshCompleted(report)
	s.observer.CacheSize(s.cache.Len())
	return report, nil
}

// fetchAll fans the codes out over a pool scoped to this call and returns one result per code.
func (s *CurrencyService) fetchAll(ctx context.Context, codes []string) []fetchResult {
	pool := worker.NewPool(ctx, s.poolSize, s.log)

	out := make(chan fetchResult, len(codes))
	for _, code := range codes {
		code := code
		if err := ctx.Err(); err != nil {
			out <- fetchResult{code: code, err: err}
			continue
		}
		pool.Go(func(taskCtx context.Context) {
			out <- s.fetchOne(taskCtx, code)
		})
	}
	// Tasks still running after the grace period see a cancelled context and report an error.
	if !pool.Shutdown(s.grace) {
		s.log.Warn("refresh.fetch_cancelled", zap.Duration("grace", s.grace))
	}
	pool.Wait()
	close(out)

	results := make([]fetchResult, 0, len(codes))
	for r := range out {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].code < results[j].code })
	return results
}

func (s *CurrencyService) fetchOne(ctx context.Context, code string) (res fetchResult) {
	res.code = code
	defer func() {
		if r := recover(); r != nil {
			res.rates = nil
			res.err = fmt.Errorf("%w: panic fetching %s: %v", ErrExternalSource, code, r)
		}
	}()
	rates, err := s.fetcher.FetchRates(ctx, code)
	switch {
	case err != nil:
		res.err = asExternal(err)
	case len(rates) == 0:
		res.err = fmt.Errorf("%w: empty rates for %s", ErrExternalSource, code)
	default:
		res.rates = rates
	}
	return res
}

// apply persists the fetched rates for one code and then replaces its cache entry.
func (s *CurrencyService) apply(ctx context.Context, res fetchResult) error {
	var saved domain.Currency
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		cur, err := s.store.FindByCode(ctx, res.code)
		if err != nil {
			return err
		}
		cur.Touch(res.rates, s.clock.Now().UTC())
		saved, err = s.store.Upsert(ctx, cur)
		return err
	})
	if err != nil {
		return err
	}
	s.cache.Put(saved)
	return nil
}
