package pg_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"exchangerates-service/internal/application"
	"exchangerates-service/internal/domain"
	"exchangerates-service/internal/infrastructure/pg"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func gbp(now time.Time) domain.Currency {
	return domain.Currency{
		Code: "GBP",
		Rates: domain.Rates{
			"USD": decimal.RequireFromString("1.25"),
			"EUR": decimal.RequireFromString("1.20"),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCurrencyStore_InsertFindList(t *testing.T) {
	db := withPostgres(t)
	store := pg.NewCurrencyStore(db)
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 0, 10, 0, 0, time.UTC)

	saved, err := store.Upsert(ctx, gbp(now))
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	got, err := store.FindByCode(ctx, "GBP")
	require.NoError(t, err)
	require.Equal(t, saved.ID, got.ID)
	require.True(t, got.Rates["USD"].Equal(decimal.RequireFromString("1.25")))
	require.True(t, got.CreatedAt.Equal(now))

	codes, err := store.ListCodes(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"GBP"}, codes)

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestCurrencyStore_DuplicateInsertIsAlreadyExists(t *testing.T) {
	db := withPostgres(t)
	store := pg.NewCurrencyStore(db)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := store.Upsert(ctx, gbp(now))
	require.NoError(t, err)
	_, err = store.Upsert(ctx, gbp(now))
	require.ErrorIs(t, err, application.ErrAlreadyExists)
}

func TestCurrencyStore_FindMissing(t *testing.T) {
	db := withPostgres(t)
	_, err := pg.NewCurrencyStore(db).FindByCode(context.Background(), "XYZ")
	require.ErrorIs(t, err, application.ErrNotFound)
}

func TestCurrencyStore_UpdateInUnitOfWork(t *testing.T) {
	db := withPostgres(t)
	store := pg.NewCurrencyStore(db)
	uow := pg.NewUnitOfWork(db)
	ctx := context.Background()
	created := time.Date(2025, 5, 1, 0, 10, 0, 0, time.UTC)

	_, err := store.Upsert(ctx, gbp(created))
	require.NoError(t, err)

	later := created.Add(24 * time.Hour)
	err = uow.Do(ctx, func(ctx context.Context) error {
		cur, err := store.FindByCode(ctx, "GBP")
		if err != nil {
			return err
		}
		cur.Touch(domain.Rates{"USD": decimal.RequireFromString("1.27")}, later)
		_, err = store.Upsert(ctx, cur)
		return err
	})
	require.NoError(t, err)

	got, err := store.FindByCode(ctx, "GBP")
	require.NoError(t, err)
	require.Len(t, got.Rates, 1)
	require.True(t, got.UpdatedAt.Equal(later))
	require.True(t, got.CreatedAt.Equal(created))
}

func TestUnitOfWork_RollbackOnError(t *testing.T) {
	db := withPostgres(t)
	store := pg.NewCurrencyStore(db)
	uow := pg.NewUnitOfWork(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := uow.Do(ctx, func(ctx context.Context) error {
		if _, err := store.Upsert(ctx, gbp(time.Now().UTC())); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	codes, err := store.ListCodes(ctx)
	require.NoError(t, err)
	require.Empty(t, codes)
}
