package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"exchangerates-service/internal/application"
	"exchangerates-service/internal/domain"
	"exchangerates-service/internal/infrastructure/logx"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

var _ application.CurrencyStore = (*CurrencyStore)(nil)

type CurrencyStore struct{ db *DB }

func NewCurrencyStore(db *DB) *CurrencyStore { return &CurrencyStore{db: db} }

func (s *CurrencyStore) q(ctx context.Context) querier {
	if tx := txFromCtx(ctx); tx != nil {
		return tx
	}
	return s.db.Pool
}

func (s *CurrencyStore) ListCodes(ctx context.Context) ([]string, error) {
	const q = `SELECT code FROM currency ORDER BY code`
	log := logx.L().With(
		zap.String("repo", "currency"),
		zap.String("operation", "ListCodes"),
	)
	rows, err := s.q(ctx).Query(ctx, q)
	if err != nil {
		log.Error("sql.query_failed", zap.Error(err))
		return nil, err
	}
	codes, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		log.Error("sql.scan_failed", zap.Error(err))
		return nil, err
	}
	log.Debug("sql.query_success", zap.Int("rows", len(codes)))
	return codes, nil
}

func (s *CurrencyStore) FindByCode(ctx context.Context, code string) (domain.Currency, error) {
	q := `SELECT id, code, rates, created_on, updated_on FROM currency WHERE code=$1`
	if txFromCtx(ctx) != nil {
		q += ` FOR UPDATE`
	}
	log := logx.L().With(
		zap.String("repo", "currency"),
		zap.String("operation", "FindByCode"),
		zap.String("code", code),
	)
	out, err := scanCurrency(s.q(ctx).QueryRow(ctx, q, code))
	if errors.Is(err, pgx.ErrNoRows) {
		log.Info("sql.query_no_rows")
		return domain.Currency{}, fmt.Errorf("%w: currency with code %s not found", application.ErrNotFound, code)
	}
	if err != nil {
		log.Error("sql.query_failed", zap.Error(err))
		return domain.Currency{}, err
	}
	return out, nil
}

func (s *CurrencyStore) ListAll(ctx context.Context) ([]domain.Currency, error) {
	const q = `SELECT id, code, rates, created_on, updated_on FROM currency ORDER BY code`
	log := logx.L().With(
		zap.String("repo", "currency"),
		zap.String("operation", "ListAll"),
	)
	rows, err := s.q(ctx).Query(ctx, q)
	if err != nil {
		log.Error("sql.query_failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	var out []domain.Currency
	for rows.Next() {
		c, err := scanCurrency(rows)
		if err != nil {
			log.Error("sql.scan_failed", zap.Error(err))
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		log.Error("sql.query_failed", zap.Error(err))
		return nil, err
	}
	log.Info("sql.query_success", zap.Int("rows", len(out)))
	return out, nil
}

func (s *CurrencyStore) Upsert(ctx context.Context, c domain.Currency) (domain.Currency, error) {
	raw, err := json.Marshal(c.Rates)
	if err != nil {
		return domain.Currency{}, fmt.Errorf("encode rates: %w", err)
	}
	// timestamptz keeps microseconds; the returned record must match what a later read sees.
	c.CreatedAt = c.CreatedAt.UTC().Truncate(time.Microsecond)
	c.UpdatedAt = c.UpdatedAt.UTC().Truncate(time.Microsecond)
	if c.ID == 0 {
		return s.insert(ctx, c, raw)
	}
	return s.update(ctx, c, raw)
}

func (s *CurrencyStore) insert(ctx context.Context, c domain.Currency, raw []byte) (domain.Currency, error) {
	const ins = `
        INSERT INTO currency(code, rates, created_on, updated_on)
        VALUES ($1, $2, $3, $4)
        RETURNING id`
	log := logx.L().With(
		zap.String("repo", "currency"),
		zap.String("operation", "Insert"),
		zap.String("code", c.Code),
	)
	log.Info("sql.exec_start")
	err := s.q(ctx).QueryRow(ctx, ins, c.Code, raw, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		log.Info("sql.exec_duplicate")
		return domain.Currency{}, fmt.Errorf("%w: currency with code %s already exists", application.ErrAlreadyExists, c.Code)
	}
	if err != nil {
		log.Error("sql.exec_failed", zap.Error(err))
		return domain.Currency{}, err
	}
	log.Info("sql.exec_success", zap.Int64("id", c.ID))
	return c, nil
}

func (s *CurrencyStore) update(ctx context.Context, c domain.Currency, raw []byte) (domain.Currency, error) {
	const up = `
        UPDATE currency
        SET rates=$2, updated_on=$3
        WHERE id=$1`
	log := logx.L().With(
		zap.String("repo", "currency"),
		zap.String("operation", "Update"),
		zap.Int64("id", c.ID),
		zap.String("code", c.Code),
	)
	log.Info("sql.exec_start")
	tag, err := s.q(ctx).Exec(ctx, up, c.ID, raw, c.UpdatedAt)
	if err != nil {
		log.Error("sql.exec_failed", zap.Error(err))
		return domain.Currency{}, err
	}
	if tag.RowsAffected() == 0 {
		log.Warn("sql.exec_no_rows")
		return domain.Currency{}, fmt.Errorf("%w: currency with id %d not found", application.ErrNotFound, c.ID)
	}
	log.Info("sql.exec_success", zap.Int64("rows_affected", tag.RowsAffected()))
	return c, nil
}

func scanCurrency(row pgx.Row) (domain.Currency, error) {
	var (
		c       domain.Currency
		raw     []byte
		created time.Time
		updated time.Time
	)
	if err := row.Scan(&c.ID, &c.Code, &raw, &created, &updated); err != nil {
		return domain.Currency{}, err
	}
	if err := json.Unmarshal(raw, &c.Rates); err != nil {
		return domain.Currency{}, fmt.Errorf("decode rates for %s: %w", c.Code, err)
	}
	c.CreatedAt, c.UpdatedAt = created.UTC(), updated.UTC()
	return c, nil
}
