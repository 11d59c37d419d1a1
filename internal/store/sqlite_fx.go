package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hance08/tally/internal/model"
	"github.com/shopspring/decimal"
)

// UpsertFxRate stores the rate for its (from, to, year, month) key, replacing any previous value.
func (s *Store) UpsertFxRate(ctx context.Context, rate model.FxRate) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO fx_rates (from_currency, to_currency, year, month, rate)
        VALUES (?, ?, ?, ?, ?)
        ON CONFLICT (from_currency, to_currency, year, month)
        DO UPDATE SET rate = excluded.rate
    `, rate.FromCurrency, rate.ToCurrency, rate.Year, rate.Month, rate.Rate.String())
	if err != nil {
		return classify(err, "failed to store FX rate %s->%s %s", rate.FromCurrency, rate.ToCurrency, rate.Period())
	}
	return nil
}

func (s *Store) GetFxRate(ctx context.Context, from, to string, year, month int) (decimal.Decimal, error) {
	var rate decimal.Decimal
	err := s.db.QueryRowContext(ctx, `
        SELECT rate
        FROM fx_rates
        WHERE from_currency = ? AND to_currency = ? AND year = ? AND month = ?
    `, from, to, year, month).Scan(&rate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("FX rate %s->%s %04d-%02d: %w", from, to, year, month, ErrRecordNotFound)
		}
		return decimal.Zero, fmt.Errorf("failed to query FX rate: %w", err)
	}
	return rate, nil
}

func (s *Store) ListFxRates(ctx context.Context) ([]*model.FxRate, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT from_currency, to_currency, year, month, rate
        FROM fx_rates
        ORDER BY year DESC, month DESC, from_currency, to_currency
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query FX rates: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var rates []*model.FxRate
	for rows.Next() {
		r := &model.FxRate{}
		if err := rows.Scan(&r.FromCurrency, &r.ToCurrency, &r.Year, &r.Month, &r.Rate); err != nil {
			return nil, fmt.Errorf("failed to scan FX rate: %w", err)
		}
		rates = append(rates, r)
	}
	return rates, rows.Err()
}
