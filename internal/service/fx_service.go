package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/store"
	"github.com/hance08/tally/internal/validation"
	"github.com/shopspring/decimal"
)

type FxService struct {
	repo  store.Repository
	cache *RateCache
}

func NewFxService(repo store.Repository, cache *RateCache) *FxService {
	return &FxService{repo: repo, cache: cache}
}

// SetRate records how many units of to one unit of from buys during a month.
func (fs *FxService) SetRate(ctx context.Context, from, to string, year, month int, rate decimal.Decimal) (*model.FxRate, error) {
	from, err := validation.NormalizeCurrency(from)
	if err != nil {
		return nil, err
	}
	to, err = validation.NormalizeCurrency(to)
	if err != nil {
		return nil, err
	}
	if from == to {
		return nil, fmt.Errorf("FX rate needs two different currencies, got %s twice", from)
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	if year < 1 {
		return nil, fmt.Errorf("invalid year %d", year)
	}
	if !rate.IsPositive() {
		return nil, fmt.Errorf("FX rate must be positive, got %s", rate)
	}

	fx := model.FxRate{FromCurrency: from, ToCurrency: to, Year: year, Month: month, Rate: rate}
	if err := fs.repo.UpsertFxRate(ctx, fx); err != nil {
		return nil, err
	}
	fs.cache.Invalidate(from, to, year, month)
	return &fx, nil
}

func (fs *FxService) GetRate(ctx context.Context, from, to string, year, month int) (decimal.Decimal, error) {
	from, err := validation.NormalizeCurrency(from)
	if err != nil {
		return decimal.Zero, err
	}
	to, err = validation.NormalizeCurrency(to)
	if err != nil {
		return decimal.Zero, err
	}
	return fs.repo.GetFxRate(ctx, from, to, year, month)
}

func (fs *FxService) ListRates(ctx context.Context) ([]*model.FxRate, error) {
	return fs.repo.ListFxRates(ctx)
}

// ParsePeriod reads a "YYYY-MM" month.
func ParsePeriod(s string) (year, month int, err error) {
	t, err := time.Parse(constants.MonthFormat, s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (want YYYY-MM)", s)
	}
	return t.Year(), int(t.Month()), nil
}
