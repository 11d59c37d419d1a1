package posting

import (
	"context"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/hance08/tally/internal/model"
	"github.com/shopspring/decimal"
)

func TestDerive(t *testing.T) {
	tx := &model.Transaction{UserID: 1, Type: model.TxExpense, Date: march2024}
	d := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	t.Run("prefers stored values", func(t *testing.T) {
		rates := newFakeRates()
		postings := [2]model.Posting{
			{AmountOC: d("-12.5"), Currency: "eur", FxRate: d("1.08"), AmountHC: d("-13.5")},
			{AmountOC: d("12.5"), Currency: "EUR", FxRate: d("1.08"), AmountHC: d("13.5")},
		}

		got, err := NewDeriver(rates).Derive(context.Background(), tx, "USD", postings)
		assert.NoError(t, err)
		assert.Equal(t, "13.5", got.AmountHC.String())
		assert.Equal(t, "12.5", got.AmountOCPrimary.String())
		assert.Equal(t, "EUR", got.CurrencyPrimary)
		assert.Equal(t, 0, rates.calls)
	})

	t.Run("recomputes zero amount_hc", func(t *testing.T) {
		postings := [2]model.Posting{{AmountOC: d("-12.5"), Currency: "EUR", FxRate: d("1.08")}}

		got, err := NewDeriver(newFakeRates()).Derive(context.Background(), tx, "USD", postings)
		assert.NoError(t, err)
		assert.Equal(t, "13.5", got.AmountHC.String())
	})

	t.Run("re-resolves missing rate", func(t *testing.T) {
		rates := newFakeRates().set("EUR", "USD", 2024, 3, "1.1")
		postings := [2]model.Posting{{AmountOC: d("10"), Currency: "EUR"}}

		got, err := NewDeriver(rates).Derive(context.Background(), tx, "usd", postings)
		assert.NoError(t, err)
		assert.Equal(t, "11", got.AmountHC.String())
		assert.Equal(t, 1, rates.calls)
	})

	t.Run("no rate anywhere", func(t *testing.T) {
		postings := [2]model.Posting{{AmountOC: d("10"), Currency: "EUR"}}

		_, err := NewDeriver(newFakeRates()).Derive(context.Background(), tx, "USD", postings)
		assert.IsError(t, err, ErrFxRateNotFound)
	})

	t.Run("idempotent", func(t *testing.T) {
		postings := [2]model.Posting{{AmountOC: d("-5"), Currency: "USD", FxRate: d("1"), AmountHC: d("-5")}}
		deriver := NewDeriver(newFakeRates())

		first, err := deriver.Derive(context.Background(), tx, "USD", postings)
		assert.NoError(t, err)
		second, err := deriver.Derive(context.Background(), tx, "USD", postings)
		assert.NoError(t, err)
		assert.Equal(t, first.AmountHC.String(), second.AmountHC.String())

		first.ApplyTo(tx)
		assert.Equal(t, "5", tx.AmountHC.String())
		assert.Equal(t, "USD", tx.CurrencyPrimary)
	})
}

func TestErrorKinds(t *testing.T) {
	err := Wrap(KindConstraintViolation, context.Canceled, "duplicate")
	assert.Equal(t, KindConstraintViolation, KindOf(err))
	assert.IsError(t, err, ErrConstraintViolation)
	assert.IsError(t, err, context.Canceled)
	assert.False(t, ErrFxRateNotFound.Is(err))
	assert.Equal(t, Kind(""), KindOf(context.Canceled))
}
