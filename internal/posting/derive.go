package posting

import (
	"context"
	"strings"

	"github.com/hance08/tally/internal/model"
	"github.com/shopspring/decimal"
)

// PrimaryFields are the header display values derived from the origin posting.
type PrimaryFields struct {
	AmountHC        decimal.Decimal
	AmountOCPrimary decimal.Decimal
	CurrencyPrimary string
}

// ApplyTo writes the derived fields onto the transaction header.
func (f PrimaryFields) ApplyTo(tx *model.Transaction) {
	tx.AmountHC = f.AmountHC
	tx.AmountOCPrimary = f.AmountOCPrimary
	tx.CurrencyPrimary = f.CurrencyPrimary
}

type Deriver struct {
	rates RateTable
}

func NewDeriver(rates RateTable) *Deriver {
	return &Deriver{rates: rates}
}

// Derive computes the header fields from postings[0] only. The stored fx_rate
// and amount_hc are preferred; each is recomputed only when missing or zero.
func (d *Deriver) Derive(ctx context.Context, tx *model.Transaction, home string, postings [2]model.Posting) (PrimaryFields, error) {
	origin := postings[0]
	currency := strings.ToUpper(origin.Currency)

	rate := origin.FxRate
	if !rate.IsPositive() {
		var err error
		rate, err = resolveRate(ctx, d.rates, currency, strings.ToUpper(home), tx.Date)
		if err != nil {
			return PrimaryFields{}, err
		}
	}

	amountOC := origin.AmountOC.Abs()

	amountHC := origin.AmountHC.Abs()
	if amountHC.IsZero() {
		amountHC = amountOC.Mul(rate).Abs()
	}

	return PrimaryFields{
		AmountHC:        amountHC,
		AmountOCPrimary: amountOC,
		CurrencyPrimary: currency,
	}, nil
}
