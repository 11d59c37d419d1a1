package posting

import (
	"github.com/shopspring/decimal"
)

// Leg is a provisional posting. A nil AmountOC or empty Currency means the
// value is filled in later from the primary leg.
type Leg struct {
	AccountID int64
	AmountOC  *decimal.Decimal
	Currency  string
}

func (l Leg) complete() bool {
	return l.AmountOC != nil && l.Currency != ""
}

// BuildLegs expands a validated request into its origin and destination legs.
func BuildLegs(req Request) [2]Leg {
	h := req.header()
	primary := decimal.NewFromFloat(h.AmountOCPrimary)

	legs := [2]Leg{
		{AccountID: h.AccountIDPrimary, AmountOC: &primary, Currency: h.CurrencyPrimary},
		{AccountID: h.AccountIDSecondary},
	}

	if fx, ok := req.(*ForexRequest); ok {
		secondary := decimal.NewFromFloat(fx.AmountOCSecondary)
		legs[1].AmountOC = &secondary
		legs[1].Currency = fx.CurrencySecondary
	}

	return legs
}
