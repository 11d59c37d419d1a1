package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FxRate converts one unit of FromCurrency into ToCurrency for a calendar month.
type FxRate struct {
	FromCurrency string
	ToCurrency   string
	Year         int
	Month        int
	Rate         decimal.Decimal
}

func (r FxRate) Period() string {
	return fmt.Sprintf("%04d-%02d", r.Year, r.Month)
}
