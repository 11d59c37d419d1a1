package utils

import (
	"fmt"
	"strings"

	"github.com/hance08/tally/internal/validation"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with two decimals, or more when the value needs them.
func FormatAmount(d decimal.Decimal) string {
	if d.Exponent() >= -2 {
		return d.StringFixed(2)
	}
	return d.String()
}

// FormatMoney appends the currency code, e.g. "12.50 USD".
func FormatMoney(d decimal.Decimal, currency string) string {
	if currency == "" {
		return FormatAmount(d)
	}
	return fmt.Sprintf("%s %s", FormatAmount(d), currency)
}

// ParseAmount reads a positive decimal typed by the user.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if err := validation.ValidateAmount(amountStr); err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(strings.TrimSpace(amountStr))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", amountStr)
	}
	return d, nil
}
