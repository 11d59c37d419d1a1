package posting

import (
	"math"
	"strings"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/validation"
)

// ValidateHeader checks the shape of a request without touching storage and
// upper-cases its currency codes in place.
func ValidateHeader(req Request) error {
	h := HeaderOf(req)
	if h == nil {
		return newError(KindInvalidHeader, "Transaction request is required")
	}

	if !h.Type.Valid() {
		return newError(KindInvalidHeader, "Unsupported transaction type: %s", h.Type)
	}

	if h.AccountIDPrimary == h.AccountIDSecondary {
		return newError(KindInvalidHeader, "Origin and destination accounts cannot be the same")
	}

	if !positiveNumber(h.AmountOCPrimary) {
		return newError(KindInvalidHeader, "Primary amount must be a positive number")
	}
	if !validation.IsCurrencyCode(h.CurrencyPrimary) {
		return newError(KindInvalidHeader, "Primary currency must be a 3-letter ISO code (e.g. USD, EUR).")
	}
	h.CurrencyPrimary = strings.ToUpper(h.CurrencyPrimary)

	switch r := req.(type) {
	case *ForexRequest:
		if h.Type != model.TxForex {
			return newError(KindInvalidHeader, "Only forex transactions may carry a secondary amount and currency")
		}
		if !positiveNumber(r.AmountOCSecondary) {
			return newError(KindInvalidHeader, "Secondary amount must be a positive number")
		}
		if !validation.IsCurrencyCode(r.CurrencySecondary) {
			return newError(KindInvalidHeader, "Secondary currency must be a 3-letter ISO code (e.g. USD, EUR).")
		}
		r.CurrencySecondary = strings.ToUpper(r.CurrencySecondary)
		if r.CurrencySecondary == h.CurrencyPrimary {
			return newError(KindInvalidHeader, "Forex transactions require two accounts with different currencies")
		}
	case *SimpleRequest:
		if h.Type == model.TxForex {
			return newError(KindInvalidHeader, "Forex transactions require amount_oc_secondary and currency_secondary")
		}
	default:
		return newError(KindInvalidHeader, "Unsupported transaction request %T", req)
	}

	return nil
}

func positiveNumber(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x > 0
}
