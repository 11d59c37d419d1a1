package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
)

// ValidateAccountName validates a display name for an account
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("account name can't be empty")
	}

	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("account name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

// ValidateAccountCurrency enforces that only asset and liability accounts carry a currency.
// It returns the normalized currency (empty for the other types).
func ValidateAccountCurrency(accType model.AccountType, currency string) (string, error) {
	currency = strings.TrimSpace(currency)

	if accType.HasCurrency() {
		if currency == "" {
			return "", fmt.Errorf("currency is required for %s accounts", accType)
		}
		return NormalizeCurrency(currency)
	}

	if currency != "" {
		return "", fmt.Errorf("currency should not be specified for %s accounts", accType)
	}
	return "", nil
}

// ValidateAmount validates an amount typed by the user: a finite number greater than zero.
func ValidateAmount(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("amount is required")
	}

	value, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return fmt.Errorf("invalid number format")
	}

	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return fmt.Errorf("amount must be a positive number")
	}

	if value > constants.MaxSafeAmount {
		return fmt.Errorf("amount too large")
	}

	return nil
}
