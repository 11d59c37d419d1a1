package validation

import (
	"fmt"
	"strings"
)

// IsCurrencyCode reports whether code is exactly three ASCII letters, in any case.
func IsCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, c := range code {
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}

// NormalizeCurrency checks code and returns it upper-cased.
func NormalizeCurrency(code string) (string, error) {
	if !IsCurrencyCode(code) {
		return "", fmt.Errorf("currency code must be 3 letters (e.g. USD), got %q", code)
	}
	return strings.ToUpper(code), nil
}

// ValidateCurrency is the prompt-friendly form: surrounding spaces are ignored.
func ValidateCurrency(val string) error {
	_, err := NormalizeCurrency(strings.TrimSpace(val))
	return err
}
