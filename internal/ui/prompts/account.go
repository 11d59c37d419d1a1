package prompts

import (
	"fmt"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/validation"
)

// PromptAccountType prompts for account type selection
func PromptAccountType() (model.AccountType, error) {
	options := []Option[model.AccountType]{
		{"Asset (bank, cash, savings)", model.AccountAsset},
		{"Liability (credit card, loan)", model.AccountLiability},
		{"Income", model.AccountIncome},
		{"Expense", model.AccountExpense},
		{"Equity (Advanced)", model.AccountEquity},
	}

	selected, err := PromptSelect("Account Type:", options, model.AccountAsset)
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return selected, nil
}

// PromptAccountName prompts for account name with validation
func PromptAccountName() (string, error) {
	return PromptInput("Account Name:", "", validation.ValidateAccountName)
}

var commonCurrencies = []Option[string]{
	{"USD - US Dollar", "USD"},
	{"EUR - Euro", "EUR"},
	{"GBP - British Pound", "GBP"},
	{"JPY - Japanese Yen", "JPY"},
	{"CNY - Chinese Yuan", "CNY"},
	{"TWD - Taiwan Dollar", "TWD"},
	{"HKD - Hong Kong Dollar", "HKD"},
	{"SGD - Singapore Dollar", "SGD"},
	{"Other (Custom)", ""},
}

// PromptCurrency prompts for a currency code from a list of common ones, or typed in
func PromptCurrency(message, defaultCurrency string) (string, error) {
	selected, err := PromptSelect(fmt.Sprintf("%s (default: %s)", message, defaultCurrency), commonCurrencies, defaultCurrency)
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}

	if selected == "" {
		custom, err := PromptInput("Enter currency code:", "", validation.ValidateCurrency)
		if err != nil {
			return "", fmt.Errorf("input cancelled: %w", err)
		}
		return validation.NormalizeCurrency(custom)
	}
	return selected, nil
}
