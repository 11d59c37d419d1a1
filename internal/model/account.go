package model

import "strings"

type AccountType string

const (
	AccountAsset     AccountType = "asset"
	AccountLiability AccountType = "liability"
	AccountEquity    AccountType = "equity"
	AccountIncome    AccountType = "income"
	AccountExpense   AccountType = "expense"
)

var accountTypes = []AccountType{AccountAsset, AccountLiability, AccountEquity, AccountIncome, AccountExpense}

// ParseAccountType accepts the full name in any case.
func ParseAccountType(s string) (AccountType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range accountTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// HasCurrency reports whether accounts of this type settle in one fixed currency.
func (t AccountType) HasCurrency() bool {
	return t == AccountAsset || t == AccountLiability
}

type Account struct {
	ID          int64
	UserID      int64
	Name        string
	Type        AccountType
	Currency    string // empty unless Type.HasCurrency()
	Description string
	Lifecycle
}
