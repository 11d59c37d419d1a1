package posting

import (
	"strings"

	"github.com/hance08/tally/internal/model"
)

type currencyRule int

const (
	currencyAny currencyRule = iota
	currencySame
	currencyDifferent
)

// structureRule is the legal account-type pair for a transaction type,
// leg 0 being the primary account.
type structureRule struct {
	leg0, leg1 model.AccountType
	currency   currencyRule
	label      string // "Income transactions"
	pair       string // "one asset account and one income account"
}

var structureRules = map[model.TxType]structureRule{
	model.TxIncome: {
		leg0: model.AccountAsset, leg1: model.AccountIncome,
		label: "Income transactions", pair: "one asset account and one income account",
	},
	model.TxExpense: {
		leg0: model.AccountAsset, leg1: model.AccountExpense,
		label: "Expense transactions", pair: "one asset account and one expense account",
	},
	model.TxTransfer: {
		leg0: model.AccountAsset, leg1: model.AccountAsset, currency: currencySame,
		label: "Transfer transactions", pair: "two asset accounts",
	},
	model.TxCreditCardPayment: {
		leg0: model.AccountAsset, leg1: model.AccountLiability, currency: currencySame,
		label: "Credit card payment transactions", pair: "one asset account and one liability account",
	},
	model.TxForex: {
		leg0: model.AccountAsset, leg1: model.AccountAsset, currency: currencyDifferent,
		label: "Forex transactions", pair: "two asset accounts",
	},
}

func checkStructure(txType model.TxType, accounts [2]*model.Account) error {
	rule, ok := structureRules[txType]
	if !ok {
		return newError(KindInvalidPostingStructure, "Unsupported transaction type: %s", txType)
	}

	if accounts[0].Type != rule.leg0 || accounts[1].Type != rule.leg1 {
		return newError(KindInvalidPostingStructure, "%s require %s (got %s and %s)",
			rule.label, rule.pair, accounts[0].Type, accounts[1].Type)
	}

	same := strings.EqualFold(accounts[0].Currency, accounts[1].Currency)
	switch rule.currency {
	case currencySame:
		if !same {
			return newError(KindInvalidPostingStructure, "%s require two accounts with the same currency", rule.label)
		}
	case currencyDifferent:
		if same {
			return newError(KindInvalidPostingStructure, "%s require two accounts with different currencies", rule.label)
		}
	}

	return nil
}

// LegAccountTypes returns the account types txType expects on its primary and secondary legs.
func LegAccountTypes(txType model.TxType) (leg0, leg1 model.AccountType, ok bool) {
	rule, ok := structureRules[txType]
	if !ok {
		return "", "", false
	}
	return rule.leg0, rule.leg1, true
}
