package prompts

import (
	"fmt"
	"time"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/utils"
	"github.com/hance08/tally/internal/validation"
	"github.com/shopspring/decimal"
)

var transactionTypes = []Option[model.TxType]{
	{"Record Expense", model.TxExpense},
	{"Record Income", model.TxIncome},
	{"Transfer", model.TxTransfer},
	{"Pay Credit Card", model.TxCreditCardPayment},
	{"Exchange Currency", model.TxForex},
}

// PromptTransactionType prompts for transaction type selection
func PromptTransactionType() (model.TxType, error) {
	return PromptSelect("Choose the transaction type:", transactionTypes, model.TxExpense)
}

// PromptTransactionDate prompts for transaction date
func PromptTransactionDate() (time.Time, error) {
	defaultDate := time.Now().Format(constants.DateFormat)
	date, err := PromptDate(
		"Transaction Date (YYYY-MM-DD):",
		defaultDate,
		"Press Enter for today",
		func(s string) error {
			_, err := time.Parse(constants.DateFormat, s)
			return err
		},
	)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(constants.DateFormat, date)
}

// PromptTransactionAmount prompts for a positive amount
func PromptTransactionAmount(message string) (float64, error) {
	amount, err := PromptAmount(message, "e.g. 12.50", validation.ValidateAmount)
	if err != nil {
		return 0, err
	}
	d, err := utils.ParseAmount(amount)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

// PromptAccountSelection prompts for one of accounts whose type is in allowedTypes
func PromptAccountSelection(
	accounts []*model.Account,
	allowedTypes []model.AccountType,
	message string,
	balanceGetter func(int64) (decimal.Decimal, error),
) (*model.Account, error) {
	allowed := make(map[model.AccountType]bool, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = true
	}

	var opts []Option[int64]
	byID := make(map[int64]*model.Account)
	for _, acc := range accounts {
		if !acc.Active || !allowed[acc.Type] {
			continue
		}

		label := fmt.Sprintf("%s [%s]", acc.Name, acc.Type)
		if acc.Currency != "" {
			label = fmt.Sprintf("%s [%s %s]", acc.Name, acc.Type, acc.Currency)
		}
		if balanceGetter != nil {
			if balance, err := balanceGetter(acc.ID); err == nil {
				label = fmt.Sprintf("%s (Balance: %s)", label, utils.FormatMoney(balance, acc.Currency))
			}
		}

		opts = append(opts, Option[int64]{Label: label, Value: acc.ID})
		byID[acc.ID] = acc
	}

	if len(opts) == 0 {
		return nil, fmt.Errorf("no available accounts (Type: %v)", allowedTypes)
	}

	id, err := PromptSelect(message, opts, opts[0].Value)
	if err != nil {
		return nil, err
	}
	return byID[id], nil
}
