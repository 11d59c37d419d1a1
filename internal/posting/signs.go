package posting

import (
	"github.com/hance08/tally/internal/model"
	"github.com/shopspring/decimal"
)

var (
	plusOne  = decimal.NewFromInt(1)
	minusOne = decimal.NewFromInt(-1)
)

// amountMultiplier returns the sign applied to a leg's original amount,
// by transaction type and the type of the account on that leg. Transfers and
// forex exchanges move between two asset accounts, so their sign is positional.
func amountMultiplier(txType model.TxType, accType model.AccountType, legIndex int) (decimal.Decimal, error) {
	switch txType {
	case model.TxIncome:
		switch accType {
		case model.AccountIncome:
			return minusOne, nil
		case model.AccountAsset:
			return plusOne, nil
		}
	case model.TxExpense:
		switch accType {
		case model.AccountExpense:
			return plusOne, nil
		case model.AccountAsset:
			return minusOne, nil
		}
	case model.TxCreditCardPayment:
		switch accType {
		case model.AccountAsset:
			return minusOne, nil
		case model.AccountLiability:
			return plusOne, nil
		}
	case model.TxTransfer, model.TxForex:
		if accType == model.AccountAsset {
			if legIndex == 0 {
				return plusOne, nil
			}
			return minusOne, nil
		}
	}

	return decimal.Zero, newError(KindInvalidAccountForTxType,
		"Account type %s cannot take part in a %s transaction", accType, txType)
}
