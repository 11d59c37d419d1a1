package views

import "github.com/hance08/tally/internal/model"

// LegRoles names the origin and destination legs for display.
func LegRoles(txType model.TxType) [2]string {
	switch txType {
	case model.TxIncome:
		return [2]string{"receiving account", "income source"}
	case model.TxExpense:
		return [2]string{"payment account", "expense category"}
	case model.TxTransfer:
		return [2]string{"receiving account", "source account"}
	case model.TxCreditCardPayment:
		return [2]string{"payment account", "credit card"}
	case model.TxForex:
		return [2]string{"buying account", "selling account"}
	default:
		return [2]string{"account", "account"}
	}
}

// TypeLabel is the human form of a transaction type.
func TypeLabel(txType model.TxType) string {
	switch txType {
	case model.TxIncome:
		return "Income"
	case model.TxExpense:
		return "Expense"
	case model.TxTransfer:
		return "Transfer"
	case model.TxCreditCardPayment:
		return "Card Payment"
	case model.TxForex:
		return "Forex"
	default:
		return string(txType)
	}
}

func colorByType(txType model.TxType, s string) string {
	switch txType {
	case model.TxExpense, model.TxCreditCardPayment:
		return red(s)
	case model.TxIncome:
		return green(s)
	case model.TxTransfer, model.TxForex:
		return blue(s)
	default:
		return s
	}
}
