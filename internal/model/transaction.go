package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TxType string

const (
	TxIncome            TxType = "income"
	TxExpense           TxType = "expense"
	TxTransfer          TxType = "transfer"
	TxCreditCardPayment TxType = "credit_card_payment"
	TxForex             TxType = "forex"
)

var txTypes = []TxType{TxIncome, TxExpense, TxTransfer, TxCreditCardPayment, TxForex}

func TxTypes() []TxType {
	return append([]TxType(nil), txTypes...)
}

func (t TxType) Valid() bool {
	for _, v := range txTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Transaction is the header of a two-legged ledger entry.
type Transaction struct {
	ID          int64
	UserID      int64
	Type        TxType
	Date        time.Time
	Description string
	ExternalID  *string

	AccountIDPrimary   int64
	AccountIDSecondary int64
	AmountOCPrimary    decimal.Decimal
	CurrencyPrimary    string

	// Forex only.
	AmountOCSecondary *decimal.Decimal
	CurrencySecondary *string

	// AmountHC is |origin posting amount_hc|, always positive.
	AmountHC decimal.Decimal

	Postings []Posting
	Lifecycle
}

// Posting is one signed, currency-resolved side of a Transaction.
type Posting struct {
	ID            int64
	TransactionID int64
	AccountID     int64
	AmountOC      decimal.Decimal
	Currency      string
	FxRate        decimal.Decimal
	AmountHC      decimal.Decimal
	Lifecycle
}
