package posting

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/hance08/tally/internal/model"
)

func TestAmountMultiplier(t *testing.T) {
	tests := []struct {
		txType  model.TxType
		accType model.AccountType
		leg     int
		want    int64
	}{
		{model.TxIncome, model.AccountAsset, 0, 1},
		{model.TxIncome, model.AccountIncome, 1, -1},
		{model.TxExpense, model.AccountAsset, 0, -1},
		{model.TxExpense, model.AccountExpense, 1, 1},
		{model.TxTransfer, model.AccountAsset, 0, 1},
		{model.TxTransfer, model.AccountAsset, 1, -1},
		{model.TxCreditCardPayment, model.AccountAsset, 0, -1},
		{model.TxCreditCardPayment, model.AccountLiability, 1, 1},
		{model.TxForex, model.AccountAsset, 0, 1},
		{model.TxForex, model.AccountAsset, 1, -1},
	}

	for _, tt := range tests {
		t.Run(string(tt.txType)+"/"+string(tt.accType), func(t *testing.T) {
			got, err := amountMultiplier(tt.txType, tt.accType, tt.leg)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got.IntPart())
		})
	}

	t.Run("unexpected slot", func(t *testing.T) {
		_, err := amountMultiplier(model.TxIncome, model.AccountLiability, 1)
		assert.IsError(t, err, ErrInvalidAccountForTxType)
	})
}

func TestCheckStructureMatchesEveryType(t *testing.T) {
	for _, txType := range model.TxTypes() {
		_, ok := structureRules[txType]
		assert.True(t, ok, "no structure rule for %s", txType)
	}
}

func TestLegAccountTypes(t *testing.T) {
	leg0, leg1, ok := LegAccountTypes(model.TxCreditCardPayment)
	assert.True(t, ok)
	assert.Equal(t, model.AccountAsset, leg0)
	assert.Equal(t, model.AccountLiability, leg1)

	_, _, ok = LegAccountTypes("refund")
	assert.False(t, ok)
}
