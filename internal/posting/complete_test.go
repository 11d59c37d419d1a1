package posting

import (
	"context"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/hance08/tally/internal/model"
	"github.com/shopspring/decimal"
)

var (
	testTolerance = decimal.RequireFromString("0.000001")
	march2024     = time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
)

type completeCase struct {
	dir   *fakeDirectory
	rates *fakeRates
	req   Request
}

func (c completeCase) run(t *testing.T) ([2]model.Posting, string, error) {
	t.Helper()
	assert.NoError(t, ValidateHeader(c.req))
	h := HeaderOf(c.req)
	tx := &model.Transaction{ID: 7, UserID: h.UserID, Type: h.Type, Date: march2024}
	return NewCompleter(c.dir, c.rates, testTolerance).Complete(context.Background(), tx, BuildLegs(c.req))
}

func assertBalanced(t *testing.T, postings [2]model.Posting) {
	t.Helper()
	sum := postings[0].AmountHC.Add(postings[1].AmountHC)
	assert.True(t, sum.Abs().LessThanOrEqual(testTolerance), "sum %s out of tolerance", sum)
	for _, p := range postings {
		assert.False(t, p.AmountOC.IsZero())
		assert.Equal(t, p.AmountOC.Sign(), p.AmountHC.Sign())
		assert.True(t, p.FxRate.IsPositive())
		assert.True(t, p.Active)
		assert.Equal(t, int64(7), p.TransactionID)
	}
	assert.Equal(t, -postings[0].AmountOC.Sign(), postings[1].AmountOC.Sign())
}

func TestCompleteIncome(t *testing.T) {
	dir := newFakeDirectory("USD").add(10, model.AccountAsset, "USD").add(20, model.AccountIncome, "")

	postings, home, err := completeCase{dir, newFakeRates(), simple(model.TxIncome, 100, "USD")}.run(t)
	assert.NoError(t, err)
	assert.Equal(t, "USD", home)
	assertBalanced(t, postings)

	assert.Equal(t, "100", postings[0].AmountOC.String())
	assert.Equal(t, "-100", postings[1].AmountOC.String())
	assert.Equal(t, "1", postings[0].FxRate.String())
	assert.Equal(t, "1", postings[1].FxRate.String())
	assert.Equal(t, "USD", postings[1].Currency)
}

func TestCompleteSimpleTypes(t *testing.T) {
	tests := []struct {
		name      string
		txType    model.TxType
		leg0      model.AccountType
		leg1      model.AccountType
		leg1Cur   string
		wantSign0 int
	}{
		{"expense", model.TxExpense, model.AccountAsset, model.AccountExpense, "", -1},
		{"transfer", model.TxTransfer, model.AccountAsset, model.AccountAsset, "USD", 1},
		{"credit card payment", model.TxCreditCardPayment, model.AccountAsset, model.AccountLiability, "USD", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := newFakeDirectory("USD").add(10, tt.leg0, "USD").add(20, tt.leg1, tt.leg1Cur)

			postings, _, err := completeCase{dir, newFakeRates(), simple(tt.txType, 12.5, "usd")}.run(t)
			assert.NoError(t, err)
			assertBalanced(t, postings)
			assert.Equal(t, tt.wantSign0, postings[0].AmountOC.Sign())
			assert.Equal(t, "12.5", postings[0].AmountOC.Abs().String())
			assert.Equal(t, "12.5", postings[1].AmountOC.Abs().String())
		})
	}
}

func TestCompleteForeignExpense(t *testing.T) {
	// EUR card paying a EUR expense, reported in USD.
	dir := newFakeDirectory("USD").add(10, model.AccountAsset, "EUR").add(20, model.AccountExpense, "")
	rates := newFakeRates().set("EUR", "USD", 2024, 3, "1.08")

	postings, _, err := completeCase{dir, rates, simple(model.TxExpense, 12.5, "EUR")}.run(t)
	assert.NoError(t, err)
	assertBalanced(t, postings)
	assert.Equal(t, "-13.5", postings[0].AmountHC.String())
	assert.Equal(t, "13.5", postings[1].AmountHC.String())
	assert.Equal(t, "1.08", postings[1].FxRate.String())
}

func TestCompleteForex(t *testing.T) {
	dir := newFakeDirectory("USD").add(10, model.AccountAsset, "USD").add(20, model.AccountAsset, "EUR")
	rates := newFakeRates().set("EUR", "USD", 2024, 3, "1.18")

	t.Run("balanced within tolerance", func(t *testing.T) {
		postings, _, err := completeCase{dir, rates, forex(1000, "USD", 1000/1.18, "EUR")}.run(t)
		assert.NoError(t, err)
		assertBalanced(t, postings)
		assert.Equal(t, "1000", postings[0].AmountHC.String())
		assert.Equal(t, "1", postings[0].FxRate.String())
		assert.Equal(t, "EUR", postings[1].Currency)
		assert.Equal(t, "1.18", postings[1].FxRate.String())
	})

	t.Run("unbalanced", func(t *testing.T) {
		_, _, err := completeCase{dir, rates, forex(1000, "USD", 850, "EUR")}.run(t)
		assert.IsError(t, err, ErrUnbalancedPosting)
		assert.Equal(t, "The sum of the postings must be zero (off by -3 USD)", err.Error())
	})
}

func TestCompleteFailures(t *testing.T) {
	tests := []struct {
		name    string
		dir     *fakeDirectory
		rates   *fakeRates
		req     Request
		want    error
		wantMsg string
	}{
		{
			name:    "unknown user",
			dir:     newFakeDirectory("USD").add(10, model.AccountAsset, "USD").add(20, model.AccountIncome, ""),
			req:     func() Request { r := simple(model.TxIncome, 1, "USD"); r.UserID = 99; return r }(),
			want:    ErrUserNotFound,
			wantMsg: "User 99 not found",
		},
		{
			name:    "missing account",
			dir:     newFakeDirectory("USD").add(10, model.AccountAsset, "USD"),
			req:     simple(model.TxIncome, 1, "USD"),
			want:    ErrAccountNotFound,
			wantMsg: "Account 20 does not exist, is inactive, or does not belong to user 1",
		},
		{
			name: "inactive account",
			dir: func() *fakeDirectory {
				d := newFakeDirectory("USD").add(10, model.AccountAsset, "USD").add(20, model.AccountIncome, "")
				d.accounts[10].Deactivate(march2024)
				return d
			}(),
			req:  simple(model.TxIncome, 1, "USD"),
			want: ErrAccountNotFound,
		},
		{
			name: "account of another user",
			dir: func() *fakeDirectory {
				d := newFakeDirectory("USD").add(10, model.AccountAsset, "USD").add(20, model.AccountIncome, "")
				d.accounts[20].UserID = 2
				return d
			}(),
			req:  simple(model.TxIncome, 1, "USD"),
			want: ErrAccountNotFound,
		},
		{
			name:    "income into expense account",
			dir:     newFakeDirectory("USD").add(10, model.AccountAsset, "USD").add(20, model.AccountExpense, ""),
			req:     simple(model.TxIncome, 1, "USD"),
			want:    ErrInvalidPostingStructure,
			wantMsg: "Income transactions require one asset account and one income account (got asset and expense)",
		},
		{
			name:    "transfer across currencies",
			dir:     newFakeDirectory("USD").add(10, model.AccountAsset, "EUR").add(20, model.AccountAsset, "USD"),
			req:     simple(model.TxTransfer, 1, "EUR"),
			want:    ErrInvalidPostingStructure,
			wantMsg: "Transfer transactions require two accounts with the same currency",
		},
		{
			name:    "card payment across currencies",
			dir:     newFakeDirectory("USD").add(10, model.AccountAsset, "USD").add(20, model.AccountLiability, "EUR"),
			req:     simple(model.TxCreditCardPayment, 1, "USD"),
			want:    ErrInvalidPostingStructure,
			wantMsg: "Credit card payment transactions require two accounts with the same currency",
		},
		{
			name:    "forex between same-currency accounts",
			dir:     newFakeDirectory("USD").add(10, model.AccountAsset, "USD").add(20, model.AccountAsset, "usd"),
			req:     forex(10, "USD", 9, "EUR"),
			want:    ErrInvalidPostingStructure,
			wantMsg: "Forex transactions require two accounts with different currencies",
		},
		{
			name:    "leg currency differs from account",
			dir:     newFakeDirectory("USD").add(10, model.AccountAsset, "USD").add(20, model.AccountExpense, ""),
			req:     simple(model.TxExpense, 1, "EUR"),
			want:    ErrCurrencyMismatch,
			wantMsg: "Posting currency 'EUR' does not match account currency 'USD' for account 'asset-10'",
		},
		{
			name:    "missing fx rate",
			dir:     newFakeDirectory("USD").add(10, model.AccountAsset, "EUR").add(20, model.AccountExpense, ""),
			rates:   newFakeRates().set("EUR", "USD", 2024, 2, "1.1"),
			req:     simple(model.TxExpense, 1, "EUR"),
			want:    ErrFxRateNotFound,
			wantMsg: "No FX rate found for EUR->USD in 2024-03",
		},
		{
			name:  "non-positive fx rate",
			dir:   newFakeDirectory("USD").add(10, model.AccountAsset, "EUR").add(20, model.AccountExpense, ""),
			rates: newFakeRates().set("EUR", "USD", 2024, 3, "0"),
			req:   simple(model.TxExpense, 1, "EUR"),
			want:  ErrFxRateNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates := tt.rates
			if rates == nil {
				rates = newFakeRates()
			}
			_, _, err := completeCase{tt.dir, rates, tt.req}.run(t)
			assert.IsError(t, err, tt.want)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

func TestCompleteUsesConfiguredTolerance(t *testing.T) {
	dir := newFakeDirectory("USD").add(10, model.AccountAsset, "USD").add(20, model.AccountAsset, "EUR")
	rates := newFakeRates().set("EUR", "USD", 2024, 3, "1.18")
	req := forex(1000, "USD", 850, "EUR")
	assert.NoError(t, ValidateHeader(req))

	tx := &model.Transaction{UserID: 1, Type: model.TxForex, Date: march2024}
	loose := NewCompleter(dir, rates, decimal.NewFromInt(5))

	_, _, err := loose.Complete(context.Background(), tx, BuildLegs(req))
	assert.NoError(t, err)
}

func TestCompleteRejectsIllegalAccountPairs(t *testing.T) {
	accountTypes := []model.AccountType{
		model.AccountAsset, model.AccountLiability, model.AccountEquity, model.AccountIncome, model.AccountExpense,
	}
	// Currency-bearing accounts differ in currency so forex pairs are not
	// rejected for holding the same currency.
	currencyFor := func(accType model.AccountType, currency string) string {
		if accType.HasCurrency() {
			return currency
		}
		return ""
	}

	for _, txType := range model.TxTypes() {
		rule := structureRules[txType]
		for _, leg0 := range accountTypes {
			for _, leg1 := range accountTypes {
				if leg0 == rule.leg0 && leg1 == rule.leg1 {
					continue
				}
				t.Run(string(txType)+"/"+string(leg0)+"/"+string(leg1), func(t *testing.T) {
					dir := newFakeDirectory("USD").
						add(10, leg0, currencyFor(leg0, "USD")).
						add(20, leg1, currencyFor(leg1, "EUR"))
					req := Request(simple(txType, 10, "USD"))
					if txType == model.TxForex {
						req = forex(10, "USD", 9, "EUR")
					}

					_, _, err := completeCase{dir, newFakeRates(), req}.run(t)
					assert.IsError(t, err, ErrInvalidPostingStructure)
				})
			}
		}
	}
}
