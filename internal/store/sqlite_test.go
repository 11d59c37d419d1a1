package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/hance08/tally/internal/model"
	"github.com/shopspring/decimal"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "tally.db")

	s, err := NewStore(dbPath, os.DirFS(filepath.Join("..", "..")))
	assert.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedUser(t *testing.T, s *Store, home string) int64 {
	t.Helper()
	id, err := s.CreateUser(context.Background(), &model.User{Name: "alice", HomeCurrency: home, Lifecycle: model.NewLifecycle()})
	assert.NoError(t, err)
	return id
}

func seedAccount(t *testing.T, s *Store, userID int64, name string, accType model.AccountType, currency string) int64 {
	t.Helper()
	id, err := s.CreateAccount(context.Background(), &model.Account{
		UserID: userID, Name: name, Type: accType, Currency: currency, Lifecycle: model.NewLifecycle(),
	})
	assert.NoError(t, err)
	return id
}

func TestNewStoreIsReopenable(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "nested", "tally.db")
	migrations := os.DirFS(filepath.Join("..", ".."))

	s, err := NewStore(dbPath, migrations)
	assert.NoError(t, err)
	assert.NoError(t, s.Close())

	s, err = NewStore(dbPath, migrations)
	assert.NoError(t, err)
	assert.NoError(t, s.Close())
}

func TestUsersAndAccounts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	userID := seedUser(t, s, "USD")
	other := seedUser(t, s, "EUR")

	user, err := s.GetUser(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, "USD", user.HomeCurrency)
	assert.True(t, user.Active)

	_, err = s.GetUser(ctx, 404)
	assert.IsError(t, err, ErrRecordNotFound)

	users, err := s.ListUsers(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(users))

	checking := seedAccount(t, s, userID, "Checking", model.AccountAsset, "USD")
	salary := seedAccount(t, s, userID, "Salary", model.AccountIncome, "")

	acc, err := s.GetAccount(ctx, userID, checking)
	assert.NoError(t, err)
	assert.Equal(t, model.AccountAsset, acc.Type)
	assert.Equal(t, "USD", acc.Currency)

	acc, err = s.GetAccount(ctx, userID, salary)
	assert.NoError(t, err)
	assert.Equal(t, "", acc.Currency)

	t.Run("other user's account is not found", func(t *testing.T) {
		_, err := s.GetAccount(ctx, other, checking)
		assert.IsError(t, err, ErrRecordNotFound)
	})

	t.Run("duplicate name is a constraint violation", func(t *testing.T) {
		_, err := s.CreateAccount(ctx, &model.Account{
			UserID: userID, Name: "Checking", Type: model.AccountAsset, Currency: "USD", Lifecycle: model.NewLifecycle(),
		})
		assert.IsError(t, err, ErrConstraintViolation)
	})

	t.Run("currency presence is enforced by schema", func(t *testing.T) {
		_, err := s.CreateAccount(ctx, &model.Account{
			UserID: userID, Name: "Food", Type: model.AccountExpense, Currency: "USD", Lifecycle: model.NewLifecycle(),
		})
		assert.IsError(t, err, ErrConstraintViolation)

		_, err = s.CreateAccount(ctx, &model.Account{
			UserID: userID, Name: "Wallet", Type: model.AccountAsset, Lifecycle: model.NewLifecycle(),
		})
		assert.IsError(t, err, ErrConstraintViolation)
	})

	accounts, err := s.ListAccounts(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(accounts))
}

func TestFxRates(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.GetFxRate(ctx, "EUR", "USD", 2024, 3)
	assert.IsError(t, err, ErrRecordNotFound)

	rate := model.FxRate{FromCurrency: "EUR", ToCurrency: "USD", Year: 2024, Month: 3, Rate: decimal.RequireFromString("1.08")}
	assert.NoError(t, s.UpsertFxRate(ctx, rate))

	rate.Rate = decimal.RequireFromString("1.09")
	assert.NoError(t, s.UpsertFxRate(ctx, rate))

	got, err := s.GetFxRate(ctx, "EUR", "USD", 2024, 3)
	assert.NoError(t, err)
	assert.Equal(t, "1.09", got.String())

	rates, err := s.ListFxRates(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(rates))
	assert.Equal(t, "2024-03", rates[0].Period())

	bad := rate
	bad.Month = 13
	assert.IsError(t, s.UpsertFxRate(ctx, bad), ErrConstraintViolation)
}

func insertPair(t *testing.T, repo Repository, userID, from, to int64, amount string) int64 {
	t.Helper()
	ctx := context.Background()
	d := decimal.RequireFromString(amount)

	tx := &model.Transaction{
		UserID: userID, Type: model.TxExpense, Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Description: "groceries", AccountIDPrimary: from, AccountIDSecondary: to,
		AmountOCPrimary: d, CurrencyPrimary: "USD", AmountHC: d, Lifecycle: model.NewLifecycle(),
	}
	txID, err := repo.InsertTransaction(ctx, tx)
	assert.NoError(t, err)

	for i, sign := range []int64{-1, 1} {
		accountID := from
		if i == 1 {
			accountID = to
		}
		signed := d.Mul(decimal.NewFromInt(sign))
		_, err := repo.InsertPosting(ctx, &model.Posting{
			TransactionID: txID, AccountID: accountID, AmountOC: signed, Currency: "USD",
			FxRate: decimal.NewFromInt(1), AmountHC: signed, Lifecycle: model.NewLifecycle(),
		})
		assert.NoError(t, err)
	}
	return txID
}

func TestTransactions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	userID := seedUser(t, s, "USD")
	checking := seedAccount(t, s, userID, "Checking", model.AccountAsset, "USD")
	food := seedAccount(t, s, userID, "Food", model.AccountExpense, "")

	var txID int64
	err := s.ExecTx(ctx, func(repo Repository) error {
		txID = insertPair(t, repo, userID, checking, food, "12.5")
		return nil
	})
	assert.NoError(t, err)

	tx, err := s.GetTransaction(ctx, userID, txID)
	assert.NoError(t, err)
	assert.Equal(t, model.TxExpense, tx.Type)
	assert.Equal(t, "2024-03-05", tx.Date.Format("2006-01-02"))
	assert.True(t, tx.ExternalID == nil)
	assert.True(t, tx.AmountOCSecondary == nil)
	assert.Equal(t, 2, len(tx.Postings))
	assert.Equal(t, "-12.5", tx.Postings[0].AmountOC.String())
	assert.Equal(t, "12.5", tx.Postings[1].AmountHC.String())

	balance, err := s.AccountBalance(ctx, checking)
	assert.NoError(t, err)
	assert.Equal(t, "-12.5", balance.String())

	t.Run("deactivate cascades to postings", func(t *testing.T) {
		err := s.ExecTx(ctx, func(repo Repository) error {
			return repo.SetTransactionActive(ctx, userID, txID, false, time.Now())
		})
		assert.NoError(t, err)

		tx, err := s.GetTransaction(ctx, userID, txID)
		assert.NoError(t, err)
		assert.False(t, tx.Active)
		assert.True(t, tx.DeletedAt != nil)
		for _, p := range tx.Postings {
			assert.False(t, p.Active)
		}

		list, err := s.ListTransactions(ctx, userID, 10)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(list))

		balance, err := s.AccountBalance(ctx, checking)
		assert.NoError(t, err)
		assert.True(t, balance.IsZero())
	})

	t.Run("activate restores", func(t *testing.T) {
		err := s.ExecTx(ctx, func(repo Repository) error {
			return repo.SetTransactionActive(ctx, userID, txID, true, time.Now())
		})
		assert.NoError(t, err)

		list, err := s.ListTransactions(ctx, userID, 10)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(list))
		assert.True(t, list[0].DeletedAt == nil)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		err := s.SetTransactionActive(ctx, userID, 999, false, time.Now())
		assert.IsError(t, err, ErrRecordNotFound)

		_, err = s.GetTransaction(ctx, userID, 999)
		assert.IsError(t, err, ErrRecordNotFound)
	})
}

func TestExecTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	userID := seedUser(t, s, "USD")
	checking := seedAccount(t, s, userID, "Checking", model.AccountAsset, "USD")
	food := seedAccount(t, s, userID, "Food", model.AccountExpense, "")

	boom := errors.New("boom")
	err := s.ExecTx(ctx, func(repo Repository) error {
		insertPair(t, repo, userID, checking, food, "3")
		return boom
	})
	assert.IsError(t, err, boom)

	list, err := s.ListTransactions(ctx, userID, 10)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(list))

	balance, err := s.AccountBalance(ctx, checking)
	assert.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestExecTxRollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	userID := seedUser(t, s, "USD")
	checking := seedAccount(t, s, userID, "Checking", model.AccountAsset, "USD")
	food := seedAccount(t, s, userID, "Food", model.AccountExpense, "")

	assert.Panics(t, func() {
		_ = s.ExecTx(ctx, func(repo Repository) error {
			insertPair(t, repo, userID, checking, food, "3")
			panic("boom")
		})
	})

	list, err := s.ListTransactions(ctx, userID, 10)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(list))

	// The write lock is released, so later units of work go through.
	err = s.ExecTx(ctx, func(repo Repository) error {
		insertPair(t, repo, userID, checking, food, "4")
		return nil
	})
	assert.NoError(t, err)

	balance, err := s.AccountBalance(ctx, checking)
	assert.NoError(t, err)
	assert.Equal(t, "4", balance.Abs().String())
}

func TestTransactionConstraints(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	userID := seedUser(t, s, "USD")
	checking := seedAccount(t, s, userID, "Checking", model.AccountAsset, "USD")

	ext := "bank-1"
	tx := &model.Transaction{
		UserID: userID, Type: model.TxExpense, Date: time.Now(), ExternalID: &ext,
		AccountIDPrimary: checking, AccountIDSecondary: checking,
		AmountOCPrimary: decimal.NewFromInt(1), CurrencyPrimary: "USD", AmountHC: decimal.NewFromInt(1),
		Lifecycle: model.NewLifecycle(),
	}
	_, err := s.InsertTransaction(ctx, tx)
	assert.IsError(t, err, ErrConstraintViolation)

	food := seedAccount(t, s, userID, "Food", model.AccountExpense, "")
	tx.AccountIDSecondary = food
	_, err = s.InsertTransaction(ctx, tx)
	assert.NoError(t, err)

	_, err = s.InsertTransaction(ctx, tx)
	assert.IsError(t, err, ErrConstraintViolation)
}
