package store

import (
	"context"
	"time"

	"github.com/hance08/tally/internal/model"
	"github.com/shopspring/decimal"
)

type Repository interface {
	// User Operations
	CreateUser(ctx context.Context, user *model.User) (int64, error)
	GetUser(ctx context.Context, userID int64) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)

	// Account Operations
	CreateAccount(ctx context.Context, acc *model.Account) (int64, error)
	GetAccount(ctx context.Context, userID, accountID int64) (*model.Account, error)
	ListAccounts(ctx context.Context, userID int64) ([]*model.Account, error)
	AccountBalance(ctx context.Context, accountID int64) (decimal.Decimal, error)

	// FX Rate Operations
	UpsertFxRate(ctx context.Context, rate model.FxRate) error
	GetFxRate(ctx context.Context, from, to string, year, month int) (decimal.Decimal, error)
	ListFxRates(ctx context.Context) ([]*model.FxRate, error)

	// Transaction Operations
	InsertTransaction(ctx context.Context, tx *model.Transaction) (int64, error)
	InsertPosting(ctx context.Context, p *model.Posting) (int64, error)
	GetTransaction(ctx context.Context, userID, txID int64) (*model.Transaction, error)
	ListTransactions(ctx context.Context, userID int64, limit int) ([]*model.Transaction, error)
	SetTransactionActive(ctx context.Context, userID, txID int64, active bool, at time.Time) error
}

// TxRepository is a Repository that can also open a unit of work.
type TxRepository interface {
	Repository
	ExecTx(ctx context.Context, fn func(Repository) error) error
}
