package posting

import (
	"context"

	"github.com/hance08/tally/internal/model"
	"github.com/shopspring/decimal"
)

// Directory resolves users and accounts. Implementations return an error
// wrapping store.ErrRecordNotFound when the record is absent or inactive.
type Directory interface {
	GetUser(ctx context.Context, userID int64) (*model.User, error)
	GetAccount(ctx context.Context, userID, accountID int64) (*model.Account, error)
}

// RateTable resolves monthly FX rates. A missing rate is reported as an error
// wrapping store.ErrRecordNotFound.
type RateTable interface {
	GetFxRate(ctx context.Context, from, to string, year, month int) (decimal.Decimal, error)
}
