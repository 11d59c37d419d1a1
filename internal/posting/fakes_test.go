package posting

import (
	"context"
	"fmt"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/store"
	"github.com/shopspring/decimal"
)

type fakeDirectory struct {
	users    map[int64]*model.User
	accounts map[int64]*model.Account
}

func newFakeDirectory(home string) *fakeDirectory {
	return &fakeDirectory{
		users: map[int64]*model.User{
			1: {ID: 1, Name: "alice", HomeCurrency: home, Lifecycle: model.NewLifecycle()},
		},
		accounts: map[int64]*model.Account{},
	}
}

func (d *fakeDirectory) add(id int64, t model.AccountType, currency string) *fakeDirectory {
	d.accounts[id] = &model.Account{
		ID:        id,
		UserID:    1,
		Name:      fmt.Sprintf("%s-%d", t, id),
		Type:      t,
		Currency:  currency,
		Lifecycle: model.NewLifecycle(),
	}
	return d
}

func (d *fakeDirectory) GetUser(_ context.Context, userID int64) (*model.User, error) {
	u, ok := d.users[userID]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", userID, store.ErrRecordNotFound)
	}
	return u, nil
}

func (d *fakeDirectory) GetAccount(_ context.Context, userID, accountID int64) (*model.Account, error) {
	a, ok := d.accounts[accountID]
	if !ok || a.UserID != userID || !a.Active {
		return nil, fmt.Errorf("account %d: %w", accountID, store.ErrRecordNotFound)
	}
	return a, nil
}

type rateKey struct {
	from, to    string
	year, month int
}

type fakeRates struct {
	rates map[rateKey]decimal.Decimal
	calls int
}

func newFakeRates() *fakeRates {
	return &fakeRates{rates: map[rateKey]decimal.Decimal{}}
}

func (r *fakeRates) set(from, to string, year, month int, rate string) *fakeRates {
	r.rates[rateKey{from, to, year, month}] = decimal.RequireFromString(rate)
	return r
}

func (r *fakeRates) GetFxRate(_ context.Context, from, to string, year, month int) (decimal.Decimal, error) {
	r.calls++
	rate, ok := r.rates[rateKey{from, to, year, month}]
	if !ok {
		return decimal.Zero, fmt.Errorf("fx rate %s->%s: %w", from, to, store.ErrRecordNotFound)
	}
	return rate, nil
}
