package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/store"
	"github.com/hance08/tally/internal/validation"
	"github.com/shopspring/decimal"
)

type AccountService struct {
	repo store.Repository
}

func NewAccountService(repo store.Repository) *AccountService {
	return &AccountService{repo: repo}
}

// CreateAccount validates and stores an account. Only asset and liability
// accounts carry a currency.
func (as *AccountService) CreateAccount(ctx context.Context, userID int64, name, accType, currency, description string) (*model.Account, error) {
	if err := validation.ValidateAccountName(name); err != nil {
		return nil, err
	}

	t, ok := model.ParseAccountType(accType)
	if !ok {
		return nil, fmt.Errorf("invalid account type '%s' (must be asset, liability, equity, income or expense)", accType)
	}

	normalized, err := validation.ValidateAccountCurrency(t, currency)
	if err != nil {
		return nil, err
	}

	if _, err := as.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	acc := &model.Account{
		UserID:      userID,
		Name:        strings.TrimSpace(name),
		Type:        t,
		Currency:    normalized,
		Description: strings.TrimSpace(description),
		Lifecycle:   model.NewLifecycle(),
	}

	id, err := as.repo.CreateAccount(ctx, acc)
	if err != nil {
		return nil, err
	}
	acc.ID = id
	return acc, nil
}

func (as *AccountService) GetAccount(ctx context.Context, userID, accountID int64) (*model.Account, error) {
	return as.repo.GetAccount(ctx, userID, accountID)
}

func (as *AccountService) ListAccounts(ctx context.Context, userID int64) ([]*model.Account, error) {
	return as.repo.ListAccounts(ctx, userID)
}

// AccountBalance sums the account's active postings in its original currency.
func (as *AccountService) AccountBalance(ctx context.Context, userID, accountID int64) (decimal.Decimal, error) {
	if _, err := as.repo.GetAccount(ctx, userID, accountID); err != nil {
		return decimal.Zero, err
	}
	return as.repo.AccountBalance(ctx, accountID)
}
