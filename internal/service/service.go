package service

import (
	"fmt"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/store"
	"github.com/rs/zerolog"
)

type Service struct {
	User        *UserService
	Account     *AccountService
	Fx          *FxService
	Transaction *TransactionService
}

func NewService(db store.TxRepository, cfg *config.Config, log zerolog.Logger) (*Service, error) {
	tolerance, err := cfg.Tolerance()
	if err != nil {
		return nil, err
	}
	if !tolerance.IsPositive() {
		return nil, fmt.Errorf("posting.balance_tolerance must be positive, got %s", tolerance)
	}

	rates := NewRateCache(cfg.Fx.CacheTTL)

	return &Service{
		User:        NewUserService(db),
		Account:     NewAccountService(db),
		Fx:          NewFxService(db, rates),
		Transaction: NewTransactionService(db, rates, tolerance, log),
	}, nil
}
