package posting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/store"
	"github.com/shopspring/decimal"
)

// Completer turns two provisional legs into a balanced pair of postings.
// tolerance is the largest absolute home-currency sum accepted for a pair.
type Completer struct {
	dir       Directory
	rates     RateTable
	tolerance decimal.Decimal
}

func NewCompleter(dir Directory, rates RateTable, tolerance decimal.Decimal) *Completer {
	return &Completer{dir: dir, rates: rates, tolerance: tolerance}
}

// Complete validates the legs against the accounts they reference, applies the
// sign convention and converts both legs to the user's home currency.
// It returns the postings in leg order together with that home currency.
func (c *Completer) Complete(ctx context.Context, tx *model.Transaction, legs [2]Leg) ([2]model.Posting, string, error) {
	var postings [2]model.Posting

	home, err := c.homeCurrency(ctx, tx.UserID)
	if err != nil {
		return postings, "", err
	}

	var accounts [2]*model.Account
	for i, leg := range legs {
		acc, err := c.account(ctx, tx.UserID, leg.AccountID)
		if err != nil {
			return postings, "", err
		}
		accounts[i] = acc
	}

	if err := checkStructure(tx.Type, accounts); err != nil {
		return postings, "", err
	}

	// Only after the structure is known to be legal: both legs of a simple
	// transaction move the same original amount in the same currency.
	if tx.Type != model.TxForex {
		if legs[1].AmountOC == nil {
			legs[1].AmountOC = legs[0].AmountOC
		}
		if legs[1].Currency == "" {
			legs[1].Currency = legs[0].Currency
		}
	}

	for i, leg := range legs {
		if !leg.complete() {
			return postings, "", newError(KindInvalidPostingStructure, "Leg %d is missing an amount or a currency", i+1)
		}

		sign, err := amountMultiplier(tx.Type, accounts[i].Type, i)
		if err != nil {
			return postings, "", err
		}

		currency, err := settlementCurrency(accounts[i], leg)
		if err != nil {
			return postings, "", err
		}

		rate, err := resolveRate(ctx, c.rates, currency, home, tx.Date)
		if err != nil {
			return postings, "", err
		}

		signed := leg.AmountOC.Mul(sign)
		postings[i] = model.Posting{
			TransactionID: tx.ID,
			AccountID:     leg.AccountID,
			AmountOC:      signed,
			Currency:      currency,
			FxRate:        rate,
			AmountHC:      signed.Mul(rate),
			Lifecycle:     model.NewLifecycle(),
		}
	}

	sum := postings[0].AmountHC.Add(postings[1].AmountHC)
	if sum.Abs().GreaterThan(c.tolerance) {
		return postings, "", newError(KindUnbalancedPosting,
			"The sum of the postings must be zero (off by %s %s)", sum.String(), home)
	}

	return postings, home, nil
}

func (c *Completer) homeCurrency(ctx context.Context, userID int64) (string, error) {
	user, err := c.dir.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return "", Wrap(KindUserNotFound, err, "User %d not found", userID)
		}
		return "", fmt.Errorf("failed to resolve user %d: %w", userID, err)
	}
	if !user.Active {
		return "", newError(KindUserNotFound, "User %d not found", userID)
	}
	return strings.ToUpper(user.HomeCurrency), nil
}

func (c *Completer) account(ctx context.Context, userID, accountID int64) (*model.Account, error) {
	acc, err := c.dir.GetAccount(ctx, userID, accountID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, Wrap(KindAccountNotFound, err,
				"Account %d does not exist, is inactive, or does not belong to user %d", accountID, userID)
		}
		return nil, fmt.Errorf("failed to resolve account %d: %w", accountID, err)
	}
	if !acc.Active || acc.UserID != userID {
		return nil, newError(KindAccountNotFound,
			"Account %d does not exist, is inactive, or does not belong to user %d", accountID, userID)
	}
	return acc, nil
}

// settlementCurrency is the account's fixed currency for asset and liability
// accounts, and the leg's own currency otherwise.
func settlementCurrency(acc *model.Account, leg Leg) (string, error) {
	if acc.Type.HasCurrency() {
		if !strings.EqualFold(leg.Currency, acc.Currency) {
			return "", newError(KindCurrencyMismatch,
				"Posting currency '%s' does not match account currency '%s' for account '%s'",
				leg.Currency, acc.Currency, acc.Name)
		}
		return strings.ToUpper(acc.Currency), nil
	}
	return strings.ToUpper(leg.Currency), nil
}

// resolveRate converts from into home for the month of date.
func resolveRate(ctx context.Context, rates RateTable, from, home string, date time.Time) (decimal.Decimal, error) {
	if strings.EqualFold(from, home) {
		return plusOne, nil
	}

	year, month := date.Year(), int(date.Month())
	rate, err := rates.GetFxRate(ctx, from, home, year, month)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return decimal.Zero, Wrap(KindFxRateNotFound, err,
				"No FX rate found for %s->%s in %04d-%02d", from, home, year, month)
		}
		return decimal.Zero, fmt.Errorf("failed to look up FX rate %s->%s: %w", from, home, err)
	}
	if !rate.IsPositive() {
		return decimal.Zero, newError(KindFxRateNotFound,
			"FX rate for %s->%s in %04d-%02d must be positive, got %s", from, home, year, month, rate.String())
	}
	return rate, nil
}
