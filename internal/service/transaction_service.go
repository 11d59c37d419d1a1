package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/posting"
	"github.com/hance08/tally/internal/store"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type TransactionService struct {
	db        store.TxRepository
	rates     *RateCache
	tolerance decimal.Decimal
	log       zerolog.Logger
	now       func() time.Time
}

func NewTransactionService(db store.TxRepository, rates *RateCache, tolerance decimal.Decimal, log zerolog.Logger) *TransactionService {
	return &TransactionService{
		db:        db,
		rates:     rates,
		tolerance: tolerance,
		log:       log,
		now:       time.Now,
	}
}

// createRun tracks one CreateTransaction call through its stages.
type createRun struct {
	stage Stage
	log   zerolog.Logger
}

func (r *createRun) advance(next Stage) {
	r.stage = next
	r.log.Debug().Str("stage", next.String()).Msg("transaction stage")
}

func (r *createRun) fail(err error) error {
	event := r.log.Warn()
	if posting.KindOf(err) == "" {
		event = r.log.Error()
	}
	event.Err(err).
		Str("stage", r.stage.String()).
		Str("kind", string(posting.KindOf(err))).
		Msg("transaction rejected")
	return err
}

// CreateTransaction validates req, turns it into two balanced postings and
// stores the header with both postings in one SQL transaction. On any failure
// nothing is stored.
func (ts *TransactionService) CreateTransaction(ctx context.Context, req posting.Request) (*model.Transaction, error) {
	run := &createRun{
		stage: StageReceived,
		log:   ts.log.With().Str("request_id", uuid.NewString()).Logger(),
	}
	run.log.Debug().Str("stage", run.stage.String()).Msg("transaction stage")

	if err := posting.ValidateHeader(req); err != nil {
		return nil, run.fail(err)
	}
	run.advance(StageHeaderValidated)

	legs := posting.BuildLegs(req)
	run.advance(StageLegsBuilt)

	tx := ts.newHeader(req)

	err := ts.db.ExecTx(ctx, func(repo store.Repository) error {
		rates := ts.rates.Wrap(repo)

		postings, home, err := posting.NewCompleter(repo, rates, ts.tolerance).Complete(ctx, tx, legs)
		if err != nil {
			return err
		}
		run.advance(StagePostingsCompleted)

		fields, err := posting.NewDeriver(rates).Derive(ctx, tx, home, postings)
		if err != nil {
			return err
		}
		fields.ApplyTo(tx)
		if tx.Type == model.TxForex {
			amount := postings[1].AmountOC.Abs()
			currency := postings[1].Currency
			tx.AmountOCSecondary = &amount
			tx.CurrencySecondary = &currency
		}
		run.advance(StagePrimaryFieldsDerived)

		txID, err := repo.InsertTransaction(ctx, tx)
		if err != nil {
			return asConstraintViolation(err)
		}
		tx.ID = txID

		for i := range postings {
			postings[i].TransactionID = txID
			id, err := repo.InsertPosting(ctx, &postings[i])
			if err != nil {
				return asConstraintViolation(err)
			}
			postings[i].ID = id
		}
		tx.Postings = postings[:]
		return nil
	})
	if err != nil {
		return nil, run.fail(err)
	}
	run.advance(StagePersisted)

	run.log.Info().
		Int64("transaction_id", tx.ID).
		Str("type", string(tx.Type)).
		Str("amount_hc", tx.AmountHC.String()).
		Msg("transaction created")

	return tx, nil
}

func (ts *TransactionService) newHeader(req posting.Request) *model.Transaction {
	h := posting.HeaderOf(req)

	date := h.Date
	if date.IsZero() {
		date = ts.now()
	}
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	tx := &model.Transaction{
		UserID:             h.UserID,
		Type:               h.Type,
		Date:               date,
		Description:        strings.TrimSpace(h.Description),
		AccountIDPrimary:   h.AccountIDPrimary,
		AccountIDSecondary: h.AccountIDSecondary,
		CurrencyPrimary:    h.CurrencyPrimary,
		Lifecycle:          model.NewLifecycle(),
	}
	if ext := strings.TrimSpace(h.ExternalID); ext != "" {
		tx.ExternalID = &ext
	}
	return tx
}

func asConstraintViolation(err error) error {
	if errors.Is(err, store.ErrConstraintViolation) {
		return posting.Wrap(posting.KindConstraintViolation, err, "Transaction violates a database constraint: %v", err)
	}
	return err
}

func (ts *TransactionService) GetTransaction(ctx context.Context, userID, txID int64) (*model.Transaction, error) {
	tx, err := ts.db.GetTransaction(ctx, userID, txID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %d: %w", txID, err)
	}
	return tx, nil
}

// ListTransactions returns the user's active transactions, newest first.
func (ts *TransactionService) ListTransactions(ctx context.Context, userID int64, limit int) ([]*model.Transaction, error) {
	transactions, err := ts.db.ListTransactions(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// DeactivateTransaction soft-deletes a transaction together with its postings.
func (ts *TransactionService) DeactivateTransaction(ctx context.Context, userID, txID int64) error {
	return ts.setActive(ctx, userID, txID, false)
}

// ActivateTransaction restores a soft-deleted transaction and its postings.
func (ts *TransactionService) ActivateTransaction(ctx context.Context, userID, txID int64) error {
	return ts.setActive(ctx, userID, txID, true)
}

func (ts *TransactionService) setActive(ctx context.Context, userID, txID int64, active bool) error {
	err := ts.db.ExecTx(ctx, func(repo store.Repository) error {
		return repo.SetTransactionActive(ctx, userID, txID, active, ts.now())
	})
	if err != nil {
		return err
	}
	ts.log.Info().Int64("transaction_id", txID).Bool("active", active).Msg("transaction lifecycle changed")
	return nil
}
