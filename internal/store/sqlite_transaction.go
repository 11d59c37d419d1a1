package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
	"github.com/shopspring/decimal"
)

const transactionColumns = `id, user_id, type, date, description, external_id,
        account_id_primary, account_id_secondary, amount_oc_primary, currency_primary,
        amount_oc_secondary, currency_secondary, amount_hc, active, deleted_at`

// InsertTransaction writes the header row only. It relies on the caller
// (Service layer) to wrap it in ExecTx together with the postings.
func (s *Store) InsertTransaction(ctx context.Context, tx *model.Transaction) (int64, error) {
	var secondaryAmount decimal.NullDecimal
	if tx.AmountOCSecondary != nil {
		secondaryAmount = decimal.NewNullDecimal(*tx.AmountOCSecondary)
	}
	var secondaryCurrency sql.NullString
	if tx.CurrencySecondary != nil {
		secondaryCurrency = sql.NullString{String: *tx.CurrencySecondary, Valid: true}
	}

	var newTxID int64
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO transactions (
            user_id, type, date, description, external_id,
            account_id_primary, account_id_secondary, amount_oc_primary, currency_primary,
            amount_oc_secondary, currency_secondary, amount_hc, active, deleted_at
        )
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        RETURNING id;
    `,
		tx.UserID, string(tx.Type), tx.Date.Format(constants.DateFormat), tx.Description, tx.ExternalID,
		tx.AccountIDPrimary, tx.AccountIDSecondary, tx.AmountOCPrimary.String(), tx.CurrencyPrimary,
		secondaryAmount, secondaryCurrency, tx.AmountHC.String(), boolToInt(tx.Active), formatTime(tx.DeletedAt),
	).Scan(&newTxID)
	if err != nil {
		return 0, classify(err, "failed to insert transaction")
	}
	return newTxID, nil
}

func (s *Store) InsertPosting(ctx context.Context, p *model.Posting) (int64, error) {
	var newID int64
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO postings (transaction_id, account_id, amount_oc, currency, fx_rate, amount_hc, active, deleted_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
        RETURNING id;
    `, p.TransactionID, p.AccountID, p.AmountOC.String(), p.Currency, p.FxRate.String(), p.AmountHC.String(),
		boolToInt(p.Active), formatTime(p.DeletedAt)).Scan(&newID)
	if err != nil {
		return 0, classify(err, "failed to insert posting (account_id: %d)", p.AccountID)
	}
	return newID, nil
}

// GetTransaction returns the header and its postings, whether active or not.
func (s *Store) GetTransaction(ctx context.Context, userID, txID int64) (*model.Transaction, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT `+transactionColumns+`
        FROM transactions
        WHERE id = ? AND user_id = ?
    `, txID, userID)

	tx, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction %d: %w", txID, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}

	postings, err := s.postingsByTransaction(ctx, txID)
	if err != nil {
		return nil, err
	}
	tx.Postings = postings
	return tx, nil
}

// ListTransactions returns the user's active transactions, newest first, without postings.
func (s *Store) ListTransactions(ctx context.Context, userID int64, limit int) ([]*model.Transaction, error) {
	if limit <= 0 {
		limit = constants.DefaultListLimit
	}

	rows, err := s.db.QueryContext(ctx, `
        SELECT `+transactionColumns+`
        FROM transactions
        WHERE user_id = ? AND active = 1
        ORDER BY date DESC, id DESC
        LIMIT ?
    `, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var transactions []*model.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

// SetTransactionActive flips the lifecycle of a transaction and of its postings.
// It relies on the caller to run it inside ExecTx.
func (s *Store) SetTransactionActive(ctx context.Context, userID, txID int64, active bool, at time.Time) error {
	var deletedAt sql.NullString
	if !active {
		deletedAt = formatTime(&at)
	}

	result, err := s.db.ExecContext(ctx, `
        UPDATE transactions
        SET active = ?, deleted_at = ?
        WHERE id = ? AND user_id = ?
    `, boolToInt(active), deletedAt, txID, userID)
	if err != nil {
		return fmt.Errorf("failed to update transaction %d: %w", txID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("transaction %d: %w", txID, ErrRecordNotFound)
	}

	_, err = s.db.ExecContext(ctx, `
        UPDATE postings
        SET active = ?, deleted_at = ?
        WHERE transaction_id = ?
    `, boolToInt(active), deletedAt, txID)
	if err != nil {
		return fmt.Errorf("failed to update postings of transaction %d: %w", txID, err)
	}
	return nil
}

func (s *Store) postingsByTransaction(ctx context.Context, txID int64) ([]model.Posting, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, transaction_id, account_id, amount_oc, currency, fx_rate, amount_hc, active, deleted_at
        FROM postings
        WHERE transaction_id = ?
        ORDER BY id
    `, txID)
	if err != nil {
		return nil, fmt.Errorf("failed to query postings: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var postings []model.Posting
	for rows.Next() {
		var p model.Posting
		var deletedAt sql.NullString
		err := rows.Scan(
			&p.ID, &p.TransactionID, &p.AccountID,
			&p.AmountOC, &p.Currency, &p.FxRate, &p.AmountHC,
			&p.Active, &deletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan posting: %w", err)
		}
		if p.DeletedAt, err = parseTime(deletedAt); err != nil {
			return nil, err
		}
		postings = append(postings, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating postings: %w", err)
	}
	return postings, nil
}

func scanTransaction(row scanner) (*model.Transaction, error) {
	tx := &model.Transaction{}
	var txType, date string
	var externalID, secondaryCurrency, deletedAt sql.NullString
	var secondaryAmount decimal.NullDecimal

	err := row.Scan(
		&tx.ID, &tx.UserID, &txType, &date, &tx.Description, &externalID,
		&tx.AccountIDPrimary, &tx.AccountIDSecondary, &tx.AmountOCPrimary, &tx.CurrencyPrimary,
		&secondaryAmount, &secondaryCurrency, &tx.AmountHC, &tx.Active, &deletedAt,
	)
	if err != nil {
		return nil, err
	}

	tx.Type = model.TxType(txType)
	if tx.Date, err = time.Parse(constants.DateFormat, date); err != nil {
		return nil, fmt.Errorf("invalid transaction date %q: %w", date, err)
	}
	if externalID.Valid {
		tx.ExternalID = &externalID.String
	}
	if secondaryAmount.Valid {
		tx.AmountOCSecondary = &secondaryAmount.Decimal
	}
	if secondaryCurrency.Valid {
		tx.CurrencySecondary = &secondaryCurrency.String
	}
	if tx.DeletedAt, err = parseTime(deletedAt); err != nil {
		return nil, err
	}
	return tx, nil
}
