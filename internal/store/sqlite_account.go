package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hance08/tally/internal/model"
	"github.com/shopspring/decimal"
)

const accountColumns = `id, user_id, name, type, currency, description, active, deleted_at`

func (s *Store) CreateAccount(ctx context.Context, acc *model.Account) (int64, error) {
	var newID int64
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO accounts (user_id, name, type, currency, description, active, deleted_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        RETURNING id;
    `, acc.UserID, acc.Name, string(acc.Type), nullString(acc.Currency), acc.Description,
		boolToInt(acc.Active), formatTime(acc.DeletedAt)).Scan(&newID)
	if err != nil {
		return 0, classify(err, "failed to create account '%s'", acc.Name)
	}
	return newID, nil
}

// GetAccount returns an active account owned by userID.
func (s *Store) GetAccount(ctx context.Context, userID, accountID int64) (*model.Account, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT `+accountColumns+`
        FROM accounts
        WHERE id = ? AND user_id = ? AND active = 1
    `, accountID, userID)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account %d of user %d: %w", accountID, userID, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account %d: %w", accountID, err)
	}
	return acc, nil
}

func (s *Store) ListAccounts(ctx context.Context, userID int64) ([]*model.Account, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT `+accountColumns+`
        FROM accounts
        WHERE user_id = ?
        ORDER BY type, name
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var accounts []*model.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}
	return accounts, rows.Err()
}

// AccountBalance sums the original-currency amounts of the account's active postings.
func (s *Store) AccountBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT amount_oc
        FROM postings
        WHERE account_id = ? AND active = 1
    `, accountID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to calculate balance: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	balance := decimal.Zero
	for rows.Next() {
		var amount decimal.Decimal
		if err := rows.Scan(&amount); err != nil {
			return decimal.Zero, fmt.Errorf("failed to scan posting amount: %w", err)
		}
		balance = balance.Add(amount)
	}
	return balance, rows.Err()
}

func scanAccount(row scanner) (*model.Account, error) {
	acc := &model.Account{}
	var accType string
	var currency, deletedAt sql.NullString

	err := row.Scan(
		&acc.ID, &acc.UserID, &acc.Name, &accType,
		&currency, &acc.Description, &acc.Active, &deletedAt,
	)
	if err != nil {
		return nil, err
	}

	acc.Type = model.AccountType(accType)
	acc.Currency = currency.String
	at, err := parseTime(deletedAt)
	if err != nil {
		return nil, err
	}
	acc.DeletedAt = at
	return acc, nil
}
