package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hance08/tally/internal/model"
)

const userColumns = `id, name, email, home_currency, active, deleted_at`

func (s *Store) CreateUser(ctx context.Context, user *model.User) (int64, error) {
	var newID int64
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO users (name, email, home_currency, active, deleted_at)
        VALUES (?, ?, ?, ?, ?)
        RETURNING id;
    `, user.Name, nullString(user.Email), user.HomeCurrency, boolToInt(user.Active), formatTime(user.DeletedAt)).Scan(&newID)
	if err != nil {
		return 0, classify(err, "failed to create user '%s'", user.Name)
	}
	return newID, nil
}

func (s *Store) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, userID)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", userID, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query user %d: %w", userID, err)
	}
	return user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]*model.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var users []*model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*model.User, error) {
	user := &model.User{}
	var email, deletedAt sql.NullString

	if err := row.Scan(&user.ID, &user.Name, &email, &user.HomeCurrency, &user.Active, &deletedAt); err != nil {
		return nil, err
	}

	user.Email = email.String
	at, err := parseTime(deletedAt)
	if err != nil {
		return nil, err
	}
	user.DeletedAt = at
	return user, nil
}
