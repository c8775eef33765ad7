package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/artifyai/storefront/internal/apperror"
	"github.com/artifyai/storefront/internal/model"
)

// CreateUser inserts the user as given. No duplicate check on username or
// email, and the password is stored verbatim — both deliberate (DESIGN.md).
func (db *DB) CreateUser(ctx context.Context, in model.InsertUser) (*model.User, error) {
	createdAt := time.Now()
	result, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (username, email, password, created_at) VALUES (?, ?, ?, ?)`,
		in.Username, in.Email, in.Password, createdAt)
	if err != nil {
		return nil, fmt.Errorf("sqlite: creating user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("sqlite: reading user id: %w", err)
	}

	return &model.User{
		ID:        int(id),
		Username:  in.Username,
		Email:     in.Email,
		Password:  in.Password,
		CreatedAt: createdAt,
	}, nil
}

func (db *DB) GetUser(ctx context.Context, id int) (*model.User, error) {
	var user model.User
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, username, email, password, created_at FROM users WHERE id = ?`,
		id,
	).Scan(&user.ID, &user.Username, &user.Email, &user.Password, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("user", id)
		}
		return nil, fmt.Errorf("sqlite: getting user %d: %w", id, err)
	}
	return &user, nil
}

func (db *DB) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, username, email, password, created_at FROM users WHERE username = ? ORDER BY id LIMIT 1`,
		username,
	).Scan(&user.ID, &user.Username, &user.Email, &user.Password, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &apperror.AppError{
				Err:     apperror.ErrNotFound,
				Message: fmt.Sprintf("user not found with username %s", username),
			}
		}
		return nil, fmt.Errorf("sqlite: getting user %q: %w", username, err)
	}
	return &user, nil
}
