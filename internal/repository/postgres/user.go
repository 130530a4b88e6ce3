package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// EnsureUser creates the user if it does not exist yet and, for a new user,
// copies the common starter words into their vocabulary.
// Reports whether the user was created by this call.
func (r *UserRepo) EnsureUser(ctx context.Context, userID int64, username string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO users (user_id, username)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`, userID, username)
	if err != nil {
		return false, fmt.Errorf("insert user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert user: %w", err)
	}
	created := affected > 0

	if created {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO words (user_id, russian, english)
			SELECT $1, russian, english FROM common_words
			ON CONFLICT (user_id, russian, english) DO NOTHING
		`, userID)
		if err != nil {
			return false, fmt.Errorf("seed common words: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	return created, nil
}
