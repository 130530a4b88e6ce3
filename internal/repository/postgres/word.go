package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"englishbot/internal/domain"

	"github.com/jmoiron/sqlx"
)

const wordColumns = `id, user_id, russian, english, correct_count, attempt_count, created_at`

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sqlx.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sqlx.DB) *WordRepo {
	return &WordRepo{db: db}
}

// SaveWord saves a word pair, returning domain.ErrDuplicateWord when the
// user already has it
func (r *WordRepo) SaveWord(ctx context.Context, userID int64, russian, english string) (*domain.Word, error) {
	var w domain.Word
	query := `
		INSERT INTO words (user_id, russian, english)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, russian, english) DO NOTHING
		RETURNING ` + wordColumns

	err := r.db.GetContext(ctx, &w, query, userID, russian, english)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrDuplicateWord
	}
	if err != nil {
		return nil, fmt.Errorf("save word: %w", err)
	}
	return &w, nil
}

// DeleteWord removes a word owned by the user
func (r *WordRepo) DeleteWord(ctx context.Context, userID, wordID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM words WHERE user_id = $1 AND id = $2`, userID, wordID)
	if err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete word: %w", err)
	}
	if affected == 0 {
		return domain.ErrWordNotFound
	}
	return nil
}

// GetWord returns a single word owned by the user
func (r *WordRepo) GetWord(ctx context.Context, userID, wordID int64) (*domain.Word, error) {
	var w domain.Word
	query := `SELECT ` + wordColumns + ` FROM words WHERE user_id = $1 AND id = $2`

	err := r.db.GetContext(ctx, &w, query, userID, wordID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrWordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}
	return &w, nil
}

// ListWords returns a page of the user's words, oldest first.
// Ties on created_at are broken by id so repeated calls agree.
func (r *WordRepo) ListWords(ctx context.Context, userID int64, limit, offset int) ([]domain.Word, error) {
	query := `
		SELECT ` + wordColumns + `
		FROM words
		WHERE user_id = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3
	`

	var words []domain.Word
	if err := r.db.SelectContext(ctx, &words, query, userID, limit, offset); err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return words, nil
}

// CountWords returns how many words the user has
func (r *WordRepo) CountWords(ctx context.Context, userID int64) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM words WHERE user_id = $1`, userID); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return count, nil
}

// GetRandomWord returns a random word for the user, or nil if the user has none
func (r *WordRepo) GetRandomWord(ctx context.Context, userID int64) (*domain.Word, error) {
	var w domain.Word
	query := `
		SELECT ` + wordColumns + `
		FROM words
		WHERE user_id = $1
		ORDER BY RANDOM()
		LIMIT 1
	`

	err := r.db.GetContext(ctx, &w, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("random word: %w", err)
	}
	return &w, nil
}

// RandomTranslations returns up to limit distinct English words from the
// user's vocabulary, skipping the given word
func (r *WordRepo) RandomTranslations(ctx context.Context, userID, excludeWordID int64, limit int) ([]string, error) {
	query := `
		SELECT english FROM (
			SELECT DISTINCT english
			FROM words
			WHERE user_id = $1 AND id <> $2
		) AS candidates
		ORDER BY RANDOM()
		LIMIT $3
	`

	var translations []string
	if err := r.db.SelectContext(ctx, &translations, query, userID, excludeWordID, limit); err != nil {
		return nil, fmt.Errorf("random translations: %w", err)
	}
	return translations, nil
}

// CommonTranslations returns up to limit English words from the shared
// starter list, skipping exclude
func (r *WordRepo) CommonTranslations(ctx context.Context, exclude string, limit int) ([]string, error) {
	query := `
		SELECT english
		FROM common_words
		WHERE LOWER(english) <> LOWER($1)
		ORDER BY RANDOM()
		LIMIT $2
	`

	var translations []string
	if err := r.db.SelectContext(ctx, &translations, query, exclude, limit); err != nil {
		return nil, fmt.Errorf("common translations: %w", err)
	}
	return translations, nil
}
