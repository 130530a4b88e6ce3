package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"englishbot/internal/domain"

	"github.com/jmoiron/sqlx"
)

// StatsRepo implements repository.StatsRepository
type StatsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new stats repository
func NewStatsRepo(db *sqlx.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// RecordAnswer bumps the per-word counters and the user's cumulative stat
// in one transaction and returns the updated stat
func (r *StatsRepo) RecordAnswer(ctx context.Context, userID, wordID int64, correct bool) (*domain.QuizStat, error) {
	inc := 0
	if correct {
		inc = 1
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// The word may have been deleted while the question was open; the
	// answer still counts towards the user's totals.
	_, err = tx.ExecContext(ctx, `
		UPDATE words
		SET attempt_count = attempt_count + 1,
			correct_count = correct_count + $3
		WHERE id = $1 AND user_id = $2
	`, wordID, userID, inc)
	if err != nil {
		return nil, fmt.Errorf("update word stats: %w", err)
	}

	var stat domain.QuizStat
	err = tx.GetContext(ctx, &stat, `
		INSERT INTO quiz_stats (user_id, correct, total, updated_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET correct = quiz_stats.correct + EXCLUDED.correct,
			total = quiz_stats.total + 1,
			updated_at = NOW()
		RETURNING user_id, correct, total
	`, userID, inc)
	if err != nil {
		return nil, fmt.Errorf("upsert quiz stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &stat, nil
}

// GetStats returns the user's cumulative stat; a user who never answered
// gets zero counters
func (r *StatsRepo) GetStats(ctx context.Context, userID int64) (*domain.QuizStat, error) {
	var stat domain.QuizStat
	err := r.db.GetContext(ctx, &stat, `SELECT user_id, correct, total FROM quiz_stats WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.QuizStat{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	return &stat, nil
}
