package repository

import (
	"context"

	"englishbot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	EnsureUser(ctx context.Context, userID int64, username string) (bool, error)
}

// WordRepository defines word data operations
type WordRepository interface {
	SaveWord(ctx context.Context, userID int64, russian, english string) (*domain.Word, error)
	DeleteWord(ctx context.Context, userID, wordID int64) error
	GetWord(ctx context.Context, userID, wordID int64) (*domain.Word, error)
	ListWords(ctx context.Context, userID int64, limit, offset int) ([]domain.Word, error)
	CountWords(ctx context.Context, userID int64) (int, error)
	GetRandomWord(ctx context.Context, userID int64) (*domain.Word, error)
	RandomTranslations(ctx context.Context, userID, excludeWordID int64, limit int) ([]string, error)
	CommonTranslations(ctx context.Context, exclude string, limit int) ([]string, error)
}

// StatsRepository defines quiz statistics operations
type StatsRepository interface {
	RecordAnswer(ctx context.Context, userID, wordID int64, correct bool) (*domain.QuizStat, error)
	GetStats(ctx context.Context, userID int64) (*domain.QuizStat, error)
}
