package testutil

import (
	"time"

	"englishbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a test word
func NewTestWord(id, userID int64, russian, english string) *domain.Word {
	return &domain.Word{
		ID:        id,
		UserID:    userID,
		Russian:   russian,
		English:   english,
		CreatedAt: time.Now(),
	}
}

// NewTestWords creates n sequential test words for a user
func NewTestWords(userID int64, n int) []domain.Word {
	words := make([]domain.Word, 0, n)
	for i := 1; i <= n; i++ {
		words = append(words, *NewTestWord(int64(i), userID, "слово", "word"))
	}
	return words
}
