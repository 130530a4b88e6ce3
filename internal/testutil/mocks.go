package testutil

import (
	"context"

	"englishbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUser(ctx context.Context, userID int64, username string) (bool, error) {
	args := m.Called(ctx, userID, username)
	return args.Bool(0), args.Error(1)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) SaveWord(ctx context.Context, userID int64, russian, english string) (*domain.Word, error) {
	args := m.Called(ctx, userID, russian, english)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) DeleteWord(ctx context.Context, userID, wordID int64) error {
	args := m.Called(ctx, userID, wordID)
	return args.Error(0)
}

func (m *MockWordRepository) GetWord(ctx context.Context, userID, wordID int64) (*domain.Word, error) {
	args := m.Called(ctx, userID, wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) ListWords(ctx context.Context, userID int64, limit, offset int) ([]domain.Word, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) CountWords(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockWordRepository) GetRandomWord(ctx context.Context, userID int64) (*domain.Word, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) RandomTranslations(ctx context.Context, userID, excludeWordID int64, limit int) ([]string, error) {
	args := m.Called(ctx, userID, excludeWordID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockWordRepository) CommonTranslations(ctx context.Context, exclude string, limit int) ([]string, error) {
	args := m.Called(ctx, exclude, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockStatsRepository is a mock for StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) RecordAnswer(ctx context.Context, userID, wordID int64, correct bool) (*domain.QuizStat, error) {
	args := m.Called(ctx, userID, wordID, correct)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizStat), args.Error(1)
}

func (m *MockStatsRepository) GetStats(ctx context.Context, userID int64) (*domain.QuizStat, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizStat), args.Error(1)
}
