package service

import (
	"context"
	"fmt"
	"testing"

	"englishbot/internal/domain"
	"englishbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestQuizService(wordRepo *testutil.MockWordRepository, statsRepo *testutil.MockStatsRepository) *QuizService {
	s := NewQuizService(wordRepo, statsRepo, 4)
	s.shuffle = func([]string) {}
	return s
}

func TestQuizService_NextQuestion(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	statsRepo := new(testutil.MockStatsRepository)

	wordRepo.On("GetRandomWord", mock.Anything, int64(123)).
		Return(testutil.NewTestWord(5, 123, "кот", "cat"), nil)
	wordRepo.On("RandomTranslations", mock.Anything, int64(123), int64(5), 4).
		Return([]string{"dog", "Cat", "bird"}, nil)
	wordRepo.On("CommonTranslations", mock.Anything, "cat", 4).
		Return([]string{"dog", "red", "blue"}, nil)

	service := newTestQuizService(wordRepo, statsRepo)

	q, err := service.NextQuestion(context.Background(), 123)

	require.NoError(t, err)
	assert.Equal(t, int64(5), q.WordID)
	assert.Equal(t, "кот", q.Russian)
	assert.Equal(t, "cat", q.Expected)
	assert.Equal(t, []string{"cat", "dog", "bird", "red"}, q.Options)
	wordRepo.AssertExpectations(t)
}

func TestQuizService_NextQuestion_EnoughOwnWords(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	statsRepo := new(testutil.MockStatsRepository)

	wordRepo.On("GetRandomWord", mock.Anything, int64(123)).
		Return(testutil.NewTestWord(5, 123, "кот", "cat"), nil)
	wordRepo.On("RandomTranslations", mock.Anything, int64(123), int64(5), 4).
		Return([]string{"dog", "bird", "fish", "cow"}, nil)

	service := newTestQuizService(wordRepo, statsRepo)

	q, err := service.NextQuestion(context.Background(), 123)

	require.NoError(t, err)
	assert.Len(t, q.Options, 4)
	assert.Contains(t, q.Options, "cat")
	wordRepo.AssertNotCalled(t, "CommonTranslations", mock.Anything, mock.Anything, mock.Anything)
}

func TestQuizService_NextQuestion_ShufflesOptions(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	statsRepo := new(testutil.MockStatsRepository)

	wordRepo.On("GetRandomWord", mock.Anything, int64(123)).
		Return(testutil.NewTestWord(5, 123, "кот", "cat"), nil)
	wordRepo.On("RandomTranslations", mock.Anything, int64(123), int64(5), 4).
		Return([]string{"dog", "bird", "fish"}, nil)

	service := NewQuizService(wordRepo, statsRepo, 4)

	q, err := service.NextQuestion(context.Background(), 123)

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cat", "dog", "bird", "fish"}, q.Options)
}

func TestQuizService_NextQuestion_EmptyDictionary(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	statsRepo := new(testutil.MockStatsRepository)

	wordRepo.On("GetRandomWord", mock.Anything, int64(123)).Return(nil, nil)

	service := newTestQuizService(wordRepo, statsRepo)

	q, err := service.NextQuestion(context.Background(), 123)

	assert.ErrorIs(t, err, domain.ErrEmptyDictionary)
	assert.Nil(t, q)
}

func TestQuizService_NextQuestion_RepoError(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	statsRepo := new(testutil.MockStatsRepository)

	wordRepo.On("GetRandomWord", mock.Anything, int64(123)).
		Return(testutil.NewTestWord(5, 123, "кот", "cat"), nil)
	wordRepo.On("RandomTranslations", mock.Anything, int64(123), int64(5), 4).
		Return(nil, fmt.Errorf("db error"))

	service := newTestQuizService(wordRepo, statsRepo)

	q, err := service.NextQuestion(context.Background(), 123)

	assert.Error(t, err)
	assert.Nil(t, q)
}

func TestQuizService_CheckAnswer(t *testing.T) {
	tests := []struct {
		name            string
		answer          string
		expectedCorrect bool
	}{
		{name: "exact match", answer: "cat", expectedCorrect: true},
		{name: "different case", answer: "CaT", expectedCorrect: true},
		{name: "surrounding spaces", answer: "  cat ", expectedCorrect: true},
		{name: "wrong answer", answer: "dog", expectedCorrect: false},
		{name: "empty answer", answer: "", expectedCorrect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wordRepo := new(testutil.MockWordRepository)
			statsRepo := new(testutil.MockStatsRepository)

			correct := 0
			if tt.expectedCorrect {
				correct = 1
			}
			statsRepo.On("RecordAnswer", mock.Anything, int64(123), int64(5), tt.expectedCorrect).
				Return(&domain.QuizStat{UserID: 123, Correct: correct, Total: 1}, nil).Once()

			service := newTestQuizService(wordRepo, statsRepo)
			q := &domain.QuizQuestion{WordID: 5, Russian: "кот", Expected: "cat"}

			result, err := service.CheckAnswer(context.Background(), 123, q, tt.answer)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedCorrect, result.Correct)
			assert.Equal(t, "cat", result.Expected)
			assert.Equal(t, 1, result.Stat.Total)
			assert.Equal(t, correct, result.Stat.Correct)
			statsRepo.AssertExpectations(t)
		})
	}
}

func TestQuizService_CheckAnswer_RecordError(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	statsRepo := new(testutil.MockStatsRepository)
	statsRepo.On("RecordAnswer", mock.Anything, int64(123), int64(5), true).
		Return(nil, fmt.Errorf("db error"))

	service := newTestQuizService(wordRepo, statsRepo)

	result, err := service.CheckAnswer(context.Background(), 123, &domain.QuizQuestion{WordID: 5, Expected: "cat"}, "cat")

	assert.Error(t, err)
	assert.Nil(t, result)
}
