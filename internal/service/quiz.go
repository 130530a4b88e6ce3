package service

import (
	"context"
	"math/rand"
	"strings"

	"englishbot/internal/domain"
	"englishbot/internal/repository"
)

// QuizService picks quiz questions and records answers
type QuizService struct {
	wordRepo     repository.WordRepository
	statsRepo    repository.StatsRepository
	optionsCount int
	shuffle      func([]string)
}

// NewQuizService creates a new quiz service
func NewQuizService(wordRepo repository.WordRepository, statsRepo repository.StatsRepository, optionsCount int) *QuizService {
	return &QuizService{
		wordRepo:     wordRepo,
		statsRepo:    statsRepo,
		optionsCount: optionsCount,
		shuffle: func(options []string) {
			rand.Shuffle(len(options), func(i, j int) {
				options[i], options[j] = options[j], options[i]
			})
		},
	}
}

// NextQuestion picks a random word of the user and builds answer options
func (s *QuizService) NextQuestion(ctx context.Context, userID int64) (*domain.QuizQuestion, error) {
	word, err := s.wordRepo.GetRandomWord(ctx, userID)
	if err != nil {
		return nil, err
	}
	if word == nil {
		return nil, domain.ErrEmptyDictionary
	}

	options, err := s.buildOptions(ctx, userID, word)
	if err != nil {
		return nil, err
	}

	return &domain.QuizQuestion{
		WordID:   word.ID,
		Russian:  word.Russian,
		Expected: word.English,
		Options:  options,
	}, nil
}

// buildOptions returns the correct answer mixed with distractors taken from
// the user's own words first and the common starter list second
func (s *QuizService) buildOptions(ctx context.Context, userID int64, word *domain.Word) ([]string, error) {
	options := []string{word.English}
	seen := map[string]struct{}{strings.ToLower(word.English): {}}

	add := func(candidates []string) {
		for _, c := range candidates {
			if len(options) >= s.optionsCount {
				return
			}
			key := strings.ToLower(strings.TrimSpace(c))
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			options = append(options, c)
		}
	}

	own, err := s.wordRepo.RandomTranslations(ctx, userID, word.ID, s.optionsCount)
	if err != nil {
		return nil, err
	}
	add(own)

	if len(options) < s.optionsCount {
		common, err := s.wordRepo.CommonTranslations(ctx, word.English, s.optionsCount)
		if err != nil {
			return nil, err
		}
		add(common)
	}

	s.shuffle(options)
	return options, nil
}

// CheckAnswer compares the answer case-insensitively and records the result
func (s *QuizService) CheckAnswer(ctx context.Context, userID int64, q *domain.QuizQuestion, answer string) (*domain.AnswerResult, error) {
	correct := strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(q.Expected))

	stat, err := s.statsRepo.RecordAnswer(ctx, userID, q.WordID, correct)
	if err != nil {
		return nil, err
	}

	return &domain.AnswerResult{
		Correct:  correct,
		Expected: q.Expected,
		Stat:     *stat,
	}, nil
}
