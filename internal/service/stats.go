package service

import (
	"context"

	"englishbot/internal/domain"
	"englishbot/internal/repository"
)

// Summary is what the stats command shows
type Summary struct {
	Stat      domain.QuizStat
	WordCount int
}

// StatsService reports quiz statistics
type StatsService struct {
	statsRepo repository.StatsRepository
	wordRepo  repository.WordRepository
}

// NewStatsService creates a new stats service
func NewStatsService(statsRepo repository.StatsRepository, wordRepo repository.WordRepository) *StatsService {
	return &StatsService{
		statsRepo: statsRepo,
		wordRepo:  wordRepo,
	}
}

// Summary returns the user's cumulative quiz stat and vocabulary size
func (s *StatsService) Summary(ctx context.Context, userID int64) (*Summary, error) {
	stat, err := s.statsRepo.GetStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	count, err := s.wordRepo.CountWords(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Summary{Stat: *stat, WordCount: count}, nil
}
