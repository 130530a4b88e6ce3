package service

import (
	"context"

	"englishbot/internal/domain"
	"englishbot/internal/repository"
)

// WordService handles word-related business logic
type WordService struct {
	wordRepo      repository.WordRepository
	pageSize      int
	maxWordLength int
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository, pageSize, maxWordLength int) *WordService {
	return &WordService{
		wordRepo:      wordRepo,
		pageSize:      pageSize,
		maxWordLength: maxWordLength,
	}
}

// AddWord normalizes and saves a pair, returning the new entry and the
// user's word count after the insert
func (s *WordService) AddWord(ctx context.Context, userID int64, russian, english string) (*domain.Word, int, error) {
	ru, err := domain.NormalizeWord(russian, s.maxWordLength)
	if err != nil {
		return nil, 0, err
	}
	en, err := domain.NormalizeWord(english, s.maxWordLength)
	if err != nil {
		return nil, 0, err
	}

	word, err := s.wordRepo.SaveWord(ctx, userID, ru, en)
	if err != nil {
		return nil, 0, err
	}

	count, err := s.wordRepo.CountWords(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	return word, count, nil
}

// RemoveWord deletes one of the user's words. Unknown IDs yield
// domain.ErrWordNotFound.
func (s *WordService) RemoveWord(ctx context.Context, userID, wordID int64) error {
	if wordID <= 0 {
		return domain.ErrWordNotFound
	}
	return s.wordRepo.DeleteWord(ctx, userID, wordID)
}

// GetPage returns the requested page of the user's words. The page number is
// clamped to the existing range, so callers may pass a stale cursor.
func (s *WordService) GetPage(ctx context.Context, userID int64, page int) (*domain.Page, error) {
	total, err := s.wordRepo.CountWords(ctx, userID)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, domain.ErrEmptyDictionary
	}

	page = domain.ClampPage(page, total, s.pageSize)

	words, err := s.wordRepo.ListWords(ctx, userID, s.pageSize, page*s.pageSize)
	if err != nil {
		return nil, err
	}

	return &domain.Page{
		Words:      words,
		Number:     page,
		Size:       s.pageSize,
		TotalWords: total,
	}, nil
}
