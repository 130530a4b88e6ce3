package service

import (
	"context"
	"sync"

	"englishbot/internal/repository"

	"go.uber.org/zap"
)

// UserService handles user registration
type UserService struct {
	userRepo repository.UserRepository
	logger   *zap.Logger

	// users already confirmed in the database during this run; cleared
	// once it reaches maxKnown entries
	known    map[int64]struct{}
	knownMu  sync.RWMutex
	maxKnown int
}

const defaultMaxKnownUsers = 10000

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
		known:    make(map[int64]struct{}),
		maxKnown: defaultMaxKnownUsers,
	}
}

// EnsureRegistered creates the user record (and starter vocabulary) on
// first contact. Repeat calls for the same user skip the database.
func (s *UserService) EnsureRegistered(ctx context.Context, userID int64, username string) error {
	s.knownMu.RLock()
	_, ok := s.known[userID]
	s.knownMu.RUnlock()
	if ok {
		return nil
	}

	created, err := s.userRepo.EnsureUser(ctx, userID, username)
	if err != nil {
		return err
	}

	if created {
		s.logger.Info("New user registered",
			zap.Int64("user_id", userID),
			zap.String("username", username),
		)
	}

	s.knownMu.Lock()
	if len(s.known) >= s.maxKnown {
		s.known = make(map[int64]struct{})
	}
	s.known[userID] = struct{}{}
	s.knownMu.Unlock()

	return nil
}

// KnownUsers returns the size of the registration cache
func (s *UserService) KnownUsers() int {
	s.knownMu.RLock()
	defer s.knownMu.RUnlock()
	return len(s.known)
}
