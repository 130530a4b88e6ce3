package service

import (
	"time"

	"englishbot/internal/session"

	"go.uber.org/zap"
)

// SessionService expires idle conversation sessions
type SessionService struct {
	store   *session.Store
	idleTTL time.Duration
	logger  *zap.Logger
}

// NewSessionService creates a new session service
func NewSessionService(store *session.Store, idleTTL time.Duration, logger *zap.Logger) *SessionService {
	return &SessionService{
		store:   store,
		idleTTL: idleTTL,
		logger:  logger,
	}
}

// Cleanup removes sessions idle for longer than the configured TTL
func (s *SessionService) Cleanup() int {
	removed := s.store.Sweep(s.idleTTL)

	s.logger.Info("Session cleanup completed",
		zap.Int("removed", removed),
		zap.Int("active", s.store.Len()),
		zap.Duration("idle_ttl", s.idleTTL),
	)
	return removed
}
