// Package session keeps per-user conversation state in memory.
//
// A Store is created once and injected into the handler; there is no
// package-level state.
package session

import (
	"sync"
	"time"

	"englishbot/internal/domain"
)

// Session holds one user's ephemeral state
type Session struct {
	State          domain.UserState
	PendingRussian string
	Quiz           *domain.QuizQuestion
	Page           int
	LastSeen       time.Time
}

// Store is a mutex-guarded map of sessions keyed by Telegram user ID
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	now      func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]*Session),
		now:      time.Now,
	}
}

// Get returns a copy of the user's session; unknown users are idle
func (s *Store) Get(userID int64) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return Session{State: domain.StateIdle}
	}
	return *sess
}

// Update applies fn to the user's session under the store lock
func (s *Store) Update(userID int64, fn func(*Session)) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.lookup(userID)
	fn(sess)
	sess.LastSeen = s.now()
	return *sess
}

// Reset returns the user to idle, dropping any pending input or question.
// The list cursor is kept so browsing can continue afterwards.
func (s *Store) Reset(userID int64) {
	s.Update(userID, func(sess *Session) {
		sess.State = domain.StateIdle
		sess.PendingRussian = ""
		sess.Quiz = nil
	})
}

// TakeQuiz removes and returns the pending question, moving the user back
// to idle. Only the first caller for a question gets it.
func (s *Store) TakeQuiz(userID int64) (*domain.QuizQuestion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok || sess.State != domain.StateAwaitingAnswer || sess.Quiz == nil {
		return nil, false
	}

	q := sess.Quiz
	sess.Quiz = nil
	sess.State = domain.StateIdle
	sess.LastSeen = s.now()
	return q, true
}

// Take returns the session and resets it to idle, but only if the user is
// still in state. Of two racing messages only the first one gets the
// session.
func (s *Store) Take(userID int64, state domain.UserState) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok || sess.State != state {
		return Session{}, false
	}

	taken := *sess
	sess.State = domain.StateIdle
	sess.PendingRussian = ""
	sess.Quiz = nil
	sess.LastSeen = s.now()
	return taken, true
}

// Sweep drops sessions not touched for longer than maxIdle and returns how
// many were removed
func (s *Store) Sweep(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	removed := 0
	for userID, sess := range s.sessions {
		if sess.LastSeen.Before(cutoff) {
			delete(s.sessions, userID)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked sessions
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) lookup(userID int64) *Session {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &Session{State: domain.StateIdle}
		s.sessions[userID] = sess
	}
	return sess
}
