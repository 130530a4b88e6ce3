package domain

import "time"

// User represents a bot user
type User struct {
	UserID    int64     `db:"user_id"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
}

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle           UserState = "idle"
	StateAddingRussian  UserState = "adding_russian"
	StateAddingEnglish  UserState = "adding_english"
	StateDeleting       UserState = "deleting"
	StateAwaitingAnswer UserState = "awaiting_answer"
)
