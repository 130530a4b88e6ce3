package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Word represents a Russian-English pair owned by a user
type Word struct {
	ID           int64     `db:"id"`
	UserID       int64     `db:"user_id"`
	Russian      string    `db:"russian"`
	English      string    `db:"english"`
	CorrectCount int       `db:"correct_count"`
	AttemptCount int       `db:"attempt_count"`
	CreatedAt    time.Time `db:"created_at"`
}

// String renders the pair the way it is shown in lists
func (w Word) String() string {
	return fmt.Sprintf("%s - %s", w.Russian, w.English)
}

// NormalizeWord trims and lower-cases user input and enforces the length limit
func NormalizeWord(text string, maxLength int) (string, error) {
	word := strings.ToLower(strings.TrimSpace(text))
	if word == "" {
		return "", ErrInvalidArgument
	}
	if maxLength > 0 && utf8.RuneCountInString(word) > maxLength {
		return "", ErrWordTooLong
	}
	return word, nil
}
