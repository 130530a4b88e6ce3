package domain

// QuizStat holds cumulative quiz counters for a user
type QuizStat struct {
	UserID  int64 `db:"user_id"`
	Correct int   `db:"correct"`
	Total   int   `db:"total"`
}

// Percent returns the share of correct answers, 0 when nothing was answered
func (s QuizStat) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return s.Correct * 100 / s.Total
}
