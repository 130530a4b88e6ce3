package domain

// QuizQuestion is a quiz question waiting for an answer
type QuizQuestion struct {
	WordID   int64
	Russian  string
	Expected string
	Options  []string
}

// AnswerResult is the outcome of checking one quiz answer
type AnswerResult struct {
	Correct  bool
	Expected string
	Stat     QuizStat
}
