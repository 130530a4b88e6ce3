package handler

import (
	"context"
	"fmt"

	"englishbot/internal/domain"
	"englishbot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// startQuiz asks a new question. A question left unanswered is replaced.
func (h *Handler) startQuiz(ctx context.Context, userID int64) Reply {
	question, err := h.quizService.NextQuestion(ctx, userID)
	if err != nil {
		return h.errorReply(userID, "build quiz question", err)
	}

	h.sessions.Update(userID, func(s *session.Session) {
		s.State = domain.StateAwaitingAnswer
		s.PendingRussian = ""
		s.Quiz = question
	})

	return Reply{
		Text:      fmt.Sprintf("🎯 Переведите слово: <b>%s</b>", escape(question.Russian)),
		Markup:    optionsMarkup(question.Options),
		ParseMode: tele.ModeHTML,
	}
}

// answerQuiz checks text against the pending question. The question is taken
// out of the session first, so a second answer to it is never counted.
func (h *Handler) answerQuiz(ctx context.Context, userID int64, answer string) Reply {
	question, ok := h.sessions.TakeQuiz(userID)
	if !ok {
		return Reply{
			Text:   "На этот вопрос уже дан ответ. Нажмите «" + labelQuiz + "» для следующего вопроса.",
			Markup: mainMenuMarkup(),
		}
	}

	result, err := h.quizService.CheckAnswer(ctx, userID, question, answer)
	if err != nil {
		return h.errorReply(userID, "check quiz answer", err)
	}

	h.logger.Debug("Quiz answered",
		zap.Int64("user_id", userID),
		zap.Int64("word_id", question.WordID),
		zap.Bool("correct", result.Correct),
	)

	var text string
	if result.Correct {
		text = fmt.Sprintf("✅ Правильно! <b>%s</b> - верный ответ.", escape(result.Expected))
	} else {
		text = fmt.Sprintf("❌ Неправильно. Правильный ответ: <b>%s</b>.", escape(result.Expected))
	}
	text += fmt.Sprintf("\n\nСчёт: %d из %d (%d%%)\n\nНажмите «%s» для следующего вопроса.",
		result.Stat.Correct, result.Stat.Total, result.Stat.Percent(), labelQuiz)

	return Reply{Text: text, Markup: mainMenuMarkup(), ParseMode: tele.ModeHTML}
}
