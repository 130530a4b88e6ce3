package handler

import (
	"context"
	"fmt"

	"englishbot/internal/domain"
	"englishbot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// startAdd either saves "/add ru - en" directly or starts the two-step flow
func (h *Handler) startAdd(ctx context.Context, userID int64, args string) Reply {
	if args != "" {
		ru, en, err := parsePair(args)
		if err != nil {
			return h.errorReply(userID, "parse add arguments", err)
		}
		h.sessions.Reset(userID)
		return h.addWord(ctx, userID, ru, en)
	}

	h.sessions.Update(userID, func(s *session.Session) {
		s.State = domain.StateAddingRussian
		s.PendingRussian = ""
		s.Quiz = nil
	})
	return Reply{Text: "Введите слово на русском языке:", Markup: cancelMarkup()}
}

func (h *Handler) addWord(ctx context.Context, userID int64, russian, english string) Reply {
	word, count, err := h.wordService.AddWord(ctx, userID, russian, english)
	if err != nil {
		return h.errorReply(userID, "add word", err)
	}

	h.logger.Info("Word pair saved",
		zap.Int64("user_id", userID),
		zap.Int64("word_id", word.ID),
	)

	return Reply{
		Text: fmt.Sprintf("✅ Слово <b>%s</b> успешно добавлено!\nВсего у вас %d слов для изучения.",
			escape(word.String()), count),
		Markup:    mainMenuMarkup(),
		ParseMode: tele.ModeHTML,
	}
}

// startDelete either deletes "/delete 42" directly or shows the current page
// of words as a keyboard to pick from
func (h *Handler) startDelete(ctx context.Context, userID int64, args string) Reply {
	if args != "" {
		wordID, err := parseWordID(args)
		if err != nil {
			return h.errorReply(userID, "parse delete arguments", err)
		}
		h.sessions.Reset(userID)
		return h.deleteWord(ctx, userID, wordID)
	}

	cursor := h.sessions.Get(userID).Page
	page, err := h.wordService.GetPage(ctx, userID, cursor)
	if err != nil {
		return h.errorReply(userID, "load words for delete", err)
	}

	h.sessions.Update(userID, func(s *session.Session) {
		s.State = domain.StateDeleting
		s.Page = page.Number
		s.Quiz = nil
	})
	return deletePageReply(page)
}

func (h *Handler) deleteWord(ctx context.Context, userID, wordID int64) Reply {
	if err := h.wordService.RemoveWord(ctx, userID, wordID); err != nil {
		return h.errorReply(userID, "delete word", err)
	}

	h.logger.Info("Word deleted",
		zap.Int64("user_id", userID),
		zap.Int64("word_id", wordID),
	)
	return Reply{Text: "✅ Слово успешно удалено!", Markup: mainMenuMarkup()}
}

// showList leaves any add or delete flow, renders the first page and resets
// the cursor
func (h *Handler) showList(ctx context.Context, userID int64) Reply {
	h.sessions.Reset(userID)

	page, err := h.wordService.GetPage(ctx, userID, 0)
	if err != nil {
		return h.errorReply(userID, "list words", err)
	}

	h.sessions.Update(userID, func(s *session.Session) {
		s.Page = page.Number
	})
	return listPageReply(page)
}

// turnPage moves the cursor by delta and re-renders. While the user is
// picking a word to delete, the delete keyboard is paged instead of the list.
func (h *Handler) turnPage(ctx context.Context, userID int64, delta int) Reply {
	current := h.sessions.Get(userID)

	page, err := h.wordService.GetPage(ctx, userID, current.Page+delta)
	if err != nil {
		return h.errorReply(userID, "turn page", err)
	}

	h.sessions.Update(userID, func(s *session.Session) {
		s.Page = page.Number
	})

	if current.State == domain.StateDeleting {
		return deletePageReply(page)
	}
	return listPageReply(page)
}

func (h *Handler) showStats(ctx context.Context, userID int64) Reply {
	summary, err := h.statsService.Summary(ctx, userID)
	if err != nil {
		return h.errorReply(userID, "load stats", err)
	}

	text := fmt.Sprintf("📊 Ваша статистика\n\nСлов в словаре: %d\nПравильных ответов: %d из %d (%d%%)",
		summary.WordCount, summary.Stat.Correct, summary.Stat.Total, summary.Stat.Percent())
	return Reply{Text: text, Markup: mainMenuMarkup()}
}
