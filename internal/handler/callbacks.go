package handler

import (
	"strings"
	"unicode"

	"englishbot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// A double tap on the same arrow renders the same page twice
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Page already shown, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles callback queries not routed by button Unique
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	key := callback.Unique
	if key == "" {
		key = data
	}

	switch key {
	case btnPrevPage.Unique:
		return h.handlePrevPage(c)
	case btnNextPage.Unique:
		return h.handleNextPage(c)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)
	return c.Respond()
}

func (h *Handler) handlePrevPage(c tele.Context) error {
	return h.handlePage(c, -1)
}

func (h *Handler) handleNextPage(c tele.Context) error {
	return h.handlePage(c, 1)
}

// handlePage moves the list cursor and edits the list message in place
func (h *Handler) handlePage(c tele.Context, delta int) error {
	ctx, cancel := h.requestContext()
	defer cancel()

	userID := c.Sender().ID
	cursor := h.sessions.Get(userID).Page

	page, err := h.wordService.GetPage(ctx, userID, cursor+delta)
	if err != nil {
		reply := h.errorReply(userID, "turn page", err)
		return c.Respond(&tele.CallbackResponse{Text: reply.Text})
	}

	h.sessions.Update(userID, func(s *session.Session) {
		s.Page = page.Number
	})

	reply := listPageReply(page)
	if err := c.Edit(reply.Text, reply.options()...); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(reply.Text, reply.options()...)
	}
	return c.Respond()
}
