package handler

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"englishbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgInternalError = "Произошла ошибка. Попробуйте позже."

var (
	btnPrevPage = tele.Btn{Unique: "page_prev", Text: "⬅️"}
	btnNextPage = tele.Btn{Unique: "page_next", Text: "➡️"}
)

// errorReply turns a service error into user-facing text. Expected domain
// errors are answered directly, anything else is logged.
func (h *Handler) errorReply(userID int64, op string, err error) Reply {
	switch {
	case errors.Is(err, domain.ErrDuplicateWord):
		return Reply{Text: "⚠️ Такое слово уже есть в вашем списке.", Markup: mainMenuMarkup()}
	case errors.Is(err, domain.ErrWordNotFound):
		return Reply{Text: "Слово не найдено. Возможно, оно уже удалено.", Markup: mainMenuMarkup()}
	case errors.Is(err, domain.ErrEmptyDictionary):
		return Reply{
			Text:   "У вас пока нет слов. Добавьте слова с помощью кнопки «" + labelAdd + "».",
			Markup: mainMenuMarkup(),
		}
	case errors.Is(err, domain.ErrWordTooLong):
		return Reply{Text: "Слово слишком длинное.", Markup: mainMenuMarkup()}
	case errors.Is(err, domain.ErrInvalidArgument):
		return Reply{
			Text:   "Неверный формат. Примеры: /add кот - cat, /delete 12",
			Markup: mainMenuMarkup(),
		}
	}

	h.logger.Error("Failed to "+op,
		zap.Error(err),
		zap.Int64("user_id", userID),
	)
	return Reply{Text: msgInternalError, Markup: mainMenuMarkup()}
}

func welcomeReply(name string) Reply {
	if name == "" {
		name = "друг"
	}
	text := fmt.Sprintf("👋 Привет, %s!\n\n"+
		"Я помогу тебе учить английские слова. "+
		"В твой словарь уже добавлены несколько базовых слов.\n\n"+
		"Выбери действие в меню ниже 👇", escape(name))
	return Reply{Text: text, Markup: mainMenuMarkup(), ParseMode: tele.ModeHTML}
}

func idleReply() Reply {
	return Reply{Text: "Пожалуйста, выберите действие из меню ниже 👇", Markup: mainMenuMarkup()}
}

func helpReply() Reply {
	text := "📚 <b>Справка по использованию бота</b>\n\n" +
		"<b>Команды:</b>\n" +
		"/start - начать работу\n" +
		"/help - показать эту справку\n" +
		"/quiz - викторина\n" +
		"/add - добавить слово (можно сразу: /add кот - cat)\n" +
		"/delete - удалить слово (можно сразу: /delete 12)\n" +
		"/list - список слов, /next и /prev - листать страницы\n" +
		"/stats - статистика ответов\n" +
		"/cancel - отменить текущее действие\n\n" +
		"Для начала работы нажмите на одну из кнопок в меню 👇"
	return Reply{Text: text, Markup: mainMenuMarkup(), ParseMode: tele.ModeHTML}
}

// listPageReply renders a numbered page of words with inline navigation
func listPageReply(page *domain.Page) Reply {
	var b strings.Builder
	fmt.Fprintf(&b, "📋 <b>Ваш список слов</b> (страница %d из %d, всего %d):\n\n",
		page.Number+1, page.TotalPages(), page.TotalWords)
	for i, w := range page.Words {
		fmt.Fprintf(&b, "%d. %s\n", page.Offset()+i+1, escape(w.String()))
	}

	return Reply{Text: b.String(), Markup: pageNavMarkup(page), ParseMode: tele.ModeHTML}
}

// deletePageReply shows one page of words as buttons to pick for deletion
func deletePageReply(page *domain.Page) Reply {
	text := fmt.Sprintf("Выберите слово для удаления (страница %d из %d):",
		page.Number+1, page.TotalPages())
	if page.TotalPages() > 1 {
		text += "\n/next и /prev - листать страницы"
	}
	return Reply{Text: text, Markup: deleteMarkup(page.Words)}
}

func mainMenuMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(
		markup.Row(markup.Text(labelQuiz), markup.Text(labelAdd)),
		markup.Row(markup.Text(labelDelete), markup.Text(labelList)),
		markup.Row(markup.Text(labelStats)),
	)
	return markup
}

func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(markup.Row(markup.Text(labelCancel)))
	return markup
}

// optionsMarkup lays quiz options out two per row
func optionsMarkup(options []string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	rows := []tele.Row{}

	row := tele.Row{}
	for _, option := range options {
		row = append(row, markup.Text(option))
		if len(row) == 2 {
			rows = append(rows, row)
			row = tele.Row{}
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, markup.Row(markup.Text(labelCancel)))

	markup.Reply(rows...)
	return markup
}

// deleteMarkup shows one button per word; the label carries the ID that
// parseWordID reads back
func deleteMarkup(words []domain.Word) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	rows := []tele.Row{}
	for _, w := range words {
		rows = append(rows, markup.Row(markup.Text(deleteLabel(w))))
	}
	rows = append(rows, markup.Row(markup.Text(labelCancel)))

	markup.Reply(rows...)
	return markup
}

func deleteLabel(w domain.Word) string {
	return fmt.Sprintf("%s (ID: %d)", w.String(), w.ID)
}

// pageNavMarkup returns inline arrows for the pages around the current one,
// or nil when the list fits on one page
func pageNavMarkup(page *domain.Page) *tele.ReplyMarkup {
	if !page.HasPrev() && !page.HasNext() {
		return nil
	}

	markup := &tele.ReplyMarkup{}
	row := tele.Row{}
	if page.HasPrev() {
		row = append(row, btnPrevPage)
	}
	if page.HasNext() {
		row = append(row, btnNextPage)
	}
	markup.Inline(row)
	return markup
}

func escape(s string) string {
	return html.EscapeString(s)
}
