package handler

import (
	"context"
	"time"

	"englishbot/internal/domain"
	"englishbot/internal/service"
	"englishbot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	wordService  *service.WordService
	quizService  *service.QuizService
	statsService *service.StatsService
	sessions     *session.Store
	logger       *zap.Logger

	requestTimeout time.Duration
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	wordService *service.WordService,
	quizService *service.QuizService,
	statsService *service.StatsService,
	sessions *session.Store,
	logger *zap.Logger,
	requestTimeout time.Duration,
) *Handler {
	return &Handler{
		bot:            bot,
		wordService:    wordService,
		quizService:    quizService,
		statsService:   statsService,
		sessions:       sessions,
		logger:         logger,
		requestTimeout: requestTimeout,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	for name := range slashCommands {
		h.bot.Handle(name, h.handleMessage)
	}

	// Text messages, including menu buttons and free-form input
	h.bot.Handle(tele.OnText, h.handleMessage)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnPrevPage, h.handlePrevPage)
	h.bot.Handle(&btnNextPage, h.handleNextPage)

	// Generic callback handler for anything else
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Request is one inbound command from a user
type Request struct {
	UserID   int64
	Username string
	Command  Command
	Args     string
}

// Reply is the formatted answer to a Request
type Reply struct {
	Text      string
	Markup    *tele.ReplyMarkup
	ParseMode tele.ParseMode
}

// handleMessage parses any text message and sends the dispatched reply
func (h *Handler) handleMessage(c tele.Context) error {
	ctx, cancel := h.requestContext()
	defer cancel()

	cmd, args := ParseCommand(c.Text())
	reply := h.Dispatch(ctx, Request{
		UserID:   c.Sender().ID,
		Username: displayName(c.Sender()),
		Command:  cmd,
		Args:     args,
	})

	return c.Send(reply.Text, reply.options()...)
}

// Dispatch runs one command for a user and returns the reply. Errors never
// escape: they are logged and turned into user-facing text.
func (h *Handler) Dispatch(ctx context.Context, req Request) Reply {
	h.logger.Debug("Dispatching command",
		zap.Int64("user_id", req.UserID),
		zap.Stringer("command", req.Command),
	)

	switch req.Command {
	case CommandStart:
		h.sessions.Reset(req.UserID)
		return welcomeReply(req.Username)
	case CommandHelp:
		return helpReply()
	case CommandQuiz:
		return h.startQuiz(ctx, req.UserID)
	case CommandAdd:
		return h.startAdd(ctx, req.UserID, req.Args)
	case CommandDelete:
		return h.startDelete(ctx, req.UserID, req.Args)
	case CommandList:
		return h.showList(ctx, req.UserID)
	case CommandNextPage:
		return h.turnPage(ctx, req.UserID, 1)
	case CommandPrevPage:
		return h.turnPage(ctx, req.UserID, -1)
	case CommandStats:
		return h.showStats(ctx, req.UserID)
	case CommandCancel:
		h.sessions.Reset(req.UserID)
		return Reply{Text: "Действие отменено. Выберите другое действие:", Markup: mainMenuMarkup()}
	case CommandText:
		return h.handleText(ctx, req.UserID, req.Args)
	case CommandUnknown:
		return Reply{Text: "Неизвестная команда. Используйте /help для списка команд.", Markup: mainMenuMarkup()}
	default:
		h.logger.Error("Unhandled command", zap.Stringer("command", req.Command))
		return Reply{Text: msgInternalError, Markup: mainMenuMarkup()}
	}
}

// handleText interprets free text according to the user's current state
func (h *Handler) handleText(ctx context.Context, userID int64, text string) Reply {
	state := h.sessions.Get(userID)

	switch state.State {
	case domain.StateAddingRussian:
		h.sessions.Update(userID, func(s *session.Session) {
			s.State = domain.StateAddingEnglish
			s.PendingRussian = text
		})
		return Reply{
			Text:      "Теперь введите перевод слова <b>" + escape(text) + "</b> на английском языке:",
			Markup:    cancelMarkup(),
			ParseMode: tele.ModeHTML,
		}

	case domain.StateAddingEnglish:
		taken, ok := h.sessions.Take(userID, domain.StateAddingEnglish)
		if !ok {
			return idleReply()
		}
		return h.addWord(ctx, userID, taken.PendingRussian, text)

	case domain.StateDeleting:
		wordID, err := parseWordID(text)
		if err != nil {
			return Reply{
				Text:   "Выберите слово кнопкой ниже или отправьте его ID.",
				Markup: cancelMarkup(),
			}
		}
		if _, ok := h.sessions.Take(userID, domain.StateDeleting); !ok {
			return idleReply()
		}
		return h.deleteWord(ctx, userID, wordID)

	case domain.StateAwaitingAnswer:
		return h.answerQuiz(ctx, userID, text)

	default:
		return idleReply()
	}
}

func (h *Handler) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), h.requestTimeout)
}

func displayName(u *tele.User) string {
	if u == nil {
		return ""
	}
	if u.Username != "" {
		return u.Username
	}
	return u.FirstName
}

func (r Reply) options() []interface{} {
	var opts []interface{}
	if r.Markup != nil {
		opts = append(opts, r.Markup)
	}
	if r.ParseMode != "" {
		opts = append(opts, r.ParseMode)
	}
	return opts
}
