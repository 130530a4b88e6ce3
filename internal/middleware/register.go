package middleware

import (
	"context"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Registrar makes sure a Telegram user has a database record
type Registrar interface {
	EnsureRegistered(ctx context.Context, userID int64, username string) error
}

// RegisterMiddleware registers the sender on first contact so every handler
// can rely on the user row existing
func RegisterMiddleware(registrar Registrar, logger *zap.Logger, timeout time.Duration) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			user := c.Sender()
			if user == nil {
				return next(c)
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			username := user.Username
			if username == "" {
				username = user.FirstName
			}

			if err := registrar.EnsureRegistered(ctx, user.ID, username); err != nil {
				logger.Error("Failed to register user in middleware",
					zap.Error(err),
					zap.Int64("user_id", user.ID),
				)
				return c.Send("Произошла ошибка. Попробуйте позже.")
			}

			return next(c)
		}
	}
}
