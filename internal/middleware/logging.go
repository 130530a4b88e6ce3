package middleware

import (
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// LoggerMiddleware logs one line per update with its kind and duration
func LoggerMiddleware(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			err := next(c)

			fields := []zap.Field{
				zap.Int("update_id", c.Update().ID),
				zap.String("kind", updateKind(c.Update())),
				zap.Duration("duration", time.Since(start)),
			}
			if user := c.Sender(); user != nil {
				fields = append(fields, zap.Int64("user_id", user.ID))
			}
			if cb := c.Callback(); cb != nil && cb.Unique != "" {
				fields = append(fields, zap.String("callback", cb.Unique))
			}

			if err != nil {
				logger.Warn("Update handled with error", append(fields, zap.Error(err))...)
			} else {
				logger.Debug("Update handled", fields...)
			}
			return err
		}
	}
}

func updateKind(u tele.Update) string {
	switch {
	case u.Callback != nil:
		return "callback"
	case u.Message != nil:
		return "message"
	default:
		return "other"
	}
}
