package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/m3rciful/cryptonews/core/logger"
	tghelpers "github.com/m3rciful/cryptonews/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// RecoverMiddleware turns a handler panic into an error log and answers a
// pending callback so the client spinner stops.
func RecoverMiddleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			attrs := []slog.Attr{slog.Any("panic", r)}
			if logger.StacksEnabled() {
				attrs = append(attrs, slog.String("stack", string(debug.Stack())))
			}
			logger.Error(tghelpers.BuildContext(c), "tg", "panic", attrs...)
			if c.Callback() != nil {
				_ = tghelpers.Ack(c, "")
			}
		}()
		return next(c)
	}
}
