package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/m3rciful/cryptonews/core/logger"
	"github.com/m3rciful/cryptonews/core/telegram/callbacks"
	tghelpers "github.com/m3rciful/cryptonews/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

const ridKey = "rid"

// LoggerMiddleware sets up the update's rid and logging context and logs one
// sampled receipt line. It may wrap a handler more than once; only the
// outermost application does any work.
func LoggerMiddleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		if rid, _ := c.Get(ridKey).(string); rid != "" {
			return next(c)
		}

		upd := c.Update()
		var chatID, userID int64
		if chat := c.Chat(); chat != nil {
			chatID = chat.ID
		}
		if user := c.Sender(); user != nil {
			userID = user.ID
		}
		rid := logger.BuildRID(upd.ID, chatID, userID)
		c.Set(ridKey, rid)
		c.Set("update_start", time.Now())

		ctx := logger.WithRID(context.Background(), rid)
		ctx = logger.WithUpdateMeta(ctx, upd.ID, userID, chatID)
		ctx = logger.WithLogger(ctx, logger.Component("tg"))
		tghelpers.StoreContext(c, ctx)

		if logger.ShouldSampleDebug() {
			logger.Debug(ctx, "tg", "update.received", receiptAttrs(c, upd)...)
		}
		return next(c)
	}
}

func receiptAttrs(c tele.Context, upd tele.Update) []slog.Attr {
	attrs := []slog.Attr{slog.String("status", "ok")}
	if chat := c.Chat(); chat != nil {
		attrs = append(attrs, slog.String("chat_type", string(chat.Type)))
	}
	if user := c.Sender(); user != nil && user.LanguageCode != "" {
		attrs = append(attrs, slog.String("lang", user.LanguageCode))
	}
	switch {
	case upd.Callback != nil:
		if key := upd.Callback.Unique; key != "" {
			attrs = append(attrs, slog.String("cb_key", logger.SanitizeLimit(key, 128)))
		}
		attrs = append(attrs, slog.String("token", logger.SanitizeLimit(callbacks.Token(c), 128)))
	case upd.Message != nil:
		attrs = append(attrs, slog.String("payload", logger.SanitizeLimit(c.Text(), 256)))
	}
	return attrs
}
