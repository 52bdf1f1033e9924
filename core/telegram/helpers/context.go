package helpers

import (
	"context"
	"log/slog"

	"github.com/m3rciful/cryptonews/core/logger"

	tele "gopkg.in/telebot.v4"
)

const (
	contextKey = "logger_ctx"
	summaryKey = "summary_attrs"
)

// StoreContext caches ctx on the update for later helpers.
func StoreContext(c tele.Context, ctx context.Context) {
	if c != nil && ctx != nil {
		c.Set(contextKey, ctx)
	}
}

// ContextFrom returns the context cached by StoreContext.
func ContextFrom(c tele.Context) (context.Context, bool) {
	if c == nil {
		return nil, false
	}
	ctx, ok := c.Get(contextKey).(context.Context)
	return ctx, ok && ctx != nil
}

// BuildContext returns the update's logging context, creating and caching it
// on first use. It carries the request id and the update, user and chat ids.
func BuildContext(c tele.Context) context.Context {
	if ctx, ok := ContextFrom(c); ok {
		return ctx
	}

	var userID, chatID int64
	if u := c.Sender(); u != nil {
		userID = u.ID
	}
	if ch := c.Chat(); ch != nil {
		chatID = ch.ID
	}
	updateID := c.Update().ID
	rid, _ := c.Get("rid").(string)
	if rid == "" {
		rid = logger.BuildRID(updateID, chatID, userID)
	}

	ctx := logger.WithUpdateMeta(logger.WithRID(context.Background(), rid), updateID, userID, chatID)
	ctx = logger.WithLogger(ctx, logger.Component("tg"))
	StoreContext(c, ctx)
	return ctx
}

// WithHandler tags the cached context with the handler name.
func WithHandler(c tele.Context, handler string) context.Context {
	ctx := BuildContext(c)
	if handler != "" {
		ctx = logger.WithHandler(ctx, handler)
		StoreContext(c, ctx)
	}
	return ctx
}

// AddSummaryAttrs attaches attributes to the handler summary logged once the
// current update has been handled.
func AddSummaryAttrs(c tele.Context, attrs ...slog.Attr) {
	if c == nil || len(attrs) == 0 {
		return
	}
	c.Set(summaryKey, append(SummaryAttrs(c), attrs...))
}

// SummaryAttrs returns the attributes collected by AddSummaryAttrs.
func SummaryAttrs(c tele.Context) []slog.Attr {
	if c == nil {
		return nil
	}
	attrs, _ := c.Get(summaryKey).([]slog.Attr)
	return attrs
}
