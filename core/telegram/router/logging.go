// Package router turns registry contents into telebot routes. Every route
// logs one handler.handled summary per update.
package router

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/m3rciful/cryptonews/core/logger"
	tghelpers "github.com/m3rciful/cryptonews/core/telegram/helpers"
	"github.com/m3rciful/cryptonews/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// summary collects what the handler.handled line reports.
type summary struct {
	handler string
	start   time.Time
	extras  []slog.Attr
}

func newSummary(handler string, extras ...slog.Attr) summary {
	return summary{handler: normalizeHandlerName(handler), start: time.Now(), extras: extras}
}

// run calls fn and logs its outcome.
func (s summary) run(c tele.Context, fn tele.HandlerFunc) error {
	tghelpers.WithHandler(c, s.handler)
	err := fn(c)
	status := logger.OutcomeOK
	if err != nil {
		status = logger.OutcomeFail
	}
	s.log(c, status, err)
	return err
}

// skip logs an update nobody handled.
func (s summary) skip(c tele.Context) error {
	s.log(c, "skip", nil)
	return nil
}

func (s summary) log(c tele.Context, status string, err error) {
	ctx := tghelpers.WithHandler(c, s.handler)
	counts := middleware.GetCounters(c)

	outcome := logger.OutcomeOK
	if err != nil {
		outcome = logger.OutcomeFail
	}
	attrs := []slog.Attr{
		slog.String("status", status),
		slog.String("handler", s.handler),
		slog.String("outcome", outcome),
		slog.Int("messages", counts.Messages),
		slog.Int("edits", counts.Edits),
		slog.Int("toasts", counts.Toasts),
		slog.Bool("kb", counts.Keyboard),
		slog.Int64("duration_ms", logger.RoundMS(time.Since(s.start)).Milliseconds()),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
			slog.String("err_code", errorCode(err)),
		)
	}
	attrs = append(attrs, s.extras...)
	attrs = append(attrs, tghelpers.SummaryAttrs(c)...)
	logger.Info(ctx, "tg", "handler.handled", attrs...)
}

// guarded wraps a route handler with panic recovery and update correlation.
func guarded(h tele.HandlerFunc) tele.HandlerFunc {
	return middleware.RecoverMiddleware(middleware.LoggerMiddleware(h))
}

func normalizeHandlerName(name string) string {
	name = strings.TrimPrefix(strings.TrimSpace(name), "/")
	if name == "" {
		return "unknown"
	}
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

// errorCode prefers an error's own Code() and falls back to its type name.
func errorCode(err error) string {
	if coder, ok := err.(interface{ Code() string }); ok {
		if code := strings.TrimSpace(coder.Code()); code != "" {
			return strings.ToUpper(strings.ReplaceAll(code, " ", "_"))
		}
	}
	name := fmt.Sprintf("%T", err)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToUpper(strings.TrimLeft(name, "*"))
}
