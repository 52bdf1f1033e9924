package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
)

// Meta is the correlation data of one Telegram update. It travels in the
// context and is stamped on every line logged with that context.
type Meta struct {
	RID      string
	UpdateID int
	UserID   int64
	ChatID   int64
	Handler  string
}

type ctxKey int

const (
	metaKey ctxKey = iota
	loggerKey
)

// MetaFrom returns the metadata stored in ctx, or the zero Meta.
func MetaFrom(ctx context.Context) Meta {
	if ctx == nil {
		return Meta{}
	}
	m, _ := ctx.Value(metaKey).(Meta)
	return m
}

func withMeta(ctx context.Context, edit func(*Meta)) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	m := MetaFrom(ctx)
	edit(&m)
	return context.WithValue(ctx, metaKey, m)
}

// WithRID attaches the request correlation id.
func WithRID(ctx context.Context, rid string) context.Context {
	return withMeta(ctx, func(m *Meta) { m.RID = rid })
}

// WithUpdateMeta attaches the update, user and chat ids.
func WithUpdateMeta(ctx context.Context, updateID int, userID, chatID int64) context.Context {
	return withMeta(ctx, func(m *Meta) {
		m.UpdateID = updateID
		m.UserID = userID
		m.ChatID = chatID
	})
}

// WithHandler names the handler serving the update.
func WithHandler(ctx context.Context, handler string) context.Context {
	return withMeta(ctx, func(m *Meta) { m.Handler = handler })
}

// WithLogger stores log in ctx; FromContext returns it later.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if log == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext returns the logger stored in ctx or the global one.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
			return l
		}
	}
	return L
}

// attrs lists the non-zero fields as log attributes.
func (m Meta) attrs() []slog.Attr {
	var out []slog.Attr
	if m.RID != "" {
		out = append(out, slog.String("rid", m.RID))
	}
	if m.UpdateID != 0 {
		out = append(out, slog.Int("update_id", m.UpdateID))
	}
	if m.UserID != 0 {
		out = append(out, slog.Int64("user_id", m.UserID))
	}
	if m.ChatID != 0 {
		out = append(out, slog.Int64("chat_id", m.ChatID))
	}
	if m.Handler != "" {
		out = append(out, slog.String("handler", m.Handler))
	}
	return out
}

// SanitizeLimit drops control characters (keeping tab and newline) and cuts
// the result to max runes.
func SanitizeLimit(s string, max int) string {
	if max <= 0 || s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	n := 0
	for _, r := range s {
		if r != '\n' && r != '\t' && (unicode.IsControl(r) || unicode.Is(unicode.Cf, r)) {
			continue
		}
		if n == max {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

// BuildRID returns a correlation id of the form updateID:chatID:userID.
func BuildRID(updateID int, chatID, userID int64) string {
	return fmt.Sprintf("%d:%d:%d", updateID, chatID, userID)
}

// CompactRID rewrites a BuildRID id as dot-separated base36 segments.
// Anything else is returned unchanged.
func CompactRID(rid string) string {
	rid = strings.TrimSpace(rid)
	parts := strings.Split(rid, ":")
	if len(parts) != 3 {
		return rid
	}
	for i, part := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return rid
		}
		parts[i] = strconv.FormatInt(n, 36)
	}
	return strings.Join(parts, ".")
}
