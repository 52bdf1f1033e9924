package logger

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
)

// capture runs emit against a fresh handler and returns the written output.
func capture(t *testing.T, format logFormat, emit func(*slog.Logger)) string {
	t.Helper()
	var buf bytes.Buffer
	w := newAsyncWriter([]io.Writer{&buf}, 1024)
	emit(slog.New(newStructuredHandler(handlerConfig{level: slog.LevelDebug, writer: w, format: format})))
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return strings.TrimSpace(buf.String())
}

func assertOrder(t *testing.T, line string, parts ...string) {
	t.Helper()
	pos := -1
	for _, p := range parts {
		idx := strings.Index(line, p)
		if idx == -1 || idx < pos {
			t.Fatalf("%s missing or out of order in %s", p, line)
		}
		pos = idx
	}
}

func TestStructuredHandlerKeyOrder(t *testing.T) {
	ctx := WithUpdateMeta(WithRID(context.Background(), "rid-123"), 42, 7, 9)
	emit := func(l *slog.Logger) {
		LogEvent(ctx, l.With("component", "journal"), slog.LevelError, "record",
			slog.String("err", "boom"),
			slog.String("status", "FAIL"),
		)
	}

	kv := capture(t, formatKV, emit)
	if !strings.HasPrefix(kv, "ts=") {
		t.Fatalf("kv line must start with ts: %s", kv)
	}
	assertOrder(t, kv, "level=ERROR", "component=journal", "event=record", "status=fail", "rid=rid-123", "update_id=42", "user_id=7", "chat_id=9", "err=boom")

	js := capture(t, formatJSON, emit)
	assertOrder(t, js, `{"ts":`, `"level":"ERROR"`, `"component":"journal"`, `"event":"record"`, `"status":"fail"`, `"rid":"rid-123"`, `"err":"boom"`)
}

func TestStructuredHandlerCompactRID(t *testing.T) {
	raw := "123:456:789"
	ctx := WithRID(context.Background(), raw)
	emit := func(l *slog.Logger) { LogEvent(ctx, l, slog.LevelInfo, "rid.test") }

	kv := capture(t, formatKV, emit)
	if !strings.Contains(kv, "rid="+CompactRID(raw)) || strings.Contains(kv, "rid_full=") {
		t.Fatalf("kv output must carry only the compact rid: %s", kv)
	}

	js := capture(t, formatJSON, emit)
	for _, want := range []string{`"rid":"` + CompactRID(raw) + `"`, `"rid_full":"` + raw + `"`, `"ts_unix_nano"`} {
		if !strings.Contains(js, want) {
			t.Fatalf("expected %s in %s", want, js)
		}
	}
}

func TestStructuredHandlerDefaults(t *testing.T) {
	line := capture(t, formatKV, func(l *slog.Logger) {
		l.Info("bare message", "outcome", "weird", "empty", "")
	})
	for _, want := range []string{"component=app", `event="bare message"`} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %s in %s", want, line)
		}
	}
	for _, gone := range []string{"outcome=", "empty="} {
		if strings.Contains(line, gone) {
			t.Fatalf("%s should be pruned: %s", gone, line)
		}
	}
}

func TestStructuredHandlerGroups(t *testing.T) {
	line := capture(t, formatKV, func(l *slog.Logger) {
		l.WithGroup("db").Info("", slog.String("event", "open"), slog.Group("pool", slog.Int("size", 4)))
	})
	if !strings.Contains(line, "db.pool.size=4") {
		t.Fatalf("expected dotted group key in %s", line)
	}
}

func TestStructuredHandlerNavKeyOrder(t *testing.T) {
	line := capture(t, formatKV, func(l *slog.Logger) {
		LogEvent(context.Background(), l.With("component", "nav"), slog.LevelDebug, "route",
			slog.String("mode", "edit"),
			slog.String("action", "featured(1)"),
			slog.String("token", "featured:1"),
			slog.String("origin", "button"),
		)
	})
	assertOrder(t, line, "component=nav", "event=route", "mode=edit", "origin=button", "token=featured:1", "action=")
}

func TestStructuredHandlerCopiesErrorsToErrorSink(t *testing.T) {
	var main, errs bytes.Buffer
	mw := newAsyncWriter([]io.Writer{&main}, 1024)
	ew := newAsyncWriter([]io.Writer{&errs}, 1024)
	l := slog.New(newStructuredHandler(handlerConfig{level: slog.LevelInfo, writer: mw, errors: ew, format: formatKV}))

	LogEvent(context.Background(), l, slog.LevelInfo, "fine")
	LogEvent(context.Background(), l, slog.LevelError, "broken")
	LogEvent(context.Background(), l, slog.LevelDebug, "hidden")
	for _, w := range []*asyncWriter{mw, ew} {
		if err := w.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}

	if got := strings.Count(main.String(), "\n"); got != 2 {
		t.Fatalf("main sink lines = %d, want 2:\n%s", got, main.String())
	}
	if !strings.Contains(errs.String(), "event=broken") || strings.Contains(errs.String(), "event=fine") {
		t.Fatalf("error sink = %s", errs.String())
	}
}
