// Package logger is the structured slog setup shared by the bot: one flat
// line per event, keyed by component and event, with update correlation
// taken from the context.
package logger

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/m3rciful/cryptonews/core/buildinfo"
	coreconfig "github.com/m3rciful/cryptonews/core/config"
)

var (
	initOnce sync.Once

	shutdownMu sync.Mutex
	shutdown   bool

	logWriter  *asyncWriter
	errWriter  *asyncWriter
	logClosers []io.Closer

	levelVar slog.LevelVar

	debugSampler = newRatioSampler(1, 50)
	traceAll     bool
	stacks       = true

	// L is the base logger, nil until InitLogger. Prefer the component helpers.
	L *slog.Logger
)

// InitLogger configures the global logger. Only the first call has effect.
func InitLogger(cfg *coreconfig.Config) error {
	initOnce.Do(func() {
		var logging coreconfig.LoggingConfig
		if cfg != nil {
			logging = cfg.Logging
		}
		levelVar.Set(parseLevel(logging.Level))
		debugSampler.Set(parseDebugSample(logging.DebugSample))
		traceAll = isTruthy(os.Getenv("TRACE")) || isTruthy(os.Getenv("LOG_TRACE"))
		stacks = parseStacks(logging.Stacks)

		outputs, closers := openOutputs(logging)
		logClosers = closers
		logWriter = newAsyncWriter(outputs, 64*1024)
		if f := openFile(logging.Dir, logging.ErrorsFile); f != nil {
			logClosers = append(logClosers, f)
			errWriter = newAsyncWriter([]io.Writer{f}, 16*1024)
		}

		L = slog.New(newStructuredHandler(handlerConfig{
			level:    &levelVar,
			writer:   logWriter,
			errors:   errWriter,
			format:   parseFormat(logging),
			keyOrder: parseKeyOrder(logging.KeysOrder),
		}))
		slog.SetDefault(L)

		Info(context.Background(), "app", "startup",
			slog.String("go_version", runtime.Version()),
			slog.String("build_version", buildinfo.Version),
			slog.String("build_commit", buildinfo.Commit),
			slog.String("build_time", buildinfo.Date),
			slog.String("cfg_profile", profile(logging)),
		)
	})
	return nil
}

// Shutdown flushes buffered output and closes file sinks. Later calls are no-ops.
func Shutdown() error {
	shutdownMu.Lock()
	defer shutdownMu.Unlock()
	if shutdown {
		return nil
	}
	shutdown = true

	var errs []error
	for _, w := range []*asyncWriter{logWriter, errWriter} {
		if w != nil {
			errs = append(errs, w.Close())
		}
	}
	for _, c := range logClosers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

func parseFormat(cfg coreconfig.LoggingConfig) logFormat {
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "kv", "text", "pretty":
		return formatKV
	case "json":
		return formatJSON
	}
	switch strings.ToLower(cfg.Profile) {
	case "debug", "dev":
		return formatKV
	}
	return formatJSON
}

func parseKeyOrder(raw string) []string {
	raw = strings.TrimSpace(raw)
	var order []string
	if raw != "default" {
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				order = append(order, k)
			}
		}
	}
	if len(order) == 0 {
		return append([]string(nil), defaultKeyOrder...)
	}
	return order
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func parseDebugSample(spec string) (int, int) {
	if strings.TrimSpace(spec) == "" {
		return 1, 50
	}
	return parseRatioSpec(spec)
}

// openOutputs always includes stdout; a bad log file is reported and skipped.
func openOutputs(cfg coreconfig.LoggingConfig) ([]io.Writer, []io.Closer) {
	writers := []io.Writer{os.Stdout}
	f := openFile(cfg.Dir, cfg.BotFile)
	if f == nil {
		return writers, nil
	}
	return append(writers, f), []io.Closer{f}
}

func openFile(dir, file string) *os.File {
	dir, file = strings.TrimSpace(dir), strings.TrimSpace(file)
	if dir == "" || file == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("logger: create log dir %s: %v", dir, err)
		return nil
	}
	path := filepath.Join(dir, file)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("logger: open log file %s: %v", path, err)
		return nil
	}
	return f
}

// parseStacks keeps panic stacks unless logging.stacks is off.
func parseStacks(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "off", "false", "0", "no", "none":
		return false
	}
	return true
}

func profile(cfg coreconfig.LoggingConfig) string {
	if p := strings.TrimSpace(cfg.Profile); p != "" {
		return strings.ToLower(p)
	}
	return "prod"
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// LogEvent writes event through logg, or the context/global logger when logg
// is nil. Without any logger it does nothing.
func LogEvent(ctx context.Context, logg *slog.Logger, level slog.Level, event string, attrs ...slog.Attr) {
	if logg == nil {
		logg = FromContext(ctx)
	}
	if logg == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if event != "" {
		attrs = append([]slog.Attr{slog.String("event", event)}, attrs...)
	}
	logg.LogAttrs(ctx, level, "", attrs...)
}

// Component returns the global logger scoped to name, or nil before InitLogger.
func Component(name string) *slog.Logger {
	if L == nil {
		return nil
	}
	if name = strings.TrimSpace(name); name == "" {
		return L
	}
	return L.With("component", name)
}

// Event logs event for component at level.
func Event(ctx context.Context, component string, level slog.Level, event string, attrs ...slog.Attr) {
	logg := FromContext(ctx)
	if logg == nil {
		return
	}
	if component = strings.TrimSpace(component); component != "" {
		attrs = append([]slog.Attr{slog.String("component", component)}, attrs...)
	}
	LogEvent(ctx, logg, level, event, attrs...)
}

// Debug logs a debug-level event for the given component.
func Debug(ctx context.Context, component, event string, attrs ...slog.Attr) {
	Event(ctx, component, slog.LevelDebug, event, attrs...)
}

// Info logs an info-level event for the given component.
func Info(ctx context.Context, component, event string, attrs ...slog.Attr) {
	Event(ctx, component, slog.LevelInfo, event, attrs...)
}

// Warn logs a warning-level event for the given component.
func Warn(ctx context.Context, component, event string, attrs ...slog.Attr) {
	Event(ctx, component, slog.LevelWarn, event, attrs...)
}

// Error logs an error-level event for the given component.
func Error(ctx context.Context, component, event string, attrs ...slog.Attr) {
	Event(ctx, component, slog.LevelError, event, attrs...)
}

// StacksEnabled reports whether panic logs carry a stack trace.
func StacksEnabled() bool { return stacks }

// ShouldSampleDebug reports whether a high-volume debug event should be
// logged. TRACE=1 in the environment lets every one through.
func ShouldSampleDebug() bool {
	return traceAll || debugSampler.Allow()
}
