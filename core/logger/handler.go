package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

type logFormat string

const (
	formatJSON logFormat = "json"
	formatKV   logFormat = "kv"

	timeFormatMillis = "2006-01-02T15:04:05.000Z07:00"
)

type handlerConfig struct {
	level    slog.Leveler
	writer   *asyncWriter
	// errors, when set, also receives every error-level line.
	errors   *asyncWriter
	format   logFormat
	keyOrder []string
}

// structuredHandler writes one flat line per record, either key=value or
// JSON, with keys in a fixed order followed by the rest sorted.
type structuredHandler struct {
	cfg    handlerConfig
	attrs  []slog.Attr
	prefix string
}

func newStructuredHandler(cfg handlerConfig) *structuredHandler {
	if cfg.level == nil {
		cfg.level = slog.LevelInfo
	}
	if cfg.keyOrder == nil {
		cfg.keyOrder = append([]string(nil), defaultKeyOrder...)
	}
	return &structuredHandler{cfg: cfg}
}

func (h *structuredHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.cfg.level.Level()
}

func (h *structuredHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg.writer == nil {
		return fmt.Errorf("logger: writer not initialized")
	}
	jsonOut := h.cfg.format == formatJSON

	f := fields{}
	ts := r.Time.UTC()
	f["ts"] = ts.Truncate(time.Millisecond).Format(timeFormatMillis)
	f["level"] = normalizeLevel(r.Level.String())
	if jsonOut {
		f["ts_unix_nano"] = ts.UnixNano()
	}
	for _, a := range h.attrs {
		f.add(h.prefix, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		f.add(h.prefix, a)
		return true
	})
	for _, a := range MetaFrom(ctx).attrs() {
		f.addMissing(a.Key, a.Value.Any())
	}

	if rid := f.str("rid"); rid != "" {
		if compact := CompactRID(rid); compact != rid {
			if jsonOut {
				f.addMissing("rid_full", rid)
			}
			f["rid"] = compact
		}
	}
	if f.str("event") == "" {
		f["event"] = "unknown"
		if r.Message != "" {
			f["event"] = r.Message
		}
	}
	if f.str("component") == "" {
		f["component"] = "app"
	}
	f.normalizeEnums()
	f.pruneEmpty()

	var line []byte
	if jsonOut {
		var err error
		if line, err = f.json(h.cfg.keyOrder); err != nil {
			return err
		}
	} else {
		line = f.kv(h.cfg.keyOrder)
	}
	line = append(line, '\n')
	if r.Level >= slog.LevelError && h.cfg.errors != nil {
		if err := h.cfg.errors.Write(line); err != nil {
			return err
		}
	}
	return h.cfg.writer.Write(line)
}

func (h *structuredHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

func (h *structuredHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = joinKey(h.prefix, name)
	return &clone
}

// fields is the flattened record being formatted.
type fields map[string]any

// add flattens groups into dotted keys and stores normalized values.
func (f fields) add(prefix string, a slog.Attr) {
	key := joinKey(prefix, a.Key)
	if a.Value.Kind() == slog.KindGroup {
		for _, child := range a.Value.Group() {
			f.add(key, child)
		}
		return
	}
	if key == "" {
		return
	}
	if k, v, ok := normalizeValue(key, a.Value.Resolve()); ok {
		f[k] = v
	}
}

func (f fields) addMissing(key string, v any) {
	if _, ok := f[key]; !ok {
		f[key] = v
	}
}

func (f fields) str(key string) string {
	switch v := f[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func (f fields) normalizeEnums() {
	if s := f.str("status"); s != "" {
		f["status"] = normalizeStatus(s)
	}
	if o := f.str("outcome"); o != "" {
		if norm, ok := normalizeOutcome(o); ok {
			f["outcome"] = norm
		} else {
			delete(f, "outcome")
		}
	}
}

func (f fields) pruneEmpty() {
	for k, v := range f {
		switch x := v.(type) {
		case nil:
			delete(f, k)
		case string:
			if x == "" {
				delete(f, k)
			}
		}
	}
}

// keys returns order's keys present in f, then the others sorted.
func (f fields) keys(order []string) []string {
	out := make([]string, 0, len(f))
	seen := make(map[string]bool, len(f))
	for _, k := range order {
		if _, ok := f[k]; ok && !seen[k] {
			out = append(out, k)
			seen[k] = true
		}
	}
	rest := make([]string, 0, len(f)-len(out))
	for k := range f {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func (f fields) json(order []string) ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range f.keys(order) {
		data, err := json.Marshal(f[k])
		if err != nil {
			return nil, err
		}
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(k))
		b.WriteByte(':')
		b.Write(data)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

func (f fields) kv(order []string) []byte {
	var b strings.Builder
	for i, k := range f.keys(order) {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(kvValue(f[k]))
	}
	return []byte(b.String())
}

func kvValue(v any) string {
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	if strings.IndexFunc(s, func(r rune) bool { return r <= ' ' || r == '=' || r == '"' }) >= 0 {
		return strconv.Quote(s)
	}
	return s
}

func joinKey(prefix, key string) string {
	switch {
	case prefix == "":
		return key
	case key == "":
		return prefix
	}
	return prefix + "." + key
}

// normalizeValue maps slog values onto JSON-friendly ones. Durations become
// whole milliseconds under a key ending in _ms.
func normalizeValue(key string, v slog.Value) (string, any, bool) {
	switch v.Kind() {
	case slog.KindString:
		return key, strings.TrimSpace(v.String()), true
	case slog.KindBool:
		return key, v.Bool(), true
	case slog.KindInt64:
		return key, v.Int64(), true
	case slog.KindUint64:
		if u := v.Uint64(); u <= math.MaxInt64 {
			return key, int64(u), true
		}
		return key, v.Uint64(), true
	case slog.KindFloat64:
		return key, v.Float64(), true
	case slog.KindDuration:
		return msKey(key), RoundMS(v.Duration()).Milliseconds(), true
	case slog.KindTime:
		return key, v.Time().UTC().Format(time.RFC3339Nano), true
	}
	switch x := v.Any().(type) {
	case nil:
		return key, nil, false
	case error:
		return key, x.Error(), true
	case string:
		return key, strings.TrimSpace(x), true
	case time.Duration:
		return msKey(key), RoundMS(x).Milliseconds(), true
	case fmt.Stringer:
		return key, x.String(), true
	default:
		return key, fmt.Sprint(x), true
	}
}

func msKey(key string) string {
	switch {
	case key == "duration":
		return "duration_ms"
	case strings.HasSuffix(key, "_ms"):
		return key
	}
	return key + "_ms"
}
