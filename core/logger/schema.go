package logger

import "strings"

// Level names as written in the level field.
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
		return LevelInfo
	case "warning":
		return LevelWarn
	}
	return strings.ToUpper(level)
}

// normalizeStatus lower-cases status values; unknown ones pass through.
func normalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

// Outcome values for the status and outcome fields.
const (
	OutcomeOK        = "ok"
	OutcomeFail      = "fail"
	OutcomeCancelled = "cancelled"
	OutcomeUnchanged = "unchanged"
)

var outcomes = map[string]bool{
	OutcomeOK:        true,
	OutcomeFail:      true,
	OutcomeCancelled: true,
	OutcomeUnchanged: true,
}

// normalizeOutcome accepts only the known outcome values.
func normalizeOutcome(outcome string) (string, bool) {
	outcome = strings.ToLower(strings.TrimSpace(outcome))
	return outcome, outcomes[outcome]
}

// defaultKeyOrder puts correlation first, then the handler summary, then
// transport, storage and navigation details, then errors.
var defaultKeyOrder = []string{
	"ts",
	"level",
	"component",
	"event",
	"status",
	"rid",
	"rid_full",
	"ts_unix_nano",
	"update_id",
	"user_id",
	"chat_id",
	"handler",
	"cb_key",
	"outcome",
	"duration_ms",
	"messages",
	"kb",
	"count",
	"mode",
	"listen",
	"public_url",
	"http_code",
	"driver",
	"target",
	"origin",
	"token",
	"entry",
	"action",
	"kind",
	"article_id",
	"category",
	"catalog",
	"variant",
	"err",
	"err_code",
	"cause",
	"retryable",
	"attempts",
	"backoff_ms",
}
