package callbacks

import (
	"strings"

	tele "gopkg.in/telebot.v4"
)

// ParseCallbackData splits Telebot's "\f<unique>|<payload>" encoding. Data
// without the "\f" marker is a raw token and is returned whole as payload
// with an empty unique.
func ParseCallbackData(data string) (unique, payload string) {
	if !strings.HasPrefix(data, "\f") {
		return "", data
	}
	parts := strings.SplitN(data[1:], "|", 2)
	unique = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		payload = parts[1]
	}
	return unique, payload
}

// Token returns the navigation token carried by the current callback.
func Token(c tele.Context) string {
	cb := c.Callback()
	if cb == nil {
		return ""
	}
	if cb.Unique != "" {
		return cb.Data
	}
	_, payload := ParseCallbackData(cb.Data)
	return payload
}
