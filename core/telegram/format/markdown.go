package format

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MarkdownV1 denotes Telegram markdown version 1.
	MarkdownV1 = 1
	// MarkdownV2 denotes Telegram markdown version 2.
	MarkdownV2 = 2
)

var (
	mdV1Re = regexp.MustCompile("([_*`\\[])")
	mdV2Re = regexp.MustCompile("([_*\\[\\]()~`>#+\\-=|{}.!\\\\])")
)

// EscapeMarkdown escapes special characters for MarkdownV1 or V2.
func EscapeMarkdown(text string, version int) (string, error) {
	switch version {
	case MarkdownV1:
		return mdV1Re.ReplaceAllString(text, `\$1`), nil
	case MarkdownV2:
		return mdV2Re.ReplaceAllString(text, `\$1`), nil
	}
	return "", fmt.Errorf("unsupported markdown version: %d", version)
}

// MD escapes text for MarkdownV1, the parse mode used by the bot.
func MD(text string) string {
	out, _ := EscapeMarkdown(text, MarkdownV1)
	return out
}

// Bold wraps text in a MarkdownV1 bold entity.
// V1 has no escaping inside entities, so the delimiter is dropped from text.
func Bold(text string) string {
	return "*" + strings.ReplaceAll(text, "*", "") + "*"
}

// Italic wraps text in a MarkdownV1 italic entity.
func Italic(text string) string {
	return "_" + strings.ReplaceAll(text, "_", "") + "_"
}
