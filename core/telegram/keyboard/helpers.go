package keyboard

import tele "gopkg.in/telebot.v4"

// InlineBtn describes one inline button. Exactly one of URL and Data should be
// set: URL opens a link, Data is sent back verbatim as callback data.
type InlineBtn struct {
	Text string
	URL  string
	Data string
}

// Inline converts one InlineBtn. Data buttons carry the raw payload with no
// unique prefix, so every press lands on the generic callback endpoint.
func Inline(b InlineBtn) tele.InlineButton {
	if b.URL != "" {
		return tele.InlineButton{Text: b.Text, URL: b.URL}
	}
	return tele.InlineButton{Text: b.Text, Data: b.Data}
}

// InlineButtonsRows builds an inline keyboard from rows of InlineBtn. Empty
// rows are skipped; no rows yields nil so the message carries no keyboard.
func InlineButtonsRows(rows ...[]InlineBtn) *tele.ReplyMarkup {
	inline := make([][]tele.InlineButton, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		r := make([]tele.InlineButton, len(row))
		for j, btn := range row {
			r[j] = Inline(btn)
		}
		inline = append(inline, r)
	}
	if len(inline) == 0 {
		return nil
	}
	return &tele.ReplyMarkup{InlineKeyboard: inline}
}
