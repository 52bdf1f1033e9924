package router

import (
	tg "github.com/m3rciful/cryptonews/core/telegram"

	tele "gopkg.in/telebot.v4"
)

// TextOptions sets the handlers for text and documents nothing else claims.
type TextOptions struct {
	UnknownText     tele.HandlerFunc
	UnknownDocument tele.HandlerFunc
}

// TextRoutes returns the OnText and OnDocument routes. Text spelling a
// registered command or alias runs that command; other text goes to the
// registry's text fallback, then opts.UnknownText.
func TextRoutes(reg *tg.Registry, opts TextOptions) []tg.Route {
	onText := func(c tele.Context) error {
		if reg != nil {
			if key, cmd, ok := reg.LookupCommand(c.Text()); ok && cmd.Handler != nil {
				return newSummary(key).run(c, cmd.Handler)
			}
			if fb := reg.TextFallback(); fb != nil {
				return newSummary("fallback").run(c, fb)
			}
		}
		return runOrSkip(c, "unknown_text", opts.UnknownText)
	}
	onDocument := func(c tele.Context) error {
		return runOrSkip(c, "unexpected_document", opts.UnknownDocument)
	}
	return []tg.Route{
		{Endpoint: tele.OnText, Handler: guarded(onText)},
		{Endpoint: tele.OnDocument, Handler: guarded(onDocument)},
	}
}

func runOrSkip(c tele.Context, name string, h tele.HandlerFunc) error {
	s := newSummary(name)
	if h == nil {
		return s.skip(c)
	}
	return s.run(c, h)
}
