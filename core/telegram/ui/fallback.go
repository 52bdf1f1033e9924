package ui

import (
	"github.com/m3rciful/cryptonews/core/telegram/router"

	tele "gopkg.in/telebot.v4"
)

// FallbackProvider exposes handlers used when incoming updates
// cannot be mapped to commands or callback tokens.
type FallbackProvider interface {
	UnknownText() tele.HandlerFunc
	UnknownDocument() tele.HandlerFunc
	UnknownCallback() tele.HandlerFunc
}

// TextOptions adapts a provider for router.TextRoutes.
func TextOptions(p FallbackProvider) router.TextOptions {
	if p == nil {
		return router.TextOptions{}
	}
	return router.TextOptions{UnknownText: p.UnknownText(), UnknownDocument: p.UnknownDocument()}
}

// CallbackOptions adapts a provider for router.CallbackRoute.
func CallbackOptions(p FallbackProvider) router.CallbackOptions {
	if p == nil {
		return router.CallbackOptions{}
	}
	return router.CallbackOptions{NotFound: p.UnknownCallback()}
}
