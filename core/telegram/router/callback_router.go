package router

import (
	"log/slog"

	tg "github.com/m3rciful/cryptonews/core/telegram"
	"github.com/m3rciful/cryptonews/core/telegram/callbacks"

	tele "gopkg.in/telebot.v4"
)

// CallbackOptions customises the callback route.
type CallbackOptions struct {
	// NotFound answers presses when the registry has neither a handler nor
	// its own fallback.
	NotFound tele.HandlerFunc
	// Name maps a token to the handler name used in summaries.
	Name func(token string) string
}

// CallbackRoute returns the OnCallback route. Whatever handles the press
// answers the query itself, so the answer can be a toast.
func CallbackRoute(reg *tg.Registry, opts CallbackOptions) tg.Route {
	handler := func(c tele.Context) error {
		if c.Callback() == nil {
			return nil
		}
		token := callbacks.Token(c)
		family := token
		if opts.Name != nil {
			family = opts.Name(token)
		}
		extras := []slog.Attr{slog.String("token", token)}

		h := reg.CallbackHandler()
		if h == nil {
			extras = append(extras, slog.String("reason", "not_found"))
			h = firstHandler(reg.CallbackNotFound(), opts.NotFound, func(c tele.Context) error { return c.Respond() })
		}
		return newSummary("callback."+normalizeHandlerName(family), extras...).run(c, h)
	}
	return tg.Route{Endpoint: tele.OnCallback, Handler: guarded(handler)}
}

func firstHandler(hs ...tele.HandlerFunc) tele.HandlerFunc {
	for _, h := range hs {
		if h != nil {
			return h
		}
	}
	return nil
}
