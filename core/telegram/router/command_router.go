package router

import (
	"context"
	"log/slog"

	"github.com/m3rciful/cryptonews/core/logger"
	tg "github.com/m3rciful/cryptonews/core/telegram"
	"github.com/m3rciful/cryptonews/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// CommandRouteOptions configures the admin guard for AdminOnly commands.
type CommandRouteOptions struct {
	AdminID       int64
	OnAdminReject tele.HandlerFunc
}

// CommandRoutes returns one route per registered command. The admin guard
// sits outside the logger, so a rejected update is not summarised as handled.
func CommandRoutes(reg *tg.Registry, opts CommandRouteOptions) []tg.Route {
	if reg == nil {
		return nil
	}
	admin := middleware.AdminOnlyMiddleware(middleware.AdminOptions{
		AdminID:  opts.AdminID,
		OnReject: opts.OnAdminReject,
	})

	routes := make([]tg.Route, 0, len(reg.Commands()))
	for key, cmd := range reg.Commands() {
		run := cmd.Handler
		h := guarded(func(c tele.Context) error {
			return newSummary(key).run(c, run)
		})
		if cmd.AdminOnly {
			h = admin(h)
		}
		routes = append(routes, tg.Route{Endpoint: key, Handler: h})
	}

	logger.Info(context.Background(), "tg.wire", "complete",
		slog.Int("commands", len(routes)),
		slog.Bool("callback_handler", reg.CallbackHandler() != nil),
	)
	return routes
}
