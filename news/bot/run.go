package bot

import (
	"context"

	"github.com/m3rciful/cryptonews/core/logger"
	tg "github.com/m3rciful/cryptonews/core/telegram"
	"github.com/m3rciful/cryptonews/core/telegram/router"
	"github.com/m3rciful/cryptonews/core/telegram/ui"
	"log/slog"
)

// TelegramRunOptions assembles middlewares and routes for core/telegram.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	routes := router.CommandRoutes(a.registry, router.CommandRouteOptions{
		AdminID:       a.cfg.Telegram.AdminID,
		OnAdminReject: a.rejectAdmin,
	})
	cbOpts := ui.CallbackOptions(a)
	cbOpts.Name = callbackFamily
	routes = append(routes, router.CallbackRoute(a.registry, cbOpts))
	routes = append(routes, router.TextRoutes(a.registry, ui.TextOptions(a))...)

	return tg.RunOptions{
		Config:      &a.cfg.Config,
		Registry:    a.registry,
		Middlewares: tg.DefaultMiddlewares(),
		Routes:      routes,
		OnStart: func(ctx context.Context, rt tg.Runtime) error {
			logger.Info(ctx, component, "serving",
				slog.String("variant", a.variant.Name),
				slog.Int("commands", len(rt.Registry.Commands())),
			)
			return nil
		},
		OnStop: func(ctx context.Context, _ tg.Runtime) error {
			if a.db == nil {
				return nil
			}
			return a.db.Close()
		},
	}, nil
}
