// Package bot adapts the navigation engine to Telegram and delivers the
// resulting views.
package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/cryptonews/core/logger"
	tg "github.com/m3rciful/cryptonews/core/telegram"
	"github.com/m3rciful/cryptonews/core/telegram/commands"
	"github.com/m3rciful/cryptonews/news/action"
	"github.com/m3rciful/cryptonews/news/content"
	"github.com/m3rciful/cryptonews/news/journal"
	"github.com/m3rciful/cryptonews/news/market"
	"github.com/m3rciful/cryptonews/news/nav"
	"github.com/m3rciful/cryptonews/news/view"
)

const component = "app"

// CmdStats is the admin-only journal report command.
const CmdStats = "/stats"

var descriptions = map[string]string{
	nav.CmdStart:      "Open the main menu",
	nav.CmdHelp:       "How to use the bot",
	nav.CmdNews:       "Read featured articles",
	nav.CmdMarket:     "Synthetic market analysis",
	nav.CmdCategories: "Browse categories",
}

// Deps carries optional infrastructure. A nil DB disables the journal; a nil
// Source uses market.NewRand.
type Deps struct {
	DB     *sqlx.DB
	Source market.Source
}

// App holds everything the Telegram adapter needs. It is built once at
// startup and read concurrently afterwards.
type App struct {
	cfg      *Config
	variant  nav.Variant
	repo     *content.Repository
	router   *nav.Router
	journal  *journal.Store
	registry *tg.Registry
	db       *sqlx.DB
}

// New builds the app for cfg. Any dispatch conflict or catalog problem is
// returned here so the process fails before it starts polling.
func New(cfg *Config, deps Deps) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("bot: nil config")
	}
	variant, err := nav.LookupVariant(cfg.Content.Catalog)
	if err != nil {
		return nil, fmt.Errorf("bot: %w", err)
	}
	repo, err := variant.Repository()
	if err != nil {
		return nil, fmt.Errorf("bot: %w", err)
	}
	table, err := variant.Table()
	if err != nil {
		return nil, fmt.Errorf("bot: %w", err)
	}
	renderer := view.NewRenderer(repo, deps.Source, view.Links{
		HomeURL:   cfg.Links.HomeURL,
		HomeLabel: cfg.Links.HomeLabel,
	})
	router, err := nav.NewRouter(table, renderer)
	if err != nil {
		return nil, fmt.Errorf("bot: %w", err)
	}

	a := &App{
		cfg:      cfg,
		variant:  variant,
		repo:     repo,
		router:   router,
		journal:  journal.New(deps.DB),
		registry: tg.NewRegistry(),
		db:       deps.DB,
	}
	a.register()

	logger.Info(context.Background(), component, "wired",
		slog.String("variant", variant.Name),
		slog.String("catalog", repo.Name()),
		slog.Int("entries", len(table.Entries())),
		slog.Bool("journal", a.journal.Enabled()),
	)
	return a, nil
}

// Router exposes the navigation router, mainly for previews.
func (a *App) Router() *nav.Router { return a.router }

// Registry exposes the Telegram registry.
func (a *App) Registry() *tg.Registry { return a.registry }

func (a *App) register() {
	for _, cmd := range a.router.Table().Commands() {
		desc := descriptions[cmd]
		if desc == "" {
			desc = cmd
		}
		a.registry.RegisterCommand(cmd, commands.Command{
			Handler:     a.handleCommand,
			Description: desc,
		})
	}
	a.registry.RegisterCommand(CmdStats, commands.Command{
		Handler:     a.handleStats,
		Description: "Interaction journal report",
		AdminOnly:   true,
		Hidden:      true,
	})
	a.registry.SetCallbackHandler(a.handleCallback)
	a.registry.SetCallbackNotFound(a.UnknownCallback())
	a.registry.SetTextFallback(a.handleText)
}

// title resolves article ids for the journal report.
func (a *App) title(id int) (string, bool) {
	art, ok := a.repo.Article(id)
	if !ok {
		return "", false
	}
	return art.Title, true
}

// callbackFamily names callback summaries after the action kind.
func callbackFamily(token string) string {
	return action.Decode(token).Kind.String()
}
