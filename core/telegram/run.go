package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	coreconfig "github.com/m3rciful/cryptonews/core/config"
	"github.com/m3rciful/cryptonews/core/logger"
	tghelpers "github.com/m3rciful/cryptonews/core/telegram/helpers"
	tgsender "github.com/m3rciful/cryptonews/core/telegram/sender"

	tele "gopkg.in/telebot.v4"
)

// Middleware is a named global middleware passed to bot.Use.
type Middleware struct {
	Name string
	Use  tele.MiddlewareFunc
}

// Route binds a handler to a telebot endpoint (a command string or one of
// the tele.On* constants).
type Route struct {
	Endpoint any
	Handler  tele.HandlerFunc
}

// RunOptions controls RunTelegram.
type RunOptions struct {
	Config   *coreconfig.Config
	Registry *Registry

	Middlewares []Middleware
	Routes      []Route

	OnStart func(ctx context.Context, rt Runtime) error
	OnStop  func(ctx context.Context, rt Runtime) error
}

// Runtime is what lifecycle hooks get to see.
type Runtime struct {
	Dispatcher *tgsender.Dispatcher
	Registry   *Registry
}

// RunTelegram builds the bot, serves updates until ctx is done and then
// drains the outbound queue. A cancelled ctx is a clean stop.
func RunTelegram(ctx context.Context, opts RunOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := opts.Config
	if cfg == nil {
		return fmt.Errorf("telegram: nil config provided")
	}
	if opts.Registry == nil {
		opts.Registry = NewRegistry()
	}

	bot, err := newBot(ctx, cfg)
	if err != nil {
		return err
	}
	wire(bot, opts)

	rt := Runtime{Dispatcher: tgsender.NewDispatcher(tgsender.OptionsFrom(cfg.Sender)), Registry: opts.Registry}
	tghelpers.SetDispatcher(rt.Dispatcher)
	defer func() {
		rt.Dispatcher.Close()
		tghelpers.SetDispatcher(nil)
		logger.Info(context.Background(), "tg", "dispatcher.closed",
			slog.Uint64("sent", rt.Dispatcher.SentCount()),
			slog.Uint64("errors", rt.Dispatcher.ErrorCount()),
		)
	}()

	if opts.OnStart != nil {
		if err := opts.OnStart(ctx, rt); err != nil {
			return err
		}
	}

	runErr := serve(ctx, bot)

	if opts.OnStop != nil {
		if err := opts.OnStop(context.WithoutCancel(ctx), rt); err != nil {
			return err
		}
	}
	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}

func newBot(ctx context.Context, cfg *coreconfig.Config) (*tele.Bot, error) {
	poller := BuildPoller(cfg)

	start := time.Now()
	bot, err := tele.NewBot(tele.Settings{
		Token:   cfg.Telegram.Token,
		Poller:  poller,
		Client:  BuildHTTPClient(HTTPOptionsFrom(cfg.Telegram)),
		OnError: onBotError,
	})
	if err != nil {
		return nil, fmt.Errorf("telegram: bot initialization failed: %w", err)
	}
	took := slog.Duration("duration", logger.RoundMS(time.Since(start)))

	if hook, ok := poller.(*tele.Webhook); ok {
		logger.Info(ctx, "tg", "mode",
			slog.String("mode", coreconfig.RunModeWebhook),
			slog.String("listen", hook.Listen),
			slog.String("public_url", hook.Endpoint.PublicURL),
			took,
		)
		return bot, nil
	}

	lp := poller.(*tele.LongPoller)
	logger.Info(ctx, "tg", "mode",
		slog.String("mode", coreconfig.RunModeLongpoll),
		slog.Duration("poll_timeout", lp.Timeout),
		took,
	)
	// A webhook left over from an earlier deployment would swallow updates.
	status := logger.OutcomeOK
	if err := bot.RemoveWebhook(false); err != nil {
		status = logger.OutcomeFail
		logger.Warn(ctx, "tg", "delete_webhook", slog.String("err", err.Error()))
	}
	logger.Debug(ctx, "tg", "delete_webhook", slog.String("status", status))
	return bot, nil
}

func wire(bot *tele.Bot, opts RunOptions) {
	for _, mw := range opts.Middlewares {
		if mw.Use != nil {
			bot.Use(mw.Use)
		}
	}
	for _, route := range opts.Routes {
		if route.Endpoint != nil && route.Handler != nil {
			bot.Handle(route.Endpoint, route.Handler)
		}
	}
	SetupCommands(bot, opts.Registry)
}

// serve blocks until the poller stops on its own or ctx is done.
func serve(ctx context.Context, bot *tele.Bot) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		bot.Start()
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		bot.Stop()
		<-done
		return ctx.Err()
	}
}

func onBotError(err error, c tele.Context) {
	ctx := context.Background()
	if c != nil {
		ctx = tghelpers.BuildContext(c)
	}
	logger.Error(ctx, "tg", "bot.error", slog.String("err", logger.SanitizeLimit(err.Error(), 256)))
}
