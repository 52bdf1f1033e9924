// Package cmd holds the process lifecycle shared by bot binaries: resolve the
// config path, bootstrap the app, run until SIGINT or SIGTERM.
package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	coreconfig "github.com/m3rciful/cryptonews/core/config"
	"github.com/m3rciful/cryptonews/core/logger"
	coretelegram "github.com/m3rciful/cryptonews/core/telegram"
)

// ConfigCarrier is an application config embedding the core one.
type ConfigCarrier interface {
	CoreConfig() *coreconfig.Config
}

// TelegramApp is a bootstrapped application ready to serve.
type TelegramApp interface {
	TelegramRunOptions() (coretelegram.RunOptions, error)
}

// Options wires Run. LoadConfig and Bootstrap are required; the rest have
// defaults.
type Options struct {
	// ConfigPath wins over the environment variable when set.
	ConfigPath        string
	ConfigEnvVar      string
	DefaultConfigPath string

	LoadConfig func(path string) (ConfigCarrier, error)
	Bootstrap  func(cfg ConfigCarrier) (TelegramApp, error)

	ShutdownLogger func() error
	RunTelegram    func(ctx context.Context, opts coretelegram.RunOptions) error
}

// resolvePath tries the explicit path, then the environment variable, then
// the default.
func (o Options) resolvePath() (string, error) {
	env := o.ConfigEnvVar
	if env == "" {
		env = "CONFIG_PATH"
	}
	for _, p := range []string{o.ConfigPath, os.Getenv(env), o.DefaultConfigPath} {
		if p != "" {
			return p, nil
		}
	}
	return "", fmt.Errorf("cmd: config path not provided via %s or DefaultConfigPath", env)
}

// Run loads the config, bootstraps the app and serves until a signal
// arrives.
func Run(opts Options) error {
	if opts.LoadConfig == nil || opts.Bootstrap == nil {
		return fmt.Errorf("cmd: LoadConfig and Bootstrap are required")
	}
	startedAt := time.Now()

	app, err := load(opts)
	if err != nil {
		return err
	}

	shutdownLogger := opts.ShutdownLogger
	if shutdownLogger == nil {
		shutdownLogger = logger.Shutdown
	}
	defer func() {
		if err := shutdownLogger(); err != nil {
			log.Printf("logger shutdown error: %v", err)
		}
	}()

	runOpts, err := app.TelegramRunOptions()
	if err != nil {
		return fmt.Errorf("cmd: telegram options build failed: %w", err)
	}
	announce(&runOpts, startedAt)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	run := opts.RunTelegram
	if run == nil {
		run = coretelegram.RunTelegram
	}
	return run(ctx, runOpts)
}

func load(opts Options) (TelegramApp, error) {
	path, err := opts.resolvePath()
	if err != nil {
		return nil, err
	}
	// The structured logger is configured by Bootstrap, so this goes to stderr.
	log.Printf("loading config: %s", path)
	cfg, err := opts.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("cmd: failed to load config: %w", err)
	}
	if cfg == nil || cfg.CoreConfig() == nil {
		return nil, fmt.Errorf("cmd: loaded config is missing core configuration")
	}
	app, err := opts.Bootstrap(cfg)
	if err != nil {
		return nil, fmt.Errorf("cmd: bootstrap failed: %w", err)
	}
	return app, nil
}

// announce chains the ready and shutdown log lines onto the app's hooks.
func announce(opts *coretelegram.RunOptions, startedAt time.Time) {
	onStart, onStop := opts.OnStart, opts.OnStop
	opts.OnStart = func(ctx context.Context, rt coretelegram.Runtime) error {
		if onStart != nil {
			if err := onStart(ctx, rt); err != nil {
				return err
			}
		}
		logger.Info(ctx, "app", "ready", slog.Duration("startup_duration", logger.RoundMS(time.Since(startedAt))))
		return nil
	}
	opts.OnStop = func(ctx context.Context, rt coretelegram.Runtime) error {
		logger.Info(ctx, "app", "shutdown")
		if onStop != nil {
			return onStop(ctx, rt)
		}
		return nil
	}
}
