package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	coreconfig "github.com/m3rciful/cryptonews/core/config"
	coredatabase "github.com/m3rciful/cryptonews/core/database"
	"github.com/m3rciful/cryptonews/core/logger"
)

// Options control the generic bootstrap pipeline shared between bots.
type Options struct {
	Config     *coreconfig.Config
	Database   coredatabase.Config
	Migrations coredatabase.Migrations

	LoggerInit func(*coreconfig.Config) error
	Connect    func(context.Context, coredatabase.Config) (*sqlx.DB, error)
	Migrate    func(context.Context, coredatabase.Config, *sqlx.DB, coredatabase.Migrations) error
}

// Result exposes infrastructure initialized by the bootstrap pipeline.
// DB is nil when the database is disabled.
type Result struct {
	DB *sqlx.DB
}

// Run initializes the logger and, when the database is enabled, connects to it
// and applies migrations.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("bootstrap: nil config provided")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	loggerInit := opts.LoggerInit
	if loggerInit == nil {
		loggerInit = logger.InitLogger
	}
	if err := loggerInit(opts.Config); err != nil {
		return nil, fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	if !opts.Database.Enabled {
		logger.Info(ctx, "db", "disabled")
		return &Result{}, nil
	}

	if err := opts.Database.Normalize(); err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	connect := opts.Connect
	if connect == nil {
		connect = coredatabase.Connect
	}
	db, err := connect(ctx, opts.Database)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: database initialization failed: %w", err)
	}

	if opts.Migrations.FS != nil {
		migrate := opts.Migrate
		if migrate == nil {
			migrate = coredatabase.RunMigrations
		}
		if err := migrate(ctx, opts.Database, db, opts.Migrations); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("bootstrap: migrations failed: %w", err)
		}
	} else {
		logger.Warn(ctx, "db", "migrations.skipped", slog.String("reason", "no source"))
	}

	return &Result{DB: db}, nil
}
