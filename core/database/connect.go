package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/m3rciful/cryptonews/core/logger"
)

const (
	connectTimeout = 5 * time.Second
	readyTimeout   = 30 * time.Second
	readyInterval  = 2 * time.Second
)

// Connect opens and pings the database and sizes the pool.
func Connect(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	target := []slog.Attr{slog.String("driver", cfg.Driver), slog.String("target", cfg.Target())}

	start := time.Now()
	db, err := open(ctx, cfg.Driver, cfg.DSN())
	took := slog.Duration("duration", logger.RoundMS(time.Since(start)))
	if err != nil {
		logger.Error(ctx, "db", "db.connect", append(target, took, slog.String("err", err.Error()))...)
		return nil, fmt.Errorf("db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxConnections)
	if cfg.Driver == DriverSQLite {
		// an expired :memory: connection takes the schema with it
		db.SetConnMaxLifetime(0)
	}
	logger.Info(ctx, "db", "db.connect", append(target, slog.Int("pool_open", cfg.MaxConnections), took)...)
	return db, nil
}

func open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// WaitForPostgres pings dsn every couple of seconds until it answers or
// timeout passes.
func WaitForPostgres(ctx context.Context, dsn string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(ctx, DriverPostgres, dsn)
		if err == nil {
			return db.Close()
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("timeout reached waiting for database: %w", err)
		}
		logger.Debug(ctx, "db", "db.wait", slog.String("err", err.Error()))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(readyInterval):
		}
	}
}
