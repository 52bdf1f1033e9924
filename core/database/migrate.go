package database

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/cryptonews/core/logger"
)

const migrateComponent = "db.migrate"

// Migrations points at a directory of golang-migrate files inside an fs.FS,
// usually an embed.FS owned by the package that defines the schema.
type Migrations struct {
	FS  fs.FS
	Dir string
}

// RunMigrations applies all up migrations. Postgres is migrated over its own
// connection; SQLite reuses db so in-memory databases see the schema.
func RunMigrations(ctx context.Context, cfg Config, db *sqlx.DB, src Migrations) error {
	if err := cfg.Normalize(); err != nil {
		return err
	}
	files := listMigrationFiles(src)
	logger.Debug(ctx, migrateComponent, "resolve", append(fileAttrs(files), slog.String("path", src.Dir))...)

	m, err := newMigrate(ctx, cfg, db, src)
	if err != nil {
		logger.Error(ctx, migrateComponent, "init", slog.String("err", err.Error()))
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}
	if cfg.Driver == DriverPostgres {
		defer m.Close()
	}

	from, _, _ := m.Version()
	start := time.Now()
	upErr := m.Up()
	took := slog.Duration("duration", logger.RoundMS(time.Since(start)))
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		logger.Error(ctx, migrateComponent, "apply", slog.String("err", upErr.Error()), took)
		return fmt.Errorf("migration execution failed: %w", upErr)
	}

	to, _, _ := m.Version()
	applied := selectApplied(files, uint64(from), uint64(to))
	if len(applied) > 0 {
		logger.Debug(ctx, migrateComponent, "apply", fileAttrs(applied)...)
	}
	logger.Info(ctx, migrateComponent, "summary",
		slog.Uint64("from_ver", uint64(from)),
		slog.Uint64("to_ver", uint64(to)),
		slog.Int("files", len(applied)),
		took,
	)
	return nil
}

// fileAttrs reports a file list as a count plus a short preview.
func fileAttrs(files []string) []slog.Attr {
	attrs := []slog.Attr{slog.Int("files_total", len(files))}
	preview, truncated := logger.SummarizeStrings(files, 6)
	if preview != "" {
		attrs = append(attrs, slog.String("files_preview", preview))
	}
	if truncated {
		attrs = append(attrs, slog.Bool("files_truncated", true))
	}
	return attrs
}

func newMigrate(ctx context.Context, cfg Config, db *sqlx.DB, src Migrations) (*migrate.Migrate, error) {
	source, err := iofs.New(src.FS, src.Dir)
	if err != nil {
		return nil, fmt.Errorf("open migration source: %w", err)
	}

	switch cfg.Driver {
	case DriverPostgres:
		if err := WaitForPostgres(ctx, cfg.DSN(), readyTimeout); err != nil {
			return nil, fmt.Errorf("database not ready: %w", err)
		}
		return migrate.NewWithSourceInstance("iofs", source, cfg.URL())
	case DriverSQLite:
		if db == nil {
			return nil, fmt.Errorf("sqlite3 migrations need an open database")
		}
		var driver migratedb.Driver
		driver, err = sqlite3.WithInstance(db.DB, &sqlite3.Config{})
		if err != nil {
			return nil, fmt.Errorf("sqlite3 migration driver: %w", err)
		}
		return migrate.NewWithInstance("iofs", source, DriverSQLite, driver)
	}
	return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
}

func listMigrationFiles(src Migrations) []string {
	if src.FS == nil {
		return nil
	}
	entries, err := fs.ReadDir(src.FS, src.Dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if name := e.Name(); strings.HasSuffix(name, ".up.sql") {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

func parseVersion(name string) uint64 {
	prefix, _, _ := strings.Cut(name, "_")
	v, _ := strconv.ParseUint(prefix, 10, 64)
	return v
}

func selectApplied(files []string, from, to uint64) []string {
	if to <= from {
		return nil
	}
	var out []string
	for _, f := range files {
		if v := parseVersion(f); v > from && v <= to {
			out = append(out, f)
		}
	}
	return out
}
