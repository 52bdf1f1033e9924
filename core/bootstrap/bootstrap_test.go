package bootstrap

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/jmoiron/sqlx"

	coreconfig "github.com/m3rciful/cryptonews/core/config"
	coredatabase "github.com/m3rciful/cryptonews/core/database"
)

func noLogger(*coreconfig.Config) error { return nil }

func TestRunRequiresConfig(t *testing.T) {
	if _, err := Run(context.Background(), Options{}); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

func TestRunSkipsDisabledDatabase(t *testing.T) {
	called := false
	res, err := Run(context.Background(), Options{
		Config:     &coreconfig.Config{},
		LoggerInit: noLogger,
		Connect: func(context.Context, coredatabase.Config) (*sqlx.DB, error) {
			called = true
			return nil, nil
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Fatalf("connect must not run for a disabled database")
	}
	if res.DB != nil {
		t.Fatalf("expected nil DB, got %v", res.DB)
	}
}

func TestRunPropagatesLoggerError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Run(context.Background(), Options{
		Config:     &coreconfig.Config{},
		LoggerInit: func(*coreconfig.Config) error { return boom },
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
}

func TestRunMigratesSQLite(t *testing.T) {
	src := coredatabase.Migrations{
		FS: fstest.MapFS{
			"m/0001_init.up.sql":   {Data: []byte("CREATE TABLE t (id INTEGER);")},
			"m/0001_init.down.sql": {Data: []byte("DROP TABLE t;")},
		},
		Dir: "m",
	}
	res, err := Run(context.Background(), Options{
		Config:     &coreconfig.Config{},
		LoggerInit: noLogger,
		Database:   coredatabase.Config{Enabled: true, Driver: "sqlite", Path: ":memory:"},
		Migrations: src,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer res.DB.Close()
	if _, err := res.DB.Exec("INSERT INTO t (id) VALUES (1)"); err != nil {
		t.Fatalf("table missing after migrations: %v", err)
	}
}
