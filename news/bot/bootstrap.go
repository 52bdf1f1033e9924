package bot

import (
	"context"
	"fmt"

	"github.com/m3rciful/cryptonews/core/bootstrap"
	corecmd "github.com/m3rciful/cryptonews/core/cmd"
	"github.com/m3rciful/cryptonews/news/journal"
)

// LoadCarrier adapts LoadConfig to core/cmd.
func LoadCarrier(path string) (corecmd.ConfigCarrier, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Bootstrap initializes logging and the optional journal database, then builds the app.
func Bootstrap(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
	cfg, ok := carrier.(*Config)
	if !ok || cfg == nil {
		return nil, fmt.Errorf("bot: unexpected config type %T", carrier)
	}
	res, err := bootstrap.Run(context.Background(), bootstrap.Options{
		Config:     &cfg.Config,
		Database:   cfg.Database,
		Migrations: journal.Migrations(),
	})
	if err != nil {
		return nil, err
	}
	app, err := New(cfg, Deps{DB: res.DB})
	if err != nil {
		if res.DB != nil {
			_ = res.DB.Close()
		}
		return nil, err
	}
	return app, nil
}
