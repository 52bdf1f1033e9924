package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeDefaultsToLongpoll(t *testing.T) {
	cfg := &Config{Telegram: TelegramConfig{Token: "t", RunMode: " Polling "}}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run mode = %q", cfg.Telegram.RunMode)
	}
}

func TestNormalizeRejects(t *testing.T) {
	cases := map[string]*Config{
		"nil":           nil,
		"no token":      {},
		"bad mode":      {Telegram: TelegramConfig{Token: "t", RunMode: "smoke"}},
		"webhook url":   {Telegram: TelegramConfig{Token: "t", RunMode: RunModeWebhook}},
		"negative poll": {Telegram: TelegramConfig{Token: "t", LongPollTimeoutSeconds: -1}},
		"sender":        {Telegram: TelegramConfig{Token: "t"}, Sender: SenderConfig{Workers: -2}},
	}
	for name, cfg := range cases {
		if err := Normalize(cfg); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadOverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "telegram:\n  token: from-file\n  run_mode: longpoll\nsender:\n  workers: 2\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("BOT_TOKEN", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Telegram.Token != "from-env" {
		t.Fatalf("token = %q, env should win", cfg.Telegram.Token)
	}
	if cfg.Sender.Workers != 2 {
		t.Fatalf("workers = %d", cfg.Sender.Workers)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error")
	}
}

func TestNormalizeWebhookListsMissingFields(t *testing.T) {
	cfg := &Config{
		Telegram: TelegramConfig{Token: "t", RunMode: "WEBHOOK"},
		Webhook:  WebhookConfig{URL: "https://bot.example.com/hook"},
	}
	err := Normalize(cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "webhook.listen, webhook.port required when telegram.run_mode is 'webhook'" {
		t.Fatalf("err = %q", got)
	}

	cfg.Webhook.Listen, cfg.Webhook.Port = "0.0.0.0", 8443
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeWebhook {
		t.Fatalf("run mode = %q", cfg.Telegram.RunMode)
	}
}
