package telegram

import (
	"testing"
	"time"

	coreconfig "github.com/m3rciful/cryptonews/core/config"

	tele "gopkg.in/telebot.v4"
)

func TestBuildPoller(t *testing.T) {
	var cfg coreconfig.Config
	cfg.Telegram.RunMode = coreconfig.RunModeLongpoll
	lp, ok := BuildPoller(&cfg).(*tele.LongPoller)
	if !ok || lp.Timeout != defaultPollTimeout {
		t.Fatalf("unexpected poller %#v", BuildPoller(&cfg))
	}

	cfg.Telegram.LongPollTimeoutSeconds = 25
	if lp := BuildPoller(&cfg).(*tele.LongPoller); lp.Timeout != 25*time.Second {
		t.Fatalf("timeout = %v", lp.Timeout)
	}

	cfg.Telegram.RunMode = coreconfig.RunModeWebhook
	cfg.Webhook = coreconfig.WebhookConfig{URL: "https://bot.example.com/hook", Listen: "0.0.0.0", Port: 8443, Secret: "s3cret"}
	hook, ok := BuildPoller(&cfg).(*tele.Webhook)
	if !ok {
		t.Fatal("expected webhook poller")
	}
	if hook.Listen != "0.0.0.0:8443" || hook.SecretToken != "s3cret" || hook.Endpoint.PublicURL != cfg.Webhook.URL {
		t.Fatalf("unexpected webhook %#v", hook)
	}
}
