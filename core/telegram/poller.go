package telegram

import (
	"net"
	"strconv"
	"time"

	coreconfig "github.com/m3rciful/cryptonews/core/config"

	tele "gopkg.in/telebot.v4"
)

const defaultPollTimeout = 10 * time.Second

// BuildPoller picks the update source for the configured run mode. The
// config must already be normalized.
func BuildPoller(cfg *coreconfig.Config) tele.Poller {
	if cfg.Telegram.RunMode == coreconfig.RunModeWebhook {
		return &tele.Webhook{
			Listen:      net.JoinHostPort(cfg.Webhook.Listen, strconv.Itoa(cfg.Webhook.Port)),
			SecretToken: cfg.Webhook.Secret,
			DropUpdates: cfg.Webhook.DropPending,
			Endpoint:    &tele.WebhookEndpoint{PublicURL: cfg.Webhook.URL},
		}
	}
	timeout := time.Duration(cfg.Telegram.LongPollTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultPollTimeout
	}
	return &tele.LongPoller{Timeout: timeout}
}
