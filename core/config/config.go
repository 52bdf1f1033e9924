package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// TelegramConfig holds Telegram bot related settings that are common for all bots.
type TelegramConfig struct {
	Token   string `yaml:"token" envconfig:"BOT_TOKEN"`
	AdminID int64  `yaml:"admin_id" envconfig:"TELEGRAM_ADMIN_ID"`
	RunMode string `yaml:"run_mode" envconfig:"TELEGRAM_RUN_MODE"`
	// LongPollTimeoutSeconds defines long polling timeout; 0 -> default
	LongPollTimeoutSeconds int `yaml:"longpoll_timeout_seconds" envconfig:"TELEGRAM_LONGPOLL_TIMEOUT_SECONDS"`
	// HTTPTimeoutSeconds bounds one Bot API request; 0 -> default
	HTTPTimeoutSeconds int `yaml:"http_timeout_seconds" envconfig:"TELEGRAM_HTTP_TIMEOUT_SECONDS"`
	// HTTPRetries is how often a request is resent after a transport failure.
	HTTPRetries int `yaml:"http_retries" envconfig:"TELEGRAM_HTTP_RETRIES"`
}

// WebhookConfig specifies webhook settings.
type WebhookConfig struct {
	URL    string `yaml:"url" envconfig:"WEBHOOK_URL"`
	Listen string `yaml:"listen" envconfig:"WEBHOOK_LISTEN"`
	Port   int    `yaml:"port" envconfig:"WEBHOOK_PORT"`
	// Secret is checked against the X-Telegram-Bot-Api-Secret-Token header.
	Secret string `yaml:"secret" envconfig:"WEBHOOK_SECRET"`
	// DropPending discards updates queued while the bot was offline.
	DropPending bool `yaml:"drop_pending" envconfig:"WEBHOOK_DROP_PENDING"`
}

// LoggingConfig defines logging related configuration.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"`
	KeysOrder   string `yaml:"keys_order"`
	DebugSample string `yaml:"debug_sample"`
	Stacks      string `yaml:"stacks"`
	Dir         string `yaml:"dir"`
	BotFile     string `yaml:"bot_file"`
	ErrorsFile  string `yaml:"errors_file"`
	// Profile indicates environment profile such as "debug" or "prod".
	Profile string `yaml:"profile"`
}

const (
	// RunModeWebhook selects webhook mode for Telegram updates.
	RunModeWebhook = "webhook"
	// RunModeLongpoll selects long-polling mode for Telegram updates.
	RunModeLongpoll = "longpoll"
)

// SenderConfig tunes the asynchronous outbound dispatcher.
type SenderConfig struct {
	QueueSize      int `yaml:"queue_size" envconfig:"SENDER_QUEUE_SIZE"`
	Workers        int `yaml:"workers" envconfig:"SENDER_WORKERS"`
	MaxRetries     int `yaml:"max_retries" envconfig:"SENDER_MAX_RETRIES"`
	RetryBackoffMS int `yaml:"retry_backoff_ms" envconfig:"SENDER_RETRY_BACKOFF_MS"`
}

// Config aggregates the configuration that belongs to the reusable core.
type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Webhook  WebhookConfig  `yaml:"webhook"`
	Logging  LoggingConfig  `yaml:"logging"`
	Sender   SenderConfig   `yaml:"sender"`
}

// Load reads configuration from a YAML file and environment variables.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := Decode(path, &cfg); err != nil {
		return nil, err
	}
	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Decode fills out from the YAML file at path and then overlays environment
// variables. out is usually an application struct embedding Config.
func Decode(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", out); err != nil {
		return fmt.Errorf("failed to process env: %w", err)
	}
	return nil
}

// Normalize validates cfg in place and fills defaults: the run mode is
// lower-cased and "polling" becomes longpoll.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	if err := cfg.Telegram.normalize(); err != nil {
		return err
	}
	if cfg.Telegram.RunMode == RunModeWebhook {
		if err := cfg.Webhook.validate(); err != nil {
			return err
		}
	}
	s := cfg.Sender
	if min(s.QueueSize, s.Workers, s.MaxRetries, s.RetryBackoffMS) < 0 {
		return fmt.Errorf("sender settings must be >= 0")
	}
	return nil
}

func (t *TelegramConfig) normalize() error {
	if strings.TrimSpace(t.Token) == "" {
		return fmt.Errorf("telegram token is required")
	}
	mode := strings.ToLower(strings.TrimSpace(t.RunMode))
	switch mode {
	case "", "polling":
		mode = RunModeLongpoll
	case RunModeLongpoll, RunModeWebhook:
	default:
		return fmt.Errorf("invalid telegram.run_mode %q; allowed: webhook, longpoll", t.RunMode)
	}
	t.RunMode = mode
	switch {
	case t.LongPollTimeoutSeconds < 0:
		return fmt.Errorf("telegram.longpoll_timeout_seconds must be >= 0")
	case t.HTTPTimeoutSeconds < 0 || t.HTTPRetries < 0:
		return fmt.Errorf("telegram http settings must be >= 0")
	}
	return nil
}

func (w WebhookConfig) validate() error {
	var missing []string
	if strings.TrimSpace(w.URL) == "" {
		missing = append(missing, "webhook.url")
	}
	if strings.TrimSpace(w.Listen) == "" {
		missing = append(missing, "webhook.listen")
	}
	if w.Port <= 0 {
		missing = append(missing, "webhook.port")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s required when telegram.run_mode is 'webhook'", strings.Join(missing, ", "))
	}
	return nil
}
