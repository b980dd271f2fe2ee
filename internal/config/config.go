package config

import (
	"fmt"

	"telegram-alerts/pkg/config"
)

// WebhookConfig configures cmd/webhook.
type WebhookConfig struct {
	Server   config.ServerConfig   `yaml:"server"`
	Telegram config.TelegramConfig `yaml:"telegram"`
	GitHub   config.GitHubConfig   `yaml:"github"`
	Otel     config.OtelConfig     `yaml:"otel"`
}

// AlertsConfig configures cmd/alerts.
type AlertsConfig struct {
	Telegram config.TelegramConfig `yaml:"telegram"`
	Spinny   SpinnyConfig          `yaml:"spinny"`
}

type SpinnyConfig struct {
	APIBaseURL string   `yaml:"api_base_url"`
	CarID      string   `yaml:"car_id"`
	Models     string   `yaml:"models"`
	Cities     []string `yaml:"cities"`
}

// LoadWebhook reads config files and the environment; see pkg/config.LoadConfig.
func LoadWebhook() (*WebhookConfig, error) {
	var cfg WebhookConfig
	if err := load(&cfg); err != nil {
		return nil, err
	}

	config.OverrideServerFromEnv(&cfg.Server)
	config.OverrideTelegramFromEnv(&cfg.Telegram)
	config.OverrideGitHubFromEnv(&cfg.GitHub)
	config.OverrideOtelFromEnv(&cfg.Otel)

	if cfg.Server.Port == "" {
		cfg.Server.Port = ":8080"
	}
	return &cfg, nil
}

// Validate checks the settings without which no request can be served.
func (c *WebhookConfig) Validate() error {
	return config.Require(
		config.Field{Name: "TELEGRAM_BOT_TOKEN", Set: c.Telegram.BotToken != ""},
		config.Field{Name: "GITHUB_TOKEN", Set: c.GitHub.Token != ""},
		config.Field{Name: "GITHUB_REPO", Set: c.GitHub.Repo != ""},
		config.Field{Name: "ALLOWED_CHAT_ID", Set: c.Telegram.AllowedChatID != 0},
	)
}

// LoadAlerts reads config files and the environment for the alert runner.
func LoadAlerts() (*AlertsConfig, error) {
	var cfg AlertsConfig
	if err := load(&cfg); err != nil {
		return nil, err
	}
	config.OverrideTelegramFromEnv(&cfg.Telegram)
	if id := config.GetEnv("SPINNY_CAR_ID", ""); id != "" {
		cfg.Spinny.CarID = id
	}
	return &cfg, nil
}

// Validate checks the settings needed to deliver alerts.
func (c *AlertsConfig) Validate() error {
	return config.Require(
		config.Field{Name: "TELEGRAM_BOT_TOKEN", Set: c.Telegram.BotToken != ""},
		config.Field{Name: "TELEGRAM_CHAT_ID", Set: c.Telegram.NotifyChatID != 0},
	)
}

func load(out interface{}) error {
	env := config.GetConfigEnv()
	configDir := config.GetEnv("CONFIG_DIR", "config")

	cfgMap, err := config.LoadConfig(env, configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return config.Decode(cfgMap, out)
}
