package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// ErrMissing is wrapped by validation errors for required settings.
var ErrMissing = errors.New("required config value missing")

// TelegramConfig Telegram Bot 配置
type TelegramConfig struct {
	BotToken      string `yaml:"bot_token"`
	APIBaseURL    string `yaml:"api_base_url"`
	AllowedChatID int64  `yaml:"allowed_chat_id"`
	NotifyChatID  int64  `yaml:"notify_chat_id"`
}

// GitHubConfig repository_dispatch 配置
type GitHubConfig struct {
	Token      string `yaml:"token"`
	Repo       string `yaml:"repo"`
	EventType  string `yaml:"event_type"`
	APIBaseURL string `yaml:"api_base_url"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port string `yaml:"port"`
}

// OtelConfig OpenTelemetry 配置
type OtelConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
}

// OverrideTelegramFromEnv 从环境变量覆盖 Telegram 配置
func OverrideTelegramFromEnv(cfg *TelegramConfig) {
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.BotToken = token
	}
	if url := os.Getenv("TELEGRAM_API_BASE_URL"); url != "" {
		cfg.APIBaseURL = url
	}
	if id := os.Getenv("ALLOWED_CHAT_ID"); id != "" {
		if v, err := strconv.ParseInt(id, 10, 64); err == nil {
			cfg.AllowedChatID = v
		}
	}
	if id := os.Getenv("TELEGRAM_CHAT_ID"); id != "" {
		if v, err := strconv.ParseInt(id, 10, 64); err == nil {
			cfg.NotifyChatID = v
		}
	}
}

// OverrideGitHubFromEnv 从环境变量覆盖 GitHub 配置
func OverrideGitHubFromEnv(cfg *GitHubConfig) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		cfg.Token = token
	}
	if repo := os.Getenv("GITHUB_REPO"); repo != "" {
		cfg.Repo = repo
	}
	if event := os.Getenv("GITHUB_EVENT_TYPE"); event != "" {
		cfg.EventType = event
	}
	if url := os.Getenv("GITHUB_API_BASE_URL"); url != "" {
		cfg.APIBaseURL = url
	}
}

// OverrideServerFromEnv 从环境变量覆盖服务器配置（PORT 兼容托管平台）
func OverrideServerFromEnv(cfg *ServerConfig) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = ":" + port
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Port = port
	}
}

// OverrideOtelFromEnv 从环境变量覆盖 OpenTelemetry 配置
func OverrideOtelFromEnv(cfg *OtelConfig) {
	if enabled := os.Getenv("OTEL_ENABLED"); enabled != "" {
		if v, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = v
		}
	}
	if endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); endpoint != "" {
		cfg.Endpoint = endpoint
	}
}

// Field names a required setting and whether it was provided.
type Field struct {
	Name string
	Set  bool
}

// Require returns an ErrMissing-wrapped error naming the first unset field.
func Require(fields ...Field) error {
	for _, f := range fields {
		if !f.Set {
			return fmt.Errorf("%w: %s", ErrMissing, f.Name)
		}
	}
	return nil
}
