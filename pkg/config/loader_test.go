package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Telegram TelegramConfig `yaml:"telegram"`
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadConfig_MergesEnvFileAndSecrets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", `
server:
  port: ":8080"
telegram:
  bot_token: "${TELEGRAM_BOT_TOKEN}"
  allowed_chat_id: ${ALLOWED_CHAT_ID}
`)
	writeFile(t, dir, "production.yaml", `
server:
  port: ":9090"
`)
	writeFile(t, dir, "secrets.env", "TELEGRAM_BOT_TOKEN=\"123:abc\"\nALLOWED_CHAT_ID=42\n")

	cfgMap, err := LoadConfig("production", dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	var cfg testConfig
	if err := Decode(cfgMap, &cfg); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if cfg.Server.Port != ":9090" {
		t.Errorf("port = %q, want :9090", cfg.Server.Port)
	}
	if cfg.Telegram.BotToken != "123:abc" {
		t.Errorf("bot token = %q, want 123:abc", cfg.Telegram.BotToken)
	}
	if cfg.Telegram.AllowedChatID != 42 {
		t.Errorf("allowed chat id = %d, want 42", cfg.Telegram.AllowedChatID)
	}
}

func TestLoadConfig_PlaceholderFallsBackToProcessEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "telegram:\n  bot_token: \"${TEST_BOT_TOKEN_FALLBACK}\"\n")
	t.Setenv("TEST_BOT_TOKEN_FALLBACK", "from-env")

	cfgMap, err := LoadConfig("local", dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	var cfg testConfig
	if err := Decode(cfgMap, &cfg); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if cfg.Telegram.BotToken != "from-env" {
		t.Errorf("bot token = %q, want from-env", cfg.Telegram.BotToken)
	}
}

func TestLoadConfig_MissingBaseIsEmpty(t *testing.T) {
	cfgMap, err := LoadConfig("local", t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfgMap) != 0 {
		t.Errorf("expected empty config, got %v", cfgMap)
	}
}

func TestOverrideFromEnv(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "tok")
	t.Setenv("ALLOWED_CHAT_ID", "676465574")
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")
	t.Setenv("PORT", "3000")
	t.Setenv("SERVER_PORT", "")

	tg := TelegramConfig{NotifyChatID: 7}
	OverrideTelegramFromEnv(&tg)
	if tg.BotToken != "tok" || tg.AllowedChatID != 676465574 {
		t.Errorf("unexpected telegram config: %+v", tg)
	}
	if tg.NotifyChatID != 7 {
		t.Errorf("invalid TELEGRAM_CHAT_ID should be ignored, got %d", tg.NotifyChatID)
	}

	var srv ServerConfig
	OverrideServerFromEnv(&srv)
	if srv.Port != ":3000" {
		t.Errorf("port = %q, want :3000", srv.Port)
	}
}

func TestRequire(t *testing.T) {
	if err := Require(Field{"a", true}, Field{"b", true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := Require(Field{"a", true}, Field{"b", false}, Field{"c", false})
	if !errors.Is(err, ErrMissing) {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
	if got := err.Error(); got != "required config value missing: b" {
		t.Errorf("error = %q", got)
	}
}
