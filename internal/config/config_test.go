package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	pkgconfig "telegram-alerts/pkg/config"
)

func TestLoadWebhook_FromEnvOnly(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())
	t.Setenv("TELEGRAM_BOT_TOKEN", "bot")
	t.Setenv("GITHUB_TOKEN", "gh")
	t.Setenv("GITHUB_REPO", "o/r")
	t.Setenv("ALLOWED_CHAT_ID", "99")
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "")

	cfg, err := LoadWebhook()
	if err != nil {
		t.Fatalf("LoadWebhook: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Server.Port != ":8080" {
		t.Errorf("default port = %q", cfg.Server.Port)
	}
	if cfg.Telegram.AllowedChatID != 99 || cfg.GitHub.Repo != "o/r" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestWebhookValidate_MissingValues(t *testing.T) {
	cfg := &WebhookConfig{}
	cfg.Telegram.BotToken = "bot"
	cfg.GitHub.Token = "gh"
	cfg.GitHub.Repo = "o/r"

	err := cfg.Validate()
	if !errors.Is(err, pkgconfig.ErrMissing) {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
	if err.Error() != "required config value missing: ALLOWED_CHAT_ID" {
		t.Errorf("error = %q", err)
	}
}

func TestLoadAlerts_FromYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := `
telegram:
  bot_token: "bot"
  notify_chat_id: 7
spinny:
  car_id: "25264538"
  cities: [pune, mumbai]
`
	if err := os.WriteFile(filepath.Join(dir, "base.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")
	t.Setenv("SPINNY_CAR_ID", "")

	cfg, err := LoadAlerts()
	if err != nil {
		t.Fatalf("LoadAlerts: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Spinny.CarID != "25264538" || len(cfg.Spinny.Cities) != 2 {
		t.Errorf("unexpected spinny config: %+v", cfg.Spinny)
	}
}
