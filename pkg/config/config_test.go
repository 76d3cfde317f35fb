package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("server.port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != "2112" {
		t.Errorf("server.metrics_port = %q, want 2112", cfg.Server.MetricsPort)
	}
	if cfg.Discord.APIBase != "https://discord.com/api/v10" {
		t.Errorf("discord.api_base = %q", cfg.Discord.APIBase)
	}
	if cfg.Bot.Name != "Lumen" {
		t.Errorf("bot.name = %q", cfg.Bot.Name)
	}
	if !reflect.DeepEqual(cfg.Cors.AllowedOrigins, []string{"*"}) {
		t.Errorf("cors.allowed_origins = %v", cfg.Cors.AllowedOrigins)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log.level = %q", cfg.Log.Level)
	}
	if cfg.Discord.ClientID != "" || cfg.Discord.BotToken != "" {
		t.Error("credentials should default to empty")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	chdirTemp(t)

	t.Setenv("LUMEN_SERVER_PORT", "9000")
	t.Setenv("LUMEN_DISCORD_CLIENT_ID", "client-123")
	t.Setenv("LUMEN_DISCORD_CLIENT_SECRET", "hunter2")
	t.Setenv("LUMEN_DISCORD_BOT_TOKEN", "bot-abc")
	t.Setenv("LUMEN_DISCORD_BOT_ID", "42")
	t.Setenv("LUMEN_BOT_NAME", "Lumen Beta")
	t.Setenv("LUMEN_CORS_ALLOWED_ORIGINS", "https://lumen.example,https://staging.lumen.example")
	t.Setenv("LUMEN_LOG_LEVEL", "debug")
	t.Setenv("LUMEN_TOPGG_TOKEN", "dbl-xyz")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("server.port = %q, want 9000", cfg.Server.Port)
	}
	if cfg.Discord.ClientID != "client-123" || cfg.Discord.ClientSecret != "hunter2" {
		t.Errorf("client creds = %q/%q", cfg.Discord.ClientID, cfg.Discord.ClientSecret)
	}
	if cfg.Discord.BotToken != "bot-abc" || cfg.Discord.BotID != "42" {
		t.Errorf("bot creds = %q/%q", cfg.Discord.BotToken, cfg.Discord.BotID)
	}
	if cfg.Bot.Name != "Lumen Beta" {
		t.Errorf("bot.name = %q", cfg.Bot.Name)
	}
	want := []string{"https://lumen.example", "https://staging.lumen.example"}
	if !reflect.DeepEqual(cfg.Cors.AllowedOrigins, want) {
		t.Errorf("cors.allowed_origins = %v, want %v", cfg.Cors.AllowedOrigins, want)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", cfg.Log.Level)
	}
	if cfg.TopGG.Token != "dbl-xyz" {
		t.Errorf("topgg.token = %q", cfg.TopGG.Token)
	}
}

func TestLoadYamlFileThenEnvWins(t *testing.T) {
	dir := chdirTemp(t)

	yml := []byte("server:\n  port: \"9100\"\n  url: https://api.lumen.example\ndiscord:\n  client_id: from-file\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), yml, 0o644); err != nil {
		t.Fatalf("write config.yaml: %v", err)
	}

	t.Setenv("LUMEN_DISCORD_CLIENT_ID", "from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9100" {
		t.Errorf("server.port = %q, want file value 9100", cfg.Server.Port)
	}
	if cfg.Server.URL != "https://api.lumen.example" {
		t.Errorf("server.url = %q", cfg.Server.URL)
	}
	if cfg.Discord.ClientID != "from-env" {
		t.Errorf("discord.client_id = %q, want env to beat file", cfg.Discord.ClientID)
	}
}

func TestEnvValueMapping(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"LUMEN_SERVER_PORT", "server.port"},
		{"LUMEN_SERVER_METRICS_PORT", "server.metrics_port"},
		{"LUMEN_DISCORD_CLIENT_ID", "discord.client_id"},
		{"LUMEN_DISCORD_API_BASE", "discord.api_base"},
		{"LUMEN_LOG_SENTRY_DSN", "log.sentry_dsn"},
	}
	for _, tt := range tests {
		got, _ := envValue(tt.key, "x")
		if got != tt.want {
			t.Errorf("envValue(%s) = %q, want %q", tt.key, got, tt.want)
		}
	}

	_, v := envValue("LUMEN_CORS_ALLOWED_ORIGINS", "a.example,b.example")
	if !reflect.DeepEqual(v, []string{"a.example", "b.example"}) {
		t.Errorf("origins value = %v", v)
	}
}

// chdirTemp keeps tests away from any real config.yaml in the source tree.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(old) })
	return dir
}
