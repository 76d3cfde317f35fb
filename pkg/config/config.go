package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "LUMEN_"

// Config holds everything the relay reads from its environment. Discord
// credentials may legitimately be empty; the endpoints that need them report
// a misconfiguration at call time instead of refusing to boot.
type Config struct {
	Server struct {
		Port        string `koanf:"port"`
		MetricsPort string `koanf:"metrics_port"`
		URL         string `koanf:"url"`
	} `koanf:"server"`

	Discord struct {
		APIBase      string `koanf:"api_base"`
		ClientID     string `koanf:"client_id"`
		ClientSecret string `koanf:"client_secret"`
		BotToken     string `koanf:"bot_token"`
		BotID        string `koanf:"bot_id"`
	} `koanf:"discord"`

	Bot struct {
		Name string `koanf:"name"`
	} `koanf:"bot"`

	Cors struct {
		AllowedOrigins []string `koanf:"allowed_origins"`
	} `koanf:"cors"`

	Log struct {
		Level     string `koanf:"level"`
		SentryDSN string `koanf:"sentry_dsn"`
	} `koanf:"log"`

	TopGG struct {
		Token string `koanf:"token"`
	} `koanf:"topgg"`
}

// Load layers configuration sources by increasing precedence: built-in
// defaults, an optional YAML file, then LUMEN_-prefixed environment
// variables (LUMEN_DISCORD_CLIENT_ID -> discord.client_id).
func Load() (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":          "8080",
		"server.metrics_port":  "2112",
		"server.url":           "http://localhost:8080",
		"discord.api_base":     "https://discord.com/api/v10",
		"bot.name":             "Lumen",
		"cors.allowed_origins": []string{"*"},
		"log.level":            "info",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	for _, loc := range []string{"/etc/lumen/config.yaml", "config.yaml"} {
		if _, err := os.Stat(loc); err != nil {
			continue
		}
		if err := k.Load(file.Provider(loc), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config file %s: %w", loc, err)
		}
		break
	}

	if err := k.Load(env.ProviderWithValue(envPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	var cfg Config
	conf := koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, conf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// envValue maps LUMEN_SECTION_SOME_KEY to section.some_key. Only the first
// underscore separates the section, so multi-word keys survive intact.
// Comma-separated values become slices for the list-typed keys.
func envValue(key, value string) (string, interface{}) {
	k := strings.Replace(strings.ToLower(strings.TrimPrefix(key, envPrefix)), "_", ".", 1)
	if k == "cors.allowed_origins" {
		return k, strings.Split(value, ",")
	}
	return k, value
}
