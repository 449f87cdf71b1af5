package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName           string
	AppEnv            string
	AppPort           string
	DatabaseURL       string
	RedisURL          string
	NATSService       string
	JWTSecret         string
	StatsCacheTTL     time.Duration
	AIProvider        string
	OpenAIAPIKey      string
	AnthropicAPIKey   string
	AssistantModel    string
	AssistantMaxToken int
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// CompletionAPIKey returns the key for the configured completion provider.
func (c Config) CompletionAPIKey() string {
	if c.AIProvider == "anthropic" {
		return c.AnthropicAPIKey
	}
	return c.OpenAIAPIKey
}

// Load reads configuration values from environment variables and optional .env file.
// Missing required secrets fail here so the process never starts half-configured.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("PROFBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "ProfBoard API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("stats.cache_ttl", "5m")
	v.SetDefault("ai.provider", "openai")
	v.SetDefault("ai.max_tokens", 500)

	ttlString := v.GetString("stats.cache_ttl")
	if ttlString == "" {
		ttlString = "5m"
	}

	ttl, err := time.ParseDuration(ttlString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid stats cache ttl: %w", err)
	}

	cfg := Config{
		AppName:           v.GetString("app.name"),
		AppEnv:            v.GetString("app.env"),
		AppPort:           v.GetString("app.port"),
		DatabaseURL:       v.GetString("database.url"),
		RedisURL:          v.GetString("redis.url"),
		NATSService:       v.GetString("nats.url"),
		JWTSecret:         v.GetString("jwt.secret"),
		StatsCacheTTL:     ttl,
		AIProvider:        strings.ToLower(v.GetString("ai.provider")),
		OpenAIAPIKey:      v.GetString("openai_api_key"),
		AnthropicAPIKey:   v.GetString("anthropic_api_key"),
		AssistantModel:    v.GetString("ai.model"),
		AssistantMaxToken: v.GetInt("ai.max_tokens"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("database url must be provided")
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	if cfg.CompletionAPIKey() == "" {
		return Config{}, fmt.Errorf("completion api key must be provided for provider %q", cfg.AIProvider)
	}

	if cfg.AssistantMaxToken <= 0 {
		cfg.AssistantMaxToken = 500
	}

	return cfg, nil
}
