package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            int
	LogLevel        string
	APIToken        string
	NatsURL         string
	NatsToken       string
	NatsQueue       string
	GenerateURL     string
	GenerateTimeout time.Duration
	AnthropicAPIKey string
	AnthropicModel  string
	OpenAIAPIKey    string
	OpenAIModel     string
}

// Load reads the environment, after an optional .env in the working directory.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:            envInt("REPLYMATE_PORT", 8760),
		LogLevel:        envStr("LOG_LEVEL", "info"),
		APIToken:        envStr("REPLYMATE_API_TOKEN", ""),
		NatsURL:         envStr("NATS_URL", ""),
		NatsToken:       envStr("NATS_TOKEN", ""),
		NatsQueue:       envStr("NATS_QUEUE", "replymate"),
		GenerateURL:     envStr("GENERATE_URL", ""),
		GenerateTimeout: envDuration("GENERATE_TIMEOUT", 15*time.Second),
		AnthropicAPIKey: envStr("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  envStr("REPLYMATE_MODEL", "claude-sonnet-4-20250514"),
		OpenAIAPIKey:    envStr("OPENAI_API_KEY", ""),
		OpenAIModel:     envStr("REPLYMATE_OPENAI_MODEL", "gpt-4o-mini"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
