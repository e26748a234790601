package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var allKeys = []string{
	"REPLYMATE_PORT", "LOG_LEVEL", "REPLYMATE_API_TOKEN", "NATS_URL", "NATS_TOKEN", "NATS_QUEUE",
	"GENERATE_URL", "GENERATE_TIMEOUT", "ANTHROPIC_API_KEY", "REPLYMATE_MODEL",
	"OPENAI_API_KEY", "REPLYMATE_OPENAI_MODEL",
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range allKeys {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, 8760, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.APIToken)
	assert.Empty(t, cfg.NatsURL)
	assert.Equal(t, "replymate", cfg.NatsQueue)
	assert.Empty(t, cfg.GenerateURL)
	assert.Equal(t, 15*time.Second, cfg.GenerateTimeout)
	assert.Equal(t, "claude-sonnet-4-20250514", cfg.AnthropicModel)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("REPLYMATE_PORT", "9999")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REPLYMATE_API_TOKEN", "secret")
	t.Setenv("NATS_URL", "nats://custom:4222")
	t.Setenv("NATS_TOKEN", "nats-token")
	t.Setenv("NATS_QUEUE", "replymate-eu")
	t.Setenv("GENERATE_URL", "http://localhost:3000/api/generate")
	t.Setenv("GENERATE_TIMEOUT", "3s")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("REPLYMATE_MODEL", "claude-haiku")
	t.Setenv("OPENAI_API_KEY", "sk-oai")
	t.Setenv("REPLYMATE_OPENAI_MODEL", "gpt-5-mini")

	cfg := Load()

	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "secret", cfg.APIToken)
	assert.Equal(t, "nats://custom:4222", cfg.NatsURL)
	assert.Equal(t, "nats-token", cfg.NatsToken)
	assert.Equal(t, "replymate-eu", cfg.NatsQueue)
	assert.Equal(t, "http://localhost:3000/api/generate", cfg.GenerateURL)
	assert.Equal(t, 3*time.Second, cfg.GenerateTimeout)
	assert.Equal(t, "sk-ant", cfg.AnthropicAPIKey)
	assert.Equal(t, "claude-haiku", cfg.AnthropicModel)
	assert.Equal(t, "sk-oai", cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-5-mini", cfg.OpenAIModel)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("REPLYMATE_PORT", "notanumber")
	t.Setenv("GENERATE_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 8760, cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.GenerateTimeout)
}
