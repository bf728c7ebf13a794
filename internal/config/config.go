package config

import (
	"log/slog"

	"github.com/caarlos0/env/v10"
)

// Config holds process-wide runtime configuration. Loaded once at startup
// and never mutated afterwards.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"5000"`
	Debug    bool   `env:"DEBUG" envDefault:"false"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LLM
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"gemini"` // "gemini" or "openai"
	GeminiKey   string `env:"GEMINI_API_KEY"`
	OpenAIKey   string `env:"OPENAI_API_KEY"`
	LLMModel    string `env:"LLM_MODEL"` // empty selects the provider default
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}

// Credential returns the API key for the selected provider.
func (c Config) Credential() string {
	if c.LLMProvider == "openai" {
		return c.OpenAIKey
	}
	return c.GeminiKey
}
