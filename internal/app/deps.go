package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"

	"nlp-qa/internal/config"
	"nlp-qa/internal/llm"
	"nlp-qa/internal/logger"
	"nlp-qa/internal/qa"
)

// Deps bundles the runtime dependencies shared by both frontends.
type Deps struct {
	Config config.Config
	Log    *slog.Logger
	QA     *qa.Service
}

// Build loads env, config, and the question-answering service.
//
// A missing API key is not a build failure: the service comes up with an
// unconfigured gateway and answers every request with a service-unavailable
// outcome, so the HTTP frontend can still serve its 503s and the CLI can
// print a remediation message. A present key with a broken client is a
// failure.
func Build(ctx context.Context) (Deps, error) {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()
	level := cfg.LogLevel
	if cfg.Debug {
		level = "debug"
	}
	log := logger.New(level)

	gateway, err := buildGateway(ctx, cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize LLM gateway: %w", err)
	}

	return Deps{
		Config: cfg,
		Log:    log,
		QA:     qa.New(gateway, log),
	}, nil
}

func buildGateway(ctx context.Context, cfg config.Config, log *slog.Logger) (llm.Client, error) {
	if cfg.Credential() == "" {
		log.Warn("API key not set; requests will be answered with service unavailable",
			"provider", cfg.LLMProvider)
		return nil, nil
	}

	switch cfg.LLMProvider {
	case "gemini":
		client, err := llm.NewGeminiClient(ctx, cfg.GeminiKey, cfg.LLMModel)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		log.Info("using Gemini LLM gateway", "model", client.Model())
		return client, nil
	case "openai":
		client, err := llm.NewOpenAIClient(cfg.OpenAIKey, openai.ChatModel(cfg.LLMModel))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
		}
		log.Info("using OpenAI LLM gateway", "model", client.Model())
		return client, nil
	default:
		return nil, fmt.Errorf("invalid LLM_PROVIDER: %s (valid options: gemini, openai)", cfg.LLMProvider)
	}
}
