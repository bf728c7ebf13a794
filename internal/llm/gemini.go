package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// GeminiClient calls the Google Gemini generate-content API.
type GeminiClient struct {
	model  string
	client *genai.Client
}

const (
	defaultGeminiModel   = "gemini-2.5-flash"
	defaultGeminiTimeout = 30 * time.Second
	geminiTemperature    = float32(0.4)

	geminiSystemInstruction = "You are a helpful assistant. Answer the user's question concisely."
)

// NewGeminiClient builds a client against the Gemini API backend. It fails
// at construction time when the key is missing or the SDK client cannot be
// built; it never degrades to a no-op.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if model == "" {
		model = defaultGeminiModel
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiClient{
		model:  model,
		client: cli,
	}, nil
}

// Model reports the configured model identifier.
func (c *GeminiClient) Model() string { return c.model }

func (c *GeminiClient) Complete(ctx context.Context, question string) (string, error) {
	if c == nil || c.client == nil {
		return "", &Error{Kind: KindTransport, Detail: "gemini client not initialized"}
	}
	reqCtx, cancel := context.WithTimeout(ctx, defaultGeminiTimeout)
	defer cancel()

	temp := geminiTemperature
	result, err := c.client.Models.GenerateContent(reqCtx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: question}},
		}},
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: geminiSystemInstruction}},
			},
			Temperature: &temp,
		},
	)
	if err != nil {
		return "", classifyGeminiError(err)
	}
	if result == nil {
		return "", ErrEmptyCompletion
	}
	text := result.Text()
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

// classifyGeminiError maps SDK errors onto the closed gateway taxonomy.
// Anything the API itself rejected is a provider error carrying the
// provider's message; the rest (DNS, timeout, TLS) is transport.
func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &Error{Kind: KindProvider, Detail: apiErr.Message}
	}
	return &Error{Kind: KindTransport, Detail: err.Error()}
}
