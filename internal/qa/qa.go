package qa

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"nlp-qa/internal/llm"
	"nlp-qa/internal/normalize"
)

// ErrorKind is the closed set of request outcomes surfaced to boundary
// adapters. The empty kind means success.
type ErrorKind string

const (
	ErrValidation  ErrorKind = "validation"
	ErrUnavailable ErrorKind = "unavailable"
	ErrProvider    ErrorKind = "provider"
	ErrTransport   ErrorKind = "transport"
)

// PlaceholderAnswer is returned as a successful answer when the provider
// responded without any usable text.
const PlaceholderAnswer = "I couldn't generate a response. Please try again."

// Result is the outcome of one question. It is request-local: built fresh
// per call, never shared or retained.
type Result struct {
	Question string
	Answer   string
	Trace    normalize.Trace
	Err      ErrorKind
	Message  string
}

// OK reports whether the request succeeded.
func (r Result) OK() bool { return r.Err == "" }

// Service orchestrates one question end to end: validation, preprocessing,
// gateway invocation, and outcome classification. The gateway is injected
// at construction and never mutated afterwards; a nil gateway means the
// service is unconfigured and every request is answered with
// ErrUnavailable without touching the network.
type Service struct {
	gateway llm.Client
	log     *slog.Logger
}

// New builds a Service around the given gateway. A nil gateway is allowed.
func New(gateway llm.Client, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{gateway: gateway, log: log}
}

// Configured reports whether a gateway is available.
func (s *Service) Configured() bool { return s.gateway != nil }

// Answer runs the request pipeline. Steps run in strict order and the
// first terminal outcome wins; no error escapes as a panic or a raw error.
func (s *Service) Answer(ctx context.Context, raw string) Result {
	question := strings.TrimSpace(raw)
	if question == "" {
		return Result{
			Err:     ErrValidation,
			Message: "Question cannot be empty",
		}
	}

	// Preprocessing is diagnostic only. The prompt sent to the model is
	// the original trimmed question, not the normalized form.
	trace := normalize.Normalize(question)
	s.log.Debug("preprocessed question",
		"original", trace.Original,
		"processed", trace.Processed,
		"tokens", len(trace.Tokens),
	)

	if s.gateway == nil {
		return Result{
			Question: question,
			Trace:    trace,
			Err:      ErrUnavailable,
			Message:  "AI service not configured. Please check API key.",
		}
	}

	answer, err := s.gateway.Complete(ctx, question)
	switch {
	case err == nil:
	case errors.Is(err, llm.ErrEmptyCompletion):
		// Success from the caller's point of view.
		answer = PlaceholderAnswer
	default:
		return s.classify(question, trace, err)
	}

	return Result{
		Question: question,
		Answer:   answer,
		Trace:    trace,
	}
}

func (s *Service) classify(question string, trace normalize.Trace, err error) Result {
	res := Result{Question: question, Trace: trace}
	var gerr *llm.Error
	if errors.As(err, &gerr) && gerr.Kind == llm.KindProvider {
		s.log.Error("provider error", "detail", gerr.Detail)
		res.Err = ErrProvider
		res.Message = "AI service error: " + gerr.Detail
		return res
	}
	// Transport detail is logged but not shown to the end user.
	s.log.Error("transport error", "err", err)
	res.Err = ErrTransport
	res.Message = "An unexpected error occurred. Please try again."
	return res
}
