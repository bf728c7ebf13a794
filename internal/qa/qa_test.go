package qa

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"nlp-qa/internal/llm"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAnswerSuccess(t *testing.T) {
	mockLLM := new(llm.MockClient)
	mockLLM.On("Complete", mock.Anything, "What is the Capital of France?").
		Return("Paris.", nil).Once()

	svc := New(mockLLM, testLogger())
	res := svc.Answer(context.Background(), "  What is the Capital of France?  ")

	if !res.OK() {
		t.Fatalf("expected success, got %s: %s", res.Err, res.Message)
	}
	if res.Answer != "Paris." {
		t.Errorf("unexpected answer: %q", res.Answer)
	}
	if res.Question != "What is the Capital of France?" {
		t.Errorf("expected trimmed question echoed, got %q", res.Question)
	}
	if res.Trace.Processed != "what is the capital of france" {
		t.Errorf("unexpected trace processed: %q", res.Trace.Processed)
	}
	mockLLM.AssertExpectations(t)
}

func TestAnswerSendsOriginalNotProcessed(t *testing.T) {
	mockLLM := new(llm.MockClient)
	// The prompt must keep its case and punctuation.
	mockLLM.On("Complete", mock.Anything, "What is the Capital of France?").
		Return("Paris.", nil).Once()

	svc := New(mockLLM, testLogger())
	res := svc.Answer(context.Background(), "What is the Capital of France?")

	if !res.OK() {
		t.Fatalf("expected success, got %s", res.Err)
	}
	mockLLM.AssertExpectations(t)
	mockLLM.AssertNotCalled(t, "Complete", mock.Anything, "what is the capital of france")
}

func TestAnswerEmptyQuestion(t *testing.T) {
	tests := []string{"", "   ", "\t\n"}
	for i, input := range tests {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			mockLLM := new(llm.MockClient)
			svc := New(mockLLM, testLogger())

			res := svc.Answer(context.Background(), input)

			if res.Err != ErrValidation {
				t.Errorf("expected validation error, got %q", res.Err)
			}
			mockLLM.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
		})
	}
}

func TestAnswerUnconfiguredGateway(t *testing.T) {
	svc := New(nil, testLogger())
	res := svc.Answer(context.Background(), "Is anyone there?")

	if res.Err != ErrUnavailable {
		t.Fatalf("expected unavailable, got %q", res.Err)
	}
	if res.Trace.Processed != "is anyone there" {
		t.Errorf("preprocessing should still run, got %q", res.Trace.Processed)
	}
	if svc.Configured() {
		t.Error("expected Configured to be false")
	}
}

func TestAnswerEmptyCompletionIsSuccess(t *testing.T) {
	mockLLM := new(llm.MockClient)
	mockLLM.On("Complete", mock.Anything, mock.Anything).
		Return("", llm.ErrEmptyCompletion).Once()

	svc := New(mockLLM, testLogger())
	res := svc.Answer(context.Background(), "hello?")

	if !res.OK() {
		t.Fatalf("empty completion must be a success, got %s", res.Err)
	}
	if res.Answer != PlaceholderAnswer {
		t.Errorf("expected placeholder answer, got %q", res.Answer)
	}
	mockLLM.AssertExpectations(t)
}

func TestAnswerProviderError(t *testing.T) {
	mockLLM := new(llm.MockClient)
	mockLLM.On("Complete", mock.Anything, mock.Anything).
		Return("", &llm.Error{Kind: llm.KindProvider, Detail: "quota exceeded"}).Once()

	svc := New(mockLLM, testLogger())
	res := svc.Answer(context.Background(), "anything")

	if res.Err != ErrProvider {
		t.Fatalf("expected provider error, got %q", res.Err)
	}
	if !strings.Contains(res.Message, "quota exceeded") {
		t.Errorf("expected provider detail surfaced, got %q", res.Message)
	}
	mockLLM.AssertExpectations(t)
}

func TestAnswerTransportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"classified transport error", &llm.Error{Kind: llm.KindTransport, Detail: "connection refused"}},
		{"unclassified error", errors.New("something broke")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLLM := new(llm.MockClient)
			mockLLM.On("Complete", mock.Anything, mock.Anything).
				Return("", tt.err).Once()

			svc := New(mockLLM, testLogger())
			res := svc.Answer(context.Background(), "anything")

			if res.Err != ErrTransport {
				t.Fatalf("expected transport error, got %q", res.Err)
			}
			if strings.Contains(res.Message, "connection refused") {
				t.Errorf("transport detail must not be surfaced, got %q", res.Message)
			}
			mockLLM.AssertExpectations(t)
		})
	}
}
