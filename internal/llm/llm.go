package llm

import (
	"context"
	"errors"
	"fmt"
)

// Client is a minimal completion interface to allow pluggable providers.
// The question is sent as the prompt; implementations return the generated
// text verbatim, ErrEmptyCompletion when the provider answered with no
// usable text, or an *Error for provider and transport failures.
type Client interface {
	Complete(ctx context.Context, question string) (string, error)
}

// ErrEmptyCompletion marks a well-formed provider response that carried no
// text. It is not a hard failure; callers present a placeholder answer.
var ErrEmptyCompletion = errors.New("llm: empty completion")

// ErrorKind is the closed set of gateway failure classes.
type ErrorKind string

const (
	// KindProvider covers errors the provider itself reported: bad auth,
	// quota, malformed request, provider-side faults.
	KindProvider ErrorKind = "provider"
	// KindTransport covers everything else: network, timeout,
	// serialization, uninitialized client.
	KindTransport ErrorKind = "transport"
)

// Error is a classified gateway failure. Detail carries the provider's own
// message for KindProvider and the underlying error text for KindTransport.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("llm: %s error: %s", e.Kind, e.Detail)
}
