package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies provider failures for retry policy. The kinds are
// stable strings because they are persisted on response rows.
type ErrorKind string

const (
	// KindTransient covers network blips, 5xx, and rate limiting. Retried.
	KindTransient ErrorKind = "transient"
	// KindPermanent covers malformed requests and content policy. Not retried.
	KindPermanent ErrorKind = "permanent"
	// KindQuota covers auth and billing failures. Retried after a longer
	// delay, then fails the provider for the audit.
	KindQuota ErrorKind = "quota"
	// KindData covers schema mismatches in LLM output. Caller-dependent.
	KindData ErrorKind = "data"
	// KindFatal covers unusable infrastructure (DB down, missing config).
	KindFatal ErrorKind = "fatal"
)

// ProviderError carries the classification of a failed provider call.
type ProviderError struct {
	Provider   string
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

// Error returns the formatted error message.
func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (%s, status %d)", e.Provider, e.Message, e.Kind, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Provider, e.Message, e.Kind)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is matches provider errors by kind, so callers can branch with errors.Is.
func (e *ProviderError) Is(target error) bool {
	var pe *ProviderError
	if errors.As(target, &pe) {
		return pe.Kind == e.Kind && (pe.Provider == "" || pe.Provider == e.Provider)
	}
	return false
}

// KindOf extracts the error kind, defaulting unknown failures to transient
// so the bounded retry policy gets a chance at them.
func KindOf(err error) ErrorKind {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindTransient
}

// KindFromStatus maps an HTTP status to an error kind. Rate limiting is
// transient; auth and billing are quota; remaining 4xx are permanent.
func KindFromStatus(status int) ErrorKind {
	switch {
	case status == http.StatusTooManyRequests:
		return KindTransient
	case status >= 500:
		return KindTransient
	case status == http.StatusUnauthorized,
		status == http.StatusPaymentRequired,
		status == http.StatusForbidden:
		return KindQuota
	default:
		return KindPermanent
	}
}

// WrapTransportError classifies a non-HTTP failure from an adapter call.
// Parent-context cancellation passes through untouched so callers stop
// instead of retrying.
func WrapTransportError(parent context.Context, provider string, err error) error {
	if parent.Err() != nil {
		return parent.Err()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &ProviderError{
			Provider: provider,
			Kind:     KindTransient,
			Message:  "request timed out",
			Err:      err,
		}
	}
	return &ProviderError{
		Provider: provider,
		Kind:     KindTransient,
		Message:  "request failed",
		Err:      err,
	}
}
