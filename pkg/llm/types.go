package llm

import (
	"context"
	"time"
)

// ResponseFormat constrains the shape of a completion.
type ResponseFormat string

const (
	FormatText       ResponseFormat = "text"
	FormatJSONObject ResponseFormat = "json_object"
)

// FinishReason reports why a provider stopped generating.
type FinishReason string

const (
	FinishStop          FinishReason = "stop"
	FinishLength        FinishReason = "length"
	FinishContentFilter FinishReason = "content_filter"
	FinishError         FinishReason = "error"
)

// CompletionRequest is the uniform request shape over all provider backends.
type CompletionRequest struct {
	Prompt string
	System string
	Model  string

	// MaxOutputTokens caps the completion length. Zero means no cap; callers
	// set it only when they explicitly need truncation. A restrictive cap
	// with a large prompt produces empty completions with FinishLength.
	MaxOutputTokens int

	ResponseFormat ResponseFormat

	// Schema optionally constrains a FormatJSONObject completion to a JSON
	// schema, as produced by GenerateSchema. Backends with native
	// schema-constrained decoding enforce it on the wire; the rest receive
	// it as a system instruction.
	Schema any

	// SchemaName labels Schema for backends that require a named schema.
	// Empty defaults to "response".
	SchemaName string

	// Timeout bounds this single call. Zero inherits the context deadline.
	Timeout time.Duration
}

// CompletionResponse is the uniform response shape over all provider backends.
type CompletionResponse struct {
	Text         string
	FinishReason FinishReason
	Model        string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
}

// Provider is the adapter contract: one blocking completion call per backend.
// Implementations map backend error classes onto ProviderError kinds.
type Provider interface {
	ID() string
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}
