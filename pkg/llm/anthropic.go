package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// The Messages API requires max_tokens on every call. When the caller asks
// for no cap, this generous ceiling stands in without truncating real
// completions.
const anthropicDefaultMaxTokens = 8192

// AnthropicClient adapts the Anthropic Messages API.
type AnthropicClient struct {
	id           string
	api          anthropic.Client
	defaultModel string
}

// NewAnthropicClient creates an adapter for the Anthropic backend.
func NewAnthropicClient(id, apiKey, baseURL, defaultModel string) *AnthropicClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &AnthropicClient{
		id:           id,
		api:          anthropic.NewClient(opts...),
		defaultModel: defaultModel,
	}
}

// ID returns the provider id responses are persisted under.
func (c *AnthropicClient) ID() string {
	return c.id
}

// Complete issues one message completion.
func (c *AnthropicClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	maxTokens := int64(anthropicDefaultMaxTokens)
	if req.MaxOutputTokens > 0 {
		maxTokens = int64(req.MaxOutputTokens)
	}

	system := req.System
	if req.ResponseFormat == FormatJSONObject {
		// No native JSON mode; constrain via instruction.
		if system != "" {
			system += "\n\n"
		}
		system += "Respond with a single valid JSON object and nothing else."
		if req.Schema != nil {
			if line := SchemaInstruction(req.Schema); line != "" {
				system += "\n" + line
			}
		}
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	callCtx := ctx
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	start := time.Now()
	msg, err := c.api.Messages.New(callCtx, params)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return nil, &ProviderError{
				Provider:   c.id,
				Kind:       KindFromStatus(apiErr.StatusCode),
				StatusCode: apiErr.StatusCode,
				Message:    "message completion failed",
				Err:        err,
			}
		}
		return nil, WrapTransportError(ctx, c.id, err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	return &CompletionResponse{
		Text:         text.String(),
		FinishReason: mapAnthropicStop(string(msg.StopReason)),
		Model:        string(msg.Model),
		InputTokens:  int(msg.Usage.InputTokens),
		OutputTokens: int(msg.Usage.OutputTokens),
		LatencyMs:    latency,
	}, nil
}

func mapAnthropicStop(reason string) FinishReason {
	switch reason {
	case "max_tokens":
		return FinishLength
	case "refusal":
		return FinishContentFilter
	default:
		return FinishStop
	}
}
