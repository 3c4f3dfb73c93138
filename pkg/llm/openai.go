package llm

import (
	"context"
	"errors"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIClient adapts OpenAI-compatible chat backends. Perplexity speaks the
// same wire protocol, so the adapter serves both ids with different base URLs.
type OpenAIClient struct {
	id           string
	api          openai.Client
	defaultModel string
}

// NewOpenAIClient creates an adapter for an OpenAI-compatible backend.
func NewOpenAIClient(id, apiKey, baseURL, defaultModel string) *OpenAIClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIClient{
		id:           id,
		api:          openai.NewClient(opts...),
		defaultModel: defaultModel,
	}
}

// ID returns the provider id responses are persisted under.
func (c *OpenAIClient) ID() string {
	return c.id
}

// Complete issues one chat completion.
func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:    model,
		Messages: messages,
	}
	if req.MaxOutputTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxOutputTokens))
	}
	if req.ResponseFormat == FormatJSONObject {
		if req.Schema != nil {
			name := req.SchemaName
			if name == "" {
				name = "response"
			}
			params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
				OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
					JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
						Name:   name,
						Schema: req.Schema,
						Strict: openai.Bool(true),
					},
				},
			}
		} else {
			params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
				OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
			}
		}
	}

	callCtx := ctx
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.api.Chat.Completions.New(callCtx, params)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return nil, &ProviderError{
				Provider:   c.id,
				Kind:       KindFromStatus(apiErr.StatusCode),
				StatusCode: apiErr.StatusCode,
				Message:    "chat completion failed",
				Err:        err,
			}
		}
		return nil, WrapTransportError(ctx, c.id, err)
	}

	if len(resp.Choices) == 0 {
		return nil, &ProviderError{
			Provider: c.id,
			Kind:     KindTransient,
			Message:  "no choices in completion",
		}
	}

	choice := resp.Choices[0]
	return &CompletionResponse{
		Text:         choice.Message.Content,
		FinishReason: mapOpenAIFinish(string(choice.FinishReason)),
		Model:        resp.Model,
		InputTokens:  int(resp.Usage.PromptTokens),
		OutputTokens: int(resp.Usage.CompletionTokens),
		LatencyMs:    latency,
	}, nil
}

func mapOpenAIFinish(reason string) FinishReason {
	switch reason {
	case "length":
		return FinishLength
	case "content_filter":
		return FinishContentFilter
	default:
		return FinishStop
	}
}
