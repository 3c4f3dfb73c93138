package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// GeminiDefaultBaseURL is the native GenerateContent API endpoint.
const GeminiDefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient adapts the Gemini GenerateContent API over plain HTTP+JSON.
// It is the pipeline's multimodal provider, addressed as "google".
type GeminiClient struct {
	id           string
	apiKey       string
	baseURL      string
	defaultModel string
	httpClient   *http.Client
}

// NewGeminiClient creates an adapter for the Gemini backend.
func NewGeminiClient(id, apiKey, baseURL, defaultModel string) *GeminiClient {
	if baseURL == "" {
		baseURL = GeminiDefaultBaseURL
	}
	return &GeminiClient{
		id:           id,
		apiKey:       apiKey,
		baseURL:      baseURL,
		defaultModel: defaultModel,
		httpClient:   &http.Client{Timeout: 120 * time.Second},
	}
}

// ID returns the provider id responses are persisted under.
func (c *GeminiClient) ID() string {
	return c.id
}

type geminiRequest struct {
	Contents          []geminiContent    `json:"contents"`
	GenerationConfig  *geminiGenConfig   `json:"generationConfig,omitempty"`
	SystemInstruction *geminiInstruction `json:"systemInstruction,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiInstruction struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenConfig struct {
	MaxOutputTokens  int    `json:"maxOutputTokens,omitempty"`
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
	ResponseSchema   any    `json:"responseSchema,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
	} `json:"usageMetadata"`
	ModelVersion string `json:"modelVersion"`
}

type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Complete issues one generateContent call.
func (c *GeminiClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	body := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: req.Prompt}}},
		},
	}
	if req.System != "" {
		body.SystemInstruction = &geminiInstruction{Parts: []geminiPart{{Text: req.System}}}
	}
	genCfg := &geminiGenConfig{}
	if req.MaxOutputTokens > 0 {
		genCfg.MaxOutputTokens = req.MaxOutputTokens
	}
	if req.ResponseFormat == FormatJSONObject {
		genCfg.ResponseMIMEType = "application/json"
		genCfg.ResponseSchema = req.Schema
	}
	if genCfg.MaxOutputTokens > 0 || genCfg.ResponseMIMEType != "" {
		body.GenerationConfig = genCfg
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	callCtx := ctx
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(callCtx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		return nil, WrapTransportError(ctx, c.id, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, WrapTransportError(ctx, c.id, err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := "generateContent failed"
		var apiErr geminiErrorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		return nil, &ProviderError{
			Provider:   c.id,
			Kind:       KindFromStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Message:    msg,
		}
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ProviderError{
			Provider: c.id,
			Kind:     KindTransient,
			Message:  "unparseable generateContent response",
			Err:      err,
		}
	}
	if len(parsed.Candidates) == 0 {
		return nil, &ProviderError{
			Provider: c.id,
			Kind:     KindTransient,
			Message:  "no candidates in response",
		}
	}

	candidate := parsed.Candidates[0]
	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		text.WriteString(part.Text)
	}

	respModel := parsed.ModelVersion
	if respModel == "" {
		respModel = model
	}

	return &CompletionResponse{
		Text:         text.String(),
		FinishReason: mapGeminiFinish(candidate.FinishReason),
		Model:        respModel,
		InputTokens:  parsed.UsageMetadata.PromptTokenCount,
		OutputTokens: parsed.UsageMetadata.CandidatesTokenCount,
		LatencyMs:    latency,
	}, nil
}

func mapGeminiFinish(reason string) FinishReason {
	switch reason {
	case "MAX_TOKENS":
		return FinishLength
	case "SAFETY", "RECITATION", "PROHIBITED_CONTENT", "BLOCKLIST":
		return FinishContentFilter
	default:
		return FinishStop
	}
}
