package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, ":generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGeminiComplete(t *testing.T) {
	srv := geminiTestServer(t, http.StatusOK, `{
		"candidates": [{
			"content": {"role": "model", "parts": [{"text": "Acme is a "}, {"text": "widget maker."}]},
			"finishReason": "STOP"
		}],
		"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 7},
		"modelVersion": "gemini-2.0-flash-001"
	}`)

	client := NewGeminiClient("google", "test-key", srv.URL, "gemini-2.0-flash")
	resp, err := client.Complete(context.Background(), CompletionRequest{Prompt: "what is acme?"})

	require.NoError(t, err)
	assert.Equal(t, "Acme is a widget maker.", resp.Text)
	assert.Equal(t, FinishStop, resp.FinishReason)
	assert.Equal(t, "gemini-2.0-flash-001", resp.Model)
	assert.Equal(t, 12, resp.InputTokens)
	assert.Equal(t, 7, resp.OutputTokens)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(0))
}

func TestGeminiCompleteSendsCapAndFormat(t *testing.T) {
	var got geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{}"}]},"finishReason":"STOP"}]}`))
	}))
	defer srv.Close()

	client := NewGeminiClient("google", "k", srv.URL, "gemini-2.0-flash")
	_, err := client.Complete(context.Background(), CompletionRequest{
		Prompt:          "hi",
		System:          "be terse",
		MaxOutputTokens: 256,
		ResponseFormat:  FormatJSONObject,
	})

	require.NoError(t, err)
	require.NotNil(t, got.GenerationConfig)
	assert.Equal(t, 256, got.GenerationConfig.MaxOutputTokens)
	assert.Equal(t, "application/json", got.GenerationConfig.ResponseMIMEType)
	require.NotNil(t, got.SystemInstruction)
	assert.Equal(t, "be terse", got.SystemInstruction.Parts[0].Text)
}

func TestGeminiCompleteSendsResponseSchema(t *testing.T) {
	type reply struct {
		Score float64 `json:"score"`
	}
	var got geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{}"}]},"finishReason":"STOP"}]}`))
	}))
	defer srv.Close()

	client := NewGeminiClient("google", "k", srv.URL, "gemini-2.0-flash")
	_, err := client.Complete(context.Background(), CompletionRequest{
		Prompt:         "hi",
		ResponseFormat: FormatJSONObject,
		Schema:         GenerateSchema[reply](),
		SchemaName:     "score",
	})

	require.NoError(t, err)
	require.NotNil(t, got.GenerationConfig)
	assert.Equal(t, "application/json", got.GenerationConfig.ResponseMIMEType)
	schema, err := json.Marshal(got.GenerationConfig.ResponseSchema)
	require.NoError(t, err)
	assert.Contains(t, string(schema), `"score"`)
}

func TestGeminiCompleteOmitsCapByDefault(t *testing.T) {
	var got geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"ok"}]},"finishReason":"STOP"}]}`))
	}))
	defer srv.Close()

	client := NewGeminiClient("google", "k", srv.URL, "gemini-2.0-flash")
	_, err := client.Complete(context.Background(), CompletionRequest{Prompt: "hi"})

	require.NoError(t, err)
	assert.Nil(t, got.GenerationConfig)
}

func TestGeminiCompleteErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   ErrorKind
	}{
		{"rate limited", 429, KindTransient},
		{"server error", 503, KindTransient},
		{"bad key", 403, KindQuota},
		{"bad request", 400, KindPermanent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := geminiTestServer(t, tt.status, `{"error":{"code":1,"message":"nope","status":"X"}}`)
			client := NewGeminiClient("google", "test-key", srv.URL, "gemini-2.0-flash")

			_, err := client.Complete(context.Background(), CompletionRequest{Prompt: "q"})
			var pe *ProviderError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.want, pe.Kind)
			assert.Equal(t, tt.status, pe.StatusCode)
			assert.Equal(t, "nope", pe.Message)
		})
	}
}

func TestGeminiFinishReasonMapping(t *testing.T) {
	tests := []struct {
		reason string
		want   FinishReason
	}{
		{"STOP", FinishStop},
		{"MAX_TOKENS", FinishLength},
		{"SAFETY", FinishContentFilter},
		{"RECITATION", FinishContentFilter},
		{"OTHER", FinishStop},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mapGeminiFinish(tt.reason), "reason %s", tt.reason)
	}
}

func TestOpenAIFinishReasonMapping(t *testing.T) {
	assert.Equal(t, FinishStop, mapOpenAIFinish("stop"))
	assert.Equal(t, FinishLength, mapOpenAIFinish("length"))
	assert.Equal(t, FinishContentFilter, mapOpenAIFinish("content_filter"))
}

func TestAnthropicStopReasonMapping(t *testing.T) {
	assert.Equal(t, FinishStop, mapAnthropicStop("end_turn"))
	assert.Equal(t, FinishStop, mapAnthropicStop("stop_sequence"))
	assert.Equal(t, FinishLength, mapAnthropicStop("max_tokens"))
	assert.Equal(t, FinishContentFilter, mapAnthropicStop("refusal"))
}
