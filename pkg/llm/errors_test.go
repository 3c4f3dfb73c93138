package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindFromStatus(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorKind
	}{
		{429, KindTransient},
		{500, KindTransient},
		{502, KindTransient},
		{503, KindTransient},
		{401, KindQuota},
		{402, KindQuota},
		{403, KindQuota},
		{400, KindPermanent},
		{404, KindPermanent},
		{422, KindPermanent},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KindFromStatus(tt.status), "status %d", tt.status)
	}
}

func TestProviderErrorWrapping(t *testing.T) {
	cause := errors.New("connection reset")
	err := &ProviderError{
		Provider:   "openai",
		Kind:       KindTransient,
		StatusCode: 503,
		Message:    "chat completion failed",
		Err:        cause,
	}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "openai")
	assert.Contains(t, err.Error(), "transient")
	assert.Contains(t, err.Error(), "503")

	wrapped := fmt.Errorf("cell failed: %w", err)
	var pe *ProviderError
	require.True(t, errors.As(wrapped, &pe))
	assert.Equal(t, KindTransient, pe.Kind)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindQuota, KindOf(&ProviderError{Kind: KindQuota}))
	assert.Equal(t, KindPermanent,
		KindOf(fmt.Errorf("wrapped: %w", &ProviderError{Kind: KindPermanent})))
	// Unknown failures default to transient so retry policy can handle them
	assert.Equal(t, KindTransient, KindOf(errors.New("mystery")))
}

func TestWrapTransportErrorPassesThroughCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WrapTransportError(ctx, "google", errors.New("post failed"))
	assert.ErrorIs(t, err, context.Canceled)

	var pe *ProviderError
	assert.False(t, errors.As(err, &pe))
}

func TestWrapTransportErrorTimeout(t *testing.T) {
	err := WrapTransportError(context.Background(), "google", context.DeadlineExceeded)

	var pe *ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, KindTransient, pe.Kind)
	assert.Equal(t, "google", pe.Provider)
}
