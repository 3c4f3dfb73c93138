package domainfetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testFetcher points a Fetcher at an httptest server.
func testFetcher(t *testing.T, handler http.HandlerFunc) (*Fetcher, string) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	u, err := url.Parse(server.URL)
	require.NoError(t, err)

	f := NewFetcher(2 * time.Second)
	f.OverrideForTest(server.Client(), "http")
	return f, u.Host
}

func TestNormalizeHost(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"acme.io", "acme.io"},
		{"https://acme.io", "acme.io"},
		{"http://acme.io/pricing", "acme.io"},
		{"  ACME.IO  ", "acme.io"},
		{"https://www.acme.io/a/b", "www.acme.io"},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, NormalizeHost(tc.input))
	}
}

func TestFetcher_Fetch(t *testing.T) {
	t.Run("returns page content", func(t *testing.T) {
		f, host := testFetcher(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><title>Acme Analytics</title></html>"))
		})

		content, ok := f.Fetch(context.Background(), host)
		assert.True(t, ok)
		assert.Contains(t, content, "Acme Analytics")
	})

	t.Run("caches hits", func(t *testing.T) {
		var hits atomic.Int64
		f, host := testFetcher(t, func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte("corpus"))
		})

		for i := 0; i < 3; i++ {
			content, ok := f.Fetch(context.Background(), host)
			assert.True(t, ok)
			assert.Equal(t, "corpus", content)
		}
		assert.Equal(t, int64(1), hits.Load())
	})

	t.Run("caches failures", func(t *testing.T) {
		var hits atomic.Int64
		f, host := testFetcher(t, func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		for i := 0; i < 3; i++ {
			content, ok := f.Fetch(context.Background(), host)
			assert.False(t, ok)
			assert.Empty(t, content)
		}
		assert.Equal(t, int64(1), hits.Load())
	})

	t.Run("unreachable host is a cached failure", func(t *testing.T) {
		f := NewFetcher(200 * time.Millisecond)
		f.OverrideForTest(&http.Client{}, "http")

		_, ok := f.Fetch(context.Background(), "127.0.0.1:1")
		assert.False(t, ok)

		// Second call answers from cache.
		start := time.Now()
		_, ok = f.Fetch(context.Background(), "127.0.0.1:1")
		assert.False(t, ok)
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("empty domain is a miss", func(t *testing.T) {
		f := NewFetcher(time.Second)
		_, ok := f.Fetch(context.Background(), "   ")
		assert.False(t, ok)
	})

	t.Run("concurrent fetches collapse into one request", func(t *testing.T) {
		var hits atomic.Int64
		release := make(chan struct{})
		f, host := testFetcher(t, func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			<-release
			_, _ = w.Write([]byte("corpus"))
		})

		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				content, ok := f.Fetch(context.Background(), host)
				assert.True(t, ok)
				assert.Equal(t, "corpus", content)
			}()
		}

		// Give the goroutines a moment to pile up behind the first request.
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int64(1), hits.Load())
	})

	t.Run("warm fills the cache in the background", func(t *testing.T) {
		var hits atomic.Int64
		f, host := testFetcher(t, func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte("corpus"))
		})

		f.Warm(context.Background(), host)
		require.Eventually(t, func() bool {
			return f.lookup(host) != nil
		}, 2*time.Second, 10*time.Millisecond)

		content, ok := f.Fetch(context.Background(), host)
		assert.True(t, ok)
		assert.Equal(t, "corpus", content)
		assert.Equal(t, int64(1), hits.Load())
	})

	t.Run("warm with a blank domain is a no-op", func(t *testing.T) {
		f := NewFetcher(time.Second)
		f.Warm(context.Background(), "  ")
	})

	t.Run("warm survives caller cancellation", func(t *testing.T) {
		var hits atomic.Int64
		f, host := testFetcher(t, func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte("corpus"))
		})

		ctx, cancel := context.WithCancel(context.Background())
		f.Warm(ctx, host)
		cancel()

		require.Eventually(t, func() bool {
			return f.lookup(host) != nil
		}, 2*time.Second, 10*time.Millisecond)
		_, ok := f.Fetch(context.Background(), host)
		assert.True(t, ok)
		assert.Equal(t, int64(1), hits.Load())
	})

	t.Run("slow host times out and is recorded as failure", func(t *testing.T) {
		f, host := testFetcher(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(500 * time.Millisecond)
			_, _ = w.Write([]byte("late"))
		})
		f.timeout = 50 * time.Millisecond

		_, ok := f.Fetch(context.Background(), host)
		assert.False(t, ok)
	})

	t.Run("oversized body is truncated not rejected", func(t *testing.T) {
		big := strings.Repeat("x", maxBodyBytes+4096)
		f, host := testFetcher(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(big))
		})

		content, ok := f.Fetch(context.Background(), host)
		assert.True(t, ok)
		assert.Len(t, content, maxBodyBytes)
	})
}
