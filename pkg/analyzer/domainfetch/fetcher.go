// Package domainfetch retrieves brand-domain reference content for citation
// scoring. Fetches are bounded by a short timeout and a small shared
// connection pool, and both hits and failures are cached per host so one
// slow or dead domain costs an audit a single attempt, not one per response.
package domainfetch

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	// DefaultTimeout caps a single fetch attempt.
	DefaultTimeout = 5 * time.Second

	// maxConns bounds the shared client's connection pool.
	maxConns = 16

	// maxBodyBytes caps how much of a page is kept as reference corpus.
	maxBodyBytes = 1 << 20

	// cacheTTL is how long hits and failures are served from cache.
	// Expired entries are cleaned up lazily on lookup.
	cacheTTL = 15 * time.Minute
)

// entry holds one cached outcome. ok=false entries are cached failures.
type entry struct {
	content   string
	ok        bool
	fetchedAt time.Time
}

// Fetcher is a process-wide, per-host-cached domain fetcher. Last writer
// wins on concurrent stores; concurrent fetches for the same host collapse
// into one request.
type Fetcher struct {
	httpClient *http.Client
	timeout    time.Duration
	scheme     string

	mu      sync.RWMutex
	entries map[string]*entry

	group singleflight.Group
}

// NewFetcher creates a Fetcher. A non-positive timeout falls back to
// DefaultTimeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        maxConns,
				MaxConnsPerHost:     maxConns,
				MaxIdleConnsPerHost: maxConns,
			},
		},
		timeout: timeout,
		scheme:  "https",
		entries: make(map[string]*entry),
	}
}

// Fetch returns the reference corpus for a domain. The bool reports whether
// a corpus is available; cached failures return ("", false) without a
// network round trip.
func (f *Fetcher) Fetch(ctx context.Context, domain string) (string, bool) {
	host := NormalizeHost(domain)
	if host == "" {
		return "", false
	}

	if e := f.lookup(host); e != nil {
		return e.content, e.ok
	}

	v, _, _ := f.group.Do(host, func() (any, error) {
		// Re-check: a racer may have stored between lookup and Do.
		if e := f.lookup(host); e != nil {
			return e, nil
		}
		e := f.fetch(ctx, host)
		f.store(host, e)
		return e, nil
	})
	e := v.(*entry)
	return e.content, e.ok
}

// Warm starts a background fetch for a domain so a later Fetch is served
// from cache. Concurrent warms and fetches for the same host collapse into
// one request via the singleflight group.
func (f *Fetcher) Warm(ctx context.Context, domain string) {
	if NormalizeHost(domain) == "" {
		return
	}
	go f.Fetch(context.WithoutCancel(ctx), domain)
}

// NormalizeHost reduces a domain or URL to its bare lowercase host.
func NormalizeHost(domain string) string {
	d := strings.TrimSpace(strings.ToLower(domain))
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	if i := strings.IndexByte(d, '/'); i >= 0 {
		d = d[:i]
	}
	return d
}

func (f *Fetcher) fetch(ctx context.Context, host string) *entry {
	fetchCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, f.scheme+"://"+host+"/", nil)
	if err != nil {
		return &entry{fetchedAt: time.Now()}
	}
	req.Header.Set("User-Agent", "specular-audit/1.0")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return &entry{fetchedAt: time.Now()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &entry{fetchedAt: time.Now()}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &entry{fetchedAt: time.Now()}
	}

	return &entry{content: string(body), ok: true, fetchedAt: time.Now()}
}

// lookup returns a live cache entry or nil.
func (f *Fetcher) lookup(host string) *entry {
	f.mu.RLock()
	e, ok := f.entries[host]
	f.mu.RUnlock()

	if !ok {
		return nil
	}

	if time.Since(e.fetchedAt) > cacheTTL {
		// Expired — clean up lazily. Re-check under write lock: a
		// concurrent store may have replaced the entry with a fresh one.
		f.mu.Lock()
		if current, ok := f.entries[host]; ok && time.Since(current.fetchedAt) > cacheTTL {
			delete(f.entries, host)
		}
		f.mu.Unlock()
		return nil
	}

	return e
}

func (f *Fetcher) store(host string, e *entry) {
	f.mu.Lock()
	f.entries[host] = e
	f.mu.Unlock()
}

// OverrideForTest replaces the HTTP client and URL scheme. For testing only.
func (f *Fetcher) OverrideForTest(httpClient *http.Client, scheme string) {
	f.httpClient = httpClient
	f.scheme = scheme
}
