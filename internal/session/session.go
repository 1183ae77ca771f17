// Package session acquires and caches the SID the Yandex editor APIs require
// on every call. The SID is scraped from the editor page, which must be
// fetched through real browser emulation because the page is captcha-gated
// for plain HTTP clients. Acquired SIDs are cached on disk with a TTL so one
// scrape serves many API calls across processes.
package session

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"
)

// PageURL is the editor page the SID is scraped from.
const PageURL = "https://translate.yandex.ru/editor?srv=tr-editor"

// DefaultTTL is how long a scraped SID stays valid.
const DefaultTTL = 12 * time.Hour

// ErrNoSID means the page loaded but carried no SID, which usually means the
// request was served a captcha instead of the editor.
var ErrNoSID = errors.New("session: SID not found on the editor page")

// sidPattern matches the obfuscated SID embedded in the page source.
var sidPattern = regexp.MustCompile(`"SID":"([a-z0-9.]+)"`)

// PageFetcher retrieves a page's rendered HTML. Implemented by the rod-based
// BrowserFetcher; tests substitute a stub.
type PageFetcher interface {
	FetchHTML(ctx context.Context, url string) (string, error)
	Close() error
}

// Provider supplies a valid SID for API calls.
type Provider interface {
	SID(ctx context.Context) (string, error)
}

// CachedProvider scrapes SIDs through a PageFetcher and serves them from a
// file cache until they expire. Safe for concurrent use within one process;
// concurrent processes each write the cache file atomically, so the last
// writer wins with a complete record.
type CachedProvider struct {
	mu      sync.Mutex
	fetcher PageFetcher
	cache   *FileCache
	ttl     time.Duration
	pageURL string
}

// NewProvider creates a provider reading and refreshing the given cache.
func NewProvider(fetcher PageFetcher, cache *FileCache) *CachedProvider {
	return &CachedProvider{
		fetcher: fetcher,
		cache:   cache,
		ttl:     DefaultTTL,
		pageURL: PageURL,
	}
}

// SID returns a cached SID if one is still fresh, otherwise scrapes the
// editor page for a new one and caches it.
func (p *CachedProvider) SID(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if sid, ok := p.cache.Load(p.ttl); ok {
		return sid, nil
	}

	html, err := p.fetcher.FetchHTML(ctx, p.pageURL)
	if err != nil {
		return "", fmt.Errorf("session: fetching editor page: %w", err)
	}

	m := sidPattern.FindStringSubmatch(html)
	if m == nil {
		return "", ErrNoSID
	}

	sid := decodeSID(m[1])

	// Best effort: a failed cache write only costs a re-scrape next time.
	_ = p.cache.Store(sid)

	return sid, nil
}

// decodeSID undoes the page's obfuscation: each dot-separated segment is
// stored reversed.
func decodeSID(raw string) string {
	if raw == "" {
		return ""
	}
	parts := strings.Split(raw, ".")
	for i, part := range parts {
		parts[i] = reverse(part)
	}
	return strings.Join(parts, ".")
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
