package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Browser fetch errors.
var (
	ErrBrowserConnect = errors.New("session: failed to connect to browser")
	ErrPageCreate     = errors.New("session: failed to create browser page")
	ErrPageLoad       = errors.New("session: failed to load page")
)

// defaultFetchTimeout bounds a single page load.
const defaultFetchTimeout = 30 * time.Second

// BrowserFetcher loads pages in headless Chrome via go-rod. Plain HTTP
// clients get a captcha from the editor page; a real browser does not.
// Rod downloads Chromium on first run if none is found.
type BrowserFetcher struct {
	mu      sync.Mutex
	browser *rod.Browser
	timeout time.Duration
}

// Compile-time interface check.
var _ PageFetcher = (*BrowserFetcher)(nil)

// NewBrowserFetcher creates a fetcher with the given page-load timeout.
// A non-positive timeout uses the default.
func NewBrowserFetcher(timeout time.Duration) *BrowserFetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &BrowserFetcher{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
// Callers must hold f.mu.
func (f *BrowserFetcher) ensureBrowser() error {
	if f.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use a pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	f.browser = browser
	return nil
}

// FetchHTML navigates to url and returns the page HTML once loading settles.
func (f *BrowserFetcher) FetchHTML(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.ensureBrowser(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := f.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return "", context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	return html, nil
}

// Close releases browser resources.
func (f *BrowserFetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.browser != nil {
		err := f.browser.Close()
		f.browser = nil
		return err
	}
	return nil
}
