package yaedit

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"yaedit/internal/backoff"
	"yaedit/internal/session"
)

// defaultHTTPTimeout bounds a single API call.
const defaultHTTPTimeout = 60 * time.Second

// Service drives whole texts through the remote editor: split into
// markup-safe chunks, transform each chunk with retries, join the results.
type Service struct {
	cfg    serviceConfig
	client transformClient
	closer io.Closer // owned browser fetcher, if any
}

type serviceConfig struct {
	maxRetries  int
	chunkLength int
	policy      backoff.Policy
	logger      *slog.Logger
	httpClient  *http.Client
	sessions    session.Provider
}

// Option customizes a Service.
type Option func(*Service)

// WithMaxRetries sets the per-chunk attempt limit (default 3).
func WithMaxRetries(n int) Option {
	return func(s *Service) { s.cfg.maxRetries = n }
}

// WithChunkLength sets the split ceiling in runes (default 10000).
func WithChunkLength(n int) Option {
	return func(s *Service) { s.cfg.chunkLength = n }
}

// WithLogger routes retry warnings and exhaustion errors to l.
// Without it the service is silent.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.cfg.logger = l }
}

// WithBackoffPolicy replaces the default retry delay schedule.
func WithBackoffPolicy(p backoff.Policy) Option {
	return func(s *Service) { s.cfg.policy = p }
}

// WithHTTPClient replaces the HTTP client used for API calls.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Service) { s.cfg.httpClient = c }
}

// WithSessionProvider replaces SID acquisition, e.g. with a fixed SID or a
// provider that shares a browser with other components.
func WithSessionProvider(p session.Provider) Option {
	return func(s *Service) { s.cfg.sessions = p }
}

// withClient injects a transformClient directly; used by tests.
func withClient(c transformClient) Option {
	return func(s *Service) { s.client = c }
}

// New creates a Service with default configuration. Unless a session
// provider is injected, the service owns a lazily-launched headless browser
// for SID acquisition; call Close to release it.
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			maxRetries:  DefaultMaxRetries,
			chunkLength: DefaultChunkLength,
			policy:      backoff.Default(),
			logger:      discardLogger(),
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		sessions := s.cfg.sessions
		if sessions == nil {
			fetcher := session.NewBrowserFetcher(0)
			s.closer = fetcher
			sessions = session.NewProvider(fetcher, session.NewFileCache(session.DefaultCachePath()))
		}
		httpClient := s.cfg.httpClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: defaultHTTPTimeout}
		}
		s.client = newYandexClient(httpClient, sessions)
	}

	return s
}

// Close releases the browser owned by the service, if any.
func (s *Service) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

// Translate translates text between Russian and English via the translator
// endpoint, chunk by chunk. The direction is detected per chunk from its
// dominant script.
func (s *Service) Translate(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", ErrEmptyText
	}
	return s.process(ctx, text, s.client.Translate)
}

// Transform applies an editor action (correction, rephrasing, style change)
// to text, chunk by chunk.
func (s *Service) Transform(ctx context.Context, text string, action Action) (string, error) {
	if text == "" {
		return "", ErrEmptyText
	}
	if err := action.Validate(); err != nil {
		return "", err
	}
	return s.process(ctx, text, func(ctx context.Context, chunk string) (string, error) {
		return s.client.EditorTransform(ctx, chunk, action)
	})
}

func (s *Service) process(ctx context.Context, text string, transform TransformFunc) (string, error) {
	chunks := Split(text, s.cfg.chunkLength)
	return runBatch(ctx, chunks, transform, s.cfg.maxRetries, s.cfg.policy, s.cfg.logger)
}
