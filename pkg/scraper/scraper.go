package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL   = "https://ru.wiktionary.org/api/rest_v1/page/html"
	DefaultUserAgent = "DictionaryBot/1.0"
	DefaultTimeout   = 10 * time.Second
)

var ErrInvalidEncoding = errors.New("decode body: invalid UTF-8")

// StatusError reports any non-200 upstream status, 404 included.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("received status code %d for URL: %s", e.StatusCode, e.URL)
}

type ScraperConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 disables limiting
	Logger    *slog.Logger
}

type Scraper struct {
	config  ScraperConfig
	client  *http.Client
	limiter *rate.Limiter
	log     *slog.Logger
}

func NewWithConfig(config ScraperConfig) (*Scraper, error) {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if config.RateLimit < 0 {
		return nil, fmt.Errorf("rate limit must not be negative: %v", config.RateLimit)
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	if _, err := url.ParseRequestURI(config.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	limit := rate.Inf
	if config.RateLimit > 0 {
		limit = rate.Limit(config.RateLimit)
	}

	return &Scraper{
		config: config,
		client: &http.Client{
			Timeout: config.Timeout,
		},
		limiter: rate.NewLimiter(limit, 1),
		log:     config.Logger.With("component", "scraper"),
	}, nil
}

func New() *Scraper {
	s, _ := NewWithConfig(ScraperConfig{})
	return s
}

// PageURL is the address of the rendered page for word.
func (s *Scraper) PageURL(word string) string {
	return s.config.BaseURL + "/" + url.PathEscape(word)
}

// Fetch downloads the rendered page for word. A single attempt is made and it
// is bounded by the configured timeout.
func (s *Scraper) Fetch(ctx context.Context, word string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	pageURL := s.PageURL(word)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", s.config.UserAgent)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		s.log.ErrorContext(ctx, "fetch failed", slog.String("word", word), slog.String("error", err.Error()))
		return "", err
	}
	defer resp.Body.Close()

	s.log.DebugContext(ctx, "fetched page",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode, URL: pageURL}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if !utf8.Valid(body) {
		return "", ErrInvalidEncoding
	}

	return string(body), nil
}
