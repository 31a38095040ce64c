package weibo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"weibo_push/internal/domain"
)

// maxPageBytes bounds a single markup page.
const maxPageBytes = 4 << 20

// PageLoader returns the markup of one page.
type PageLoader interface {
	Load(ctx context.Context, url string, creds Credentials) (string, error)
}

// LoaderConfig configures HTTPLoader.
type LoaderConfig struct {
	Timeout     time.Duration
	MaxAttempts int
	Backoff     time.Duration
	UserAgent   string
}

// HTTPLoader fetches pages with a plain HTTP client.
type HTTPLoader struct {
	httpClient *http.Client
	userAgent  string
	retry      retryPolicy
	logger     *slog.Logger
}

func NewHTTPLoader(cfg LoaderConfig, logger *slog.Logger) *HTTPLoader {
	return &HTTPLoader{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		userAgent: cfg.UserAgent,
		retry:     retryPolicy{maxAttempts: cfg.MaxAttempts, backoff: cfg.Backoff},
		logger:    logger.With("loader", "http"),
	}
}

func (l *HTTPLoader) Load(ctx context.Context, url string, creds Credentials) (string, error) {
	var body string
	err := l.retry.do(ctx, l.logger, func() error {
		var err error
		body, err = l.doRequest(ctx, url, creds)
		return err
	})
	if err != nil {
		return "", err
	}
	return body, nil
}

func (l *HTTPLoader) doRequest(ctx context.Context, url string, creds Credentials) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	setHeaders(req, "text/html,application/xhtml+xml", "", l.userAgent, creds)

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return "", fetchErr(ClassTransport, "execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.Request != nil && strings.Contains(resp.Request.URL.Host, "passport") {
		return "", fetchErr(ClassCredential, "redirected to login: %w", domain.ErrCredentialInvalid)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fetchErr(ClassStatus, "unexpected status: %d", resp.StatusCode)
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType != "text/html" && mediaType != "application/xhtml+xml" {
		return "", fetchErr(ClassContentType, "unexpected content type %q", resp.Header.Get("Content-Type"))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", fetchErr(ClassTransport, "read body: %w", err)
	}
	return string(data), nil
}
