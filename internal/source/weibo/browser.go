package weibo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// BrowserLoader renders pages in a headless Chromium instance.
type BrowserLoader struct {
	browser *rod.Browser
	timeout time.Duration
	logger  *slog.Logger
}

func NewBrowserLoader(timeout time.Duration, logger *slog.Logger) (*BrowserLoader, error) {
	path, exists := launcher.LookPath()
	if !exists {
		return nil, errors.New("browser executable not found")
	}

	u, err := launcher.New().Bin(path).Headless(true).Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to browser: %w", err)
	}

	return &BrowserLoader{
		browser: browser,
		timeout: timeout,
		logger:  logger.With("loader", "browser"),
	}, nil
}

func (l *BrowserLoader) Load(ctx context.Context, url string, creds Credentials) (html string, err error) {
	page, err := l.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fetchErr(ClassTransport, "create page: %w", err)
	}
	defer func() {
		if closeErr := page.Close(); closeErr != nil {
			l.logger.Warn("failed to close page", "error", closeErr)
		}
	}()

	pageCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()
	page = page.Context(pageCtx)

	if creds != nil && creds.Cookie() != "" {
		cleanup, err := page.SetExtraHeaders([]string{"Cookie", creds.Cookie()})
		if err != nil {
			return "", fetchErr(ClassTransport, "set headers: %w", err)
		}
		defer cleanup()
	}

	if err := page.Navigate(url); err != nil {
		return "", fetchErr(ClassTransport, "navigate: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fetchErr(ClassTransport, "wait load: %w", err)
	}

	html, err = page.HTML()
	if err != nil {
		return "", fetchErr(ClassTransport, "read page: %w", err)
	}
	return html, nil
}

func (l *BrowserLoader) Close() error {
	return l.browser.Close()
}
