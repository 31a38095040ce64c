// Package weibo retrieves account feeds from Weibo through the structured
// mobile API or a markup scrape of the lite site.
package weibo

import (
	"context"
	"net/http"

	"weibo_push/internal/domain"
)

// Source fetches the latest raw posts of one account.
type Source interface {
	Name() string
	FetchFeed(ctx context.Context, accountID string, count int) ([]domain.RawPost, error)
}

// Credentials supplies the session cookie sent upstream.
type Credentials interface {
	Cookie() string
}

// StaticCredentials is a fixed cookie string.
type StaticCredentials string

func (c StaticCredentials) Cookie() string {
	return string(c)
}

const (
	StrategyAPI    = "api"
	StrategyMarkup = "markup"
	StrategyAuto   = "auto"

	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36"
)

func setHeaders(req *http.Request, accept, referer, userAgent string, creds Credentials) {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", accept)
	if referer != "" {
		req.Header.Set("Referer", referer)
	}
	if creds != nil {
		if cookie := creds.Cookie(); cookie != "" {
			req.Header.Set("Cookie", cookie)
		}
	}
}
