package weibo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"weibo_push/internal/domain"
)

// MarkupConfig holds lite-site scrape configuration.
type MarkupConfig struct {
	BaseURL   string
	MaxPages  int
	PageDelay time.Duration
}

// MarkupSource implements Source by scraping the lite HTML site.
type MarkupSource struct {
	loader    PageLoader
	baseURL   string
	maxPages  int
	pageDelay time.Duration
	creds     Credentials
	logger    *slog.Logger
}

func NewMarkupSource(cfg MarkupConfig, loader PageLoader, creds Credentials, logger *slog.Logger) *MarkupSource {
	maxPages := cfg.MaxPages
	if maxPages < 1 {
		maxPages = 1
	}
	return &MarkupSource{
		loader:    loader,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		maxPages:  maxPages,
		pageDelay: cfg.PageDelay,
		creds:     creds,
		logger:    logger.With("strategy", StrategyMarkup),
	}
}

func (s *MarkupSource) Name() string {
	return StrategyMarkup
}

// FetchFeed pages through the account until count posts are collected or the
// page ceiling is hit.
func (s *MarkupSource) FetchFeed(ctx context.Context, accountID string, count int) ([]domain.RawPost, error) {
	if count <= 0 {
		return nil, nil
	}

	var posts []domain.RawPost

	for page := 1; page <= s.maxPages && len(posts) < count; page++ {
		if page > 1 {
			select {
			case <-ctx.Done():
				return truncate(posts, count), ctx.Err()
			case <-time.After(s.pageDelay):
			}
		}

		url := fmt.Sprintf("%s/u/%s?page=%d", s.baseURL, accountID, page)
		markup, err := s.loader.Load(ctx, url, s.creds)
		if err != nil {
			if len(posts) > 0 && ctx.Err() == nil {
				s.logger.Warn("stopping pagination early",
					"account_id", accountID,
					"page", page,
					"class", FailureClass(err),
					"error", err,
				)
				break
			}
			s.logger.Warn("feed unavailable",
				"account_id", accountID,
				"class", FailureClass(err),
				"error", err,
			)
			return nil, fmt.Errorf("fetch page %d of %s: %w", page, accountID, err)
		}

		pagePosts, err := parseFeedPage(markup)
		if err != nil {
			return truncate(posts, count), fmt.Errorf("parse page %d of %s: %w: %w", page, accountID, domain.ErrMalformedContent, err)
		}

		s.logger.Debug("fetched page",
			"account_id", accountID,
			"page", page,
			"posts", len(pagePosts),
		)

		if len(pagePosts) == 0 {
			break
		}
		posts = append(posts, pagePosts...)
	}

	return truncate(posts, count), nil
}

func truncate(posts []domain.RawPost, count int) []domain.RawPost {
	if count <= 0 {
		return nil
	}
	if len(posts) > count {
		return posts[:count]
	}
	return posts
}
