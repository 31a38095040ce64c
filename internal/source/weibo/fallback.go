package weibo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"weibo_push/internal/domain"
)

// FallbackSource tries the primary strategy and falls back to the secondary
// when the primary is unavailable.
type FallbackSource struct {
	primary  Source
	fallback Source
	logger   *slog.Logger
}

func NewFallbackSource(primary, fallback Source, logger *slog.Logger) *FallbackSource {
	return &FallbackSource{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (s *FallbackSource) Name() string {
	return s.primary.Name() + "+" + s.fallback.Name()
}

func (s *FallbackSource) FetchFeed(ctx context.Context, accountID string, count int) ([]domain.RawPost, error) {
	posts, err := s.primary.FetchFeed(ctx, accountID, count)
	if err == nil {
		return posts, nil
	}
	if ctx.Err() != nil || !errors.Is(err, domain.ErrUpstreamUnavailable) {
		return nil, err
	}

	s.logger.Info("primary strategy unavailable, using fallback",
		"account_id", accountID,
		"primary", s.primary.Name(),
		"fallback", s.fallback.Name(),
		"class", FailureClass(err),
	)

	posts, fbErr := s.fallback.FetchFeed(ctx, accountID, count)
	if fbErr != nil {
		return nil, fmt.Errorf("%w; fallback: %w", err, fbErr)
	}
	return posts, nil
}

// Select builds the Source for a configured strategy.
func Select(strategy string, api, markup Source, logger *slog.Logger) (Source, error) {
	switch strategy {
	case StrategyAPI:
		return api, nil
	case StrategyMarkup:
		return markup, nil
	case StrategyAuto, "":
		return NewFallbackSource(api, markup, logger), nil
	default:
		return nil, fmt.Errorf("unknown fetch strategy %q", strategy)
	}
}
