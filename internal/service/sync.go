package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"weibo_push/internal/domain"
)

type SyncConfig struct {
	// FeedCount is how many recent posts are fetched per account.
	FeedCount   int
	Concurrency int
}

type SyncService struct {
	source     Source
	normalizer Normalizer
	dir        Directory
	watermarks Watermarks
	dispatcher Dispatcher
	logger     *slog.Logger
	config     SyncConfig
	now        func() time.Time
}

func NewSyncService(
	source Source,
	normalizer Normalizer,
	dir Directory,
	watermarks Watermarks,
	dispatcher Dispatcher,
	logger *slog.Logger,
	cfg SyncConfig,
) *SyncService {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &SyncService{
		source:     source,
		normalizer: normalizer,
		dir:        dir,
		watermarks: watermarks,
		dispatcher: dispatcher,
		logger:     logger.With("source", source.Name()),
		config:     cfg,
		now:        time.Now,
	}
}

// Sync runs one cycle over every followed account. Failing accounts are
// logged and skipped; the cycle itself only fails when ctx ends.
func (s *SyncService) Sync(ctx context.Context) (*domain.SyncStats, error) {
	startTime := s.now()
	stats := &domain.SyncStats{CycleID: uuid.NewString()}
	logger := s.logger.With("cycle_id", stats.CycleID)

	accounts := s.dir.Accounts()
	stats.Accounts = len(accounts)
	logger.Info("starting sync", "accounts", len(accounts), "concurrency", s.config.Concurrency)

	var (
		mu                sync.Mutex
		credentialsLogged bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Concurrency)

	for _, accountID := range accounts {
		accountID := accountID
		g.Go(func() error {
			res, err := s.syncAccount(gctx, logger.With("account_id", accountID), accountID)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				stats.SkippedAccounts++
				if errors.Is(err, domain.ErrCredentialInvalid) && !credentialsLogged {
					credentialsLogged = true
					logger.Error("upstream rejected credentials, update them with /cookie", "error", err)
				}
				return nil
			}
			stats.Fetched += res.fetched
			stats.New += res.fresh
			stats.Delivered += res.outcome.Delivered
			stats.Failed += res.outcome.Failed
			return nil
		})
	}
	_ = g.Wait()

	stats.Duration = s.now().Sub(startTime)

	logger.Info("sync completed",
		"accounts", stats.Accounts,
		"skipped_accounts", stats.SkippedAccounts,
		"fetched", stats.Fetched,
		"new", stats.New,
		"delivered", stats.Delivered,
		"failed", stats.Failed,
		"duration", stats.Duration,
	)

	if err := ctx.Err(); err != nil {
		return stats, fmt.Errorf("sync interrupted: %w", err)
	}
	return stats, nil
}

type accountResult struct {
	fetched int
	fresh   int
	outcome domain.DispatchOutcome
}

func (s *SyncService) syncAccount(ctx context.Context, logger *slog.Logger, accountID string) (accountResult, error) {
	var res accountResult

	fetchedAt := s.now()
	raw, err := s.source.FetchFeed(ctx, accountID, s.config.FeedCount)
	if err != nil {
		logger.Warn("fetch failed, skipping account", "error", err)
		return res, fmt.Errorf("fetch feed %s: %w", accountID, err)
	}
	res.fetched = len(raw)

	posts := make([]domain.Post, 0, len(raw))
	for _, r := range raw {
		post, anomalies := s.normalizer.Normalize(r, accountID, fetchedAt)
		for _, a := range anomalies {
			logger.Warn("normalization anomaly", "post_id", r.ID, "strategy", r.Strategy, "anomaly", a)
		}
		posts = append(posts, post)
	}

	fresh := s.freshPosts(accountID, posts)
	res.fresh = len(fresh)
	if len(fresh) == 0 {
		logger.Debug("no new posts", "fetched", len(posts))
		return res, nil
	}

	logger.Info("new posts", "count", len(fresh))
	res.outcome = s.dispatcher.Dispatch(ctx, accountID, fresh)
	return res, nil
}

// freshPosts keeps the posts that at least one subscriber has not seen.
func (s *SyncService) freshPosts(accountID string, posts []domain.Post) []domain.Post {
	seen := make(map[string]struct{})
	var fresh []domain.Post
	for _, sub := range s.dir.Subscribers(accountID) {
		for _, p := range s.watermarks.FilterNew(sub.DestinationID, accountID, posts) {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			fresh = append(fresh, p)
		}
	}
	return fresh
}
