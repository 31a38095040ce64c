package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"weibo_push/internal/dispatch"
	"weibo_push/internal/domain"
	"weibo_push/internal/watermark"
)

type CommandConfig struct {
	// SeedCount is how many posts are fetched to seed a new subscription.
	// It is raised to FeedCount so the seed covers every post a cycle sees.
	SeedCount int
	// FeedCount is the per-account window of the sync cycle.
	FeedCount int
	// ProbeAccount is fetched to validate new credentials.
	ProbeAccount string
}

// CommandDeps groups the collaborators of CommandService.
type CommandDeps struct {
	Directory   Directory
	Source      Source
	Normalizer  Normalizer
	Users       UserLookup
	Prober      CredentialProber
	Names       NameCache
	Credentials CredentialStore
	Holder      CredentialSetter
	Trigger     SyncTrigger
}

// CommandService implements the operations exposed to chat commands.
// Permission checks are the caller's job.
type CommandService struct {
	deps   CommandDeps
	config CommandConfig
	logger *slog.Logger
	now    func() time.Time
}

func NewCommandService(deps CommandDeps, cfg CommandConfig, logger *slog.Logger) *CommandService {
	cfg.SeedCount = max(cfg.SeedCount, cfg.FeedCount, 1)
	return &CommandService{
		deps:   deps,
		config: cfg,
		logger: logger.With("component", "commands"),
		now:    time.Now,
	}
}

// Followed describes a subscription created by Follow.
type Followed struct {
	Subscription domain.Subscription
	Name         string
}

// Follow subscribes destinationID to accountID. The watermark is seeded from
// the account's current feed so the back catalog is never delivered.
func (c *CommandService) Follow(ctx context.Context, destinationID, accountID, displayName string) (Followed, error) {
	if err := validateAccountID(accountID); err != nil {
		return Followed{}, err
	}
	if c.deps.Directory.IsBlacklisted(destinationID, accountID) {
		return Followed{}, domain.ErrBlacklisted
	}
	if _, ok := c.deps.Directory.Subscription(destinationID, accountID); ok {
		return Followed{}, domain.ErrAlreadyFollowing
	}

	name := c.resolveName(ctx, accountID)
	seed := c.seed(ctx, accountID)

	sub, err := c.deps.Directory.Follow(ctx, destinationID, accountID, strings.TrimSpace(displayName), seed)
	if err != nil {
		return Followed{}, fmt.Errorf("follow %s: %w", accountID, err)
	}
	return Followed{
		Subscription: sub,
		Name:         dispatch.DisplayName(sub.DisplayName, name, accountID),
	}, nil
}

func (c *CommandService) Unfollow(ctx context.Context, destinationID, accountID string) error {
	if _, err := c.deps.Directory.Unfollow(ctx, destinationID, accountID); err != nil {
		return fmt.Errorf("unfollow %s: %w", accountID, err)
	}
	return nil
}

// FollowAll subscribes every known destination. Blacklisted destinations are
// reported individually.
func (c *CommandService) FollowAll(ctx context.Context, accountID, displayName string) ([]domain.BulkResult, error) {
	if err := validateAccountID(accountID); err != nil {
		return nil, err
	}
	dests := c.deps.Directory.Destinations()
	if len(dests) == 0 {
		return nil, nil
	}

	c.resolveName(ctx, accountID)
	seed := c.seed(ctx, accountID)

	results := c.deps.Directory.FollowAll(ctx, dests, accountID, strings.TrimSpace(displayName), seed)
	c.logger.Info("followed on all destinations", "account_id", accountID, "destinations", len(dests))
	return results, nil
}

func (c *CommandService) UnfollowAll(ctx context.Context, accountID string) ([]string, error) {
	affected, err := c.deps.Directory.UnfollowAll(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("unfollow %s everywhere: %w", accountID, err)
	}
	return affected, nil
}

func (c *CommandService) SetPushEnabled(ctx context.Context, destinationID string, enabled bool) error {
	if err := c.deps.Directory.SetPushEnabled(ctx, destinationID, enabled); err != nil {
		return fmt.Errorf("set push: %w", err)
	}
	return nil
}

// PushEnabled reports whether destinationID currently receives notifications.
func (c *CommandService) PushEnabled(destinationID string) bool {
	return c.deps.Directory.PushEnabled(destinationID)
}

// AddBlacklist blocks accountID for scope and returns the destinations whose
// subscription was removed.
func (c *CommandService) AddBlacklist(ctx context.Context, scope, accountID string) ([]string, error) {
	if err := validateAccountID(accountID); err != nil {
		return nil, err
	}
	removed, err := c.deps.Directory.AddBlacklist(ctx, scope, accountID)
	if err != nil {
		return nil, fmt.Errorf("blacklist %s: %w", accountID, err)
	}
	return removed, nil
}

func (c *CommandService) RemoveBlacklist(ctx context.Context, scope, accountID string) error {
	if err := c.deps.Directory.RemoveBlacklist(ctx, scope, accountID); err != nil {
		return fmt.Errorf("remove blacklist %s: %w", accountID, err)
	}
	return nil
}

// ListSubscriptions returns the accounts destinationID follows with their
// resolved display names.
func (c *CommandService) ListSubscriptions(destinationID string) []domain.Account {
	subs := c.deps.Directory.Subscriptions(destinationID)
	accounts := make([]domain.Account, 0, len(subs))
	for _, s := range subs {
		cached, _ := c.deps.Names.Name(s.AccountID)
		accounts = append(accounts, domain.Account{
			ID:          s.AccountID,
			DisplayName: dispatch.DisplayName(s.DisplayName, cached, s.AccountID),
		})
	}
	return accounts
}

func (c *CommandService) ListBlacklist(destinationID string) []domain.BlacklistEntry {
	return c.deps.Directory.Blacklist(destinationID)
}

// TriggerSync requests a cycle. It reports false when one is already queued.
func (c *CommandService) TriggerSync() bool {
	return c.deps.Trigger.Trigger()
}

// UpdateCredentials validates cookie with a test fetch, then persists it and
// makes it active.
func (c *CommandService) UpdateCredentials(ctx context.Context, cookie string) error {
	cookie = strings.TrimSpace(cookie)
	if cookie == "" {
		return fmt.Errorf("%w: empty cookie", domain.ErrInvalidArgument)
	}

	if err := c.deps.Prober.ProbeCredentials(ctx, cookie, c.config.ProbeAccount); err != nil {
		return fmt.Errorf("validate credentials: %w", err)
	}
	if err := c.deps.Credentials.SaveCredentials(cookie); err != nil {
		return fmt.Errorf("store credentials: %w", err)
	}
	c.deps.Holder.Set(cookie)

	c.logger.Info("credentials updated")
	return nil
}

// resolveName returns the cached name, refreshing it from upstream on a miss.
// It returns "" when neither source knows the account.
func (c *CommandService) resolveName(ctx context.Context, accountID string) string {
	if name, ok := c.deps.Names.Name(accountID); ok {
		return name
	}

	account, err := c.deps.Users.FetchUser(ctx, accountID)
	if err != nil {
		c.logger.Warn("name lookup failed", "account_id", accountID, "error", err)
		return ""
	}
	if err := c.deps.Names.SetName(accountID, account.DisplayName); err != nil {
		c.logger.Warn("failed to cache name", "account_id", accountID, "error", err)
	}
	return account.DisplayName
}

// seed returns the initial watermark. A failed fetch seeds from now.
func (c *CommandService) seed(ctx context.Context, accountID string) domain.Watermark {
	now := c.now()

	raw, err := c.deps.Source.FetchFeed(ctx, accountID, c.config.SeedCount)
	if err != nil {
		c.logger.Warn("seed fetch failed, seeding from now", "account_id", accountID, "error", err)
		return domain.Watermark{PublishedAt: now}
	}

	posts := make([]domain.Post, 0, len(raw))
	for _, r := range raw {
		p, _ := c.deps.Normalizer.Normalize(r, accountID, now)
		posts = append(posts, p)
	}
	return watermark.Seed(posts, now)
}

func validateAccountID(accountID string) error {
	if accountID == "" {
		return fmt.Errorf("%w: account id is empty", domain.ErrInvalidArgument)
	}
	for _, r := range accountID {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: account id %q is not numeric", domain.ErrInvalidArgument, accountID)
		}
	}
	return nil
}

// IsUserError reports whether err stems from the request rather than from
// the system, so callers can show it verbatim.
func IsUserError(err error) bool {
	for _, target := range []error{
		domain.ErrInvalidArgument,
		domain.ErrBlacklisted,
		domain.ErrAlreadyFollowing,
		domain.ErrNotFollowing,
		domain.ErrNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
