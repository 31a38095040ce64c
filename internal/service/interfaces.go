package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"weibo_push/internal/domain"
)

type Source interface {
	Name() string
	FetchFeed(ctx context.Context, accountID string, count int) ([]domain.RawPost, error)
}

type Normalizer interface {
	Normalize(raw domain.RawPost, accountID string, fetchedAt time.Time) (domain.Post, []string)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, accountID string, posts []domain.Post) domain.DispatchOutcome
}

type Watermarks interface {
	FilterNew(destinationID, accountID string, posts []domain.Post) []domain.Post
}

type Directory interface {
	Accounts() []string
	Destinations() []string
	Subscribers(accountID string) []domain.Subscription
	Subscription(destinationID, accountID string) (domain.Subscription, bool)
	Subscriptions(destinationID string) []domain.Subscription
	Blacklist(destinationID string) []domain.BlacklistEntry
	IsBlacklisted(destinationID, accountID string) bool
	PushEnabled(destinationID string) bool
	Follow(ctx context.Context, destinationID, accountID, displayName string, seed domain.Watermark) (domain.Subscription, error)
	FollowAll(ctx context.Context, destinationIDs []string, accountID, displayName string, seed domain.Watermark) []domain.BulkResult
	Unfollow(ctx context.Context, destinationID, accountID string) (domain.Subscription, error)
	UnfollowAll(ctx context.Context, accountID string) ([]string, error)
	SetPushEnabled(ctx context.Context, destinationID string, enabled bool) error
	AddBlacklist(ctx context.Context, scope, accountID string) ([]string, error)
	RemoveBlacklist(ctx context.Context, scope, accountID string) error
}

type UserLookup interface {
	FetchUser(ctx context.Context, accountID string) (domain.Account, error)
}

type CredentialProber interface {
	ProbeCredentials(ctx context.Context, cookie string, accountID string) error
}

type NameCache interface {
	Name(accountID string) (string, bool)
	SetName(accountID, name string) error
}

type CredentialStore interface {
	SaveCredentials(cookie string) error
}

type CredentialSetter interface {
	Set(cookie string)
}

type SyncTrigger interface {
	Trigger() bool
}
