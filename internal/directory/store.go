package directory

import (
	"context"

	"weibo_push/internal/domain"
)

// Snapshot is the full persisted directory state.
type Snapshot struct {
	Destinations  []domain.Destination
	Subscriptions []domain.Subscription
	Blacklist     []domain.BlacklistEntry
}

// Store persists directory mutations.
type Store interface {
	LoadAll(ctx context.Context) (*Snapshot, error)
	UpsertDestination(ctx context.Context, d domain.Destination) error
	InsertSubscription(ctx context.Context, s domain.Subscription) error
	DeleteSubscription(ctx context.Context, destinationID, accountID string) error
	UpdateWatermark(ctx context.Context, destinationID, accountID string, w domain.Watermark) error
	InsertBlacklist(ctx context.Context, e domain.BlacklistEntry) error
	DeleteBlacklist(ctx context.Context, scope, accountID string) error
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
