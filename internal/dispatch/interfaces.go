package dispatch

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"weibo_push/internal/domain"
)

// Sender delivers a rendered message to its destination.
type Sender interface {
	Send(ctx context.Context, msg domain.Message) error
}

// NameResolver returns a cached display name for an account.
type NameResolver interface {
	Name(accountID string) (string, bool)
}

type Directory interface {
	Subscribers(accountID string) []domain.Subscription
}

type Watermarks interface {
	IsNew(destinationID string, post domain.Post) bool
	Advance(ctx context.Context, destinationID string, post domain.Post) (bool, error)
}
