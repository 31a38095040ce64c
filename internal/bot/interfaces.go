package bot

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"weibo_push/internal/domain"
	"weibo_push/internal/service"
)

// Commands is the operation surface the chat commands drive.
type Commands interface {
	Follow(ctx context.Context, destinationID, accountID, displayName string) (service.Followed, error)
	Unfollow(ctx context.Context, destinationID, accountID string) error
	FollowAll(ctx context.Context, accountID, displayName string) ([]domain.BulkResult, error)
	UnfollowAll(ctx context.Context, accountID string) ([]string, error)
	SetPushEnabled(ctx context.Context, destinationID string, enabled bool) error
	AddBlacklist(ctx context.Context, scope, accountID string) ([]string, error)
	RemoveBlacklist(ctx context.Context, scope, accountID string) error
	ListSubscriptions(destinationID string) []domain.Account
	ListBlacklist(destinationID string) []domain.BlacklistEntry
	TriggerSync() bool
	PushEnabled(destinationID string) bool
	UpdateCredentials(ctx context.Context, cookie string) error
}

// API is the part of the Telegram client used for outgoing messages.
type API interface {
	SendMessage(ctx context.Context, params *tgbot.SendMessageParams) (*models.Message, error)
	SendPhoto(ctx context.Context, params *tgbot.SendPhotoParams) (*models.Message, error)
}
