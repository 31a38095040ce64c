// Package bot is the Telegram surface: chat commands in, notifications out.
package bot

import (
	"context"
	"fmt"
	"log/slog"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// New creates a Telegram client. Updates that match no command are dropped.
func New(token string, logger *slog.Logger) (*tgbot.Bot, error) {
	b, err := tgbot.New(token,
		tgbot.WithDefaultHandler(func(context.Context, *tgbot.Bot, *models.Update) {}),
		tgbot.WithErrorsHandler(func(err error) {
			logger.Warn("telegram error", "component", "telegram", "error", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return b, nil
}
