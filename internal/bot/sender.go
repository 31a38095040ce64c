package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"weibo_push/internal/domain"
)

// Sender delivers messages to Telegram chats. Segments are sent in order:
// text as messages, images as photos.
type Sender struct {
	api API
}

func NewSender(api API) *Sender {
	return &Sender{api: api}
}

func (s *Sender) Send(ctx context.Context, msg domain.Message) error {
	chatID := ChatID(msg.DestinationID)

	for _, seg := range msg.Segments {
		var err error
		switch seg.Kind {
		case domain.SegmentImage:
			_, err = s.api.SendPhoto(ctx, &tgbot.SendPhotoParams{
				ChatID: chatID,
				Photo:  &models.InputFileString{Data: seg.Value},
			})
		default:
			text := strings.TrimSpace(seg.Value)
			if text == "" {
				continue
			}
			_, err = s.api.SendMessage(ctx, &tgbot.SendMessageParams{
				ChatID: chatID,
				Text:   text,
			})
		}
		if err != nil {
			return fmt.Errorf("send %s to %s: %w", seg.Kind, msg.DestinationID, err)
		}
	}
	return nil
}

// ChatID converts a destination id into a Telegram chat id: numeric ids
// become int64, anything else (such as @channel) stays a string.
func ChatID(destinationID string) any {
	if id, err := strconv.ParseInt(destinationID, 10, 64); err == nil {
		return id
	}
	return destinationID
}
