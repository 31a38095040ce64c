// Package dispatch fans new posts out to subscribed destinations.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"weibo_push/internal/domain"
	"weibo_push/internal/watermark"
)

type Dispatcher struct {
	dir        Directory
	watermarks Watermarks
	sender     Sender
	names      NameResolver
	renderer   Renderer
	pacing     time.Duration
	logger     *slog.Logger
}

func New(dir Directory, watermarks Watermarks, sender Sender, names NameResolver, pacing time.Duration, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		dir:        dir,
		watermarks: watermarks,
		sender:     sender,
		names:      names,
		pacing:     pacing,
		logger:     logger.With("component", "dispatcher"),
	}
}

// Dispatch delivers posts of one account to every eligible destination,
// oldest post first. A failing destination never blocks the others and its
// watermark still advances after the attempt.
func (d *Dispatcher) Dispatch(ctx context.Context, accountID string, posts []domain.Post) domain.DispatchOutcome {
	outcome := domain.DispatchOutcome{AccountID: accountID}
	logger := d.logger.With("account_id", accountID)

	ordered := append([]domain.Post(nil), posts...)
	watermark.SortOldestFirst(ordered)

	cached, _ := d.names.Name(accountID)
	sent := 0

	for _, post := range ordered {
		var body []domain.Segment

		for _, sub := range d.dir.Subscribers(accountID) {
			if ctx.Err() != nil {
				return outcome
			}
			if !d.watermarks.IsNew(sub.DestinationID, post) {
				continue
			}

			if !sub.PushEnabled {
				d.advance(ctx, logger, sub.DestinationID, post)
				outcome.Muted++
				continue
			}

			if sent > 0 {
				if err := d.wait(ctx); err != nil {
					return outcome
				}
			}
			if body == nil {
				body = d.renderer.Body(post)
			}

			name := DisplayName(sub.DisplayName, cached, accountID)
			msg := d.renderer.Message(sub.DestinationID, name, post, body)
			logger.Debug("sending",
				"destination_id", sub.DestinationID,
				"post_id", post.ID,
				"message", msg.String(),
			)
			err := d.sender.Send(ctx, msg)
			sent++

			result := domain.DeliveryResult{DestinationID: sub.DestinationID, PostID: post.ID}
			if err != nil {
				result.Err = fmt.Errorf("%w: %w", domain.ErrDeliveryFailure, err)
				outcome.Failed++
				logger.Warn("delivery failed",
					"destination_id", sub.DestinationID,
					"post_id", post.ID,
					"error", err,
				)
			} else {
				outcome.Delivered++
				logger.Info("delivered",
					"destination_id", sub.DestinationID,
					"post_id", post.ID,
				)
			}
			outcome.Results = append(outcome.Results, result)

			d.advance(ctx, logger, sub.DestinationID, post)
		}
	}

	return outcome
}

func (d *Dispatcher) advance(ctx context.Context, logger *slog.Logger, destinationID string, post domain.Post) {
	_, err := d.watermarks.Advance(ctx, destinationID, post)
	if err == nil {
		return
	}
	// unfollowed while the cycle was running
	if errors.Is(err, domain.ErrNotFollowing) {
		return
	}
	logger.Error("failed to advance watermark",
		"destination_id", destinationID,
		"post_id", post.ID,
		"error", err,
	)
}

func (d *Dispatcher) wait(ctx context.Context) error {
	if d.pacing <= 0 {
		return nil
	}
	t := time.NewTimer(d.pacing)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
