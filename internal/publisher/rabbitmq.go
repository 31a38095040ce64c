// Package publisher delivers rendered notifications to a RabbitMQ exchange
// for downstream chat gateways.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"weibo_push/internal/domain"
)

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger.With("component", "rabbitmq"),
	}, nil
}

// Notification is the JSON body published for every delivery.
type Notification struct {
	MessageID     string           `json:"message_id"`
	DestinationID string           `json:"destination_id"`
	AccountID     string           `json:"account_id"`
	PostID        string           `json:"post_id"`
	Text          string           `json:"text"`
	Images        []string         `json:"images,omitempty"`
	Segments      []domain.Segment `json:"segments"`
	Timestamp     time.Time        `json:"timestamp"`
}

func newNotification(msg domain.Message, now time.Time) Notification {
	return Notification{
		MessageID:     uuid.NewString(),
		DestinationID: msg.DestinationID,
		AccountID:     msg.AccountID,
		PostID:        msg.PostID,
		Text:          msg.Text(),
		Images:        msg.Images(),
		Segments:      msg.Segments,
		Timestamp:     now.UTC(),
	}
}

// Send publishes msg. The destination travels in the body and in the
// destination_id header so consumers can route without decoding.
func (r *RabbitMQ) Send(ctx context.Context, msg domain.Message) error {
	n := newNotification(msg, time.Now())

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    n.MessageID,
			Headers:      amqp.Table{"destination_id": msg.DestinationID},
			Body:         body,
			Timestamp:    n.Timestamp,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published notification",
		"message_id", n.MessageID,
		"destination_id", msg.DestinationID,
		"post_id", msg.PostID,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
