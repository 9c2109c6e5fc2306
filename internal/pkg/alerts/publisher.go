package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/caredesk/homecare-backend-go/internal/domain/planning"
	amqp "github.com/rabbitmq/amqp091-go"
)

// UnresolvedServiceAlert is the queue message produced when a festive-day
// service could not be covered. The alerts worker consumes it and mails the
// coordinator.
type UnresolvedServiceAlert struct {
	ClientID   string                       `json:"client_id"`
	ClientName string                       `json:"client_name"`
	Year       int                          `json:"year"`
	Month      int                          `json:"month"`
	Unresolved []planning.UnresolvedService `json:"unresolved"`
}

type Publisher interface {
	PublishUnresolved(ctx context.Context, alert UnresolvedServiceAlert) error
}

type amqpPublisher struct {
	channel        *amqp.Channel
	queue          string
	publishTimeout time.Duration
}

// NewAMQPPublisher declares the alert queue and returns a publisher bound to
// it. The queue is durable so alerts survive a broker restart.
func NewAMQPPublisher(channel *amqp.Channel, queue string, publishTimeout time.Duration) (Publisher, error) {
	_, err := channel.QueueDeclare(
		queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("declare queue %q: %w", queue, err)
	}

	return &amqpPublisher{
		channel:        channel,
		queue:          queue,
		publishTimeout: publishTimeout,
	}, nil
}

// PublishUnresolved implements Publisher.
func (p *amqpPublisher) PublishUnresolved(ctx context.Context, alert UnresolvedServiceAlert) error {
	body, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("marshal alert: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		"",
		p.queue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish alert: %w", err)
	}
	return nil
}
