package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends RecordCreatedEvents to a durable queue. Each call dials
// its own connection and closes it before returning.
type Publisher struct {
	url   string
	queue string
	log   *slog.Logger
}

func NewPublisher(url, queue string, log *slog.Logger) *Publisher {
	if log == nil {
		log = slog.Default()
	}
	return &Publisher{url: url, queue: queue, log: log}
}

// Publish marshals ev and publishes it as a persistent message. Errors are
// logged and returned; callers decide whether to ignore them.
func (p *Publisher) Publish(ctx context.Context, ev RecordCreatedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		p.log.Error("marshal event failed", "entity", ev.Entity, "error", err)
		return err
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("rabbitmq dial failed", "error", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("rabbitmq channel open failed", "error", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		p.log.Warn("rabbitmq queue declare failed", "queue", p.queue, "error", err)
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         "record.created",
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		p.log.Warn("rabbitmq publish failed", "queue", p.queue, "error", err)
		return err
	}

	p.log.Debug("event published", "entity", ev.Entity, "id", ev.ID)
	return nil
}
