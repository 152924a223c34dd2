// Package broker publishes booking events to RabbitMQ.
package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"tickit/internal/infra"
	"tickit/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

type opener func() (Channel, func() error, error)

// Publisher dials lazily and reuses one channel until the broker closes it.
type Publisher struct {
	queue string
	open  opener

	mu        sync.Mutex
	ch        Channel
	closeConn func() error
}

func NewPublisher(url, queue string) *Publisher {
	return newPublisher(queue, func() (Channel, func() error, error) {
		conn, err := amqp.Dial(url)
		if err != nil {
			return nil, nil, err
		}
		ch, err := conn.Channel()
		if err != nil {
			_ = conn.Close()
			return nil, nil, err
		}
		return ch, conn.Close, nil
	})
}

func newPublisher(queue string, open opener) *Publisher {
	return &Publisher{queue: queue, open: open}
}

func (p *Publisher) PublishBookingConfirmed(ctx context.Context, evt commands.BookingConfirmedEvent) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking event", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    evt.EventID.String(),
		Timestamp:    evt.OccurredAt,
		Type:         "booking.confirmed",
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		p.reset()
		return infra.WrapRepoErr("failed to publish booking event", err, infra.KindUnavailable)
	}
	return nil
}

// channel must be called with mu held.
func (p *Publisher) channel() (Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	ch, closeConn, err := p.open()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to connect to broker", err, infra.KindUnavailable)
	}
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		if closeConn != nil {
			_ = closeConn()
		}
		return nil, infra.WrapRepoErr("failed to declare queue", err, infra.KindUnavailable)
	}
	p.ch, p.closeConn = ch, closeConn
	return ch, nil
}

func (p *Publisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.closeConn != nil {
		_ = p.closeConn()
	}
	p.ch, p.closeConn = nil, nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}

// LogPublisher stands in when events are disabled.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher { return &LogPublisher{} }

func (LogPublisher) PublishBookingConfirmed(_ context.Context, evt commands.BookingConfirmedEvent) error {
	slog.Info("Booking confirmed",
		"event_id", evt.EventID.String(),
		"booking_id", evt.BookingID,
		"site_id", evt.SiteID,
		"visit_date", evt.VisitDate,
		"time_slot", evt.TimeSlot,
	)
	return nil
}
