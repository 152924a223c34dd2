//go:build unit

package broker_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tickit/internal/infra"
	"tickit/internal/infra/broker"
	"tickit/internal/usecase/commands"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	declared   []string
	published  []amqp.Publishing
	keys       []string
	publishErr error
	closed     bool
}

func (c *fakeChannel) QueueDeclare(name string, durable, _, _, _ bool, _ amqp.Table) (amqp.Queue, error) {
	if !durable {
		return amqp.Queue{}, errors.New("queue must be durable")
	}
	c.declared = append(c.declared, name)
	return amqp.Queue{Name: name}, nil
}

func (c *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	if c.publishErr != nil {
		return c.publishErr
	}
	c.keys = append(c.keys, key)
	c.published = append(c.published, msg)
	return nil
}

func (c *fakeChannel) IsClosed() bool { return c.closed }

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func sampleEvent() commands.BookingConfirmedEvent {
	return commands.BookingConfirmedEvent{
		EventID:       uuid.MustParse("6f1c2b1e-3c1d-4c55-9a55-0d6a2f0f4e11"),
		OccurredAt:    time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
		BookingID:     7,
		SiteID:        1,
		SiteName:      "Chichen Itza",
		CustomerEmail: "ada@example.com",
		VisitDate:     "2026-11-20",
		TimeSlot:      "9:00 AM - 11:00 AM",
		Tickets:       3,
		TotalAmount:   "155.00",
	}
}

func TestPublisher(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes persistent json to the queue", func(t *testing.T) {
		ch := &fakeChannel{}
		dials := 0
		p := broker.NewPublisherWith("booking.confirmed", func() (broker.Channel, func() error, error) {
			dials++
			return ch, nil, nil
		})

		require.NoError(t, p.PublishBookingConfirmed(ctx, sampleEvent()))
		require.NoError(t, p.PublishBookingConfirmed(ctx, sampleEvent()))

		assert.Equal(t, 1, dials)
		assert.Equal(t, []string{"booking.confirmed"}, ch.declared)
		assert.Equal(t, []string{"booking.confirmed", "booking.confirmed"}, ch.keys)
		msg := ch.published[0]
		assert.Equal(t, "application/json", msg.ContentType)
		assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
		assert.Equal(t, "6f1c2b1e-3c1d-4c55-9a55-0d6a2f0f4e11", msg.MessageId)

		var body map[string]any
		require.NoError(t, json.Unmarshal(msg.Body, &body))
		assert.Equal(t, "155.00", body["totalAmount"])
		assert.EqualValues(t, 7, body["bookingId"])
		assert.Equal(t, "9:00 AM - 11:00 AM", body["timeSlot"])
	})

	t.Run("dial failure is unavailable", func(t *testing.T) {
		p := broker.NewPublisherWith("q", func() (broker.Channel, func() error, error) {
			return nil, nil, errors.New("connection refused")
		})

		err := p.PublishBookingConfirmed(ctx, sampleEvent())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUnavailable))
	})

	t.Run("redials after a failed publish", func(t *testing.T) {
		first := &fakeChannel{publishErr: errors.New("channel closed")}
		second := &fakeChannel{}
		channels := []*fakeChannel{first, second}
		connCloses := 0
		p := broker.NewPublisherWith("q", func() (broker.Channel, func() error, error) {
			ch := channels[0]
			channels = channels[1:]
			return ch, func() error { connCloses++; return nil }, nil
		})

		require.Error(t, p.PublishBookingConfirmed(ctx, sampleEvent()))
		assert.True(t, first.closed)
		assert.Equal(t, 1, connCloses)

		require.NoError(t, p.PublishBookingConfirmed(ctx, sampleEvent()))
		assert.Len(t, second.published, 1)
		require.NoError(t, p.Close())
		assert.True(t, second.closed)
	})
}

func TestLogPublisher(t *testing.T) {
	assert.NoError(t, broker.NewLogPublisher().PublishBookingConfirmed(context.Background(), sampleEvent()))
}
