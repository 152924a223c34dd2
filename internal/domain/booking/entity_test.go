//go:build unit

package booking_test

import (
	"errors"
	"testing"
	"time"

	"tickit/internal/domain/booking"
	"tickit/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Run("valid draft becomes a confirmed booking without identity", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildNew()
		require.NoError(t, err)

		assert.Zero(t, b.ID())
		assert.True(t, b.CreatedAt().IsZero())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, "135.00", b.TotalAmount().String())
		assert.Equal(t, []string{"vr-experience"}, b.AddOns())
	})

	t.Run("every invalid field is reported", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.SiteID = 0
			b.CustomerName = "A"
			b.CustomerEmail = "not-an-email"
			b.VisitDate = "20/11/2026"
			b.TimeSlot = " "
			b.ChildTickets = -1
		}).BuildNew()

		var verr *booking.ValidationError
		require.True(t, errors.As(err, &verr))
		for _, field := range []string{"siteId", "customerName", "customerEmail", "visitDate", "timeSlot", "childTickets"} {
			assert.True(t, verr.Has(field), "expected error on %s", field)
		}
		assert.False(t, verr.Has("adultTickets"))
	})

	t.Run("ticket counts are capped", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.StudentTickets = booking.MaxTicketsPerType + 1
		}).BuildNew()

		var verr *booking.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.True(t, verr.Has("studentTickets"))

		_, err = builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.StudentTickets = booking.MaxTicketsPerType
		}).BuildNew()
		assert.NoError(t, err)
	})

	t.Run("phone is optional", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.CustomerPhone = "" }).BuildNew()
		require.NoError(t, err)
		assert.Empty(t, b.CustomerPhone())
	})

	t.Run("nil add-ons become an empty list", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.AddOns = nil }).BuildNew()
		require.NoError(t, err)
		assert.NotNil(t, b.AddOns())
		assert.Empty(t, b.AddOns())
	})
}

func TestBookingWithIdentity(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildNew()
	require.NoError(t, err)

	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	stored := b.WithIdentity(7, now)

	assert.Equal(t, int64(7), stored.ID())
	assert.Equal(t, now, stored.CreatedAt())
	assert.Zero(t, b.ID(), "original must not change")
}

func TestValidationError(t *testing.T) {
	verr := &booking.ValidationError{}
	assert.NoError(t, verr.OrNil())

	verr.Add("customerEmail", "bad")
	require.Error(t, verr.OrNil())
	assert.Contains(t, verr.Error(), "customerEmail: bad")
}

func TestPaymentValidate(t *testing.T) {
	valid := booking.Payment{CardNumber: "4242 4242 4242 4242", Expiry: "12/28", CVV: "123", Cardholder: "Ada"}
	require.NoError(t, valid.Validate())

	err := booking.Payment{CVV: "12"}.Validate()
	var verr *booking.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 4)
}

func TestStatus(t *testing.T) {
	s, err := booking.NewStatus("completed")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCompleted, s)

	_, err = booking.NewStatus("pending")
	require.ErrorIs(t, err, booking.ErrInvalidStatus)
}
