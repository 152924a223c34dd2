package commands

import (
	"context"
	"log/slog"

	"tickit/internal/domain/booking"
	"tickit/internal/domain/money"
	"tickit/internal/domain/site"
	reqdto "tickit/internal/handler/dto/request"
	"tickit/internal/infra"
	"tickit/internal/pkg/clock"
	"tickit/internal/pkg/errs"
	"tickit/internal/usecase/queries"
)

var (
	ErrSiteNotFound            = errs.New("site not found")
	ErrBookingValidation       = errs.New("booking validation failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingResult struct {
	Booking *queries.BookingView
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*CreateBookingResult, error)
	// SubmitBooking lets a Wizard hand over its draft directly.
	SubmitBooking(ctx context.Context, draft booking.Draft) (*booking.Booking, error)
}

type bookingCommandsImpl struct {
	catalog   CatalogRepository
	bookings  BookingRepository
	publisher BookingEventPublisher
	calc      booking.PriceCalculator
	clock     clock.Clock
}

func NewBookingCommands(
	catalog CatalogRepository,
	bookings BookingRepository,
	publisher BookingEventPublisher,
	calc booking.PriceCalculator,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		catalog:   catalog,
		bookings:  bookings,
		publisher: publisher,
		calc:      calc,
		clock:     clock,
	}
}

func (u *bookingCommandsImpl) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*CreateBookingResult, error) {
	draft, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrBookingValidation)
	}

	stored, err := u.SubmitBooking(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{Booking: queries.ToBookingView(stored)}, nil
}

func (u *bookingCommandsImpl) SubmitBooking(ctx context.Context, draft booking.Draft) (*booking.Booking, error) {
	entity, err := booking.NewBooking(draft)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingValidation)
	}

	s, err := u.catalog.FindByID(ctx, draft.SiteID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSiteNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	total, err := u.checkAgainstSite(s, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingValidation)
	}

	tickets := entity.Tickets().Total()
	if err := u.catalog.ReserveSeats(ctx, s.ID(), entity.TimeSlot(), tickets); err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return nil, errs.Mark(slotError("Not enough availability for the selected time slot"), ErrBookingValidation)
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrSiteNotFound
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	stored, err := u.bookings.Create(ctx, entity.WithTotal(total))
	if err != nil {
		if relErr := u.catalog.ReleaseSeats(ctx, s.ID(), entity.TimeSlot(), tickets); relErr != nil {
			slog.Warn("failed to release seats after booking insert failure",
				"site_id", s.ID(), "time_slot", entity.TimeSlot(), "tickets", tickets, "error", relErr.Error())
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.publish(ctx, stored, s)
	return stored, nil
}

// checkAgainstSite returns the server-side total after confirming the slot and the submitted amount.
func (u *bookingCommandsImpl) checkAgainstSite(s *site.Site, b *booking.Booking) (money.Money, error) {
	slot, ok := s.SlotByLabel(b.TimeSlot())
	if !ok {
		return money.Money{}, slotError("Time slot is not offered at this site")
	}

	total := u.calc.Quote(s.Price(), b.Tickets(), b.AddOns()).Total
	if total != b.TotalAmount() {
		verr := &booking.ValidationError{}
		verr.Add("totalAmount", "Total does not match current pricing, expected "+total.String())
		return money.Money{}, verr
	}

	if !slot.CanReserve(b.Tickets().Total()) {
		return money.Money{}, slotError("Not enough availability for the selected time slot")
	}
	return total, nil
}

func (u *bookingCommandsImpl) publish(ctx context.Context, b *booking.Booking, s *site.Site) {
	if u.publisher == nil {
		return
	}
	evt := NewBookingConfirmedEvent(b, s, u.clock.Now())
	if err := u.publisher.PublishBookingConfirmed(ctx, evt); err != nil {
		// the booking is already stored; publishing is best effort
		slog.Warn("failed to publish booking confirmed event",
			"booking_id", b.ID(), "event_id", evt.EventID.String(), "error", err.Error())
	}
}

func slotError(msg string) error {
	verr := &booking.ValidationError{}
	verr.Add("timeSlot", msg)
	return verr
}
