package site

import (
	"errors"
	"strings"

	"tickit/internal/domain/money"
)

var (
	ErrEmptySlotLabel           = errors.New("time slot label is required")
	ErrInvalidCapacity          = errors.New("time slot capacity cannot be negative")
	ErrInvalidAvailability      = errors.New("time slot availability must be between 0 and capacity")
	ErrSlotNotFound             = errors.New("time slot not found")
	ErrInsufficientAvailability = errors.New("not enough availability in time slot")
)

// TimeSlot is a bookable window at a site. available never exceeds capacity.
type TimeSlot struct {
	label     string
	price     money.Money
	capacity  int
	available int
}

func NewTimeSlot(label string, price money.Money, capacity, available int) (TimeSlot, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return TimeSlot{}, ErrEmptySlotLabel
	}
	if price.IsNegative() {
		return TimeSlot{}, money.ErrNegativeAmount
	}
	if capacity < 0 {
		return TimeSlot{}, ErrInvalidCapacity
	}
	if available < 0 || available > capacity {
		return TimeSlot{}, ErrInvalidAvailability
	}
	return TimeSlot{
		label:     label,
		price:     price,
		capacity:  capacity,
		available: available,
	}, nil
}

func (ts TimeSlot) Label() string      { return ts.label }
func (ts TimeSlot) Price() money.Money { return ts.price }
func (ts TimeSlot) Capacity() int      { return ts.capacity }
func (ts TimeSlot) Available() int     { return ts.available }

func (ts TimeSlot) IsSoldOut() bool {
	return ts.available <= 0
}

// CanReserve reports whether n tickets fit. A zero-ticket booking still needs an open slot.
func (ts TimeSlot) CanReserve(n int) bool {
	return ts.available >= SeatsRequired(n)
}

// SeatsRequired is the availability a booking of n tickets must find in a slot.
func SeatsRequired(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
