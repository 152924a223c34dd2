package booking

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTicketType = errors.New("invalid ticket type")
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

type TicketType string

const (
	TicketAdult   TicketType = "adult"
	TicketChild   TicketType = "child"
	TicketStudent TicketType = "student"
)

func TicketTypes() []TicketType {
	return []TicketType{TicketAdult, TicketChild, TicketStudent}
}

// MaxTicketsPerType bounds each count on a stored booking.
const MaxTicketsPerType = 1000

// TicketCounts holds one non-negative count per ticket type.
type TicketCounts struct {
	Adult   int
	Child   int
	Student int
}

func (tc TicketCounts) Total() int {
	return tc.Adult + tc.Child + tc.Student
}

func (tc TicketCounts) Count(t TicketType) (int, error) {
	switch t {
	case TicketAdult:
		return tc.Adult, nil
	case TicketChild:
		return tc.Child, nil
	case TicketStudent:
		return tc.Student, nil
	default:
		return 0, ErrInvalidTicketType
	}
}

// Clamped replaces negative counts with zero.
func (tc TicketCounts) Clamped() TicketCounts {
	return TicketCounts{
		Adult:   max(tc.Adult, 0),
		Child:   max(tc.Child, 0),
		Student: max(tc.Student, 0),
	}
}

func (tc TicketCounts) withDelta(t TicketType, delta int) (TicketCounts, error) {
	switch t {
	case TicketAdult:
		tc.Adult = max(tc.Adult+delta, 0)
	case TicketChild:
		tc.Child = max(tc.Child+delta, 0)
	case TicketStudent:
		tc.Student = max(tc.Student+delta, 0)
	default:
		return tc, ErrInvalidTicketType
	}
	return tc, nil
}
