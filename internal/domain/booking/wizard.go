package booking

import (
	"context"
	"errors"
	"slices"

	"tickit/internal/domain/site"
)

var (
	ErrWrongStep          = errors.New("action not allowed in current step")
	ErrDateTimeRequired   = errors.New("a visit date and an open time slot are required")
	ErrSlotSoldOut        = errors.New("time slot is sold out")
	ErrNoPreviousStep     = errors.New("already at the first step")
	ErrSubmitFromLastStep = errors.New("the last step completes with submit")
	ErrEmptyAddOn         = errors.New("add-on id is required")
)

type Step int

const (
	StepSelectingDateTime Step = iota + 1
	StepSelectingTickets
	StepEnteringPayment
)

func (s Step) String() string {
	switch s {
	case StepSelectingDateTime:
		return "SelectingDateTime"
	case StepSelectingTickets:
		return "SelectingTickets"
	case StepEnteringPayment:
		return "EnteringPayment"
	default:
		return "Unknown"
	}
}

// Submitter persists a completed draft. The booking commands implement it.
type Submitter interface {
	SubmitBooking(ctx context.Context, draft Draft) (*Booking, error)
}

// DefaultTickets and DefaultAddOns are what a freshly opened wizard starts with.
func DefaultTickets() TicketCounts {
	return TicketCounts{Adult: 2, Child: 1, Student: 0}
}

func DefaultAddOns() []string {
	return []string{AddOnVRExperience}
}

// Wizard walks one booking through date/time, tickets/add-ons and contact/payment.
// Every rejected action leaves the wizard exactly as it was. Not safe for concurrent use.
type Wizard struct {
	site *site.Site
	calc PriceCalculator

	step      Step
	visitDate string
	timeSlot  string
	tickets   TicketCounts
	addOns    []string
	contact   Contact
	payment   Payment
}

func NewWizard(s *site.Site, calc PriceCalculator) *Wizard {
	w := &Wizard{site: s, calc: calc}
	w.reset()
	return w
}

func (w *Wizard) reset() {
	w.step = StepSelectingDateTime
	w.visitDate = ""
	w.timeSlot = ""
	w.tickets = DefaultTickets()
	w.addOns = DefaultAddOns()
	w.contact = Contact{}
	w.payment = Payment{}
}

func (w *Wizard) Step() Step            { return w.step }
func (w *Wizard) Site() *site.Site      { return w.site }
func (w *Wizard) VisitDate() string     { return w.visitDate }
func (w *Wizard) TimeSlot() string      { return w.timeSlot }
func (w *Wizard) Tickets() TicketCounts { return w.tickets }
func (w *Wizard) AddOns() []string      { return slices.Clone(w.addOns) }
func (w *Wizard) Contact() Contact      { return w.contact }
func (w *Wizard) Payment() Payment      { return w.payment }

func (w *Wizard) SelectDate(date string) error {
	if w.step != StepSelectingDateTime {
		return ErrWrongStep
	}
	if _, err := ParseVisitDate(date); err != nil {
		return err
	}
	w.visitDate = date
	return nil
}

func (w *Wizard) SelectTimeSlot(label string) error {
	if w.step != StepSelectingDateTime {
		return ErrWrongStep
	}
	slot, ok := w.site.SlotByLabel(label)
	if !ok {
		return site.ErrSlotNotFound
	}
	if slot.IsSoldOut() {
		return ErrSlotSoldOut
	}
	w.timeSlot = label
	return nil
}

func (w *Wizard) Next() error {
	switch w.step {
	case StepSelectingDateTime:
		if w.visitDate == "" || w.timeSlot == "" {
			return ErrDateTimeRequired
		}
		// the slot may have sold out since it was picked
		if slot, ok := w.site.SlotByLabel(w.timeSlot); !ok || slot.IsSoldOut() {
			return ErrDateTimeRequired
		}
		w.step = StepSelectingTickets
	case StepSelectingTickets:
		w.step = StepEnteringPayment
	default:
		return ErrSubmitFromLastStep
	}
	return nil
}

func (w *Wizard) Back() error {
	switch w.step {
	case StepSelectingTickets:
		w.step = StepSelectingDateTime
	case StepEnteringPayment:
		w.step = StepSelectingTickets
	default:
		return ErrNoPreviousStep
	}
	return nil
}

func (w *Wizard) IncrementTickets(t TicketType) error {
	return w.adjustTickets(t, 1)
}

// DecrementTickets never goes below zero.
func (w *Wizard) DecrementTickets(t TicketType) error {
	return w.adjustTickets(t, -1)
}

func (w *Wizard) adjustTickets(t TicketType, delta int) error {
	if w.step != StepSelectingTickets {
		return ErrWrongStep
	}
	next, err := w.tickets.withDelta(t, delta)
	if err != nil {
		return err
	}
	w.tickets = next
	return nil
}

// ToggleAddOn adds the id when absent and removes it when present.
func (w *Wizard) ToggleAddOn(id string) error {
	if w.step != StepSelectingTickets {
		return ErrWrongStep
	}
	if id == "" {
		return ErrEmptyAddOn
	}
	if i := slices.Index(w.addOns, id); i >= 0 {
		w.addOns = slices.Delete(slices.Clone(w.addOns), i, i+1)
		return nil
	}
	w.addOns = append(slices.Clone(w.addOns), id)
	return nil
}

func (w *Wizard) SetContact(c Contact) error {
	if w.step != StepEnteringPayment {
		return ErrWrongStep
	}
	w.contact = c
	return nil
}

func (w *Wizard) SetPayment(p Payment) error {
	if w.step != StepEnteringPayment {
		return ErrWrongStep
	}
	w.payment = p
	return nil
}

func (w *Wizard) Quote() Quote {
	return w.calc.Quote(w.site.Price(), w.tickets, w.addOns)
}

func (w *Wizard) Draft() Draft {
	return Draft{
		SiteID:        w.site.ID(),
		CustomerName:  w.contact.Name,
		CustomerEmail: w.contact.Email,
		CustomerPhone: w.contact.Phone,
		VisitDate:     w.visitDate,
		TimeSlot:      w.timeSlot,
		Tickets:       w.tickets,
		AddOns:        slices.Clone(w.addOns),
		TotalAmount:   w.Quote().Total,
	}
}

// Submit validates contact and payment, then hands the draft to sub. On any failure the
// wizard stays in EnteringPayment with its data intact; on success it resets.
func (w *Wizard) Submit(ctx context.Context, sub Submitter) (*Booking, error) {
	if w.step != StepEnteringPayment {
		return nil, ErrWrongStep
	}

	verr := &ValidationError{}
	w.contact.validateInto(verr)
	w.payment.validateInto(verr)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	b, err := sub.SubmitBooking(ctx, w.Draft())
	if err != nil {
		return nil, err
	}
	w.reset()
	return b, nil
}

// Cancel discards every selection and returns to the first step with defaults.
func (w *Wizard) Cancel() {
	w.reset()
}
