package booking

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

const (
	VisitDateLayout = "2006-01-02"

	MinCustomerNameLen = 2
	MinCVVLen          = 3
)

var (
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidVisitDate = errors.New("visit date must be YYYY-MM-DD")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(s string) error {
	if !emailRegex.MatchString(strings.TrimSpace(s)) {
		return ErrInvalidEmail
	}
	return nil
}

func ParseVisitDate(s string) (time.Time, error) {
	t, err := time.Parse(VisitDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidVisitDate
	}
	return t, nil
}

// FieldError names the offending field by its wire name.
type FieldError struct {
	Field   string
	Message string
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// OrNil returns nil when nothing was added, so callers can return it directly.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

type Contact struct {
	Name  string
	Email string
	Phone string
}

func (c Contact) validateInto(verr *ValidationError) {
	if len([]rune(strings.TrimSpace(c.Name))) < MinCustomerNameLen {
		verr.Add("customerName", "Name must be at least 2 characters")
	}
	if err := ValidateEmail(c.Email); err != nil {
		verr.Add("customerEmail", "Please enter a valid email address")
	}
}

// Payment is only checked for shape. Card data is never stored or charged.
type Payment struct {
	CardNumber string
	Expiry     string
	CVV        string
	Cardholder string
}

func (p Payment) validateInto(verr *ValidationError) {
	if strings.TrimSpace(p.CardNumber) == "" {
		verr.Add("cardNumber", "Card number is required")
	}
	if strings.TrimSpace(p.Expiry) == "" {
		verr.Add("expiryDate", "Expiry date is required")
	}
	if len(strings.TrimSpace(p.CVV)) < MinCVVLen {
		verr.Add("cvv", "CVV must be at least 3 digits")
	}
	if strings.TrimSpace(p.Cardholder) == "" {
		verr.Add("cardholderName", "Cardholder name is required")
	}
}

func (p Payment) Validate() error {
	verr := &ValidationError{}
	p.validateInto(verr)
	return verr.OrNil()
}

func (c Contact) Validate() error {
	verr := &ValidationError{}
	c.validateInto(verr)
	return verr.OrNil()
}
