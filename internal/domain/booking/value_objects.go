package booking

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"travel-booking/internal/pkg/errs"
)

const (
	MaxGuestNameLength  = 150
	MaxGuestEmailLength = 254
)

var (
	ErrInvalidStayPeriod = errs.New("end date must be on or after start date")
	ErrGuestNameRequired = errs.New("guest name is required")
	ErrGuestNameTooLong  = errs.New("guest name exceeds maximum length")
	ErrInvalidGuestEmail = errs.New("guest email is not a valid address")
	ErrInvalidStatus     = errs.New("invalid booking status")
	ErrMissingListing    = errs.New("listing is required")
	ErrMissingStayPeriod = errs.New("start and end dates are required")
)

// StayPeriod is an inclusive pair of calendar dates.
type StayPeriod struct {
	start time.Time
	end   time.Time
}

func NewStayPeriod(start, end time.Time) (StayPeriod, error) {
	if start.IsZero() || end.IsZero() {
		return StayPeriod{}, ErrMissingStayPeriod
	}
	s, e := truncateDate(start), truncateDate(end)
	if e.Before(s) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{start: s, end: e}, nil
}

func (p StayPeriod) Start() time.Time { return p.start }
func (p StayPeriod) End() time.Time   { return p.end }

func (p StayPeriod) Nights() int {
	return int(p.end.Sub(p.start).Hours() / 24)
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type GuestName struct {
	value string
}

func NewGuestName(s string) (GuestName, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return GuestName{}, ErrGuestNameRequired
	}
	if utf8.RuneCountInString(t) > MaxGuestNameLength {
		return GuestName{}, ErrGuestNameTooLong
	}
	return GuestName{value: t}, nil
}

func (n GuestName) String() string { return n.value }

// Split returns the first whitespace-separated token and the remainder. The
// remainder is empty for single-word names.
func (n GuestName) Split() (first, last string) {
	parts := strings.Fields(n.value)
	if len(parts) == 0 {
		return n.value, ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

type GuestEmail struct {
	value string
}

func NewGuestEmail(s string) (GuestEmail, error) {
	t := strings.TrimSpace(s)
	if t == "" || len(t) > MaxGuestEmailLength {
		return GuestEmail{}, ErrInvalidGuestEmail
	}
	addr, err := mail.ParseAddress(t)
	if err != nil || addr.Address != t || addr.Name != "" {
		return GuestEmail{}, ErrInvalidGuestEmail
	}
	return GuestEmail{value: t}, nil
}

func (e GuestEmail) String() string { return e.value }
