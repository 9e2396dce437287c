package request

import (
	"strings"
	"time"

	"travel-booking/internal/domain/money"
	"travel-booking/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

// Amount accepts a decimal as a JSON string ("100.00") or number (100.5).
type Amount struct {
	money.Money
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	m, err := money.Parse(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	a.Money = m
	return nil
}

// Date is a calendar date in YYYY-MM-DD form.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return errs.Wrap(err, "date must be YYYY-MM-DD")
	}
	d.Time = t
	return nil
}

func amountCents(a *Amount) *int64 {
	if a == nil {
		return nil
	}
	c := a.Cents()
	return &c
}

func dateTime(d *Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
