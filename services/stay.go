package services

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Stay is a half-open interval [CheckIn, CheckOut) of calendar dates, each
// held as UTC midnight.
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// DateOf returns the calendar date of t as seen in loc, as UTC midnight.
func DateOf(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidRange, value)
	}
	return d, nil
}

// NewStay drops the clock part of both dates and requires checkOut > checkIn.
func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	s := Stay{CheckIn: DateOf(checkIn, nil), CheckOut: DateOf(checkOut, nil)}
	if !s.CheckOut.After(s.CheckIn) {
		return Stay{}, ErrInvalidRange
	}
	return s, nil
}

func ParseStay(checkIn, checkOut string) (Stay, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return Stay{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return Stay{}, err
	}
	return NewStay(in, out)
}

func (s Stay) Nights() int {
	return int(s.CheckOut.Sub(s.CheckIn).Hours() / 24)
}

// Overlaps reports whether two stays share a night. Back-to-back stays do not.
func (s Stay) Overlaps(o Stay) bool {
	return s.CheckIn.Before(o.CheckOut) && s.CheckOut.After(o.CheckIn)
}
