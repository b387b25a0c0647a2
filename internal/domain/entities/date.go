package entities

import (
	"fmt"
	"time"
)

// DateFormat is the wire format for calendar dates (ISO-8601, no time of day).
const DateFormat = "2006-01-02"

// Date represents a calendar date with day-level granularity. It serializes
// as "YYYY-MM-DD" with no time-of-day or timezone component.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// DateOf truncates t to its calendar date in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{y, m, d}
}

// Today returns the current calendar date.
func Today() Date {
	return DateOf(time.Now())
}

func (d Date) time() time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date offset by n calendar days (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.time().AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.time().Before(other.time())
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.time().After(other.time())
}

func (d Date) String() string {
	return d.time().Format(DateFormat)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s: expected quoted %q string", s, DateFormat)
	}
	t, err := time.Parse(DateFormat, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("invalid date %s: %w", s, err)
	}
	*d = DateOf(t)
	return nil
}
