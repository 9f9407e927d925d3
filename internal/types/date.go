package types

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar date without a time component.
// A Date built from text that is not a date keeps the text and reports !Valid().
type Date struct {
	t     time.Time
	raw   string
	valid bool
}

// ParseDate reads YYYY-MM-DD or an RFC 3339 timestamp truncated to its own calendar date.
// It never fails; check Valid on the result.
func ParseDate(value string) Date {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(DateLayout, value); err == nil {
		return Date{t: t, raw: value, valid: true}
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		y, m, d := t.Date()
		return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), raw: value, valid: true}
	}
	return Date{raw: value}
}

// NewDate returns the calendar date of t in t's location
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return Date{t: day, raw: day.Format(DateLayout), valid: true}
}

// OptionalDate parses value and returns nil when value is empty
func OptionalDate(value *string) *Date {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	d := ParseDate(*value)
	return &d
}

func (d Date) Valid() bool {
	return d.valid
}

func (d Date) String() string {
	if !d.valid {
		return d.raw
	}
	return d.t.Format(DateLayout)
}

// Compare returns -1, 0 or +1. Both dates must be valid.
func (d Date) Compare(other Date) int {
	return d.t.Compare(other.t)
}

// DateRange is an inclusive range of calendar dates. A nil bound is unbounded on that side.
type DateRange struct {
	Start *Date
	End   *Date
}

// Covers reports whether today lies within the range.
// A present bound that is not a valid date never covers anything, and neither does
// a missing or invalid today unless the range is unbounded on both sides.
func (r DateRange) Covers(today *Date) bool {
	if r.Start == nil && r.End == nil {
		return true
	}
	if today == nil || !today.Valid() {
		return false
	}
	if r.Start != nil && (!r.Start.Valid() || r.Start.Compare(*today) > 0) {
		return false
	}
	if r.End != nil && (!r.End.Valid() || r.End.Compare(*today) < 0) {
		return false
	}
	return true
}
