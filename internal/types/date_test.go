package types

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		want      string
	}{
		{name: "calendar date", input: "2025-06-17", wantValid: true, want: "2025-06-17"},
		{name: "surrounding spaces", input: " 2025-06-17 ", wantValid: true, want: "2025-06-17"},
		{name: "rfc3339 utc", input: "2025-06-17T23:10:00Z", wantValid: true, want: "2025-06-17"},
		{name: "rfc3339 with offset keeps local date", input: "2025-06-17T01:00:00+05:30", wantValid: true, want: "2025-06-17"},
		{name: "garbage", input: "next tuesday", wantValid: false, want: "next tuesday"},
		{name: "impossible day", input: "2025-02-30", wantValid: false, want: "2025-02-30"},
		{name: "empty", input: "", wantValid: false, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.input)
			assert.Equal(t, tt.wantValid, got.Valid())
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNewDate(t *testing.T) {
	ist := time.FixedZone("IST", 5*60*60+30*60)
	got := NewDate(time.Date(2025, time.June, 17, 23, 59, 0, 0, ist))
	assert.True(t, got.Valid())
	assert.Equal(t, "2025-06-17", got.String())
}

func TestOptionalDate(t *testing.T) {
	assert.Nil(t, OptionalDate(nil))
	assert.Nil(t, OptionalDate(lo.ToPtr("")))
	assert.Nil(t, OptionalDate(lo.ToPtr("   ")))

	got := OptionalDate(lo.ToPtr("2025-06-17"))
	if assert.NotNil(t, got) {
		assert.Equal(t, "2025-06-17", got.String())
	}
}

func TestDateRangeCovers(t *testing.T) {
	date := func(s string) *Date {
		d := ParseDate(s)
		return &d
	}

	tests := []struct {
		name  string
		rng   DateRange
		today *Date
		want  bool
	}{
		{name: "unbounded", rng: DateRange{}, today: date("2025-06-17"), want: true},
		{name: "unbounded without today", rng: DateRange{}, today: nil, want: true},
		{name: "start only, day after", rng: DateRange{Start: date("2025-06-17")}, today: date("2025-06-18"), want: true},
		{name: "start only, same day", rng: DateRange{Start: date("2025-06-17")}, today: date("2025-06-17"), want: true},
		{name: "start only, day before", rng: DateRange{Start: date("2025-06-17")}, today: date("2025-06-16"), want: false},
		{name: "end only, same day", rng: DateRange{End: date("2025-06-17")}, today: date("2025-06-17"), want: true},
		{name: "end only, day after", rng: DateRange{End: date("2025-06-17")}, today: date("2025-06-18"), want: false},
		{name: "both, inside", rng: DateRange{Start: date("2025-06-01"), End: date("2025-06-30")}, today: date("2025-06-15"), want: true},
		{name: "both, on start", rng: DateRange{Start: date("2025-06-01"), End: date("2025-06-30")}, today: date("2025-06-01"), want: true},
		{name: "both, on end", rng: DateRange{Start: date("2025-06-01"), End: date("2025-06-30")}, today: date("2025-06-30"), want: true},
		{name: "both, after end", rng: DateRange{Start: date("2025-06-01"), End: date("2025-06-30")}, today: date("2025-07-01"), want: false},
		{name: "inverted range", rng: DateRange{Start: date("2025-06-30"), End: date("2025-06-01")}, today: date("2025-06-15"), want: false},
		{name: "invalid start", rng: DateRange{Start: date("soon")}, today: date("2025-06-15"), want: false},
		{name: "invalid end", rng: DateRange{End: date("later")}, today: date("2025-06-15"), want: false},
		{name: "bounded without today", rng: DateRange{Start: date("2025-06-01")}, today: nil, want: false},
		{name: "bounded with invalid today", rng: DateRange{End: date("2025-06-30")}, today: date("today"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rng.Covers(tt.today))
		})
	}
}
