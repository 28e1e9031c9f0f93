// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"fmt"
	"time"
)

// ISODayLayout is the Go time layout for a calendar day in ISO 8601
// form. It is the text encoding of [Date].
const ISODayLayout = "2006-01-02"

// DefaultDateLayout renders a date the way an en-US browser renders
// Date.toLocaleString(): month/day/year followed by the time of day.
// Dates carry no time, so the time portion is always midnight.
const DefaultDateLayout = "1/2/2006, 3:04:05 PM"

// Record is a single managed record. ID is stable and is the only key
// used for fetch and update; the remaining fields are user-editable.
type Record struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
	Date   Date   `json:"date"`
}

// Date is a calendar day. The zero value is "no date" and encodes as
// the empty string.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate returns the date for the given calendar day. Out-of-range
// values are normalized the same way [time.Date] normalizes them
// (e.g., January 32 becomes February 1).
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{year: year, month: month, day: day}
}

// ParseDate parses an ISO day string ("2024-01-05"). The empty string
// parses to the zero Date without error.
func ParseDate(text string) (Date, error) {
	if text == "" {
		return Date{}, nil
	}
	parsed, err := time.Parse(ISODayLayout, text)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", text, err)
	}
	return DateOf(parsed), nil
}

// Year returns the year component.
func (date Date) Year() int { return date.year }

// Month returns the month component.
func (date Date) Month() time.Month { return date.month }

// Day returns the day-of-month component.
func (date Date) Day() int { return date.day }

// IsZero reports whether the date is unset.
func (date Date) IsZero() bool {
	return date == Date{}
}

// Time returns midnight UTC at the start of the day. The zero Date
// returns the zero time.Time.
func (date Date) Time() time.Time {
	if date.IsZero() {
		return time.Time{}
	}
	return time.Date(date.year, date.month, date.day, 0, 0, 0, 0, time.UTC)
}

// String returns the ISO day form, or "" for the zero Date.
func (date Date) String() string {
	if date.IsZero() {
		return ""
	}
	return date.Time().Format(ISODayLayout)
}

// Format renders the date with a Go time layout at midnight UTC. An
// empty layout uses [DefaultDateLayout]. The zero Date renders as "".
func (date Date) Format(layout string) string {
	if date.IsZero() {
		return ""
	}
	if layout == "" {
		layout = DefaultDateLayout
	}
	return date.Time().Format(layout)
}

// MarshalText implements encoding.TextMarshaler.
func (date Date) MarshalText() ([]byte, error) {
	return []byte(date.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (date *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*date = parsed
	return nil
}
