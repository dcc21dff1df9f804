package validator

import (
	"context"
	"strings"
	"time"
)

// DateLayout is the only accepted calendar-date layout.
const DateLayout = time.DateOnly

// Date parses a calendar date (YYYY-MM-DD) at midnight UTC.
func Date(_ context.Context, raw string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, Fail(CodeDate, raw)
	}
	return t, nil
}

// DateTime parses an RFC 3339 timestamp. The offset is mandatory and preserved.
func DateTime(_ context.Context, raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, Fail(CodeDateTime, raw)
	}
	return t, nil
}

// PresentOrFuture rejects instants strictly before now().
func PresentOrFuture(now func() time.Time) Check[time.Time] {
	return func(_ context.Context, v time.Time) error {
		if v.Before(now()) {
			return Fail(CodePresentOrFuture, v.Format(time.RFC3339))
		}
		return nil
	}
}

// PresentOrFutureDate compares calendar dates only, so "today" is accepted
// for the whole day in the date's own location.
func PresentOrFutureDate(now func() time.Time) Check[time.Time] {
	return func(_ context.Context, v time.Time) error {
		y, m, d := now().In(v.Location()).Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, v.Location())
		if v.Before(today) {
			return Fail(CodePresentOrFuture, v.Format(DateLayout))
		}
		return nil
	}
}

// TimezoneOffset parses a UTC offset such as "+02:00", "-0530" or "Z" into a
// fixed-zone location named after the normalised offset.
func TimezoneOffset(_ context.Context, raw string) (*time.Location, error) {
	s := strings.TrimSpace(raw)
	if s == "Z" || s == "z" {
		return time.UTC, nil
	}

	var t time.Time
	var err error
	switch len(s) {
	case 6:
		t, err = time.Parse("-07:00", s)
	case 5:
		t, err = time.Parse("-0700", s)
	default:
		return nil, Fail(CodeTimezoneOffset, raw)
	}
	if err != nil {
		return nil, Fail(CodeTimezoneOffset, raw)
	}

	_, offset := t.Zone()
	// Real-world offsets range from -12:00 to +14:00
	if offset < -12*3600 || offset > 14*3600 {
		return nil, Fail(CodeTimezoneOffset, raw)
	}
	if offset == 0 {
		return time.UTC, nil
	}
	return time.FixedZone(t.Format("-07:00"), offset), nil
}
