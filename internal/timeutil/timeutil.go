package timeutil

import (
	"fmt"
	"time"
)

// Clock reports the current time in the zone the business operates in.
// Invoice dates are calendar dates, so "today" depends on that zone rather
// than on the host's local time.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// NewClock returns a Clock for the named IANA zone. An empty name means UTC.
func NewClock(zone string) (*Clock, error) {
	if zone == "" {
		return &Clock{loc: time.UTC, now: time.Now}, nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", zone, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// FixedClock returns a Clock that always reports t. Used by tests.
func FixedClock(t time.Time) *Clock {
	return &Clock{loc: t.Location(), now: func() time.Time { return t }}
}

// Now returns the current time in the clock's zone.
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today returns the current calendar date as midnight UTC.
func (c *Clock) Today() time.Time {
	return DateOf(c.Now())
}

// Location returns the clock's zone.
func (c *Clock) Location() *time.Location {
	return c.loc
}

// DateOf truncates t to its calendar date (in t's own zone) and
// re-anchors it at midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
