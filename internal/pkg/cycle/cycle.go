// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cycle anchors the system's notion of "now" to the discrete
// 10-minute UTC cycle boundary, per the cycle clock and time semantics.
package cycle

import (
	"time"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/schedule"
)

// Length is the fixed cycle length. Every minute term in the schedule
// grammar, and every cycle instant computed here, is a multiple of it.
const Length = schedule.CycleMinutes * time.Minute

// Floor rounds t down to UTC and to the nearest cycle boundary, zeroing
// seconds and sub-second components. This is the canonical way the Finder
// computes the cycle instant it matches every resource against: it floors
// its own start-of-invocation wall clock rather than trusting the live
// clock for the whole scan, so the scan is atomic with respect to drift.
func Floor(t time.Time) time.Time {
	u := t.UTC()
	u = time.Date(u.Year(), u.Month(), u.Day(), u.Hour(), u.Minute(), 0, 0, time.UTC)
	return u.Add(-time.Duration(u.Minute()%schedule.CycleMinutes) * time.Minute)
}

// Instant is a cycle boundary, always UTC, always minute-aligned to Length.
type Instant time.Time

// Now floors the current wall clock to the cycle boundary.
func Now() Instant {
	return Instant(Floor(time.Now()))
}

// FromTime floors an arbitrary time to the cycle boundary.
func FromTime(t time.Time) Instant {
	return Instant(Floor(t))
}

// ParseInstant parses the "YYYY-MM-DDTHH:MM:00Z" wire form used in queue
// messages and child tags back into an Instant.
func ParseInstant(s string) (Instant, error) {
	t, err := time.Parse("2006-01-02T15:04:05Z", s)
	if err != nil {
		return Instant{}, err
	}
	return Instant(t), nil
}

// Time returns the underlying time.Time.
func (i Instant) Time() time.Time { return time.Time(i) }

// Tuple decomposes the instant into the (day, ISO-weekday, hour, minute)
// tuple the schedule matcher operates on.
func (i Instant) Tuple() schedule.Cycle {
	t := time.Time(i)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // time.Sunday == 0; ISO weekday for Sunday is 7.
	}
	return schedule.Cycle{
		Day:     t.Day(),
		Weekday: weekday,
		Hour:    t.Hour(),
		Minute:  t.Minute(),
	}
}

// String renders the instant as the wire format used in queue messages and
// child tags: "YYYY-MM-DDTHH:MM:00Z".
func (i Instant) String() string {
	return time.Time(i).Format("2006-01-02T15:04:00Z")
}

// Compact renders the instant in the compact form used in child resource
// names: "YYYYMMDDTHHMMZ".
func (i Instant) Compact() string {
	return time.Time(i).Format("20060102T1504Z")
}

// ExpirationThreshold is the default wall-clock bound (strictly less than
// Length) beyond which a queued operation request is discarded rather than
// executed by the Doer.
const ExpirationThreshold = 9 * time.Minute

// Expired reports whether the instant is too old, relative to now, to act
// on. It compares against the supplied "now" rather than calling time.Now
// itself so callers can test the boundary deterministically.
func (i Instant) Expired(now time.Time, threshold time.Duration) bool {
	return now.Sub(time.Time(i)) >= threshold
}
