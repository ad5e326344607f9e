// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package temporal

import "time"

// Instant represents a point on the UTC time line as a number of days
// since the unix epoch and a nanosecond within that day. Its range is that
// of the CalendarDate type. The zero value is 1970-01-01T00:00:00Z.
type Instant struct {
	days      int64
	nanoOfDay int64
}

var (
	UnixEpoch  = Instant{}
	MinInstant = Instant{days: minEpochDay}
	MaxInstant = Instant{days: maxEpochDay, nanoOfDay: NanosecondsPerDay - 1}
)

// NewInstant returns the Instant that is days after the unix epoch
// (negative for earlier days) plus nanoOfDay nanoseconds.
func NewInstant(days, nanoOfDay int64) (Instant, error) {
	if days < minEpochDay || days > maxEpochDay {
		return Instant{}, outOfRange("days", days)
	}
	if nanoOfDay < 0 || nanoOfDay >= NanosecondsPerDay {
		return Instant{}, outOfRange("nanoOfDay", nanoOfDay)
	}
	return Instant{days: days, nanoOfDay: nanoOfDay}, nil
}

// InstantFromTime returns the Instant corresponding to t.
func InstantFromTime(t time.Time) (Instant, error) {
	days, secs := floorDiv(t.Unix(), secondsPerDay)
	return NewInstant(days, secs*NanosecondsPerSecond+int64(t.Nanosecond()))
}

// Days returns the number of days since the unix epoch.
func (i Instant) Days() int64 {
	return i.days
}

// NanoOfDay returns the number of nanoseconds since the start of the day.
func (i Instant) NanoOfDay() int64 {
	return i.nanoOfDay
}

// UTC returns the calendar date and time of day of i in UTC.
func (i Instant) UTC() DateTime {
	y, m, d := civilFromDays(i.days)
	return DateTime{date: newCalendarDate(y, m, d), time: TimeOfDay{nanoOfDay: i.nanoOfDay}}
}

// Time returns i as a time.Time in UTC.
func (i Instant) Time() time.Time {
	return time.Unix(i.days*secondsPerDay, i.nanoOfDay).UTC()
}

// Compare returns -1, 0 or +1 depending on whether i is before, the same
// as or after other.
func (i Instant) Compare(other Instant) int {
	if c := compareInts(i.days, other.days); c != 0 {
		return c
	}
	return compareInts(i.nanoOfDay, other.nanoOfDay)
}

func (i Instant) Before(other Instant) bool {
	return i.Compare(other) < 0
}

func (i Instant) After(other Instant) bool {
	return i.Compare(other) > 0
}

// Plus returns i shifted by d, failing if the result is outside of the
// range supported by Instant.
func (i Instant) Plus(d Duration) (Instant, error) {
	nanos := i.nanoOfDay + d.nanoOfDay
	days := i.days + int64(d.days)
	if nanos >= NanosecondsPerDay {
		days++
		nanos -= NanosecondsPerDay
	}
	return NewInstant(days, nanos)
}

// Minus returns the Duration elapsed from other to i.
func (i Instant) Minus(other Instant) Duration {
	days := i.days - other.days
	nanos := i.nanoOfDay - other.nanoOfDay
	if nanos < 0 {
		days--
		nanos += NanosecondsPerDay
	}
	// The span of the Instant range is well within that of Duration.
	return Duration{days: int32(days), nanoOfDay: nanos}
}
