// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package temporal

import "time"

// DateTime represents a CalendarDate and TimeOfDay without any
// association with a time zone or offset.
type DateTime struct {
	date CalendarDate
	time TimeOfDay
}

var (
	MinDateTime = DateTime{date: MinCalendarDate}
	MaxDateTime = DateTime{date: MaxCalendarDate, time: MaxTimeOfDay}
)

// NewDateTime returns the DateTime for the specified date and time of day.
func NewDateTime(date CalendarDate, tod TimeOfDay) DateTime {
	return DateTime{date: date, time: tod}
}

// NewDateTimeMillis returns the DateTime for the specified fields with
// millisecond precision.
func NewDateTimeMillis(year, month, day, hour, minute, second, millisecond int) (DateTime, error) {
	date, err := NewCalendarDate(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	tod, err := NewTimeOfDayMillis(hour, minute, second, millisecond)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: date, time: tod}, nil
}

// DateTimeFromTime returns the DateTime for the wall clock reading of t
// in its location.
func DateTimeFromTime(t time.Time) (DateTime, error) {
	date, err := NewCalendarDate(t.Year(), int(t.Month()), t.Day())
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: date, time: TimeOfDayFromTime(t)}, nil
}

func (dt DateTime) Date() CalendarDate {
	return dt.date
}

func (dt DateTime) TimeOfDay() TimeOfDay {
	return dt.time
}

// InstantUTC returns the Instant at which dt occurs in UTC.
func (dt DateTime) InstantUTC() Instant {
	return Instant{days: dt.date.DaysSinceEpoch(), nanoOfDay: dt.time.nanoOfDay}
}

// Compare returns -1, 0 or +1 depending on whether dt is before, the same
// as or after other.
func (dt DateTime) Compare(other DateTime) int {
	if c := dt.date.Compare(other.date); c != 0 {
		return c
	}
	return dt.time.Compare(other.time)
}
