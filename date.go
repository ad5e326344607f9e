// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package temporal

// CalendarDate represents a date with a year, month and day in the
// proleptic Gregorian calendar. The zero value is 0001-01-01.
type CalendarDate struct {
	year1  int16 // year - 1
	month0 uint8 // zero based
	day0   uint8 // zero based
}

var (
	MinCalendarDate = CalendarDate{year1: MinYear - 1}
	MaxCalendarDate = CalendarDate{year1: MaxYear - 1, month0: 11, day0: 30}
)

// NewCalendarDate returns the CalendarDate for the specified year, month
// and day. The day must be valid for the month in that year.
func NewCalendarDate(year, month, day int) (CalendarDate, error) {
	if year < MinYear || year > MaxYear {
		return CalendarDate{}, outOfRange("year", int64(year))
	}
	if month < 1 || month > 12 {
		return CalendarDate{}, outOfRange("month", int64(month))
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return CalendarDate{}, outOfRange("day", int64(day))
	}
	return newCalendarDate(year, month, day), nil
}

func newCalendarDate(year, month, day int) CalendarDate {
	return CalendarDate{year1: int16(year - 1), month0: uint8(month - 1), day0: uint8(day - 1)}
}

// CalendarDateFromDays returns the CalendarDate that is the specified
// number of days since 1970-01-01.
func CalendarDateFromDays(days int64) (CalendarDate, error) {
	if days < minEpochDay || days > maxEpochDay {
		return CalendarDate{}, outOfRange("days", days)
	}
	return newCalendarDate(civilFromDays(days)), nil
}

func (cd CalendarDate) Year() int {
	return int(cd.year1) + 1
}

func (cd CalendarDate) Month() int {
	return int(cd.month0) + 1
}

func (cd CalendarDate) Day() int {
	return int(cd.day0) + 1
}

// MonthDay returns the month and day of cd.
func (cd CalendarDate) MonthDay() MonthDay {
	return MonthDay{month0: cd.month0, day0: cd.day0}
}

// DaysSinceEpoch returns the number of days between 1970-01-01 and cd,
// negative for earlier dates.
func (cd CalendarDate) DaysSinceEpoch() int64 {
	return daysFromCivil(cd.Year(), cd.Month(), cd.Day())
}

// At returns the DateTime for the specified time of day on cd.
func (cd CalendarDate) At(tod TimeOfDay) DateTime {
	return DateTime{date: cd, time: tod}
}

// AtMidnight returns the DateTime for the start of cd.
func (cd CalendarDate) AtMidnight() DateTime {
	return DateTime{date: cd}
}

// Compare returns -1, 0 or +1 depending on whether cd is before, the same
// as or after other.
func (cd CalendarDate) Compare(other CalendarDate) int {
	return compareInts(cd.ordinal(), other.ordinal())
}

func (cd CalendarDate) ordinal() int64 {
	return int64(cd.year1)<<16 | int64(cd.month0)<<8 | int64(cd.day0)
}
