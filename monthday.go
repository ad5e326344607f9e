// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package temporal

// MonthDay represents a month and day without a year, eg. an anniversary.
// February 29 is valid since no year is attached to it. The zero value
// is January 1.
type MonthDay struct {
	month0 uint8 // zero based
	day0   uint8 // zero based
}

var (
	MinMonthDay = MonthDay{}
	MaxMonthDay = MonthDay{month0: 11, day0: 30}
)

// NewMonthDay returns the MonthDay for the specified month (1-12) and
// day (1-31, as permitted by the month in a leap year).
func NewMonthDay(month, day int) (MonthDay, error) {
	if month < 1 || month > 12 {
		return MonthDay{}, outOfRange("month", int64(month))
	}
	if day < 1 || day > daysInMonthLeap[month-1] {
		return MonthDay{}, outOfRange("day", int64(day))
	}
	return MonthDay{month0: uint8(month - 1), day0: uint8(day - 1)}, nil
}

// Month returns the month, 1-12.
func (md MonthDay) Month() int {
	return int(md.month0) + 1
}

// Day returns the day of the month, 1-31.
func (md MonthDay) Day() int {
	return int(md.day0) + 1
}

// InYear returns the CalendarDate for md in the specified year. It fails
// for February 29 in a non-leap year.
func (md MonthDay) InYear(year int) (CalendarDate, error) {
	return NewCalendarDate(year, md.Month(), md.Day())
}

// IsValidYear returns true if md exists in the specified year.
func (md MonthDay) IsValidYear(year int) bool {
	return md.Day() <= DaysInMonth(year, md.Month())
}

// Compare returns -1, 0 or +1 depending on whether md is before, the same
// as or after other.
func (md MonthDay) Compare(other MonthDay) int {
	return compareInts(int64(md.month0)<<8|int64(md.day0), int64(other.month0)<<8|int64(other.day0))
}

func compareInts(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
