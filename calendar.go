// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package temporal

import "time"

const (
	NanosecondsPerMillisecond = 1_000_000
	NanosecondsPerSecond      = 1_000_000_000
	NanosecondsPerMinute      = 60 * NanosecondsPerSecond
	NanosecondsPerHour        = 60 * NanosecondsPerMinute
	NanosecondsPerDay         = 24 * NanosecondsPerHour

	secondsPerDay = 24 * 60 * 60
)

// The range of years supported by the proleptic Gregorian calendar used
// by this package. Years are numbered astronomically, so year 0 is 1 BC.
const (
	MinYear = -9998
	MaxYear = 9999
)

var (
	daysInMonth     []int // days in each month
	daysInMonthLeap []int

	minEpochDay = daysFromCivil(MinYear, 1, 1)   // days since 1970-01-01 for MinYear-01-01
	maxEpochDay = daysFromCivil(MaxYear, 12, 31) // days since 1970-01-01 for MaxYear-12-31
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the given
// year. It returns 0 for a month outside of 1-12.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// daysFromCivil returns the number of days since the unix epoch for the
// specified, valid, date. time.Date uses the proleptic Gregorian calendar
// and midnight UTC is always an exact multiple of a day.
func daysFromCivil(year, month, day int) int64 {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(days int64) (year, month, day int) {
	y, m, d := time.Unix(days*secondsPerDay, 0).UTC().Date()
	return y, int(m), d
}

// floorDiv returns the quotient and non-negative remainder of a/b for b > 0.
func floorDiv(a, b int64) (q, r int64) {
	q, r = a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return
}
