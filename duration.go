// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package temporal

import (
	"math"
	"time"
)

// The range of whole days supported by Duration.
const (
	MinDurationDays = -(1 << 24)
	MaxDurationDays = 1<<24 - 1
)

// Duration represents an elapsed span of time as a signed number of days
// and a non-negative nanosecond within the day, that is, the span is
// days * 24h + nanoOfDay. The zero value is a zero length span.
type Duration struct {
	days      int32
	nanoOfDay int64
}

var (
	ZeroDuration = Duration{}
	MinDuration  = Duration{days: MinDurationDays}
	MaxDuration  = Duration{days: MaxDurationDays, nanoOfDay: NanosecondsPerDay - 1}
)

// NewDuration returns the Duration of days * 24h + nanoOfDay.
func NewDuration(days, nanoOfDay int64) (Duration, error) {
	if days < MinDurationDays || days > MaxDurationDays {
		return Duration{}, outOfRange("days", days)
	}
	if nanoOfDay < 0 || nanoOfDay >= NanosecondsPerDay {
		return Duration{}, outOfRange("nanoOfDay", nanoOfDay)
	}
	return Duration{days: int32(days), nanoOfDay: nanoOfDay}, nil
}

// DurationFromStd returns the Duration equivalent to d. All time.Duration
// values are representable.
func DurationFromStd(d time.Duration) Duration {
	days, nanos := floorDiv(int64(d), NanosecondsPerDay)
	return Duration{days: int32(days), nanoOfDay: nanos}
}

// Days returns the signed number of whole days, rounded towards
// negative infinity.
func (d Duration) Days() int64 {
	return int64(d.days)
}

// NanoOfDay returns the non-negative number of nanoseconds to be added
// to Days.
func (d Duration) NanoOfDay() int64 {
	return d.nanoOfDay
}

// Sign returns -1, 0 or +1 for negative, zero and positive durations.
func (d Duration) Sign() int {
	switch {
	case d.days < 0:
		return -1
	case d.days == 0 && d.nanoOfDay == 0:
		return 0
	}
	return 1
}

// magnitude returns the absolute value of d as whole days and a remainder.
func (d Duration) magnitude() (negative bool, days, nanos int64) {
	switch {
	case d.days >= 0:
		return false, int64(d.days), d.nanoOfDay
	case d.nanoOfDay == 0:
		return true, -int64(d.days), 0
	}
	return true, -int64(d.days) - 1, NanosecondsPerDay - d.nanoOfDay
}

// durationFromMagnitude is the inverse of magnitude.
func durationFromMagnitude(negative bool, days, nanos int64) (Duration, error) {
	if !negative {
		return NewDuration(days, nanos)
	}
	if nanos == 0 {
		return NewDuration(-days, 0)
	}
	return NewDuration(-days-1, NanosecondsPerDay-nanos)
}

// Negate returns -d. It fails only for MinDuration.
func (d Duration) Negate() (Duration, error) {
	negative, days, nanos := d.magnitude()
	return durationFromMagnitude(!negative && (days != 0 || nanos != 0), days, nanos)
}

// Add returns d + other, failing if the result is not representable.
func (d Duration) Add(other Duration) (Duration, error) {
	days := int64(d.days) + int64(other.days)
	nanos := d.nanoOfDay + other.nanoOfDay
	if nanos >= NanosecondsPerDay {
		days++
		nanos -= NanosecondsPerDay
	}
	return NewDuration(days, nanos)
}

// Std returns d as a time.Duration, ok is false if d is outside of the
// range of time.Duration.
func (d Duration) Std() (std time.Duration, ok bool) {
	const maxDays = math.MaxInt64 / NanosecondsPerDay
	days := int64(d.days)
	if days >= 0 {
		if days > maxDays || d.nanoOfDay > math.MaxInt64-days*NanosecondsPerDay {
			return 0, false
		}
		return time.Duration(days*NanosecondsPerDay + d.nanoOfDay), true
	}
	// Borrow a day so that both terms are non-positive.
	if days+1 < -maxDays {
		return 0, false
	}
	base, rem := (days+1)*NanosecondsPerDay, d.nanoOfDay-NanosecondsPerDay
	if rem < math.MinInt64-base {
		return 0, false
	}
	return time.Duration(base + rem), true
}

// Compare returns -1, 0 or +1 depending on whether d is shorter, the same
// as or longer than other.
func (d Duration) Compare(other Duration) int {
	if c := compareInts(int64(d.days), int64(other.days)); c != 0 {
		return c
	}
	return compareInts(d.nanoOfDay, other.nanoOfDay)
}
