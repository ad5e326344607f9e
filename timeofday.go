// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package temporal

import "time"

// TimeOfDay represents a time of day with nanosecond precision. The zero
// value is midnight.
type TimeOfDay struct {
	nanoOfDay int64
}

var (
	Midnight     = TimeOfDay{}
	MaxTimeOfDay = TimeOfDay{nanoOfDay: NanosecondsPerDay - 1}
)

// NewTimeOfDay creates a new TimeOfDay from the specified hour, minute,
// second and nanosecond of the second.
func NewTimeOfDay(hour, minute, second, nanosecond int) (TimeOfDay, error) {
	switch {
	case hour < 0 || hour > 23:
		return TimeOfDay{}, outOfRange("hour", int64(hour))
	case minute < 0 || minute > 59:
		return TimeOfDay{}, outOfRange("minute", int64(minute))
	case second < 0 || second > 59:
		return TimeOfDay{}, outOfRange("second", int64(second))
	case nanosecond < 0 || nanosecond >= NanosecondsPerSecond:
		return TimeOfDay{}, outOfRange("nanosecond", int64(nanosecond))
	}
	return TimeOfDay{
		nanoOfDay: int64(hour)*NanosecondsPerHour +
			int64(minute)*NanosecondsPerMinute +
			int64(second)*NanosecondsPerSecond +
			int64(nanosecond),
	}, nil
}

// NewTimeOfDayMillis is like NewTimeOfDay but with millisecond precision.
func NewTimeOfDayMillis(hour, minute, second, millisecond int) (TimeOfDay, error) {
	if millisecond < 0 || millisecond > 999 {
		return TimeOfDay{}, outOfRange("millisecond", int64(millisecond))
	}
	return NewTimeOfDay(hour, minute, second, millisecond*NanosecondsPerMillisecond)
}

// TimeOfDayFromNanoOfDay returns the TimeOfDay that is the specified number
// of nanoseconds after midnight.
func TimeOfDayFromNanoOfDay(nanoOfDay int64) (TimeOfDay, error) {
	if nanoOfDay < 0 || nanoOfDay >= NanosecondsPerDay {
		return TimeOfDay{}, outOfRange("nanoOfDay", nanoOfDay)
	}
	return TimeOfDay{nanoOfDay: nanoOfDay}, nil
}

// TimeOfDayFromTime returns the TimeOfDay of t in its location.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	tod, _ := NewTimeOfDay(t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
	return tod
}

func (t TimeOfDay) Hour() int {
	return int(t.nanoOfDay / NanosecondsPerHour)
}

func (t TimeOfDay) Minute() int {
	return int(t.nanoOfDay / NanosecondsPerMinute % 60)
}

func (t TimeOfDay) Second() int {
	return int(t.nanoOfDay / NanosecondsPerSecond % 60)
}

// Nanosecond returns the nanosecond within the second.
func (t TimeOfDay) Nanosecond() int {
	return int(t.nanoOfDay % NanosecondsPerSecond)
}

// Millisecond returns the millisecond within the second, truncating any
// sub-millisecond precision.
func (t TimeOfDay) Millisecond() int {
	return t.Nanosecond() / NanosecondsPerMillisecond
}

// NanoOfDay returns the number of nanoseconds since midnight.
func (t TimeOfDay) NanoOfDay() int64 {
	return t.nanoOfDay
}

// Add delta to the time of day, wrapping around midnight in either
// direction.
func (t TimeOfDay) Add(delta time.Duration) TimeOfDay {
	if delta == 0 {
		return t
	}
	_, r := floorDiv(int64(delta)%NanosecondsPerDay+t.nanoOfDay, NanosecondsPerDay)
	return TimeOfDay{nanoOfDay: r}
}

// Duration returns the time.Duration since midnight.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t.nanoOfDay)
}

// Compare returns -1, 0 or +1 depending on whether t is before, the same
// as or after other.
func (t TimeOfDay) Compare(other TimeOfDay) int {
	return compareInts(t.nanoOfDay, other.nanoOfDay)
}
