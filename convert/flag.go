// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package convert

import (
	"fmt"

	"cloudeng.io/temporal"
)

// Flag represents a temporal value that can be used as a flag.Value.
// The zero value of a Flag is ready for use with any of the types that
// have an entry in Table.
type Flag[T any] struct {
	opt   string
	value T
	set   bool
}

// codecFor returns the codec for T.
func codecFor[T any]() (temporal.Codec[T], error) {
	var zero T
	var codec any
	switch any(zero).(type) {
	case temporal.MonthDay:
		codec = temporal.MonthDayPattern
	case temporal.CalendarDate:
		codec = temporal.CalendarDatePattern
	case temporal.TimeOfDay:
		codec = temporal.TimeOfDayPattern
	case temporal.DateTime:
		codec = temporal.DateTimePattern
	case temporal.Instant:
		codec = temporal.InstantPattern
	case temporal.Duration:
		codec = temporal.DurationPattern
	case temporal.Period:
		codec = temporal.PeriodPattern
	default:
		return nil, fmt.Errorf("convert: unsupported flag type %T", zero)
	}
	return codec.(temporal.Codec[T]), nil
}

// Set implements flag.Value. An empty value resets the flag to its
// default state.
func (f *Flag[T]) Set(v string) error {
	if len(v) == 0 {
		*f = Flag[T]{}
		return nil
	}
	codec, err := codecFor[T]()
	if err != nil {
		return err
	}
	val, err := New(codec).ConvertFrom(&v)
	if err != nil {
		return err
	}
	f.opt, f.value, f.set = v, val, true
	return nil
}

// String implements flag.Value.
func (f *Flag[T]) String() string {
	if f == nil {
		return ""
	}
	return f.opt
}

// Get implements flag.Getter.
func (f *Flag[T]) Get() any {
	return f.value
}

// Value returns the parsed value.
func (f *Flag[T]) Value() T {
	return f.value
}

// IsDefault returns true if the flag has not been set.
func (f *Flag[T]) IsDefault() bool {
	return !f.set
}
