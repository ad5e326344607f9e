// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package convert provides adapters between the temporal value types and
// host environments that distinguish absent values from empty ones, such
// as configuration files, command line flags and untyped registries.
package convert

import (
	"fmt"
	"slices"

	"cloudeng.io/temporal"
)

// Converter adapts a temporal.Codec for use with optional text. It is
// safe for concurrent use.
type Converter[T any] struct {
	codec temporal.Codec[T]
}

// New returns a Converter for the supplied codec.
func New[T any](codec temporal.Codec[T]) Converter[T] {
	return Converter[T]{codec: codec}
}

// Name returns the name of the underlying value type.
func (c Converter[T]) Name() string {
	return c.codec.Name()
}

// ConvertFrom parses text, a nil text is rejected with a
// *temporal.ParseError of kind temporal.NullInput without being
// passed to the parser.
func (c Converter[T]) ConvertFrom(text *string) (T, error) {
	if text == nil {
		var zero T
		return zero, temporal.NewNullInputError(c.codec.Name())
	}
	return c.codec.Parse(*text)
}

// ConvertToString returns the canonical text for value.
func (c Converter[T]) ConvertToString(value T) string {
	return c.codec.Format(value)
}

// Entry describes a single value type in the Table.
type Entry struct {
	// Name is the short name used to select the type, eg. "date".
	Name string
	// Type is the name of the temporal type, eg. "CalendarDate".
	Type string
	// Pattern is the canonical pattern text, eg. "yyyy-MM-dd".
	Pattern string
	// Example is the canonical text of a representative value.
	Example string
	// Parse behaves as Converter.ConvertFrom.
	Parse func(text *string) (any, error)
	// Format behaves as Converter.ConvertToString but fails if v is not
	// of the type described by the entry.
	Format func(v any) (string, error)
}

func newEntry[T any](name string, pattern *temporal.Pattern[T], example string) Entry {
	c := New[T](pattern)
	return Entry{
		Name:    name,
		Type:    pattern.Name(),
		Pattern: pattern.String(),
		Example: c.ConvertToString(pattern.MustParse(example)),
		Parse: func(text *string) (any, error) {
			v, err := c.ConvertFrom(text)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		Format: func(v any) (string, error) {
			tv, ok := v.(T)
			if !ok {
				return "", fmt.Errorf("convert: %v: unsupported type %T", name, v)
			}
			return c.ConvertToString(tv), nil
		},
	}
}

// Table contains an entry for each of the temporal value types, sorted
// by name. It must not be modified.
var Table = []Entry{
	newEntry("date", temporal.CalendarDatePattern, "2018-01-01"),
	newEntry("datetime", temporal.DateTimePattern, "2018-12-31T23:59:59.999"),
	newEntry("duration", temporal.DurationPattern, "-1:00:00:00"),
	newEntry("instant", temporal.InstantPattern, "1970-01-01T00:00:00.000000001Z"),
	newEntry("monthday", temporal.MonthDayPattern, "12-31"),
	newEntry("period", temporal.PeriodPattern, "P1Y1M1W1DT1H1M1S1s1t1n"),
	newEntry("time", temporal.TimeOfDayPattern, "23:59:59.999"),
}

// Lookup returns the entry with the specified name, or the temporal
// type name.
func Lookup(name string) (Entry, bool) {
	for _, e := range Table {
		if e.Name == name || e.Type == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Names returns the names of all of the entries in Table.
func Names() []string {
	names := make([]string, 0, len(Table))
	for _, e := range Table {
		names = append(names, e.Name)
	}
	return slices.Sorted(slices.Values(names))
}
