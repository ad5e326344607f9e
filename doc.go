// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package temporal provides calendar and time value types together with
// a canonical text representation for each of them that round trips
// exactly, that is, Parse(Format(v)) == v for every value v and
// Format(Parse(s)) == s for every string s that Parse accepts.
//
// The canonical formats are:
//
//	MonthDay      MM-dd                          12-25
//	CalendarDate  yyyy-MM-dd                     2024-02-29
//	TimeOfDay     HH:mm:ss[.fffffffff]           23:59:59.999
//	DateTime      yyyy-MM-ddTHH:mm:ss[.fff...]   2018-12-31T23:59:59.999
//	Instant       yyyy-MM-ddTHH:mm:ss[.fff...]Z  1969-12-31T00:00:00Z
//	Duration      [-]D:HH:mm:ss[.fffffffff]      -1:02:03:04.500
//	Period        P[nY][nM][nW][nD][T...]        P1Y2MT3H
//
// Fractional seconds are omitted when zero and otherwise use 3, 6 or 9
// digits, whichever is the fewest that represent the value exactly. The
// parsers are strict and only accept canonical text, so "12:00:00.500"
// is accepted but "12:00:00.5" is not.
//
// Years are in the range -9998 to 9999 of the proleptic Gregorian
// calendar. Period units are never normalized against each other, so
// PT60M and PT1H are distinct values.
//
// All parse failures are reported as a *ParseError whose Kind is one of
// NullInput, EmptyInput, TextMismatch, FieldOutOfRange or
// TrailingCharacters. Each kind has a corresponding sentinel error for
// use with errors.Is.
//
// Each value type implements fmt.Stringer, encoding.TextMarshaler and
// encoding.TextUnmarshaler and so may be used directly with JSON, YAML
// and flag packages. The Pattern for each type implements Codec and may
// be used to handle any of the types generically.
package temporal
