// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package temporal

import (
	"math"
	"strconv"
)

// field selects one of the numeric fields of a value being formatted
// or parsed.
type field int

const (
	fYear field = iota
	fMonth
	fDay
	fHour
	fMinute
	fSecond
	fNano // nanosecond of the second
	fDays // magnitude of a duration's day count
	numFields
)

// Names as used by FieldError.
var fieldNames = [numFields]string{
	"year", "month", "day", "hour", "minute", "second", "nanosecond", "days",
}

// fields is the decomposed form of any of the value types. It is only
// ever allocated on the stack of a single Format or Parse call.
type fields struct {
	negative bool
	values   [numFields]int64
	counts   [numPeriodUnits]int64
	// 1 + the offset in the text at which each field was read, zero if
	// the field was not read.
	valuePos [numFields]int
	countPos [numPeriodUnits]int
}

func (f *fields) set(fd field, v int64, pos int) {
	f.values[fd] = v
	f.valuePos[fd] = pos + 1
}

func (f *fields) setCount(u PeriodUnit, v int64, pos int) {
	f.counts[u] = v
	f.countPos[u] = pos + 1
}

// position returns the offset at which the named field was read, or 0.
func (f *fields) position(name string) int {
	for i, n := range fieldNames {
		if n == name && f.valuePos[i] > 0 {
			return f.valuePos[i] - 1
		}
	}
	for i, n := range periodUnitNames {
		if n == name && f.countPos[i] > 0 {
			return f.countPos[i] - 1
		}
	}
	return 0
}

func (f *fields) setDate(d CalendarDate) {
	f.values[fYear] = int64(d.Year())
	f.values[fMonth] = int64(d.Month())
	f.values[fDay] = int64(d.Day())
}

func (f *fields) setTime(t TimeOfDay) {
	f.values[fHour] = int64(t.Hour())
	f.values[fMinute] = int64(t.Minute())
	f.values[fSecond] = int64(t.Second())
	f.values[fNano] = int64(t.Nanosecond())
}

func (f *fields) date() (CalendarDate, error) {
	// Check the year before narrowing it to an int.
	if y := f.values[fYear]; y < MinYear || y > MaxYear {
		return CalendarDate{}, outOfRange("year", y)
	}
	return NewCalendarDate(int(f.values[fYear]), int(f.values[fMonth]), int(f.values[fDay]))
}

func (f *fields) timeOfDay() (TimeOfDay, error) {
	return NewTimeOfDay(int(f.values[fHour]), int(f.values[fMinute]), int(f.values[fSecond]), int(f.values[fNano]))
}

type directiveKind int

const (
	literalDirective  directiveKind = iota
	fixedDirective                  // fixed width numeric
	variableDirective               // variable width numeric
	optionalDirective               // may be absent entirely
)

// directive is a single rule for rendering and consuming part of the
// canonical text of a value.
type directive interface {
	kind() directiveKind
	format(dst []byte, f *fields) []byte
	parse(s *scanner, f *fields) *ParseError
	// pattern returns the pattern text for the directive, eg. "yyyy".
	pattern() string
}

type scanner struct {
	text string
	pos  int
}

func (s *scanner) peek() byte {
	if s.pos < len(s.text) {
		return s.text[s.pos]
	}
	return 0
}

// digits returns the length of the run of ASCII digits at offset pos.
func (s *scanner) digits(pos int) int {
	n := 0
	for pos+n < len(s.text) && isDigit(s.text[pos+n]) {
		n++
	}
	return n
}

func (s *scanner) mismatch(d directive, pos int, reason string) *ParseError {
	return &ParseError{Kind: TextMismatch, Pos: pos, Directive: d.pattern(), Reason: reason}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// parseInt parses a run of digits, with an optional leading '-', that
// is known to be well formed. It fails only on overflow.
func parseInt(name string, text string, pos int) (int64, *ParseError) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		v = math.MaxInt64
		if text[0] == '-' {
			v = math.MinInt64
		}
		return 0, &ParseError{
			Kind:  FieldOutOfRange,
			Pos:   pos,
			Field: name,
			Value: v,
			Err:   outOfRange(name, v),
		}
	}
	return v, nil
}

// appendPadded appends the non-negative value v, zero padded to width.
func appendPadded(dst []byte, v int64, width int) []byte {
	var buf [20]byte
	i := len(buf)
	for v >= 10 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	i--
	buf[i] = byte('0' + v)
	for n := len(buf) - i; n < width; n++ {
		dst = append(dst, '0')
	}
	return append(dst, buf[i:]...)
}

// literal matches a single character.
type literal byte

func (l literal) kind() directiveKind { return literalDirective }

func (l literal) pattern() string { return string(rune(l)) }

func (l literal) format(dst []byte, _ *fields) []byte {
	return append(dst, byte(l))
}

func (l literal) parse(s *scanner, _ *fields) *ParseError {
	if s.peek() != byte(l) {
		return s.mismatch(l, s.pos, "")
	}
	s.pos++
	return nil
}

// fixed is a zero padded, unsigned, numeric field of exactly width digits.
type fixed struct {
	field  field
	width  int
	symbol string
}

func (d fixed) kind() directiveKind { return fixedDirective }

func (d fixed) pattern() string { return d.symbol }

func (d fixed) format(dst []byte, f *fields) []byte {
	return appendPadded(dst, f.values[d.field], d.width)
}

func (d fixed) parse(s *scanner, f *fields) *ParseError {
	if s.digits(s.pos) < d.width {
		return s.mismatch(d, s.pos, "")
	}
	var v int64
	for _, c := range []byte(s.text[s.pos : s.pos+d.width]) {
		v = v*10 + int64(c-'0')
	}
	f.set(d.field, v, s.pos)
	s.pos += d.width
	return nil
}

// year is a signed year of at least four digits, the sign is only
// present for negative years.
type year struct{}

func (year) kind() directiveKind { return variableDirective }

func (year) pattern() string { return "yyyy" }

func (year) format(dst []byte, f *fields) []byte {
	y := f.values[fYear]
	if y < 0 {
		dst = append(dst, '-')
		y = -y
	}
	return appendPadded(dst, y, 4)
}

func (d year) parse(s *scanner, f *fields) *ParseError {
	start, pos := s.pos, s.pos
	if s.peek() == '-' {
		pos++
	}
	n := s.digits(pos)
	switch {
	case n < 4:
		return s.mismatch(d, start, "")
	case n > 4 && s.text[pos] == '0':
		return s.mismatch(d, start, "redundant leading zero")
	}
	v, perr := parseInt(fieldNames[fYear], s.text[start:pos+n], start)
	if perr != nil {
		return perr
	}
	if v == 0 && pos != start {
		return s.mismatch(d, start, "negative zero")
	}
	f.set(fYear, v, start)
	s.pos = pos + n
	return nil
}

// dayCount is the unsigned, variable width, day count of a duration.
type dayCount struct{}

func (dayCount) kind() directiveKind { return variableDirective }

func (dayCount) pattern() string { return "D" }

func (dayCount) format(dst []byte, f *fields) []byte {
	return strconv.AppendInt(dst, f.values[fDays], 10)
}

func (d dayCount) parse(s *scanner, f *fields) *ParseError {
	n := s.digits(s.pos)
	switch {
	case n == 0:
		return s.mismatch(d, s.pos, "")
	case n > 1 && s.text[s.pos] == '0':
		return s.mismatch(d, s.pos, "redundant leading zero")
	}
	v, perr := parseInt(fieldNames[fDays], s.text[s.pos:s.pos+n], s.pos)
	if perr != nil {
		return perr
	}
	f.set(fDays, v, s.pos)
	s.pos += n
	return nil
}

// sign is an optional leading '-' that applies to an entire value.
type sign struct{}

func (sign) kind() directiveKind { return optionalDirective }

func (sign) pattern() string { return "[-]" }

func (sign) format(dst []byte, f *fields) []byte {
	if f.negative {
		return append(dst, '-')
	}
	return dst
}

func (sign) parse(s *scanner, f *fields) *ParseError {
	if s.peek() == '-' {
		f.negative = true
		s.pos++
	}
	return nil
}

// fraction is the optional, trimmed, fractional second. It is omitted
// when zero and otherwise uses the fewest of 3, 6 or 9 digits that
// represent the nanosecond of the second exactly.
type fraction struct{}

func (fraction) kind() directiveKind { return optionalDirective }

func (fraction) pattern() string { return "[.fffffffff]" }

var fractionScale = [10]int64{1e9, 1e8, 1e7, 1e6, 1e5, 1e4, 1e3, 1e2, 1e1, 1}

// fractionDigits returns the number of digits used to format the
// specified nanosecond of the second.
func fractionDigits(nanos int64) int {
	switch {
	case nanos == 0:
		return 0
	case nanos%1_000_000 == 0:
		return 3
	case nanos%1_000 == 0:
		return 6
	}
	return 9
}

func appendFraction(dst []byte, nanos int64) []byte {
	n := fractionDigits(nanos)
	if n == 0 {
		return dst
	}
	dst = append(dst, '.')
	return appendPadded(dst, nanos/fractionScale[n], n)
}

func (fraction) format(dst []byte, f *fields) []byte {
	return appendFraction(dst, f.values[fNano])
}

func (d fraction) parse(s *scanner, f *fields) *ParseError {
	if s.peek() != '.' {
		return nil
	}
	start := s.pos
	n := s.digits(start + 1)
	if n != 3 && n != 6 && n != 9 {
		return s.mismatch(d, start, "fraction must have 3, 6 or 9 digits")
	}
	var v int64
	for _, c := range []byte(s.text[start+1 : start+1+n]) {
		v = v*10 + int64(c-'0')
	}
	v *= fractionScale[n]
	if fractionDigits(v) != n {
		return s.mismatch(d, start, "trailing zeros")
	}
	f.set(fNano, v, start)
	s.pos = start + 1 + n
	return nil
}

// periodUnits is a group of period units, each rendered as a signed count
// followed by its designator and omitted when zero. A non-zero prefix is
// emitted before the group when any of its units is non-zero.
type periodUnits struct {
	from, to PeriodUnit
	prefix   byte
}

func (periodUnits) kind() directiveKind { return optionalDirective }

func (d periodUnits) pattern() string {
	out := []byte{'['}
	if d.prefix != 0 {
		out = append(out, d.prefix)
	}
	for u := d.from; u <= d.to; u++ {
		out = append(out, 'n', periodDesignators[u])
	}
	return string(append(out, ']'))
}

func (d periodUnits) format(dst []byte, f *fields) []byte {
	emitted := false
	for u := d.from; u <= d.to; u++ {
		c := f.counts[u]
		if c == 0 {
			continue
		}
		if !emitted && d.prefix != 0 {
			dst = append(dst, d.prefix)
		}
		emitted = true
		dst = strconv.AppendInt(dst, c, 10)
		dst = append(dst, periodDesignators[u])
	}
	return dst
}

func (d periodUnits) parse(s *scanner, f *fields) *ParseError {
	if s.pos >= len(s.text) {
		return nil
	}
	start := s.pos
	if d.prefix != 0 {
		if s.peek() != d.prefix {
			return s.mismatch(d, start, "")
		}
		s.pos++
	}
	next, found := d.from, false
	for c := s.peek(); c == '-' || isDigit(c); c = s.peek() {
		countStart, digitStart := s.pos, s.pos
		if c == '-' {
			digitStart++
		}
		n := s.digits(digitStart)
		switch {
		case n == 0:
			return s.mismatch(d, countStart, "missing count")
		case s.text[digitStart] == '0':
			return s.mismatch(d, countStart, "zero count or redundant leading zero")
		}
		end := digitStart + n
		unit, ok := d.designator(next, s.text, end)
		if !ok {
			return s.mismatch(d, end, "missing or out of order designator")
		}
		v, perr := parseInt(unit.String(), s.text[countStart:end], countStart)
		if perr != nil {
			return perr
		}
		f.setCount(unit, v, countStart)
		s.pos = end + 1
		next, found = unit+1, true
	}
	if d.prefix != 0 && !found {
		return s.mismatch(d, start, "no units follow the separator")
	}
	return nil
}

// designator returns the first unit, at or after next, whose designator
// is at text[pos].
func (d periodUnits) designator(next PeriodUnit, text string, pos int) (PeriodUnit, bool) {
	if pos >= len(text) {
		return 0, false
	}
	for u := next; u <= d.to; u++ {
		if periodDesignators[u] == text[pos] {
			return u, true
		}
	}
	return 0, false
}
