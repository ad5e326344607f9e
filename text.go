// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package temporal

// ParseMonthDay parses text of the form MM-dd.
func ParseMonthDay(text string) (MonthDay, error) {
	return MonthDayPattern.Parse(text)
}

// ParseCalendarDate parses text of the form yyyy-MM-dd.
func ParseCalendarDate(text string) (CalendarDate, error) {
	return CalendarDatePattern.Parse(text)
}

// ParseTimeOfDay parses text of the form HH:mm:ss[.fff[fff[fff]]].
func ParseTimeOfDay(text string) (TimeOfDay, error) {
	return TimeOfDayPattern.Parse(text)
}

// ParseDateTime parses text of the form yyyy-MM-ddTHH:mm:ss[.fff[fff[fff]]].
func ParseDateTime(text string) (DateTime, error) {
	return DateTimePattern.Parse(text)
}

// ParseInstant parses text of the form yyyy-MM-ddTHH:mm:ss[.fff[fff[fff]]]Z.
func ParseInstant(text string) (Instant, error) {
	return InstantPattern.Parse(text)
}

// ParseDuration parses text of the form [-]D:HH:mm:ss[.fff[fff[fff]]].
func ParseDuration(text string) (Duration, error) {
	return DurationPattern.Parse(text)
}

// ParsePeriod parses text of the form P[nY][nM][nW][nD][T[nH][nM][nS][ns][nt][nn]].
func ParsePeriod(text string) (Period, error) {
	return PeriodPattern.Parse(text)
}

// unmarshal parses text into v, leaving v unchanged on error.
func unmarshal[T any](p *Pattern[T], text []byte, v *T) error {
	n, err := p.Parse(string(text))
	if err != nil {
		return err
	}
	*v = n
	return nil
}

// String implements fmt.Stringer.
func (md MonthDay) String() string {
	return MonthDayPattern.Format(md)
}

// AppendText implements encoding.TextAppender.
func (md MonthDay) AppendText(dst []byte) ([]byte, error) {
	return MonthDayPattern.AppendFormat(dst, md), nil
}

// MarshalText implements encoding.TextMarshaler.
func (md MonthDay) MarshalText() ([]byte, error) {
	return MonthDayPattern.AppendFormat(nil, md), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (md *MonthDay) UnmarshalText(text []byte) error {
	return unmarshal(MonthDayPattern, text, md)
}
// String implements fmt.Stringer.
func (cd CalendarDate) String() string {
	return CalendarDatePattern.Format(cd)
}

// AppendText implements encoding.TextAppender.
func (cd CalendarDate) AppendText(dst []byte) ([]byte, error) {
	return CalendarDatePattern.AppendFormat(dst, cd), nil
}

// MarshalText implements encoding.TextMarshaler.
func (cd CalendarDate) MarshalText() ([]byte, error) {
	return CalendarDatePattern.AppendFormat(nil, cd), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (cd *CalendarDate) UnmarshalText(text []byte) error {
	return unmarshal(CalendarDatePattern, text, cd)
}
// String implements fmt.Stringer.
func (t TimeOfDay) String() string {
	return TimeOfDayPattern.Format(t)
}

// AppendText implements encoding.TextAppender.
func (t TimeOfDay) AppendText(dst []byte) ([]byte, error) {
	return TimeOfDayPattern.AppendFormat(dst, t), nil
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return TimeOfDayPattern.AppendFormat(nil, t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	return unmarshal(TimeOfDayPattern, text, t)
}
// String implements fmt.Stringer.
func (dt DateTime) String() string {
	return DateTimePattern.Format(dt)
}

// AppendText implements encoding.TextAppender.
func (dt DateTime) AppendText(dst []byte) ([]byte, error) {
	return DateTimePattern.AppendFormat(dst, dt), nil
}

// MarshalText implements encoding.TextMarshaler.
func (dt DateTime) MarshalText() ([]byte, error) {
	return DateTimePattern.AppendFormat(nil, dt), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (dt *DateTime) UnmarshalText(text []byte) error {
	return unmarshal(DateTimePattern, text, dt)
}
// String implements fmt.Stringer.
func (i Instant) String() string {
	return InstantPattern.Format(i)
}

// AppendText implements encoding.TextAppender.
func (i Instant) AppendText(dst []byte) ([]byte, error) {
	return InstantPattern.AppendFormat(dst, i), nil
}

// MarshalText implements encoding.TextMarshaler.
func (i Instant) MarshalText() ([]byte, error) {
	return InstantPattern.AppendFormat(nil, i), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Instant) UnmarshalText(text []byte) error {
	return unmarshal(InstantPattern, text, i)
}
// String implements fmt.Stringer.
func (d Duration) String() string {
	return DurationPattern.Format(d)
}

// AppendText implements encoding.TextAppender.
func (d Duration) AppendText(dst []byte) ([]byte, error) {
	return DurationPattern.AppendFormat(dst, d), nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return DurationPattern.AppendFormat(nil, d), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	return unmarshal(DurationPattern, text, d)
}
// String implements fmt.Stringer.
func (p Period) String() string {
	return PeriodPattern.Format(p)
}

// AppendText implements encoding.TextAppender.
func (p Period) AppendText(dst []byte) ([]byte, error) {
	return PeriodPattern.AppendFormat(dst, p), nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Period) MarshalText() ([]byte, error) {
	return PeriodPattern.AppendFormat(nil, p), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Period) UnmarshalText(text []byte) error {
	return unmarshal(PeriodPattern, text, p)
}
