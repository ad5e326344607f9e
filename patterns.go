// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package temporal

var (
	monthDirective  = fixed{field: fMonth, width: 2, symbol: "MM"}
	dayDirective    = fixed{field: fDay, width: 2, symbol: "dd"}
	hourDirective   = fixed{field: fHour, width: 2, symbol: "HH"}
	minuteDirective = fixed{field: fMinute, width: 2, symbol: "mm"}
	secondDirective = fixed{field: fSecond, width: 2, symbol: "ss"}

	datePart = []directive{year{}, literal('-'), monthDirective, literal('-'), dayDirective}
	timePart = []directive{hourDirective, literal(':'), minuteDirective, literal(':'), secondDirective, fraction{}}
)

func concat(parts ...[]directive) []directive {
	var out []directive
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// The canonical patterns for each of the value types.
var (
	// MonthDayPattern is MM-dd.
	MonthDayPattern = newPattern("MonthDay",
		func(v MonthDay, f *fields) {
			f.values[fMonth] = int64(v.Month())
			f.values[fDay] = int64(v.Day())
		},
		func(f *fields) (MonthDay, error) {
			return NewMonthDay(int(f.values[fMonth]), int(f.values[fDay]))
		},
		monthDirective, literal('-'), dayDirective)

	// CalendarDatePattern is yyyy-MM-dd, years outside of 0000-9999 use
	// more digits and a leading '-' as required.
	CalendarDatePattern = newPattern("CalendarDate",
		func(v CalendarDate, f *fields) { f.setDate(v) },
		func(f *fields) (CalendarDate, error) { return f.date() },
		datePart...)

	// TimeOfDayPattern is HH:mm:ss with an optional fraction of 3, 6 or 9
	// digits.
	TimeOfDayPattern = newPattern("TimeOfDay",
		func(v TimeOfDay, f *fields) { f.setTime(v) },
		func(f *fields) (TimeOfDay, error) { return f.timeOfDay() },
		timePart...)

	// DateTimePattern is the CalendarDate and TimeOfDay patterns joined
	// by a 'T'.
	DateTimePattern = newPattern("DateTime",
		func(v DateTime, f *fields) {
			f.setDate(v.Date())
			f.setTime(v.TimeOfDay())
		},
		composeDateTime,
		concat(datePart, []directive{literal('T')}, timePart)...)

	// InstantPattern is the DateTime pattern, in UTC, followed by a 'Z'.
	InstantPattern = newPattern("Instant",
		func(v Instant, f *fields) {
			dt := v.UTC()
			f.setDate(dt.Date())
			f.setTime(dt.TimeOfDay())
		},
		func(f *fields) (Instant, error) {
			dt, err := composeDateTime(f)
			if err != nil {
				return Instant{}, err
			}
			return dt.InstantUTC(), nil
		},
		concat(datePart, []directive{literal('T')}, timePart, []directive{literal('Z')})...)

	// DurationPattern is [-]D:HH:mm:ss with an optional fraction. The sign
	// applies to the entire duration and D is the number of whole days in
	// its magnitude.
	DurationPattern = newPattern("Duration",
		func(v Duration, f *fields) {
			negative, days, nanos := v.magnitude()
			f.negative = negative
			f.values[fDays] = days
			f.setTime(TimeOfDay{nanoOfDay: nanos})
		},
		composeDuration,
		sign{}, dayCount{}, literal(':'), hourDirective, literal(':'), minuteDirective, literal(':'), secondDirective, fraction{})

	// PeriodPattern is a 'P' followed by each non-zero date unit and then,
	// if any time unit is non-zero, a 'T' and each non-zero time unit.
	PeriodPattern = newPattern("Period",
		func(v Period, f *fields) { f.counts = v.counts },
		func(f *fields) (Period, error) { return newPeriod(f.counts) },
		literal('P'),
		periodUnits{from: Years, to: Days},
		periodUnits{from: Hours, to: Nanoseconds, prefix: 'T'})
)

func composeDateTime(f *fields) (DateTime, error) {
	date, err := f.date()
	if err != nil {
		return DateTime{}, err
	}
	tod, err := f.timeOfDay()
	if err != nil {
		return DateTime{}, err
	}
	return date.At(tod), nil
}

func composeDuration(f *fields) (Duration, error) {
	tod, err := f.timeOfDay()
	if err != nil {
		return Duration{}, err
	}
	days := f.values[fDays]
	if f.negative && days == 0 && tod.nanoOfDay == 0 {
		return Duration{}, &ParseError{Kind: TextMismatch, Pos: 0, Directive: sign{}.pattern(), Reason: "negative zero"}
	}
	d, err := durationFromMagnitude(f.negative, days, tod.nanoOfDay)
	if err != nil {
		return Duration{}, outOfRange(fieldNames[fDays], days)
	}
	return d, nil
}
