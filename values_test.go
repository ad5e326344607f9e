// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package temporal_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"cloudeng.io/temporal"
)

func TestCalendar(t *testing.T) {
	for _, tc := range []struct {
		year, month, days int
	}{
		{2023, 2, 28},
		{2024, 2, 29},
		{1900, 2, 28},
		{2000, 2, 29},
		{0, 2, 29},
		{-4, 2, 29},
		{-100, 2, 28},
		{2023, 4, 30},
		{2023, 12, 31},
		{2023, 0, 0},
		{2023, 13, 0},
	} {
		if got, want := temporal.DaysInMonth(tc.year, tc.month), tc.days; got != want {
			t.Errorf("%v-%v: got %v, want %v", tc.year, tc.month, got, want)
		}
	}
}

func expectFieldError(t *testing.T, err error, field string, value int64) {
	t.Helper()
	var fe *temporal.FieldError
	if !errors.As(err, &fe) {
		t.Errorf("expected a FieldError, got %v", err)
		return
	}
	if got, want := fe.Field, field; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := fe.Value, value; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !errors.Is(err, temporal.ErrFieldOutOfRange) {
		t.Errorf("%v is not %v", err, temporal.ErrFieldOutOfRange)
	}
}

func TestFactories(t *testing.T) {
	_, err := temporal.NewMonthDay(2, 30)
	expectFieldError(t, err, "day", 30)
	_, err = temporal.NewMonthDay(0, 1)
	expectFieldError(t, err, "month", 0)
	_, err = temporal.NewCalendarDate(2023, 2, 29)
	expectFieldError(t, err, "day", 29)
	_, err = temporal.NewCalendarDate(temporal.MaxYear+1, 1, 1)
	expectFieldError(t, err, "year", temporal.MaxYear+1)
	_, err = temporal.NewTimeOfDay(0, 0, 0, temporal.NanosecondsPerSecond)
	expectFieldError(t, err, "nanosecond", temporal.NanosecondsPerSecond)
	_, err = temporal.NewTimeOfDay(-1, 0, 0, 0)
	expectFieldError(t, err, "hour", -1)
	_, err = temporal.TimeOfDayFromNanoOfDay(temporal.NanosecondsPerDay)
	expectFieldError(t, err, "nanoOfDay", temporal.NanosecondsPerDay)
	_, err = temporal.NewInstant(temporal.MaxInstant.Days()+1, 0)
	expectFieldError(t, err, "days", temporal.MaxInstant.Days()+1)
	_, err = temporal.NewDuration(temporal.MaxDurationDays+1, 0)
	expectFieldError(t, err, "days", temporal.MaxDurationDays+1)
	_, err = temporal.NewDuration(0, -1)
	expectFieldError(t, err, "nanoOfDay", -1)
	_, err = temporal.NewPeriod(temporal.PeriodUnits{Weeks: math.MaxInt32 + 1})
	expectFieldError(t, err, "weeks", math.MaxInt32+1)
	_, err = temporal.PeriodOf(temporal.Hours, math.MaxInt64)
	if err != nil {
		t.Errorf("time units are not limited to int32: %v", err)
	}

	md := must(temporal.NewMonthDay(2, 29))
	if md.IsValidYear(2023) || !md.IsValidYear(2024) {
		t.Errorf("incorrect leap year handling for %v", md)
	}
	if _, err := md.InYear(2023); err == nil {
		t.Errorf("expected an error for %v in 2023", md)
	}
	if got, want := must(md.InYear(2024)).String(), "2024-02-29"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestZeroValues(t *testing.T) {
	var (
		md  temporal.MonthDay
		cd  temporal.CalendarDate
		tod temporal.TimeOfDay
		dt  temporal.DateTime
		in  temporal.Instant
		d   temporal.Duration
		p   temporal.Period
	)
	if got, want := md.Month()*100+md.Day(), 101; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cd.Year()*10000+cd.Month()*100+cd.Day(), 10101; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tod, temporal.Midnight; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dt.Date(), cd; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := in, temporal.UnixEpoch; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.Sign(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !p.IsZero() || p.HasDateComponent() || p.HasTimeComponent() {
		t.Errorf("zero period is not empty: %v", p)
	}
}

func TestDateConversions(t *testing.T) {
	for _, tc := range []struct {
		year, month, day int
		days             int64
	}{
		{1970, 1, 1, 0},
		{1969, 12, 31, -1},
		{2000, 3, 1, 11017},
		{2018, 12, 31, 17896},
		{0, 1, 1, -719528},
	} {
		date := must(temporal.NewCalendarDate(tc.year, tc.month, tc.day))
		if got, want := date.DaysSinceEpoch(), tc.days; got != want {
			t.Errorf("%v: got %v, want %v", date, got, want)
		}
		if got, want := must(temporal.CalendarDateFromDays(tc.days)), date; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := date.AtMidnight().InstantUTC().Days(), tc.days; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if got, want := temporal.MinCalendarDate.DaysSinceEpoch(), temporal.MinInstant.Days(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := temporal.CalendarDateFromDays(temporal.MinInstant.Days() - 1); err == nil {
		t.Errorf("expected an error")
	}
}

func TestTimeInterop(t *testing.T) {
	when := time.Date(2018, 12, 31, 23, 59, 59, 999_000_000, time.UTC)
	in := must(temporal.InstantFromTime(when))
	if got, want := in.String(), "2018-12-31T23:59:59.999Z"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := in.Time(), when; !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	loc := time.FixedZone("X", -5*3600)
	dt := must(temporal.DateTimeFromTime(when.In(loc)))
	if got, want := dt.String(), "2018-12-31T18:59:59.999"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := temporal.TimeOfDayFromTime(when).Millisecond(), 999; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	before := must(temporal.InstantFromTime(time.Unix(-1, 0)))
	if got, want := before.String(), "1969-12-31T23:59:59Z"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTimeOfDayArithmetic(t *testing.T) {
	tod := must(temporal.NewTimeOfDay(23, 30, 0, 0))
	if got, want := tod.Add(time.Hour).String(), "00:30:00"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tod.Add(-24*time.Hour).String(), "23:30:00"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tod.Duration(), 23*time.Hour+30*time.Minute; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDurationArithmetic(t *testing.T) {
	for _, tc := range []struct {
		std  time.Duration
		text string
	}{
		{0, "0:00:00:00"},
		{time.Nanosecond, "0:00:00:00.000000001"},
		{-time.Nanosecond, "-0:00:00:00.000000001"},
		{-25 * time.Hour, "-1:01:00:00"},
		{36*time.Hour + 1500*time.Millisecond, "1:12:00:01.500"},
		{math.MaxInt64, "106751:23:47:16.854775807"},
		{math.MinInt64, "-106751:23:47:16.854775808"},
	} {
		d := temporal.DurationFromStd(tc.std)
		if got, want := d.String(), tc.text; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		std, ok := d.Std()
		if !ok {
			t.Errorf("%v: failed to convert to time.Duration", d)
		}
		if got, want := std, tc.std; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if _, ok := temporal.MaxDuration.Std(); ok {
		t.Errorf("%v should not be representable as a time.Duration", temporal.MaxDuration)
	}
	if _, ok := temporal.MinDuration.Std(); ok {
		t.Errorf("%v should not be representable as a time.Duration", temporal.MinDuration)
	}

	d := must(temporal.ParseDuration("1:00:00:00.001"))
	neg := must(d.Negate())
	if got, want := neg.String(), "-1:00:00:00.001"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := must(neg.Negate()), d; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := must(d.Add(neg)), temporal.ZeroDuration; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := temporal.MinDuration.Negate(); err == nil {
		t.Errorf("expected an error negating %v", temporal.MinDuration)
	}
	if _, err := temporal.MaxDuration.Add(temporal.DurationFromStd(time.Nanosecond)); err == nil {
		t.Errorf("expected an overflow error")
	}
	if got, want := neg.Compare(d), -1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInstantArithmetic(t *testing.T) {
	start := must(temporal.ParseInstant("2018-12-31T23:59:59.999Z"))
	end := must(start.Plus(temporal.DurationFromStd(time.Millisecond)))
	if got, want := end.String(), "2019-01-01T00:00:00Z"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := end.Minus(start).String(), "0:00:00:00.001"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := start.Minus(end).String(), "-0:00:00:00.001"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !start.Before(end) || !end.After(start) || start.Compare(start) != 0 {
		t.Errorf("incorrect ordering for %v and %v", start, end)
	}
	if _, err := temporal.MaxInstant.Plus(temporal.DurationFromStd(time.Nanosecond)); err == nil {
		t.Errorf("expected an overflow error")
	}
	if got, want := temporal.MaxInstant.Minus(temporal.MinInstant).Days(), temporal.MaxInstant.Days()-temporal.MinInstant.Days(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCompare(t *testing.T) {
	for i, tc := range []struct {
		a, b string
		want int
	}{
		{"2018-01-01", "2018-01-02", -1},
		{"-0001-12-31", "0000-01-01", -1},
		{"2018-02-01", "2018-01-31", 1},
		{"2018-01-01", "2018-01-01", 0},
	} {
		a, b := must(temporal.ParseCalendarDate(tc.a)), must(temporal.ParseCalendarDate(tc.b))
		if got, want := a.Compare(b), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
	a := must(temporal.ParseDateTime("2018-01-01T00:00:00.001"))
	b := must(temporal.ParseDateTime("2018-01-01T00:00:00"))
	if got, want := a.Compare(b), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := temporal.MinMonthDay.Compare(temporal.MaxMonthDay), -1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPeriodUnits(t *testing.T) {
	p := must(temporal.ParsePeriod("P1Y2M3W4DT5H6M7S8s9t10n"))
	for u, want := range []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10} {
		if got := p.Get(temporal.PeriodUnit(u)); got != want {
			t.Errorf("%v: got %v, want %v", temporal.PeriodUnit(u), got, want)
		}
	}
	if !p.HasDateComponent() || !p.HasTimeComponent() {
		t.Errorf("%v should have date and time components", p)
	}
	if got, want := temporal.Ticks.String(), "ticks"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !temporal.Days.IsDateUnit() || temporal.Hours.IsDateUnit() {
		t.Errorf("incorrect date unit classification")
	}
	// Units are not normalized.
	if must(temporal.ParsePeriod("PT60M")) == must(temporal.ParsePeriod("PT1H")) {
		t.Errorf("PT60M and PT1H should differ")
	}
}
