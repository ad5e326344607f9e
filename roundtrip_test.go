// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package temporal_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"cloudeng.io/temporal"
	"pgregory.net/rapid"
)

// nanoOfSecond favours values that need 3 and 6 fractional digits, or
// none at all, since uniformly drawn values almost always need 9.
func nanoOfSecond() *rapid.Generator[int64] {
	return rapid.Custom(func(t *rapid.T) int64 {
		scale := rapid.SampledFrom([]int64{0, 1_000_000, 1_000, 1}).Draw(t, "scale")
		if scale == 0 {
			return 0
		}
		return rapid.Int64Range(0, temporal.NanosecondsPerSecond/scale-1).Draw(t, "fraction") * scale
	})
}

func genTimeOfDay() *rapid.Generator[temporal.TimeOfDay] {
	return rapid.Custom(func(t *rapid.T) temporal.TimeOfDay {
		secs := rapid.Int64Range(0, 24*60*60-1).Draw(t, "secs")
		nanos := nanoOfSecond().Draw(t, "nanos")
		return must(temporal.TimeOfDayFromNanoOfDay(secs*temporal.NanosecondsPerSecond + nanos))
	})
}

func genCalendarDate() *rapid.Generator[temporal.CalendarDate] {
	return rapid.Custom(func(t *rapid.T) temporal.CalendarDate {
		year := rapid.IntRange(temporal.MinYear, temporal.MaxYear).Draw(t, "year")
		month := rapid.IntRange(1, 12).Draw(t, "month")
		day := rapid.IntRange(1, temporal.DaysInMonth(year, month)).Draw(t, "day")
		return must(temporal.NewCalendarDate(year, month, day))
	})
}

func genMonthDay() *rapid.Generator[temporal.MonthDay] {
	return rapid.Custom(func(t *rapid.T) temporal.MonthDay {
		month := rapid.IntRange(1, 12).Draw(t, "month")
		day := rapid.IntRange(1, temporal.DaysInMonth(2024, month)).Draw(t, "day")
		return must(temporal.NewMonthDay(month, day))
	})
}

func genDateTime() *rapid.Generator[temporal.DateTime] {
	return rapid.Custom(func(t *rapid.T) temporal.DateTime {
		return genCalendarDate().Draw(t, "date").At(genTimeOfDay().Draw(t, "time"))
	})
}

func genInstant() *rapid.Generator[temporal.Instant] {
	return rapid.Custom(func(t *rapid.T) temporal.Instant {
		days := rapid.Int64Range(temporal.MinInstant.Days(), temporal.MaxInstant.Days()).Draw(t, "days")
		return must(temporal.NewInstant(days, genTimeOfDay().Draw(t, "time").NanoOfDay()))
	})
}

func genDuration() *rapid.Generator[temporal.Duration] {
	return rapid.Custom(func(t *rapid.T) temporal.Duration {
		days := rapid.Int64Range(temporal.MinDurationDays, temporal.MaxDurationDays).Draw(t, "days")
		return must(temporal.NewDuration(days, genTimeOfDay().Draw(t, "time").NanoOfDay()))
	})
}

func genPeriod() *rapid.Generator[temporal.Period] {
	return rapid.Custom(func(t *rapid.T) temporal.Period {
		count := func(label string, lo, hi int64) int64 {
			if rapid.Bool().Draw(t, label+"-zero") {
				return 0
			}
			return rapid.Int64Range(lo, hi).Draw(t, label)
		}
		return must(temporal.NewPeriod(temporal.PeriodUnits{
			Years:        count("years", math.MinInt32, math.MaxInt32),
			Months:       count("months", math.MinInt32, math.MaxInt32),
			Weeks:        count("weeks", math.MinInt32, math.MaxInt32),
			Days:         count("days", math.MinInt32, math.MaxInt32),
			Hours:        count("hours", math.MinInt64, math.MaxInt64),
			Minutes:      count("minutes", math.MinInt64, math.MaxInt64),
			Seconds:      count("seconds", math.MinInt64, math.MaxInt64),
			Milliseconds: count("milliseconds", math.MinInt64, math.MaxInt64),
			Ticks:        count("ticks", math.MinInt64, math.MaxInt64),
			Nanoseconds:  count("nanoseconds", math.MinInt64, math.MaxInt64),
		}))
	})
}

// checkRoundTrip verifies that parse(format(v)) == v and that the text
// survives a second round trip unchanged.
func checkRoundTrip[T comparable](t *testing.T, codec temporal.Codec[T], gen *rapid.Generator[T]) {
	rapid.Check(t, func(t *rapid.T) {
		v := gen.Draw(t, "value")
		text := codec.Format(v)
		parsed, err := codec.Parse(text)
		if err != nil {
			t.Fatalf("%v: %q: %v", codec.Name(), text, err)
		}
		if parsed != v {
			t.Fatalf("%v: %q: got %v, want %v", codec.Name(), text, parsed, v)
		}
		if got := codec.Format(parsed); got != text {
			t.Fatalf("%v: got %q, want %q", codec.Name(), got, text)
		}
	})
}

func TestRoundTripProperties(t *testing.T) {
	t.Run("MonthDay", func(t *testing.T) { checkRoundTrip(t, temporal.MonthDayPattern, genMonthDay()) })
	t.Run("CalendarDate", func(t *testing.T) { checkRoundTrip(t, temporal.CalendarDatePattern, genCalendarDate()) })
	t.Run("TimeOfDay", func(t *testing.T) { checkRoundTrip(t, temporal.TimeOfDayPattern, genTimeOfDay()) })
	t.Run("DateTime", func(t *testing.T) { checkRoundTrip(t, temporal.DateTimePattern, genDateTime()) })
	t.Run("Instant", func(t *testing.T) { checkRoundTrip(t, temporal.InstantPattern, genInstant()) })
	t.Run("Duration", func(t *testing.T) { checkRoundTrip(t, temporal.DurationPattern, genDuration()) })
	t.Run("Period", func(t *testing.T) { checkRoundTrip(t, temporal.PeriodPattern, genPeriod()) })
}

// checkTextStability verifies that any text accepted by the parser is
// reproduced exactly by the formatter and that rejected text always
// results in a ParseError.
func checkTextStability[T any](t *testing.T, codec temporal.Codec[T], gen *rapid.Generator[string]) {
	rapid.Check(t, func(t *rapid.T) {
		text := gen.Draw(t, "text")
		v, err := codec.Parse(text)
		if err != nil {
			var pe *temporal.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("%v: %q: not a ParseError: %v", codec.Name(), text, err)
			}
			if pe.Pos < 0 || pe.Pos > len(text) {
				t.Fatalf("%v: %q: position out of range: %v", codec.Name(), text, pe.Pos)
			}
			return
		}
		if got := codec.Format(v); got != text {
			t.Fatalf("%v: got %q, want %q", codec.Name(), got, text)
		}
	})
}

func TestTextStabilityProperties(t *testing.T) {
	const (
		date = `-?[0-9]{4,5}-[0-9]{2}-[0-9]{2}`
		tod  = `[0-9]{2}:[0-9]{2}:[0-9]{2}(\.[0-9]{1,10})?`
	)
	t.Run("MonthDay", func(t *testing.T) {
		checkTextStability(t, temporal.MonthDayPattern, rapid.StringMatching(`[0-9]{2}-[0-9]{2}`))
	})
	t.Run("CalendarDate", func(t *testing.T) {
		checkTextStability(t, temporal.CalendarDatePattern, rapid.StringMatching(date))
	})
	t.Run("TimeOfDay", func(t *testing.T) {
		checkTextStability(t, temporal.TimeOfDayPattern, rapid.StringMatching(tod))
	})
	t.Run("DateTime", func(t *testing.T) {
		checkTextStability(t, temporal.DateTimePattern, rapid.StringMatching(date+`T`+tod))
	})
	t.Run("Instant", func(t *testing.T) {
		checkTextStability(t, temporal.InstantPattern, rapid.StringMatching(date+`T`+tod+`Z?`))
	})
	t.Run("Duration", func(t *testing.T) {
		checkTextStability(t, temporal.DurationPattern, rapid.StringMatching(`-?[0-9]{1,9}:`+tod))
	})
	t.Run("Period", func(t *testing.T) {
		checkTextStability(t, temporal.PeriodPattern, rapid.StringMatching(`P(-?[0-9]{1,3}[YMWD]){0,4}(T(-?[0-9]{1,3}[HMSstn]){0,6})?`))
	})
	t.Run("Arbitrary", func(t *testing.T) {
		checkTextStability(t, temporal.PeriodPattern, rapid.String())
		checkTextStability(t, temporal.InstantPattern, rapid.String())
		checkTextStability(t, temporal.DurationPattern, rapid.String())
	})
}

func TestConcurrentUse(t *testing.T) {
	texts := []string{
		"0:00:00:00.000000001",
		"-1:00:00:00",
		"16777215:23:59:59.999999999",
		"-0:12:30:00.500",
	}
	var wg sync.WaitGroup
	errs := make(chan error, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text := texts[i%len(texts)]
			d, err := temporal.ParseDuration(text)
			if err != nil {
				errs <- err
				return
			}
			if got := d.String(); got != text {
				errs <- errors.New("got " + got + ", want " + text)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
