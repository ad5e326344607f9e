// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package temporal

import "math"

// PeriodUnit identifies one of the ten units of a Period.
type PeriodUnit int

const (
	Years PeriodUnit = iota
	Months
	Weeks
	Days
	Hours
	Minutes
	Seconds
	Milliseconds
	Ticks // 100ns
	Nanoseconds
	numPeriodUnits
)

var periodUnitNames = [numPeriodUnits]string{
	"years", "months", "weeks", "days",
	"hours", "minutes", "seconds", "milliseconds", "ticks", "nanoseconds",
}

// designators used in the canonical text format, note that months and
// minutes share 'M' and are distinguished by the 'T' separator.
var periodDesignators = [numPeriodUnits]byte{
	'Y', 'M', 'W', 'D',
	'H', 'M', 'S', 's', 't', 'n',
}

func (u PeriodUnit) String() string {
	if u < 0 || u >= numPeriodUnits {
		return "unknown"
	}
	return periodUnitNames[u]
}

// IsDateUnit returns true for years, months, weeks and days.
func (u PeriodUnit) IsDateUnit() bool {
	return u >= Years && u <= Days
}

// PeriodUnits holds the count for each unit of a Period. Years, months,
// weeks and days are limited to the range of an int32.
type PeriodUnits struct {
	Years, Months, Weeks, Days                                int64
	Hours, Minutes, Seconds, Milliseconds, Ticks, Nanoseconds int64
}

func (pu PeriodUnits) array() [numPeriodUnits]int64 {
	return [numPeriodUnits]int64{
		pu.Years, pu.Months, pu.Weeks, pu.Days,
		pu.Hours, pu.Minutes, pu.Seconds, pu.Milliseconds, pu.Ticks, pu.Nanoseconds,
	}
}

// Period represents a set of independent, signed counts of calendar and
// time units. Units are never normalized against each other, so a period
// of 12 months is not equal to one of 1 year. The zero value has all
// counts zero.
type Period struct {
	counts [numPeriodUnits]int64
}

// NewPeriod returns the Period for the specified unit counts.
func NewPeriod(units PeriodUnits) (Period, error) {
	return newPeriod(units.array())
}

func newPeriod(counts [numPeriodUnits]int64) (Period, error) {
	for u := Years; u <= Days; u++ {
		if c := counts[u]; c < math.MinInt32 || c > math.MaxInt32 {
			return Period{}, outOfRange(u.String(), c)
		}
	}
	return Period{counts: counts}, nil
}

// PeriodOf returns a Period with a single non-zero unit.
func PeriodOf(unit PeriodUnit, count int64) (Period, error) {
	if unit < 0 || unit >= numPeriodUnits {
		return Period{}, outOfRange("unit", int64(unit))
	}
	var counts [numPeriodUnits]int64
	counts[unit] = count
	return newPeriod(counts)
}

// Get returns the count for the specified unit.
func (p Period) Get(unit PeriodUnit) int64 {
	if unit < 0 || unit >= numPeriodUnits {
		return 0
	}
	return p.counts[unit]
}

// Units returns the counts of all of the units of p.
func (p Period) Units() PeriodUnits {
	c := p.counts
	return PeriodUnits{
		Years: c[Years], Months: c[Months], Weeks: c[Weeks], Days: c[Days],
		Hours: c[Hours], Minutes: c[Minutes], Seconds: c[Seconds],
		Milliseconds: c[Milliseconds], Ticks: c[Ticks], Nanoseconds: c[Nanoseconds],
	}
}

// IsZero returns true if all of the counts are zero.
func (p Period) IsZero() bool {
	return p == Period{}
}

// HasDateComponent returns true if any of years, months, weeks or days
// is non-zero.
func (p Period) HasDateComponent() bool {
	return p.anyNonZero(Years, Days)
}

// HasTimeComponent returns true if any of the units smaller than a day
// is non-zero.
func (p Period) HasTimeComponent() bool {
	return p.anyNonZero(Hours, Nanoseconds)
}

func (p Period) anyNonZero(from, to PeriodUnit) bool {
	for u := from; u <= to; u++ {
		if p.counts[u] != 0 {
			return true
		}
	}
	return false
}
