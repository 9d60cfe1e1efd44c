// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"log/slog"
	"math"
)

// Date represents a calendar date in the proleptic Gregorian calendar.
// A Date is always either valid, that is its day lies within its month for
// its year, or it is equal to the value returned by Invalid. Construction
// with an out of range day silently yields Invalid. Years may be zero or
// negative.
//
// The zero value is Invalid and Dates may be compared using ==.
type Date struct {
	year  int
	month Month
	day   int
}

// NewDate returns the Date for the specified year, month and day or
// Invalid if day is not within the month.
func NewDate(year int, month Month, day int) Date {
	d := Date{year: year, month: month, day: day}
	if !d.IsValid() {
		return Date{}
	}
	return d
}

// Invalid returns the sentinel used for an invalid date: year 0, January,
// day 0.
func Invalid() Date {
	return Date{}
}

// Year returns the date's year.
func (d Date) Year() int {
	return d.year
}

// Month returns the date's month.
func (d Date) Month() Month {
	return d.month
}

// Day returns the date's day of the month.
func (d Date) Day() int {
	return d.day
}

// IsValid returns true if the day lies within the month for the year.
func (d Date) IsValid() bool {
	return d.day > 0 && d.day <= DaysInMonth(d.month, d.year)
}

// LogValue implements slog.LogValuer.
func (d Date) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("year", d.year),
		slog.Int("month", d.month.Value()),
		slog.Int("day", d.day))
}

// Inc advances d by one day and returns the new value. The last day of a
// month is followed by the first day of the next month and December 31 by
// January 1 of the following year. Invalid dates remain Invalid, as does
// a date that would move past the last day of year math.MaxInt.
func (d *Date) Inc() Date {
	if !d.IsValid() {
		*d = Date{}
		return *d
	}
	if d.day < DaysInMonth(d.month, d.year) {
		d.day++
		return *d
	}
	if d.month == December {
		if d.year == math.MaxInt {
			*d = Date{}
			return *d
		}
		d.year++
	}
	d.day = 1
	d.month.Inc()
	return *d
}

// Dec moves d back by one day and returns the new value. The first day of
// a month is preceded by the last day of the previous month and January 1
// by December 31 of the previous year. Invalid dates remain Invalid, as
// does a date that would move before the first day of year math.MinInt.
func (d *Date) Dec() Date {
	if !d.IsValid() {
		*d = Date{}
		return *d
	}
	if d.day > 1 {
		d.day--
		return *d
	}
	if d.month == January {
		if d.year == math.MinInt {
			*d = Date{}
			return *d
		}
		d.year--
	}
	d.month.Dec()
	d.day = DaysInMonth(d.month, d.year)
	return *d
}

// PostInc advances d by one day and returns its prior value.
func (d *Date) PostInc() Date {
	prev := *d
	d.Inc()
	return prev
}

// PostDec moves d back by one day and returns its prior value.
func (d *Date) PostDec() Date {
	prev := *d
	d.Dec()
	return prev
}

// Tomorrow returns the date of the next day.
func (d Date) Tomorrow() Date {
	return d.Inc()
}

// Yesterday returns the date of the previous day.
func (d Date) Yesterday() Date {
	return d.Dec()
}

// Compare returns -1, 0 or +1 depending on whether d is before, the same
// as, or after o. Dates are ordered by year, then month and then day.
func (d Date) Compare(o Date) int {
	switch {
	case d.year < o.year:
		return -1
	case d.year > o.year:
		return 1
	}
	if c := d.month.Compare(o.month); c != 0 {
		return c
	}
	switch {
	case d.day < o.day:
		return -1
	case d.day > o.day:
		return 1
	}
	return 0
}

// Before returns true if d is earlier than o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After returns true if d is later than o.
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// DayOfYear returns the day of the year, 1-365 for non-leap years and
// 1-366 for leap years. It returns 0 for Invalid.
func (d Date) DayOfYear() int {
	if !d.IsValid() {
		return 0
	}
	return dayOfYearForYear(d.year)[d.month.offset] + d.day
}

// daysPer400Years is the length of the 400 year cycle after which the
// Gregorian calendar repeats.
const daysPer400Years = 146097

// AddDays returns the date n days after d, n may be negative.
// Invalid dates remain Invalid, as does a result whose year cannot be
// represented as an int.
func (d Date) AddDays(n int) Date {
	if !d.IsValid() {
		return Date{}
	}
	// Split n into whole cycles and a non-negative remainder.
	q, r := n/daysPer400Years, n%daysPer400Years
	if r < 0 {
		r += daysPer400Years
		q--
	}
	cycles, local := d.cycle()
	shifted := dateFromOrdinal(local.ordinal() + r)
	year, ok := joinYear(cycles+q, shifted.year)
	if !ok {
		return Date{}
	}
	shifted.year = year
	return shifted
}

// DaysUntil returns the number of days from d to o, which is negative
// if o is before d. It returns 0 if either date is invalid.
func (d Date) DaysUntil(o Date) int {
	if !d.IsValid() || !o.IsValid() {
		return 0
	}
	dc, dl := d.cycle()
	oc, ol := o.cycle()
	return (oc-dc)*daysPer400Years + ol.ordinal() - dl.ordinal()
}

// cycle returns the number of 400 year cycles before d's year and d
// moved into years 0-399.
func (d Date) cycle() (int, Date) {
	q, y := splitYear(d.year)
	d.year = y
	return q, d
}

// splitYear returns the number of whole 400 year cycles before year and
// the year within its cycle, 0-399.
func splitYear(year int) (int, int) {
	q, r := year/400, year%400
	if r < 0 {
		r += 400
		q--
	}
	return q, r
}

// joinYear is the inverse of splitYear for a non-negative year, it returns
// false if the result cannot be represented as an int.
func joinYear(cycles, year int) (int, bool) {
	cycles, year = cycles+year/400, year%400
	minCycles, minYear := splitYear(math.MinInt)
	maxCycles, maxYear := splitYear(math.MaxInt)
	switch {
	case cycles < minCycles || (cycles == minCycles && year < minYear):
		return 0, false
	case cycles > maxCycles || (cycles == maxCycles && year > maxYear):
		return 0, false
	case cycles == minCycles:
		// minCycles*400 itself is below math.MinInt.
		return (cycles+1)*400 + year - 400, true
	}
	return cycles*400 + year, true
}

// ordinal returns the number of days since January 1 of year 1.
func (d Date) ordinal() int {
	return daysBeforeYear(d.year) + d.DayOfYear() - 1
}

// daysBeforeYear returns the number of days from January 1 of year 1 to
// January 1 of year.
func daysBeforeYear(year int) int {
	p := year - 1
	return 365*p + floorDiv(p, 4) - floorDiv(p, 100) + floorDiv(p, 400)
}

// dateFromOrdinal is the inverse of ordinal, it is only used for
// ordinals within a few cycles of year 1.
func dateFromOrdinal(ord int) Date {
	y := floorDiv(ord*400, daysPer400Years) + 1
	for daysBeforeYear(y) > ord {
		y--
	}
	for daysBeforeYear(y+1) <= ord {
		y++
	}
	doy := ord - daysBeforeYear(y)
	cum := dayOfYearForYear(y)
	m := 11
	for cum[m] > doy {
		m--
	}
	return Date{year: y, month: Month{offset: int8(m)}, day: doy - cum[m] + 1}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
