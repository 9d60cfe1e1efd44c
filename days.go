// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

var (
	dayOfYear       []int // per month cumulative days in year so [0, 31, 59 etc]
	dayOfYearLeap   []int // per month cumulative days in leap year [0, 31, 60 etc]
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
)

func daysInMonthForInit(leap bool, month int) int {
	switch month {
	case 2:
		if leap {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)

	for i := range 12 {
		daysInMonth[i] = daysInMonthForInit(false, i+1)
		daysInMonthLeap[i] = daysInMonthForInit(true, i+1)
	}
	for i := range 11 {
		dayOfYear[i+1] += dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] += dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// IsLeapYear returns true if year is a leap year in the proleptic Gregorian
// calendar. Zero and negative years follow the same rule, so year 0 is a
// leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month for the given year.
func DaysInMonth(month Month, year int) int {
	return daysInMonthForYear(year)[month.offset]
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

func daysInMonthForYear(year int) []int {
	if IsLeapYear(year) {
		return daysInMonthLeap
	}
	return daysInMonth
}

func dayOfYearForYear(year int) []int {
	if IsLeapYear(year) {
		return dayOfYearLeap
	}
	return dayOfYear
}
