// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"

	"cloudeng.io/datetime"
)

const maxCalendarDateYear = 9999

// DatetimeMonth returns m as a datetime.Month.
func (m Month) DatetimeMonth() datetime.Month {
	return datetime.Month(m.Value())
}

// MonthFromDatetime returns the Month for a datetime.Month, out of range
// values are normalized as per NewMonth.
func MonthFromDatetime(m datetime.Month) Month {
	return NewMonth(int(m))
}

// CalendarDate returns d as a datetime.CalendarDate. Only valid dates
// with years 1-9999 can be converted.
func (d Date) CalendarDate() (cd datetime.CalendarDate, err error) {
	if !d.IsValid() {
		return cd, ErrInvalidDate
	}
	if d.year < 1 || d.year > maxCalendarDateYear {
		return cd, fmt.Errorf("%d: %w", d.year, ErrYearOutOfRange)
	}
	return datetime.NewCalendarDate(d.year, d.month.DatetimeMonth(), d.day), nil
}

// FromCalendarDate returns the Date for cd, which is Invalid if cd does
// not refer to a specific day, eg. if its day is zero.
func FromCalendarDate(cd datetime.CalendarDate) Date {
	return NewDate(int(cd.Year()), MonthFromDatetime(cd.Month()), int(cd.Day()))
}
