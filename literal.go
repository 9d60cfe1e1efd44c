// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

// Num is an integer that is either a day or a year in a date literal. It
// exists only to provide the Slash and Hyphen methods used to write
// value-first literals such as:
//
//	calendar.Num(2025).Slash(calendar.Jan).Slash(1) // 2025/Jan/1
//	calendar.Num(1).Hyphen(calendar.Jan).Hyphen(2025) // 1-Jan-2025
type Num int

// SlashMonth is the int/Month part of a date literal such as 18/Nov or
// 2025/Nov where the integer may be either the day or the year.
type SlashMonth struct {
	month     Month
	dayOrYear int
}

// HyphenMonth is the int-Month part of a date literal such as 18-Nov or
// 2025-Nov where the integer may be either the day or the year.
type HyphenMonth struct {
	month     Month
	dayOrYear int
}

// MonthSlash is the Month/int part of an American date literal such
// as Nov/18.
type MonthSlash struct {
	month     Month
	dayOrYear int
}

// MonthHyphen is the Month-int part of an American date literal such
// as Nov-18.
type MonthHyphen struct {
	month     Month
	dayOrYear int
}

// Slash returns the int/Month pairing n/m.
func (n Num) Slash(m Month) SlashMonth {
	return SlashMonth{month: m, dayOrYear: int(n)}
}

// Hyphen returns the int-Month pairing n-m.
func (n Num) Hyphen(m Month) HyphenMonth {
	return HyphenMonth{month: m, dayOrYear: int(n)}
}

// Slash returns the Month/int pairing m/n.
func (m Month) Slash(n int) MonthSlash {
	return MonthSlash{month: m, dayOrYear: n}
}

// Hyphen returns the Month-int pairing m-n.
func (m Month) Hyphen(n int) MonthHyphen {
	return MonthHyphen{month: m, dayOrYear: n}
}

// Month returns the pairing's month.
func (p SlashMonth) Month() Month { return p.month }

// DayOrYear returns the pairing's integer.
func (p SlashMonth) DayOrYear() int { return p.dayOrYear }

// Month returns the pairing's month.
func (p HyphenMonth) Month() Month { return p.month }

// DayOrYear returns the pairing's integer.
func (p HyphenMonth) DayOrYear() int { return p.dayOrYear }

// Month returns the pairing's month.
func (p MonthSlash) Month() Month { return p.month }

// DayOrYear returns the pairing's integer.
func (p MonthSlash) DayOrYear() int { return p.dayOrYear }

// Month returns the pairing's month.
func (p MonthHyphen) Month() Month { return p.month }

// DayOrYear returns the pairing's integer.
func (p MonthHyphen) DayOrYear() int { return p.dayOrYear }

// Slash completes a European (11/Nov/2025) or Asian (2025/Nov/11) literal,
// see Compose for how the two are told apart.
func (p SlashMonth) Slash(dayOrYear int) Date {
	return Compose(p.dayOrYear, p.month, dayOrYear)
}

// Hyphen completes a European (11-Nov-2025) or Asian (2025-Nov-11) literal,
// see Compose for how the two are told apart.
func (p HyphenMonth) Hyphen(dayOrYear int) Date {
	return Compose(p.dayOrYear, p.month, dayOrYear)
}

// Slash completes an American literal, Nov/11/2025, with the year.
func (p MonthSlash) Slash(year int) Date {
	return NewDate(year, p.month, p.dayOrYear)
}

// Hyphen completes an American literal, Nov-11-2025, with the year.
func (p MonthHyphen) Hyphen(year int) Date {
	return NewDate(year, p.month, p.dayOrYear)
}

// SlashPair returns the date n/(m/day) where n is the year.
func (n Num) SlashPair(p MonthSlash) Date {
	return NewDate(int(n), p.month, p.dayOrYear)
}

// HyphenPair returns the date n-(m-day) where n is the year.
func (n Num) HyphenPair(p MonthHyphen) Date {
	return NewDate(int(n), p.month, p.dayOrYear)
}

// Compose returns the date for the literal a/m/b which is either
// year/month/day (Asian) or day/month/year (European). The Asian
// interpretation is tried first and if it is not a valid date then the
// European one is returned, which may be Invalid. For example 1/Jan/2025
// is January 1, 2025 since there is no day 2025, whereas 12/Jan/12 is
// January 12 of the year 12.
func Compose(a int, m Month, b int) Date {
	if d := NewDate(a, m, b); d.IsValid() {
		return d
	}
	return NewDate(b, m, a)
}

// YMD returns the date for year, month, day.
func YMD(year int, month Month, day int) Date {
	return NewDate(year, month, day)
}

// DMY returns the date for day, month, year.
func DMY(day int, month Month, year int) Date {
	return NewDate(year, month, day)
}

// MDY returns the date for month, day, year.
func MDY(month Month, day, year int) Date {
	return NewDate(year, month, day)
}
