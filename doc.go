// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides compact Month and Date values for the proleptic
// Gregorian calendar together with day by day arithmetic and helpers for
// writing dates in the familiar day/month/year, year/month/day and
// month/day/year notations.
//
// A Month is always normalized to 1-12 and a Date is always either valid or
// equal to Invalid:
//
//	d := calendar.NewDate(2025, calendar.Jan, 31)
//	d.Inc()                                     // February 1, 2025
//	calendar.NewDate(2025, calendar.Feb, 29)    // Invalid
//
// Dates may be written as literals using the Slash and Hyphen methods:
//
//	calendar.Jan.Slash(1).Slash(2025)               // Jan/1/2025
//	calendar.Num(2025).Slash(calendar.Jan).Slash(1) // 2025/Jan/1
//	calendar.Num(1).Hyphen(calendar.Jan).Hyphen(2025) // 1-Jan-2025
//
// A value-first literal is ambiguous between year/month/day and
// day/month/year; the year/month/day reading is preferred whenever it
// yields a valid date, see Compose.
//
// Incrementing or decrementing an Invalid date leaves it Invalid.
package calendar
