// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"iter"
	"time"
)

// Month represents a calendar month that is always in the range 1-12.
// The month number is deliberately not exposed as an integer type so that
// arithmetic on it always goes through the normalizing methods below; use
// Value to obtain the month number. The zero value is January.
type Month struct {
	offset int8 // 0-11
}

// The months of the year.
var (
	January   = NewMonth(1)
	February  = NewMonth(2)
	March     = NewMonth(3)
	April     = NewMonth(4)
	May       = NewMonth(5)
	June      = NewMonth(6)
	July      = NewMonth(7)
	August    = NewMonth(8)
	September = NewMonth(9)
	October   = NewMonth(10)
	November  = NewMonth(11)
	December  = NewMonth(12)
)

// Abbreviated month names.
var (
	Jan = January
	Feb = February
	Mar = March
	Apr = April
	Jun = June
	Jul = July
	Aug = August
	Sep = September
	Oct = October
	Nov = November
	Dec = December
)

// NewMonth returns the Month for n, wrapping values outside of 1-12,
// so that 13 is January, 0 is December and -1 is November.
func NewMonth(n int) Month {
	return Month{offset: int8(normalize(n))}
}

// normalize returns n-1 reduced to 0-11 using floored modulo. n is reduced
// before it is shifted so that math.MinInt does not wrap.
func normalize(n int) int {
	o := n%12 - 1
	if o < 0 {
		o += 12
	}
	return o
}

// Value returns the month number, 1-12.
func (m Month) Value() int {
	return int(m.offset) + 1
}

// TimeMonth returns the equivalent time.Month.
func (m Month) TimeMonth() time.Month {
	return time.Month(m.Value())
}

// Add returns the month n months after m, n may be negative.
func (m Month) Add(n int) Month {
	return NewMonth(m.Value() + n%12)
}

// Next returns the month following m, December is followed by January.
func (m Month) Next() Month {
	return m.Add(1)
}

// Prev returns the month preceding m, January is preceded by December.
func (m Month) Prev() Month {
	return m.Add(-1)
}

// Shift moves m by n months and returns the new value.
func (m *Month) Shift(n int) Month {
	*m = m.Add(n)
	return *m
}

// Inc advances m to the next month and returns the new value.
func (m *Month) Inc() Month {
	return m.Shift(1)
}

// Dec moves m to the previous month and returns the new value.
func (m *Month) Dec() Month {
	return m.Shift(-1)
}

// PostInc advances m to the next month and returns its prior value.
func (m *Month) PostInc() Month {
	prev := *m
	m.Inc()
	return prev
}

// PostDec moves m to the previous month and returns its prior value.
func (m *Month) PostDec() Month {
	prev := *m
	m.Dec()
	return prev
}

// Compare returns -1, 0 or +1 depending on whether m is before, the same
// as, or after o.
func (m Month) Compare(o Month) int {
	switch {
	case m.offset < o.offset:
		return -1
	case m.offset > o.offset:
		return 1
	}
	return 0
}

// Before returns true if m is earlier in the year than o.
func (m Month) Before(o Month) bool {
	return m.offset < o.offset
}

// After returns true if m is later in the year than o.
func (m Month) After(o Month) bool {
	return m.offset > o.offset
}

// Months returns an iterator over January through December.
func Months() iter.Seq[Month] {
	return func(yield func(Month) bool) {
		for i := range 12 {
			if !yield(Month{offset: int8(i)}) {
				return
			}
		}
	}
}
