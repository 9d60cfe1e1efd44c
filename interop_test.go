// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"errors"
	"strings"
	"testing"

	"cloudeng.io/calendar"
	"cloudeng.io/datetime"
)

func TestDatetimeMonth(t *testing.T) {
	for m := range calendar.Months() {
		dm := m.DatetimeMonth()
		if got, want := int(dm), m.Value(); got != want {
			t.Errorf("got %v, want %v", str(got), str(want))
		}
		if got, want := calendar.MonthFromDatetime(dm), m; got != want {
			t.Errorf("got %v, want %v", str(got), str(want))
		}
	}
	if got, want := calendar.MonthFromDatetime(datetime.Month(13)), calendar.Jan; got != want {
		t.Errorf("got %v, want %v", str(got), str(want))
	}
}

func TestCalendarDate(t *testing.T) {
	for _, d := range []calendar.Date{
		newDate(2024, 2, 29),
		newDate(2025, 12, 31),
		newDate(1, 1, 1),
		newDate(1970, 7, 4),
	} {
		cd, err := d.CalendarDate()
		if err != nil {
			t.Errorf("%v: unexpected error: %v", str(d), err)
			continue
		}
		if got, want := int(cd.Year()), d.Year(); got != want {
			t.Errorf("got %v, want %v", str(got), str(want))
		}
		if got, want := int(cd.Month()), d.Month().Value(); got != want {
			t.Errorf("got %v, want %v", str(got), str(want))
		}
		if got, want := int(cd.Day()), d.Day(); got != want {
			t.Errorf("got %v, want %v", str(got), str(want))
		}
		if got, want := calendar.FromCalendarDate(cd), d; got != want {
			t.Errorf("got %v, want %v", str(got), str(want))
		}
	}

	if _, err := calendar.Invalid().CalendarDate(); !errors.Is(err, calendar.ErrInvalidDate) {
		t.Errorf("unexpected error: %v", err)
	}
	for _, d := range []calendar.Date{newDate(0, 1, 1), newDate(-10, 3, 4), newDate(10000, 1, 1)} {
		_, err := d.CalendarDate()
		if !errors.Is(err, calendar.ErrYearOutOfRange) {
			t.Errorf("%v: unexpected error: %v", str(d), err)
		}
	}

	if got, want := calendar.FromCalendarDate(datetime.NewCalendarDate(2025, 2, 0)), calendar.Invalid(); got != want {
		t.Errorf("got %v, want %v", str(got), str(want))
	}
}

func TestValidate(t *testing.T) {
	if err := calendar.Validate(newDate(2025, 1, 1), newDate(2024, 2, 29)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := calendar.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := calendar.Validate(newDate(2025, 1, 1), newDate(2025, 2, 29), newDate(2025, 3, 1), calendar.Invalid())
	if !errors.Is(err, calendar.ErrInvalidDate) {
		t.Fatalf("unexpected error: %v", err)
	}
	msg := err.Error()
	for _, want := range []string{"date 1: invalid date", "date 3: invalid date"} {
		if !strings.Contains(msg, want) {
			t.Errorf("%v: missing from %v", want, msg)
		}
	}
	if strings.Contains(msg, "date 0") || strings.Contains(msg, "date 2") {
		t.Errorf("unexpected error message: %v", msg)
	}
}
