// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"fmt"

	"cloudeng.io/calendar"
)

func ExampleNum() {
	jan := calendar.Jan
	for _, d := range []calendar.Date{
		jan.Slash(1).Slash(2025),                 // American
		calendar.Num(2025).Slash(jan).Slash(1),   // Asian
		calendar.Num(1).Hyphen(jan).Hyphen(2025), // European
		calendar.Num(2025).Slash(calendar.Feb).Slash(29),
	} {
		fmt.Println(d.Year(), d.Month().Value(), d.Day(), d.IsValid())
	}
	// Output:
	// 2025 1 1 true
	// 2025 1 1 true
	// 2025 1 1 true
	// 0 1 0 false
}

func ExampleDate_Inc() {
	d := calendar.NewDate(2024, calendar.Dec, 30)
	for range 3 {
		d.Inc()
		fmt.Println(d.Year(), d.Month().Value(), d.Day())
	}
	// Output:
	// 2024 12 31
	// 2025 1 1
	// 2025 1 2
}

func ExampleNewMonth() {
	fmt.Println(calendar.NewMonth(13).Value(), calendar.NewMonth(0).Value(), calendar.NewMonth(-1).Value())
	// Output:
	// 1 12 11
}
