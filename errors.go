// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrInvalidDate is returned for dates that are not valid, ie. are
	// equal to Invalid.
	ErrInvalidDate = errors.New("invalid date")

	// ErrYearOutOfRange is returned when a date's year cannot be
	// represented by the type it is being converted to.
	ErrYearOutOfRange = errors.New("year out of range")
)

// Validate returns ErrInvalidDate if d is not valid.
func (d Date) Validate() error {
	if d.IsValid() {
		return nil
	}
	return ErrInvalidDate
}

// Validate returns an error for every invalid date in dates, each of which
// identifies its position and wraps ErrInvalidDate. It returns nil if all
// of the dates are valid.
func Validate(dates ...Date) error {
	errs := &errors.M{}
	for i, d := range dates {
		if !d.IsValid() {
			errs.Append(fmt.Errorf("date %d: %w", i, ErrInvalidDate))
		}
	}
	return errs.Err()
}
