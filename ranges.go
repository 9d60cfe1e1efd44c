// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"context"
	"fmt"
	"iter"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// Range represents a range of valid dates, inclusive of the from and to
// dates. The zero value is an empty range.
type Range struct {
	from, to Date
}

// NewRange returns the Range from the specified dates, which must both
// be valid. If from is later than to then they are swapped.
func NewRange(from, to Date) (Range, error) {
	errs := &errors.M{}
	if !from.IsValid() {
		errs.Append(fmt.Errorf("from: %w", ErrInvalidDate))
	}
	if !to.IsValid() {
		errs.Append(fmt.Errorf("to: %w", ErrInvalidDate))
	}
	if err := errs.Err(); err != nil {
		return Range{}, err
	}
	if from.After(to) {
		from, to = to, from
	}
	return Range{from: from, to: to}, nil
}

// From returns the first date in the range.
func (r Range) From() Date {
	return r.from
}

// To returns the last date in the range.
func (r Range) To() Date {
	return r.to
}

// Empty returns true for the zero value Range.
func (r Range) Empty() bool {
	return !r.from.IsValid()
}

// Contains returns true if d is within the range.
func (r Range) Contains(d Date) bool {
	if r.Empty() || !d.IsValid() {
		return false
	}
	return !d.Before(r.from) && !d.After(r.to)
}

// Len returns the number of days in the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.from.DaysUntil(r.to) + 1
}

// Dates returns an iterator over every date in the range in
// chronological order.
func (r Range) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if r.Empty() {
			return
		}
		for d := r.from; !d.After(r.to); d.Inc() {
			if !yield(d) {
				return
			}
		}
	}
}

// Backward returns an iterator over every date in the range in
// reverse chronological order.
func (r Range) Backward() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if r.Empty() {
			return
		}
		for d := r.to; !d.Before(r.from); d.Dec() {
			if !yield(d) {
				return
			}
		}
	}
}

// Between returns an iterator over the dates from from up to, but not
// including, to. Nothing is yielded if either date is invalid.
func Between(from, to Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if !from.IsValid() || !to.IsValid() {
			return
		}
		for d := from; d.Before(to); d.Inc() {
			if !yield(d) {
				return
			}
		}
	}
}

// Walk calls fn for every date in r in chronological order. It stops at
// the first error returned by fn, or if ctx is canceled, and returns that
// error. Progress is logged at debug level to the logger, if any, stored
// in ctx by cloudeng.io/logging/ctxlog.
func Walk(ctx context.Context, r Range, fn func(Date) error) error {
	logger := ctxlog.Logger(ctx)
	visited := 0
	for d := range r.Dates() {
		if err := ctx.Err(); err != nil {
			logger.Debug("calendar walk canceled", "at", d, "visited", visited)
			return err
		}
		if err := fn(d); err != nil {
			logger.Debug("calendar walk stopped", "at", d, "visited", visited, "error", err)
			return err
		}
		visited++
	}
	logger.Debug("calendar walk done", "from", r.from, "to", r.to, "visited", visited)
	return nil
}
