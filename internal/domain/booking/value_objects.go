package booking

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDateRange = errors.New("start date must not be after end date")

// DateRange is a closed interval of calendar days. Both endpoints are
// inclusive, so a same-day rental spans one day.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateToDate(start)
	end = truncateToDate(end)

	if start.After(end) {
		return DateRange{}, ErrInvalidDateRange
	}

	return DateRange{
		start: start,
		end:   end,
	}, nil
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

// Days is the inclusive day count of the range.
func (r DateRange) Days() int {
	return int(r.end.Sub(r.start)/(24*time.Hour)) + 1
}

// Overlaps reports whether the two ranges share at least one calendar day.
// Ranges that merely touch on consecutive days do not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return !(r.start.After(other.end) || r.end.Before(other.start))
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.start.Format(time.DateOnly), r.end.Format(time.DateOnly))
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Money is an amount of currency in integer cents. Amounts stay in cents for
// all arithmetic; two-decimal formatting happens only at presentation.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MultiplyDays(days int) Money {
	return Money{cents: m.cents * int64(days)}
}

// String renders the amount with two decimal places, e.g. "150.00".
func (m Money) String() string {
	cents := m.cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
