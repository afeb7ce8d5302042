// Package timeutil holds the calendar arithmetic behind expiration dates:
// conversions between an absolute date and day/month/year counters, plus the
// single clock every "today" computation goes through.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

// Clock is the single time source for all "today" and "start of day"
// computations.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant. Test use only.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddMonths adds n calendar months to t, clamping to the last valid day of
// the target month (Jan 31 + 1 month is Feb 28, not Mar 3). The stdlib
// AddDate normalizes overflow days into the next month, which is the wrong
// semantics for expiration dates.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	months := y*12 + int(m) - 1 + n
	ny, nm := months/12, time.Month(months%12+1)
	if last := daysIn(ny, nm, t.Location()); d > last {
		d = last
	}
	return time.Date(ny, nm, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// Interval is the triple of user-editable day/month/year counters. A nil
// component is an empty field; empty and zero convert identically.
type Interval struct {
	Days   *int `json:"days,omitempty"`
	Months *int `json:"months,omitempty"`
	Years  *int `json:"years,omitempty"`
}

// IsZero reports whether every component is unset.
func (iv Interval) IsZero() bool {
	return iv.Days == nil && iv.Months == nil && iv.Years == nil
}

func (iv Interval) String() string {
	return fmt.Sprintf("%dd%dm%dy", deref(iv.Days), deref(iv.Months), deref(iv.Years))
}

// Date resolves the interval to an absolute expiration date: start of day of
// from, plus the calendar years and months (clamped), plus days and one extra
// day. The extra day keeps "0 days from now" meaning tomorrow; an expiration
// is always strictly in the future relative to creation.
func (iv Interval) Date(from time.Time) time.Time {
	t := StartOfDay(from)
	t = AddMonths(t, deref(iv.Years)*12+deref(iv.Months))
	return t.AddDate(0, 0, deref(iv.Days)+1)
}

// IntervalUntil breaks the distance from from to date into day/month/year
// buckets. Each bucket is the whole calendar distance in that unit alone,
// not a mixed-radix breakdown: 400 days out reports 399 days, 13 months,
// 1 year. The day bucket drops the one-day bias that Interval.Date adds, so
// tomorrow reports as zero days. Zero components come back unset.
func IntervalUntil(date, from time.Time) Interval {
	f := StartOfDay(from)
	d := StartOfDay(date)

	days := wholeDays(f, d) - 1
	if days < 0 {
		days = 0
	}
	months := monthsBetween(f, d)
	years := months / 12

	iv := Interval{}
	if days > 0 {
		iv.Days = &days
	}
	if months > 0 {
		iv.Months = &months
	}
	if years > 0 {
		iv.Years = &years
	}
	return iv
}

// wholeDays counts calendar days between two start-of-day instants. Rounding
// absorbs the off-by-an-hour gaps DST transitions introduce.
func wholeDays(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// monthsBetween counts whole clamped calendar months from from to to.
func monthsBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	n := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if n < 0 {
		n = 0
	}
	for n > 0 && AddMonths(from, n).After(to) {
		n--
	}
	return n
}

// DetailText renders the list row detail for an expiration date: the whole
// days remaining plus one (same bias as Interval.Date, so an item expiring
// tomorrow reads "Expires in: 1 days"), or "Expired!" once the date passed.
func DetailText(expiresAt, now time.Time) string {
	if !expiresAt.After(now) {
		return "Expired!"
	}
	days := int(expiresAt.Sub(now).Hours() / 24)
	return fmt.Sprintf("Expires in: %d days", days+1)
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
