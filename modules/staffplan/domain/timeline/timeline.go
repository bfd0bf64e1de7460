// Package timeline holds the date-only arithmetic shared by the occupancy engine.
// All values are midnight UTC; a day is the smallest unit of time.
package timeline

import (
	"fmt"
	"strings"
	"time"
)

var (
	// UnboundedStart stands in for an assignment without a start date.
	UnboundedStart = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	// UnboundedEnd stands in for an assignment without an end date.
	UnboundedEnd = time.Date(2099, 12, 31, 0, 0, 0, 0, time.UTC)
)

// DateOnly truncates t to its calendar date, keeping the date as seen in t's location.
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween returns the number of whole days from a to b (negative when b is before a).
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

// InclusiveDays counts the days of [a, b] including both ends.
func InclusiveDays(a, b time.Time) int {
	return DaysBetween(a, b) + 1
}

func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return Date(y, m, 1)
}

func EndOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return Date(y, m+1, 0)
}

func Min(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

func Max(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

// ParseDate accepts RFC3339 timestamps and plain ISO dates.
func ParseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, fmt.Errorf("missing date value")
	}
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return DateOnly(t), nil
	}
	if t, err := time.ParseInLocation("2006-01-02", v, time.UTC); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date: %s", v)
}

// DateRange is a closed interval of calendar days.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (r DateRange) IsEmpty() bool {
	return r.End.Before(r.Start)
}

func (r DateRange) Contains(t time.Time) bool {
	t = DateOnly(t)
	return !t.Before(r.Start) && !t.After(r.End)
}

// Days is the inclusive day count, or zero for an empty range.
func (r DateRange) Days() int {
	if r.IsEmpty() {
		return 0
	}
	return InclusiveDays(r.Start, r.End)
}

// Intersect clips r to other. The result may be empty.
func (r DateRange) Intersect(other DateRange) DateRange {
	return DateRange{Start: Max(r.Start, other.Start), End: Min(r.End, other.End)}
}

func (r DateRange) String() string {
	return r.Start.Format("2006-01-02") + ".." + r.End.Format("2006-01-02")
}
