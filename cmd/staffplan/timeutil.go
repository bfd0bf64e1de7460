package main

import (
	"strings"
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/jonboulle/clockwork"

	"github.com/tum-aet/staffplan/modules/staffplan/domain/timeline"
)

// parseDateFlag reads YYYY-MM-DD or RFC3339. An empty value yields the zero time.
func parseDateFlag(name, v string) (time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return time.Time{}, nil
	}
	t, err := timeline.ParseDate(v)
	if err != nil {
		return time.Time{}, withCode(exitUsage, gerrors.Wrapf(err, "invalid --%s", name))
	}
	return t, nil
}

// parseRangeFlag reads "START,END".
func parseRangeFlag(v string) (start, end time.Time, err error) {
	parts := strings.Split(v, ",")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, withCode(exitUsage, gerrors.Errorf("invalid --range %q: want START,END", v))
	}
	if start, err = parseDateFlag("range", parts[0]); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end, err = parseDateFlag("range", parts[1]); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if start.IsZero() || end.IsZero() {
		return time.Time{}, time.Time{}, withCode(exitUsage, gerrors.Errorf("invalid --range %q: both dates are required", v))
	}
	return start, end, nil
}

// clockFor pins the clock to today when given, otherwise it follows the wall clock.
func clockFor(today time.Time) clockwork.Clock {
	if today.IsZero() {
		return clockwork.NewRealClock()
	}
	return clockwork.NewFakeClockAt(today)
}
