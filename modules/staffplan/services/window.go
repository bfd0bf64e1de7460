package services

import (
	"fmt"
	"slices"
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/jonboulle/clockwork"

	"github.com/tum-aet/staffplan/modules/staffplan/domain/timeline"
)

type WindowState int

const (
	WindowInitial WindowState = iota
	WindowWindowed
)

func (s WindowState) String() string {
	if s == WindowWindowed {
		return "windowed"
	}
	return "initial"
}

const (
	DefaultZoomMonths = 12
	DefaultOuterYears = 3
	daysPerZoomMonth  = 30
)

// ZoomPresets are the selectable window spans in months.
var ZoomPresets = []int{3, 6, 12, 24, 36, 60}

var (
	ErrUnknownZoom  = gerrors.New("unknown zoom preset")
	ErrInvalidRange = gerrors.New("invalid window range")
)

type WindowOptions struct {
	OuterYears        int
	DefaultZoomMonths int
}

// WindowController owns the visible window. Offsets are days from the start of
// the outer bound, which spans OuterYears full calendar years around today.
type WindowController struct {
	clock clockwork.Clock
	opts  WindowOptions

	state WindowState
	today time.Time
	outer timeline.DateRange
	// zoom is zero once the range was dragged to custom offsets.
	zoom       int
	rangeStart int
	rangeEnd   int
}

func NewWindowController(clock clockwork.Clock, opts WindowOptions) *WindowController {
	if opts.OuterYears <= 0 {
		opts.OuterYears = DefaultOuterYears
	}
	if !slices.Contains(ZoomPresets, opts.DefaultZoomMonths) {
		opts.DefaultZoomMonths = DefaultZoomMonths
	}
	w := &WindowController{clock: clock, opts: opts, zoom: opts.DefaultZoomMonths}
	w.rebase(timeline.DateOnly(clock.Now()))
	w.center()
	return w
}

func (w *WindowController) State() WindowState {
	w.refresh()
	return w.state
}

func (w *WindowController) Today() time.Time {
	w.refresh()
	return w.today
}

func (w *WindowController) Outer() timeline.DateRange {
	w.refresh()
	return w.outer
}

// TotalDays is the inclusive day count of the outer bound.
func (w *WindowController) TotalDays() int {
	return w.Outer().Days()
}

// Zoom is the active preset in months, or zero for a custom range.
func (w *WindowController) Zoom() int {
	w.refresh()
	return w.zoom
}

// Range returns the window as day offsets from the outer bound start.
func (w *WindowController) Range() (start, end int) {
	w.refresh()
	return w.rangeStart, w.rangeEnd
}

// Activate moves the controller to the windowed state on first data, centred on today
// with the default zoom. It is a no-op once windowed.
func (w *WindowController) Activate() bool {
	w.refresh()
	if w.state == WindowWindowed {
		return false
	}
	w.zoom = w.opts.DefaultZoomMonths
	w.center()
	w.state = WindowWindowed
	return true
}

func (w *WindowController) SetZoom(months int) error {
	if !slices.Contains(ZoomPresets, months) {
		return gerrors.Wrapf(ErrUnknownZoom, "%d months", months)
	}
	w.refresh()
	w.zoom = months
	w.center()
	w.state = WindowWindowed
	return nil
}

// SetRange sets custom offsets. Both are clamped to the outer bound.
func (w *WindowController) SetRange(start, end int) error {
	if end < start {
		return gerrors.Wrap(ErrInvalidRange, fmt.Sprintf("end offset %d before start offset %d", end, start))
	}
	w.refresh()
	w.zoom = 0
	w.rangeStart, w.rangeEnd = w.clamp(start), w.clamp(end)
	w.state = WindowWindowed
	return nil
}

// SetDates is SetRange expressed in calendar dates.
func (w *WindowController) SetDates(start, end time.Time) error {
	outer := w.Outer()
	return w.SetRange(timeline.DaysBetween(outer.Start, start), timeline.DaysBetween(outer.Start, end))
}

// Visible is the rendered window: the offsets rounded out to whole months.
func (w *WindowController) Visible() timeline.DateRange {
	w.refresh()
	start := timeline.AddDays(w.outer.Start, w.rangeStart)
	end := timeline.AddDays(w.outer.Start, w.rangeEnd)
	return timeline.DateRange{Start: timeline.StartOfMonth(start), End: timeline.EndOfMonth(end)}
}

// RangeDates are the unrounded dates under the drag handles.
func (w *WindowController) RangeDates() (start, end time.Time) {
	w.refresh()
	return timeline.AddDays(w.outer.Start, w.rangeStart), timeline.AddDays(w.outer.Start, w.rangeEnd)
}

// refresh rebases the outer bound when the clock crossed midnight. A preset window
// is re-centred on the new day, a custom one is clamped.
func (w *WindowController) refresh() {
	today := timeline.DateOnly(w.clock.Now())
	if today.Equal(w.today) {
		return
	}
	oldStart := w.outer.Start
	w.rebase(today)
	if w.zoom > 0 {
		w.center()
		return
	}
	shift := timeline.DaysBetween(w.outer.Start, oldStart)
	w.rangeStart, w.rangeEnd = w.clamp(w.rangeStart+shift), w.clamp(w.rangeEnd+shift)
}

func (w *WindowController) rebase(today time.Time) {
	w.today = today
	w.outer = timeline.DateRange{
		Start: timeline.Date(today.Year()-w.opts.OuterYears, time.January, 1),
		End:   timeline.Date(today.Year()+w.opts.OuterYears, time.December, 31),
	}
}

func (w *WindowController) center() {
	todayOffset := timeline.DaysBetween(w.outer.Start, w.today)
	half := w.zoom * daysPerZoomMonth / 2
	w.rangeStart = w.clamp(todayOffset - half)
	w.rangeEnd = w.clamp(todayOffset + half)
}

func (w *WindowController) clamp(offset int) int {
	last := w.outer.Days() - 1
	return max(0, min(offset, last))
}

// MarkerPercent places day within the window, or reports false when it is not visible.
func MarkerPercent(window timeline.DateRange, day time.Time) (float64, bool) {
	day = timeline.DateOnly(day)
	if !window.Contains(day) {
		return 0, false
	}
	pct, _ := WindowOffset(window, day, day)
	return pct, true
}

// ReferenceMarkerPercent places the reference date. It is only shown while the
// unfilled filter is active and the reference date is not today.
func ReferenceMarkerPercent(window timeline.DateRange, reference, today time.Time, unfilledOnly bool) (float64, bool) {
	if !unfilledOnly {
		return 0, false
	}
	if timeline.DaysBetween(today, reference) == 0 {
		return 0, false
	}
	return MarkerPercent(window, reference)
}
