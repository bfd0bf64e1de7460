package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tum-aet/staffplan/modules/staffplan/domain/position"
	"github.com/tum-aet/staffplan/modules/staffplan/domain/timeline"
)

var hundred = decimal.NewFromInt(100)

// TimeSlice is a maximal run of days with a constant set of active assignments.
// Start and End are inclusive.
type TimeSlice struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	// TotalFill is RawFill capped at 100 and drives the bands.
	TotalFill   decimal.Decimal       `json:"totalFill"`
	RawFill     decimal.Decimal       `json:"rawFill"`
	Assignments []position.Assignment `json:"assignments"`
}

func (s TimeSlice) Days() int {
	return timeline.InclusiveDays(s.Start, s.End)
}

func (s TimeSlice) Contains(day time.Time) bool {
	return timeline.DateRange{Start: s.Start, End: s.End}.Contains(day)
}

func (s TimeSlice) IsGap() bool {
	return s.RawFill.LessThan(hundred)
}

func (s TimeSlice) IsOverfilled() bool {
	return s.RawFill.GreaterThan(hundred)
}

// PartitionTimeline splits the intersection of the group's date range and window
// into contiguous slices of constant occupancy. Boundaries fall on assignment
// starts, on the day after assignment ends, and on the clipped range edges,
// so a position with A assignments yields at most 2A+1 slices.
func PartitionTimeline(g *position.Group, window timeline.DateRange) []TimeSlice {
	if g == nil || !g.HasAssignments() {
		return nil
	}
	effective := g.DateRange.Intersect(window)
	if effective.IsEmpty() {
		return nil
	}

	boundaries := make([]time.Time, 0, 2*len(g.Assignments)+2)
	boundaries = append(boundaries, effective.Start, timeline.AddDays(effective.End, 1))
	for _, a := range g.Assignments {
		clipped := timeline.DateRange{Start: a.Start, End: a.End}.Intersect(effective)
		if clipped.IsEmpty() {
			continue
		}
		boundaries = append(boundaries, clipped.Start, timeline.AddDays(clipped.End, 1))
	}
	boundaries = sortUniqueDates(boundaries)

	slices := make([]TimeSlice, 0, len(boundaries)-1)
	for i := 0; i+1 < len(boundaries); i++ {
		start := boundaries[i]
		end := timeline.AddDays(boundaries[i+1], -1)
		slice := TimeSlice{
			Start:       start,
			End:         end,
			RawFill:     decimal.Zero,
			Assignments: make([]position.Assignment, 0),
		}
		for _, a := range g.Assignments {
			if a.Overlaps(start, end) {
				slice.Assignments = append(slice.Assignments, a)
				slice.RawFill = slice.RawFill.Add(a.Percentage)
			}
		}
		slice.TotalFill = decimal.Min(slice.RawFill, hundred)
		slices = append(slices, slice)
	}
	return slices
}

func sortUniqueDates(in []time.Time) []time.Time {
	sort.Slice(in, func(i, j int) bool { return in[i].Before(in[j]) })
	out := in[:0]
	for i, t := range in {
		if i == 0 || !t.Equal(out[len(out)-1]) {
			out = append(out, t)
		}
	}
	return out
}

// CurrentOccupancy is the capped fill of the slice containing day, or zero.
func CurrentOccupancy(slices []TimeSlice, day time.Time) decimal.Decimal {
	day = timeline.DateOnly(day)
	i := sort.Search(len(slices), func(i int) bool { return !slices[i].End.Before(day) })
	if i < len(slices) && slices[i].Contains(day) {
		return slices[i].TotalFill
	}
	return decimal.Zero
}
