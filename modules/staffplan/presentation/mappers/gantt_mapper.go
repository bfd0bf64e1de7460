package mappers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tum-aet/staffplan/modules/staffplan/domain/position"
	"github.com/tum-aet/staffplan/modules/staffplan/presentation/viewmodels"
	"github.com/tum-aet/staffplan/modules/staffplan/services"
	"github.com/tum-aet/staffplan/pkg/intl"
)

const isoDate = "2006-01-02"

var hundred = decimal.NewFromInt(100)

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(isoDate)
}

// GanttToViewModel flattens a computed view. Slices are included only when withSlices is set.
func GanttToViewModel(v *services.View, l *intl.Localizer, withSlices bool) *viewmodels.GanttView {
	if v == nil {
		return nil
	}
	months := MonthHeadersToViewModels(v.Months, l)
	rows := make([]viewmodels.PositionRow, 0, len(v.Rows))
	for _, r := range v.Rows {
		rows = append(rows, RowToViewModel(r, l, withSlices))
	}
	return &viewmodels.GanttView{
		Locale:          l.Lang.Code,
		WindowStart:     formatDate(v.Window.Start),
		WindowEnd:       formatDate(v.Window.End),
		WindowLabel:     RangeLabel(v.Window.Start, v.Window.End, l),
		Zoom:            v.Zoom,
		RangeStart:      v.RangeStart,
		RangeEnd:        v.RangeEnd,
		Today:           formatDate(v.Today),
		ReferenceDate:   formatDate(v.ReferenceDate),
		TodayMarker:     v.TodayMarker,
		ReferenceMarker: v.ReferenceMarker,
		Months:          months,
		Years:           YearHeadersToViewModels(v.Years),
		Rows:            rows,
		Shown:           len(v.Rows),
		Total:           v.Total,
		WhiteSpots:      v.WhiteSpots,
		GapsAtReference: v.GapsAtReference,
	}
}

func RowToViewModel(r services.Row, l *intl.Localizer, withSlices bool) viewmodels.PositionRow {
	g := r.Group
	out := viewmodels.PositionRow{
		RowKey:           g.RowKey,
		Key:              g.Key,
		Label:            g.Label(),
		ObjectCode:       g.ObjectCode,
		Description:      g.ObjectDescription,
		GradeClass:       g.GradeClass(),
		RelevanceType:    g.PositionRelevanceType,
		OrganizationUnit: g.OrganizationUnit,
		TariffGroup:      g.TariffGroup,
		CurrentFill:      l.Number(r.CurrentFill),
		HasGaps:          r.HasGaps(),
		IsUnfilled:       r.IsUnfilled(),
		Bands:            BandsToViewModels(r.Projection.Bands, l),
	}
	if withSlices {
		out.Slices = SlicesToViewModels(r.Slices, l)
	}
	return out
}

func BandsToViewModels(bands []services.Band, l *intl.Localizer) []viewmodels.Band {
	out := make([]viewmodels.Band, 0, len(bands))
	for _, b := range bands {
		segs := make([]viewmodels.Segment, 0, len(b.Segments))
		for _, s := range b.Segments {
			segs = append(segs, viewmodels.Segment{
				Start:        formatDate(s.Start),
				End:          formatDate(s.End),
				StartPercent: s.StartPercent,
				WidthPercent: s.WidthPercent,
				FillLevel:    s.FillLevel,
				IsFilled:     s.IsFilled,
				Personnel:    personnel(s.Assignments),
				Tooltip:      s.Tooltip,
			})
		}
		out = append(out, viewmodels.Band{
			Level:     b.Level,
			Threshold: l.Number(b.Threshold),
			Segments:  segs,
		})
	}
	return out
}

func personnel(as []position.Assignment) []string {
	if len(as) == 0 {
		return nil
	}
	out := make([]string, 0, len(as))
	for _, a := range as {
		out = append(out, a.PersonnelNumber)
	}
	return out
}

func SlicesToViewModels(slices []services.TimeSlice, l *intl.Localizer) []viewmodels.Slice {
	out := make([]viewmodels.Slice, 0, len(slices))
	for _, s := range slices {
		out = append(out, viewmodels.Slice{
			Start:       formatDate(s.Start),
			End:         formatDate(s.End),
			TotalFill:   l.Number(s.TotalFill),
			RawFill:     l.Number(s.RawFill),
			Overfilled:  s.IsOverfilled(),
			Assignments: len(s.Assignments),
		})
	}
	return out
}

func MonthHeadersToViewModels(months []services.MonthHeader, l *intl.Localizer) []viewmodels.MonthHeader {
	out := make([]viewmodels.MonthHeader, 0, len(months))
	for _, m := range months {
		out = append(out, viewmodels.MonthHeader{
			Key:           m.Key,
			Label:         l.MonthShort(m.Month),
			WidthPercent:  m.WidthPercent,
			IsFirstOfYear: m.IsFirstOfYear,
		})
	}
	return out
}

func YearHeadersToViewModels(years []services.YearHeader) []viewmodels.YearHeader {
	out := make([]viewmodels.YearHeader, 0, len(years))
	for _, y := range years {
		out = append(out, viewmodels.YearHeader{
			Year:         y.Year,
			StartPercent: y.StartPercent,
			WidthPercent: y.WidthPercent,
		})
	}
	return out
}

// RangeLabel renders a window as "Jan 2024 - Dez 2024".
func RangeLabel(start, end time.Time, l *intl.Localizer) string {
	return l.T("Window.Range", map[string]any{
		"Start": l.MonthYear(start),
		"End":   l.MonthYear(end),
	})
}

// WhiteSpotsToViewModels lists the shown rows that are under 100 at the reference date or have gaps.
func WhiteSpotsToViewModels(v *services.View, l *intl.Localizer) []viewmodels.WhiteSpot {
	if v == nil {
		return nil
	}
	out := make([]viewmodels.WhiteSpot, 0, v.WhiteSpots)
	for _, r := range v.Rows {
		if !r.IsUnfilled() {
			continue
		}
		out = append(out, viewmodels.WhiteSpot{
			RowKey:           r.Group.RowKey,
			Key:              r.Group.Key,
			Label:            r.Group.Label(),
			OrganizationUnit: r.Group.OrganizationUnit,
			TariffGroup:      r.Group.TariffGroup,
			ReferenceDate:    formatDate(v.ReferenceDate),
			CurrentFill:      l.Number(r.CurrentFill),
			Unfilled:         l.Number(hundred.Sub(r.CurrentFill)),
			HasGaps:          r.HasGaps(),
		})
	}
	return out
}

func OptionsToViewModel(o services.Options) viewmodels.Options {
	return viewmodels.Options{
		RelevanceTypes:    o.RelevanceTypes,
		OrganizationUnits: o.OrganizationUnits,
		TariffGroups:      o.TariffGroups,
	}
}
