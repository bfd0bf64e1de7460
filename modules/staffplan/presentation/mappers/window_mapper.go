package mappers

import (
	"github.com/tum-aet/staffplan/modules/staffplan/presentation/viewmodels"
	"github.com/tum-aet/staffplan/modules/staffplan/services"
	"github.com/tum-aet/staffplan/pkg/intl"
)

func WindowToViewModel(w *services.WindowController, l *intl.Localizer) *viewmodels.Window {
	if w == nil {
		return nil
	}
	outer := w.Outer()
	visible := w.Visible()
	start, end := w.Range()
	startDate, endDate := w.RangeDates()
	months := services.MonthHeaders(visible)

	vm := &viewmodels.Window{
		Locale:          l.Lang.Code,
		State:           w.State().String(),
		Today:           formatDate(w.Today()),
		OuterStart:      formatDate(outer.Start),
		OuterEnd:        formatDate(outer.End),
		TotalDays:       w.TotalDays(),
		Zoom:            w.Zoom(),
		RangeStart:      start,
		RangeEnd:        end,
		RangeStartLabel: l.Date(startDate),
		RangeEndLabel:   l.Date(endDate),
		VisibleStart:    formatDate(visible.Start),
		VisibleEnd:      formatDate(visible.End),
		VisibleLabel:    RangeLabel(visible.Start, visible.End, l),
		Presets:         ZoomPresetsToViewModels(w.Zoom(), l),
		Months:          MonthHeadersToViewModels(months, l),
		Years:           YearHeadersToViewModels(services.YearHeaders(months)),
	}
	if p, ok := services.MarkerPercent(visible, w.Today()); ok {
		vm.TodayMarker = &p
	}
	return vm
}

// ZoomPresetsToViewModels labels whole multi-year presets in years and the rest in months.
func ZoomPresetsToViewModels(selected int, l *intl.Localizer) []viewmodels.ZoomPreset {
	out := make([]viewmodels.ZoomPreset, 0, len(services.ZoomPresets))
	for _, m := range services.ZoomPresets {
		label := l.T("Window.ZoomMonths", map[string]any{"Months": m})
		if m > 12 && m%12 == 0 {
			label = l.T("Window.ZoomYears", map[string]any{"Years": m / 12})
		}
		out = append(out, viewmodels.ZoomPreset{Months: m, Label: label, Selected: m == selected})
	}
	return out
}
