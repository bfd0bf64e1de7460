package mappers

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tum-aet/staffplan/modules/staffplan/domain/position"
	"github.com/tum-aet/staffplan/modules/staffplan/services"
	"github.com/tum-aet/staffplan/pkg/intl"
	"github.com/tum-aet/staffplan/pkg/logging"
)

var now = time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

func localizer(t *testing.T, code string) *intl.Localizer {
	t.Helper()
	lang, err := intl.Lookup(code)
	require.NoError(t, err)
	return intl.NewLocalizer(intl.LoadBundle(), lang)
}

func pct(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func testService(t *testing.T, l *intl.Localizer) *services.GanttService {
	t.Helper()
	svc := services.NewGanttService(clockwork.NewFakeClockAt(now), nil, logging.Discard(), services.NewTooltipBuilder(l), services.GanttOptions{})
	svc.SetRecords([]position.Record{
		{ObjectID: "OBJ-1", ObjectDescription: "Wiss. Mitarbeiter", TariffGroup: "E13", PersonnelNumber: "P1", Percentage: pct("60"), StartDate: "2024-01-01", EndDate: "2024-03-31"},
		{ObjectID: "OBJ-1", PersonnelNumber: "P2", Percentage: pct("50"), StartDate: "2024-03-01", EndDate: "2024-06-30"},
		{ObjectID: "OBJ-2", ObjectDescription: "Professur", TariffGroup: "W3", PersonnelNumber: "P3", Percentage: pct("100"), StartDate: "2020-01-01"},
		{ObjectID: "OBJ-3", ObjectDescription: "Sekretariat", TariffGroup: "E8"},
	})
	return svc
}

func testView(t *testing.T, l *intl.Localizer) services.View {
	t.Helper()
	return testService(t, l).View()
}

func TestGanttToViewModel(t *testing.T) {
	l := localizer(t, "de")
	v := testView(t, l)

	vm := GanttToViewModel(&v, l, true)
	require.NotNil(t, vm)

	assert.Equal(t, "de", vm.Locale)
	assert.Equal(t, "2023-12-01", vm.WindowStart)
	assert.Equal(t, "2024-12-31", vm.WindowEnd)
	assert.Equal(t, "Dez 2023 - Dez 2024", vm.WindowLabel)
	assert.Equal(t, "2024-06-15", vm.Today)
	require.NotNil(t, vm.TodayMarker)
	assert.Nil(t, vm.ReferenceMarker)
	assert.Equal(t, 3, vm.Total)
	assert.Equal(t, 3, vm.Shown)
	assert.Equal(t, 2, vm.WhiteSpots)

	require.Len(t, vm.Months, 13)
	assert.Equal(t, "Dez", vm.Months[0].Label)
	assert.Equal(t, "Mär", vm.Months[3].Label)
	assert.True(t, vm.Months[1].IsFirstOfYear)
	require.Len(t, vm.Years, 2)
	assert.Equal(t, 2023, vm.Years[0].Year)

	require.Len(t, vm.Rows, 3)
	row := vm.Rows[0]
	assert.Equal(t, "OBJ-1", row.Key)
	assert.Equal(t, "50", row.CurrentFill)
	assert.True(t, row.IsUnfilled)
	assert.True(t, row.HasGaps)
	require.Len(t, row.Bands, 4)
	assert.Equal(t, "75", row.Bands[0].Threshold)
	assert.Equal(t, "0", row.Bands[3].Threshold)
	assert.NotEmpty(t, row.Slices)
	for _, b := range row.Bands {
		for _, s := range b.Segments {
			assert.NotEmpty(t, s.Tooltip)
		}
	}

	withoutSlices := GanttToViewModel(&v, l, false)
	assert.Empty(t, withoutSlices.Rows[0].Slices)

	assert.Nil(t, GanttToViewModel(nil, l, false))
}

func TestSlicesToViewModels_KeepsUncappedSum(t *testing.T) {
	l := localizer(t, "de")
	day := func(m, d int) time.Time { return time.Date(2024, time.Month(m), d, 0, 0, 0, 0, time.UTC) }
	slices := []services.TimeSlice{
		{Start: day(1, 1), End: day(2, 29), TotalFill: decimal.NewFromInt(60), RawFill: decimal.NewFromInt(60)},
		{Start: day(3, 1), End: day(3, 31), TotalFill: decimal.NewFromInt(100), RawFill: decimal.NewFromInt(110),
			Assignments: []position.Assignment{{PersonnelNumber: "P1"}, {PersonnelNumber: "P2"}}},
	}

	out := SlicesToViewModels(slices, l)
	require.Len(t, out, 2)
	assert.Equal(t, "60", out[0].RawFill)
	assert.False(t, out[0].Overfilled)
	assert.Equal(t, "2024-03-01", out[1].Start)
	assert.Equal(t, "100", out[1].TotalFill)
	assert.Equal(t, "110", out[1].RawFill)
	assert.True(t, out[1].Overfilled)
	assert.Equal(t, 2, out[1].Assignments)
}

func TestWhiteSpotsToViewModels(t *testing.T) {
	l := localizer(t, "en")
	v := testView(t, l)

	spots := WhiteSpotsToViewModels(&v, l)
	require.Len(t, spots, 2)
	assert.Equal(t, "OBJ-1", spots[0].Key)
	assert.Equal(t, "50", spots[0].CurrentFill)
	assert.Equal(t, "50", spots[0].Unfilled)
	assert.Equal(t, "2024-06-15", spots[0].ReferenceDate)
	assert.Equal(t, "OBJ-3", spots[1].Key)
	assert.Equal(t, "0", spots[1].CurrentFill)
	assert.Equal(t, "100", spots[1].Unfilled)
	assert.False(t, spots[1].HasGaps)
}

func TestWindowToViewModel(t *testing.T) {
	l := localizer(t, "en")
	w := services.NewWindowController(clockwork.NewFakeClockAt(now), services.WindowOptions{})
	require.NoError(t, w.SetZoom(24))

	vm := WindowToViewModel(w, l)
	require.NotNil(t, vm)
	assert.Equal(t, "windowed", vm.State)
	assert.Equal(t, "2021-01-01", vm.OuterStart)
	assert.Equal(t, "2027-12-31", vm.OuterEnd)
	assert.Equal(t, 24, vm.Zoom)
	assert.NotNil(t, vm.TodayMarker)
	assert.Len(t, vm.Months, 25)

	labels := map[int]string{}
	for _, p := range vm.Presets {
		labels[p.Months] = p.Label
		assert.Equal(t, p.Months == 24, p.Selected)
	}
	assert.Equal(t, "3 months", labels[3])
	assert.Equal(t, "12 months", labels[12])
	assert.Equal(t, "2 years", labels[24])
	assert.Equal(t, "5 years", labels[60])
}

func TestOptionsToViewModel(t *testing.T) {
	svc := testService(t, localizer(t, "en"))
	opts := OptionsToViewModel(svc.Options())
	assert.Equal(t, []string{"E13", "E8", "W3"}, opts.TariffGroups)
	assert.Empty(t, opts.RelevanceTypes)
}
