package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tum-aet/staffplan/modules/staffplan/domain/timeline"
)

func TestMonthAndYearHeaders(t *testing.T) {
	window := timeline.DateRange{Start: d(2023, 12, 1), End: d(2024, 2, 29)}

	months := MonthHeaders(window)
	require.Len(t, months, 3)
	assert.Equal(t, "2023-12", months[0].Key)
	assert.Equal(t, time.January, months[1].Month)
	assert.True(t, months[1].IsFirstOfYear)
	assert.False(t, months[0].IsFirstOfYear)
	assert.InDelta(t, 29.0/91*100, months[2].WidthPercent, 1e-9)

	years := YearHeaders(months)
	require.Len(t, years, 2)
	assert.Equal(t, 2023, years[0].Year)
	assert.InDelta(t, 31.0/91*100, years[0].WidthPercent, 1e-9)
	assert.InDelta(t, 31.0/91*100, years[1].StartPercent, 1e-9)
	assert.InDelta(t, 60.0/91*100, years[1].WidthPercent, 1e-9)
}

func TestMonthHeaders_ClipsPartialMonths(t *testing.T) {
	months := MonthHeaders(timeline.DateRange{Start: d(2024, 1, 20), End: d(2024, 2, 10)})
	require.Len(t, months, 2)
	assert.InDelta(t, 12.0/22*100, months[0].WidthPercent, 1e-9)
	assert.InDelta(t, 10.0/22*100, months[1].WidthPercent, 1e-9)

	assert.Empty(t, MonthHeaders(timeline.DateRange{Start: d(2024, 2, 1), End: d(2024, 1, 1)}))
}
